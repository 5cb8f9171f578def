package endpoint

import (
	"testing"

	"github.com/ariebrainware/medi-help/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicEndpoints(t *testing.T) {
	s := setupTestServer(t)

	code, resp := s.do(t, requestSpec{method: "GET", requestPath: "/"})
	assert.Equal(t, 200, code)
	assert.Equal(t, "Welcome to Medi Help!", resp["message"])

	code, resp = s.do(t, requestSpec{method: "GET", requestPath: "/catalog"})
	require.Equal(t, 200, code)
	data := dataMap(t, resp)
	assert.Len(t, dataList(t, data["symptoms"]), len(model.DefaultSymptoms))
	assert.Len(t, dataList(t, data["themes"]), 10)
	assert.Len(t, dataList(t, data["prescriptionThemes"]), 4)

	code, resp = s.do(t, requestSpec{method: "GET", requestPath: "/settings"})
	require.Equal(t, 200, code)
	assert.Equal(t, "Standard", dataMap(t, resp)["prescriptionTheme"])

	code, resp = s.do(t, requestSpec{method: "GET", requestPath: "/prices"})
	require.Equal(t, 200, code)
	assert.Empty(t, dataList(t, resp["data"]))
}

func TestAdminSettings(t *testing.T) {
	s := setupTestServer(t)
	admin := s.adminToken(t)

	settings := model.DefaultAdminSettings()
	settings.PrescriptionTheme = "Classic"
	settings.WelcomeBanner.Text = "স্বাগতম"
	code, resp := s.do(t, requestSpec{method: "PUT", requestPath: "/admin/settings", token: admin, body: settings})
	require.Equal(t, 200, code, resp)

	_, resp = s.do(t, requestSpec{method: "GET", requestPath: "/settings"})
	data := dataMap(t, resp)
	assert.Equal(t, "Classic", data["prescriptionTheme"])
	assert.Equal(t, "স্বাগতম", data["welcomeBanner"].(map[string]interface{})["text"])

	settings.PrescriptionTheme = "Neon"
	code, _ = s.do(t, requestSpec{method: "PUT", requestPath: "/admin/settings", token: admin, body: settings})
	assert.Equal(t, 400, code)
}

func TestAdminPrices(t *testing.T) {
	s := setupTestServer(t)
	admin := s.adminToken(t)

	code, resp := s.do(t, requestSpec{method: "POST", requestPath: "/admin/prices", token: admin,
		body: map[string]string{"name": "Napa", "generic": "Paracetamol", "company": "Beximco", "price": "1.20"}})
	require.Equal(t, 201, code, resp)
	id := dataMap(t, resp)["id"].(string)
	assert.NotEmpty(t, id)

	code, _ = s.do(t, requestSpec{method: "POST", requestPath: "/admin/prices", token: admin, body: map[string]string{"name": "Napa"}})
	assert.Equal(t, 400, code)

	code, resp = s.do(t, requestSpec{method: "PUT", requestPath: "/admin/prices", token: admin, body: []map[string]string{
		{"id": id, "name": "Napa", "generic": "Paracetamol", "company": "Beximco", "price": "1.50"},
		{"name": "Seclo", "generic": "Omeprazole", "company": "Square", "price": "5.00"},
	}})
	require.Equal(t, 200, code, resp)
	assert.Len(t, dataList(t, resp["data"]), 2)

	code, _ = s.do(t, requestSpec{method: "DELETE", requestPath: "/admin/prices/" + id, token: admin})
	assert.Equal(t, 200, code)
	code, _ = s.do(t, requestSpec{method: "DELETE", requestPath: "/admin/prices/" + id, token: admin})
	assert.Equal(t, 404, code)

	_, resp = s.do(t, requestSpec{method: "GET", requestPath: "/prices"})
	assert.Len(t, dataList(t, resp["data"]), 1)
}

func TestAdminUsers(t *testing.T) {
	s := setupTestServer(t)
	s.register(t, "rahim01", "Rahim", "secret")
	s.register(t, "karim", "Karim", "secret")
	admin := s.adminToken(t)

	code, resp := s.do(t, requestSpec{method: "GET", requestPath: "/admin/users", token: admin})
	require.Equal(t, 200, code)
	data := dataMap(t, resp)
	assert.Equal(t, float64(2), data["total"])
	for _, u := range dataList(t, data["users"]) {
		assert.NotContains(t, u.(map[string]interface{}), "password")
	}

	code, resp = s.do(t, requestSpec{method: "GET", requestPath: "/admin/dashboard", token: admin})
	require.Equal(t, 200, code)
	assert.Equal(t, float64(2), dataMap(t, resp)["users"])
}

func TestAdminSettings_PartialUpdateKeepsOtherFields(t *testing.T) {
	s := setupTestServer(t)
	admin := s.adminToken(t)
	defaults := model.DefaultAdminSettings()

	code, resp := s.do(t, requestSpec{method: "PUT", requestPath: "/admin/settings", token: admin,
		body: `{"prescriptionTheme":"Modern","welcomeBanner":{"text":"স্বাগতম"}}`})
	require.Equal(t, 200, code, resp)

	stored := s.repo.Settings()
	assert.Equal(t, "Modern", stored.PrescriptionTheme)
	assert.Equal(t, "স্বাগতম", stored.WelcomeBanner.Text)
	assert.Equal(t, defaults.WelcomeBanner.Image, stored.WelcomeBanner.Image)
	assert.Equal(t, defaults.HomeHeaderBanner, stored.HomeHeaderBanner)
	assert.Equal(t, defaults.FooterBannerText, stored.FooterBannerText)
	assert.Equal(t, defaults.DigitalSignature, stored.DigitalSignature)

	code, _ = s.do(t, requestSpec{method: "PUT", requestPath: "/admin/settings", token: admin,
		body: `{"footerBannerText":"নতুন"}`})
	require.Equal(t, 200, code)

	_, resp = s.do(t, requestSpec{method: "GET", requestPath: "/settings"})
	data := dataMap(t, resp)
	assert.Equal(t, "Modern", data["prescriptionTheme"])
	assert.Equal(t, "নতুন", data["footerBannerText"])
	assert.Equal(t, defaults.PrescriptionHeader, data["prescriptionHeader"])
}
