package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	s := setupTestServer(t)

	code, resp := s.do(t, requestSpec{method: "POST", requestPath: "/register", body: map[string]string{"id": "rahim01", "name": "Rahim", "password": "secret"}})
	assert.Equal(t, 200, code)
	data := dataMap(t, resp)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "patient", data["role"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "rahim01", user["id"])
	assert.NotContains(t, user, "password")

	code, resp = s.do(t, requestSpec{method: "POST", requestPath: "/login", body: map[string]string{"id": "rahim01", "password": "secret"}})
	assert.Equal(t, 200, code)
	assert.Equal(t, "patient", dataMap(t, resp)["role"])

	code, _ = s.do(t, requestSpec{method: "POST", requestPath: "/login", body: map[string]string{"id": "rahim01", "password": "Secret"}})
	assert.Equal(t, 401, code)
}

func TestRegister_DuplicateID(t *testing.T) {
	s := setupTestServer(t)
	s.register(t, "rahim01", "Rahim", "secret")

	code, resp := s.do(t, requestSpec{method: "POST", requestPath: "/register", body: map[string]string{"id": "rahim01", "name": "Other", "password": "x"}})
	assert.Equal(t, 400, code)
	assert.Equal(t, false, resp["success"])
	assert.Len(t, s.repo.Users(), 1)
}

func TestRegister_InvalidPayload(t *testing.T) {
	s := setupTestServer(t)
	bodies := []interface{}{
		`{"id":`,
		map[string]string{"id": "   ", "name": "Rahim", "password": "x"},
		map[string]string{"id": "rahim01", "name": "Rahim"},
		map[string]string{"id": "2", "name": "Sneaky", "password": "x"},
	}
	for _, body := range bodies {
		code, _ := s.do(t, requestSpec{method: "POST", requestPath: "/register", body: body})
		assert.Equal(t, 400, code, "body %v", body)
	}
	assert.Empty(t, s.repo.Users())
}

func TestLogin_Admin(t *testing.T) {
	s := setupTestServer(t)

	code, resp := s.do(t, requestSpec{method: "POST", requestPath: "/login", body: map[string]string{"id": "2", "password": "2"}})
	assert.Equal(t, 200, code)
	data := dataMap(t, resp)
	assert.Equal(t, "admin", data["role"])
	assert.NotContains(t, data, "user")

	code, _ = s.do(t, requestSpec{method: "POST", requestPath: "/login", body: map[string]string{"id": "2", "password": "22"}})
	assert.Equal(t, 401, code)
}

func TestRoleGuards(t *testing.T) {
	s := setupTestServer(t)
	patient := s.register(t, "rahim01", "Rahim", "secret")
	admin := s.adminToken(t)

	code, _ := s.do(t, requestSpec{method: "GET", requestPath: "/me"})
	assert.Equal(t, 401, code)

	code, _ = s.do(t, requestSpec{method: "GET", requestPath: "/me", token: admin})
	assert.Equal(t, 403, code)

	code, _ = s.do(t, requestSpec{method: "GET", requestPath: "/admin/users", token: patient})
	assert.Equal(t, 403, code)

	code, _ = s.do(t, requestSpec{method: "GET", requestPath: "/me", token: patient})
	assert.Equal(t, 200, code)
}

func TestLogout(t *testing.T) {
	s := setupTestServer(t)
	token := s.register(t, "rahim01", "Rahim", "secret")

	code, resp := s.do(t, requestSpec{method: "DELETE", requestPath: "/logout", token: token})
	assert.Equal(t, 200, code)
	assert.Equal(t, true, resp["success"])

	code, _ = s.do(t, requestSpec{method: "GET", requestPath: "/me", token: token})
	assert.Equal(t, 401, code)
}
