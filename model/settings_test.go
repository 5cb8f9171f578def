package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAdminSettings(t *testing.T) {
	defaults := DefaultAdminSettings()

	s, err := MergeAdminSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, defaults, s)

	s, err = MergeAdminSettings([]byte(`{"prescriptionTheme":"Modern","welcomeBanner":{"text":"Hello"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Modern", s.PrescriptionTheme)
	assert.Equal(t, "Hello", s.WelcomeBanner.Text)
	assert.Equal(t, defaults.WelcomeBanner.Image, s.WelcomeBanner.Image)
	assert.Equal(t, defaults.PrescriptionHeader, s.PrescriptionHeader)

	s, err = MergeAdminSettings([]byte(`{"prescriptionTheme":`))
	assert.Error(t, err)
	assert.Equal(t, defaults, s)
}

func TestThemeValidation(t *testing.T) {
	for _, theme := range PrescriptionThemes {
		assert.True(t, IsValidPrescriptionTheme(theme), theme)
	}
	assert.False(t, IsValidPrescriptionTheme("standard"))
	assert.False(t, IsValidPrescriptionTheme(""))

	assert.True(t, IsValidThemeIndex(0))
	assert.True(t, IsValidThemeIndex(len(Themes)-1))
	assert.False(t, IsValidThemeIndex(len(Themes)))
	assert.False(t, IsValidThemeIndex(-1))
}
