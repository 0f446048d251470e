package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

func TestCompanySettings_Merge(t *testing.T) {
	s := domain.DefaultCompanySettings()
	city := "Villeurbanne"
	empty := ""

	s.Merge(domain.CompanySettingsPatch{City: &city, LogoURL: &empty})

	assert.Equal(t, "Villeurbanne", s.City)
	assert.Equal(t, "ORIS FORMATION", s.Name)
	assert.Equal(t, "", s.LogoURL)
}
