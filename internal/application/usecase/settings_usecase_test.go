package usecase_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/application/usecase"
	"github.com/jhoicas/crm-panel/pkg/config"
)

func newSettingsUC(t *testing.T) *usecase.SettingsUseCase {
	t.Helper()
	rt := config.NewRuntime(filepath.Join(t.TempDir(), "panel_api.yaml"), "http://localhost:8080")
	return usecase.NewSettingsUseCase(rt)
}

func TestGet_ValoresPorDefecto(t *testing.T) {
	uc := newSettingsUC(t)

	s := uc.Get()
	assert.True(t, s.WelcomeEnabled)
	assert.NotEmpty(t, s.WelcomeMessage)
	assert.Len(t, s.QuickResponses, 3)
	assert.Len(t, s.WorkingHours, 7)
}

func TestUpdate_ReemplazaLaConfiguracion(t *testing.T) {
	uc := newSettingsUC(t)

	got := uc.Update(dto.UpdateSettingsRequest{
		WelcomeEnabled: false,
		OffHoursMessage: "Volvemos el lunes",
		QuickResponses: []dto.QuickResponse{
			{ID: "1", Title: "Saludo", Message: "Hola"},
		},
	})
	assert.False(t, got.WelcomeEnabled)
	assert.Equal(t, "Volvemos el lunes", got.OffHoursMessage)
	assert.Len(t, got.QuickResponses, 1)

	assert.Equal(t, got, uc.Get())
}

func TestServerConfig_LecturaYCambio(t *testing.T) {
	uc := newSettingsUC(t)

	assert.Equal(t, "http://localhost:8080", uc.ServerConfig().APIURL)

	got, err := uc.SetServerConfig(dto.ServerConfigRequest{APIURL: "https://crm.empresa.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://crm.empresa.com", got.APIURL)

	_, err = uc.SetServerConfig(dto.ServerConfigRequest{APIURL: "sin-esquema"})
	assert.Error(t, err)
	assert.Equal(t, "https://crm.empresa.com", uc.ServerConfig().APIURL)
}
