package usecase

import (
	"sync"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/pkg/config"
)

// SettingsUseCase configuración funcional del panel (mensajes automáticos,
// respuestas rápidas, horarios) y configuración del servidor (URL de la API).
// La configuración funcional vive en memoria con valores por defecto; la URL
// de API se persiste vía config.Runtime para sobrevivir reinicios.
type SettingsUseCase struct {
	runtime *config.Runtime

	mu       sync.RWMutex
	settings dto.Settings
}

// NewSettingsUseCase construye el caso de uso con los valores por defecto
// del panel.
func NewSettingsUseCase(runtime *config.Runtime) *SettingsUseCase {
	return &SettingsUseCase{
		runtime:  runtime,
		settings: defaultSettings(),
	}
}

// Get devuelve la configuración funcional vigente.
func (uc *SettingsUseCase) Get() dto.Settings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.settings
}

// Update reemplaza la configuración funcional completa.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) dto.Settings {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.settings = dto.Settings{
		WelcomeEnabled:  in.WelcomeEnabled,
		WelcomeMessage:  in.WelcomeMessage,
		OffHoursEnabled: in.OffHoursEnabled,
		OffHoursMessage: in.OffHoursMessage,
		QuickResponses:  in.QuickResponses,
		WorkingHours:    in.WorkingHours,
	}
	return uc.settings
}

// ServerConfig devuelve la URL base vigente de la API del CRM.
func (uc *SettingsUseCase) ServerConfig() dto.ServerConfigResponse {
	return dto.ServerConfigResponse{APIURL: uc.runtime.APIBase()}
}

// SetServerConfig cambia la URL base en caliente y la persiste.
func (uc *SettingsUseCase) SetServerConfig(in dto.ServerConfigRequest) (dto.ServerConfigResponse, error) {
	if err := uc.runtime.SetAPIBase(in.APIURL); err != nil {
		return dto.ServerConfigResponse{}, err
	}
	return uc.ServerConfig(), nil
}

func defaultSettings() dto.Settings {
	return dto.Settings{
		WelcomeEnabled:  true,
		WelcomeMessage:  "¡Hola! Bienvenido a nuestro servicio de atención al cliente. ¿En qué podemos ayudarte hoy?",
		OffHoursEnabled: true,
		OffHoursMessage: "Gracias por contactarnos. Actualmente estamos fuera de horario de atención. Te responderemos lo antes posible.",
		QuickResponses: []dto.QuickResponse{
			{ID: "1", Title: "Saludo", Message: "¡Hola! ¿En qué puedo ayudarte?"},
			{ID: "2", Title: "Despedida", Message: "Gracias por contactarnos. ¡Que tengas un excelente día!"},
			{ID: "3", Title: "Horario", Message: "Nuestro horario de atención es de lunes a viernes de 9:00 a 18:00."},
		},
		WorkingHours: []dto.WorkingHours{
			{Day: "Lunes", Enabled: true, Open: "09:00", Close: "18:00"},
			{Day: "Martes", Enabled: true, Open: "09:00", Close: "18:00"},
			{Day: "Miércoles", Enabled: true, Open: "09:00", Close: "18:00"},
			{Day: "Jueves", Enabled: true, Open: "09:00", Close: "18:00"},
			{Day: "Viernes", Enabled: true, Open: "09:00", Close: "18:00"},
			{Day: "Sábado", Enabled: false, Open: "10:00", Close: "14:00"},
			{Day: "Domingo", Enabled: false, Open: "10:00", Close: "14:00"},
		},
	}
}
