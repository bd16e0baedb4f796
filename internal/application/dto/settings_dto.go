package dto

// QuickResponse respuesta rápida reutilizable en el chat.
type QuickResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// WorkingHours horario de atención por día.
type WorkingHours struct {
	Day     string `json:"day"`
	Enabled bool   `json:"enabled"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

// Settings configuración funcional del panel (mensajes automáticos,
// respuestas rápidas y horarios).
type Settings struct {
	WelcomeEnabled  bool            `json:"welcomeEnabled"`
	WelcomeMessage  string          `json:"welcomeMessage"`
	OffHoursEnabled bool            `json:"offHoursEnabled"`
	OffHoursMessage string          `json:"offHoursMessage"`
	QuickResponses  []QuickResponse `json:"quickResponses"`
	WorkingHours    []WorkingHours  `json:"workingHours"`
}

// UpdateSettingsRequest actualización completa de la configuración.
type UpdateSettingsRequest struct {
	WelcomeEnabled  bool            `json:"welcomeEnabled"`
	WelcomeMessage  string          `json:"welcomeMessage" validate:"max=1000"`
	OffHoursEnabled bool            `json:"offHoursEnabled"`
	OffHoursMessage string          `json:"offHoursMessage" validate:"max=1000"`
	QuickResponses  []QuickResponse `json:"quickResponses" validate:"dive"`
	WorkingHours    []WorkingHours  `json:"workingHours" validate:"dive"`
}

// ServerConfigRequest cambio en caliente de la URL base de la API del CRM.
type ServerConfigRequest struct {
	APIURL string `json:"api_url" validate:"required,url"`
}

// ServerConfigResponse configuración vigente del servidor.
type ServerConfigResponse struct {
	APIURL string `json:"api_url"`
}
