package dto

// Estados válidos de un lead.
const (
	LeadNuevo      = "nuevo"
	LeadContactado = "contactado"
	LeadCerrado    = "cerrado"
)

// Lead prospecto captado por WhatsApp.
type Lead struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Status        string `json:"status"` // nuevo, contactado, cerrado
	CreatedAt     string `json:"createdAt"`
	AssignedAgent string `json:"assignedAgent"`
}

// LeadFilter filtros de listado: Query busca en nombre y teléfono.
type LeadFilter struct {
	Query  string `query:"q"`
	Status string `query:"status" validate:"omitempty,oneof=nuevo contactado cerrado"`
}
