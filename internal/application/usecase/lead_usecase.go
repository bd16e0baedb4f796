package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/crm-panel/internal/application/dto"
	"github.com/jhoicas/crm-panel/internal/domain"
)

// LeadSource origen de leads; lo implementa *crm.Client.
type LeadSource interface {
	Leads(ctx context.Context, token string) ([]dto.Lead, error)
}

// LeadUseCase listado de leads con filtros de búsqueda y estado.
// Si el backend del CRM no está disponible se degrada al juego de datos de
// demostración para que el panel siga siendo navegable.
type LeadUseCase struct {
	source LeadSource
}

// NewLeadUseCase construye el caso de uso de leads.
func NewLeadUseCase(source LeadSource) *LeadUseCase {
	return &LeadUseCase{source: source}
}

// List devuelve los leads filtrados. Un 401 del CRM se propaga: la sesión
// expiró y la capa HTTP debe limpiarla.
func (uc *LeadUseCase) List(ctx context.Context, token string, f dto.LeadFilter) ([]dto.Lead, error) {
	leads, err := uc.source.Leads(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSesionExpirada) {
			return nil, err
		}
		// Backend caído o sin endpoint de leads: datos de demostración.
		leads = demoLeads()
	}

	filtered := make([]dto.Lead, 0, len(leads))
	q := strings.ToLower(strings.TrimSpace(f.Query))
	for _, l := range leads {
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(l.Name), q) &&
			!strings.Contains(strings.ToLower(l.Phone), q) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered, nil
}

// demoLeads juego de datos de demostración del panel.
func demoLeads() []dto.Lead {
	return []dto.Lead{
		{ID: "1", Name: "María García", Phone: "+52 55 1234 5678", Status: dto.LeadNuevo, CreatedAt: "2024-01-15", AssignedAgent: "Juan Pérez"},
		{ID: "2", Name: "Carlos López", Phone: "+52 55 9876 5432", Status: dto.LeadContactado, CreatedAt: "2024-01-14", AssignedAgent: "Ana Ruiz"},
		{ID: "3", Name: "Laura Martínez", Phone: "+52 55 5555 1234", Status: dto.LeadCerrado, CreatedAt: "2024-01-13", AssignedAgent: "Pedro Sánchez"},
		{ID: "4", Name: "Roberto Silva", Phone: "+52 55 7777 8888", Status: dto.LeadNuevo, CreatedAt: "2024-01-12", AssignedAgent: "Juan Pérez"},
		{ID: "5", Name: "Andrea Torres", Phone: "+52 55 3333 9999", Status: dto.LeadContactado, CreatedAt: "2024-01-11", AssignedAgent: "Ana Ruiz"},
	}
}
