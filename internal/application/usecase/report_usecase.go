package usecase

import (
	"github.com/jhoicas/crm-panel/internal/application/dto"
)

// ReportUseCase reportes del panel: serie de mensajes, métricas por agente y
// tarjetas de resumen, ya mapeados a la forma que consumen los gráficos.
// Los datos provienen del juego de demostración (el backend de reportería es
// ajeno a este panel); el mapeo a formas graficables sí es responsabilidad
// de esta capa.
type ReportUseCase struct{}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase() *ReportUseCase {
	return &ReportUseCase{}
}

// MessageSeries serie diaria de mensajes para el gráfico de líneas.
func (uc *ReportUseCase) MessageSeries() []dto.MessagePoint {
	return []dto.MessagePoint{
		{Date: "2024-01-15", Messages: 145},
		{Date: "2024-01-16", Messages: 168},
		{Date: "2024-01-17", Messages: 132},
		{Date: "2024-01-18", Messages: 189},
		{Date: "2024-01-19", Messages: 201},
		{Date: "2024-01-20", Messages: 156},
		{Date: "2024-01-21", Messages: 98},
		{Date: "2024-01-22", Messages: 178},
		{Date: "2024-01-23", Messages: 195},
		{Date: "2024-01-24", Messages: 223},
	}
}

// AgentMetrics métricas de desempeño por agente.
func (uc *ReportUseCase) AgentMetrics() []dto.AgentMetrics {
	return []dto.AgentMetrics{
		{ID: "1", Name: "Ana García", Avatar: "AG", TotalConversations: 156, ResponseRate: 98.5, AvgResponseTime: "2m 15s", Status: "active", Satisfaction: 4.8},
		{ID: "2", Name: "Carlos López", Avatar: "CL", TotalConversations: 142, ResponseRate: 96.2, AvgResponseTime: "3m 42s", Status: "active", Satisfaction: 4.6},
		{ID: "3", Name: "María Rodríguez", Avatar: "MR", TotalConversations: 189, ResponseRate: 99.1, AvgResponseTime: "1m 58s", Status: "active", Satisfaction: 4.9},
		{ID: "4", Name: "Luis Hernández", Avatar: "LH", TotalConversations: 98, ResponseRate: 94.8, AvgResponseTime: "4m 12s", Status: "inactive", Satisfaction: 4.3},
		{ID: "5", Name: "Sofia Martínez", Avatar: "SM", TotalConversations: 167, ResponseRate: 97.3, AvgResponseTime: "2m 48s", Status: "active", Satisfaction: 4.7},
	}
}

// Summary tarjetas del tablero principal.
func (uc *ReportUseCase) Summary() []dto.SummaryCard {
	return []dto.SummaryCard{
		{Title: "Conversaciones totales", Value: "1,234", Trend: dto.Trend{Value: 12.5, IsPositive: true}},
		{Title: "Leads nuevos", Value: "89", Trend: dto.Trend{Value: 8.2, IsPositive: true}},
		{Title: "Agentes activos", Value: "12", Trend: dto.Trend{Value: 3.1, IsPositive: true}},
		{Title: "Tiempo de respuesta", Value: "2m 45s", Trend: dto.Trend{Value: -15.2, IsPositive: false}},
	}
}
