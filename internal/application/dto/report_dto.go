package dto

// MessagePoint punto de la serie de mensajes por día, en la forma que
// consume el gráfico de líneas del panel.
type MessagePoint struct {
	Date     string `json:"date"`
	Messages int    `json:"messages"`
}

// AgentMetrics métricas de desempeño por agente.
type AgentMetrics struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Avatar             string  `json:"avatar"`
	TotalConversations int     `json:"totalConversations"`
	ResponseRate       float64 `json:"responseRate"`
	AvgResponseTime    string  `json:"avgResponseTime"`
	Status             string  `json:"status"` // active | inactive
	Satisfaction       float64 `json:"satisfaction"`
}

// Trend variación porcentual de una métrica respecto al período anterior.
type Trend struct {
	Value      float64 `json:"value"`
	IsPositive bool    `json:"isPositive"`
}

// SummaryCard tarjeta de métrica del tablero.
type SummaryCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Trend Trend  `json:"trend"`
}
