package dto

import "time"

// TrendPointDTO un punto de la curva de nivel de stock.
type TrendPointDTO struct {
	Label      string    `json:"label"`
	Timestamp  time.Time `json:"timestamp"`
	StockLevel int64     `json:"stock_level"`
}

// TrendResponse respuesta de GET /api/analytics/trend.
type TrendResponse struct {
	Scope   string          `json:"scope"`
	ScopeID string          `json:"scope_id,omitempty"`
	Window  string          `json:"window"`
	Points  []TrendPointDTO `json:"points"`
}

// SummaryDTO KPIs del dashboard ejecutivo.
type SummaryDTO struct {
	TotalProducts     int               `json:"total_products"`      // SKUs distintos
	TotalUnits        int64             `json:"total_units"`         // unidades físicas sumadas
	ActiveDepartments int               `json:"active_departments"`  // departamentos con productos
	CriticalStock     []ProductResponse `json:"critical_stock"`      // bajo el umbral, de menor a mayor
}
