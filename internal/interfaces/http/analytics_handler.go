package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-qr-api/internal/application/analytics"
	"github.com/jhoicas/almacen-qr-api/internal/application/dto"
	"github.com/jhoicas/almacen-qr-api/internal/domain"
	"github.com/jhoicas/almacen-qr-api/internal/domain/trend"
)

// AnalyticsHandler maneja las lecturas del dashboard (protegido).
type AnalyticsHandler struct {
	trendUC   *analytics.TrendUseCase
	summaryUC *analytics.SummaryUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(trendUC *analytics.TrendUseCase, summaryUC *analytics.SummaryUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{trendUC: trendUC, summaryUC: summaryUC}
}

// GetTrend godoc
// @Summary      Curva histórica de nivel de stock
// @Description  Reconstruye el nivel de stock replayando el libro de movimientos
//
//	desde cero, filtrado por alcance y recortado a la ventana pedida.
//
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        scope     query  string  false  "ALL | DEPARTMENT | PRODUCT (default ALL)"
// @Param        scope_id  query  string  false  "ID del departamento o del producto; obligatorio si scope no es ALL"
// @Param        window    query  string  false  "24h | 3d | 7d | 30d | 3m | 6m (default 7d)"
// @Success      200  {object}  dto.TrendResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/trend [get]
func (h *AnalyticsHandler) GetTrend(c *fiber.Ctx) error {
	scope, err := trend.ParseScope(c.Query("scope"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	window, err := trend.ParseWindow(c.Query("window"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	resp, err := h.trendUC.GetTrend(c.Context(), scope, c.Query("scope_id"), window)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "scope_id es obligatorio cuando scope no es ALL"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}

// GetSummary godoc
// @Summary      KPIs del dashboard
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	resp, err := h.summaryUC.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
