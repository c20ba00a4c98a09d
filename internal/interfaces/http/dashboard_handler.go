package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Inventario-dashboard/internal/application/analytics"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

// DashboardHandler maneja los endpoints del tablero de inventario.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log.Named("dashboard_handler")}
}

// Get godoc
// @Summary      Tablero de inventario
// @Description  Agregados del snapshot completo, líneas filtradas y participación por categoría.
// @Description  Si el almacén falla responde 503 con un tablero vacío (degraded=true) y un mensaje.
// @Tags         dashboard
// @Produce      json
// @Param        q         query  string  false  "Subcadena del nombre (sin distinguir mayúsculas)"
// @Param        category  query  []string  false  "Nombre de categoría (repetible)"  collectionFormat(multi)
// @Success      200  {object}  dto.DashboardResponse
// @Failure      503  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.UserContext(), parseDashboardQuery(c))
	if err != nil {
		h.log.Error().Err(err).Msg("no se pudo cargar el tablero")
		status, _ := statusFor(err)
		return c.Status(status).JSON(dto.EmptyDashboard(inventory.LowStockThreshold,
			"No se pudieron cargar los datos del inventario. "+publicMessage(status, err)))
	}
	return c.JSON(resp)
}

// Report godoc
// @Summary      Reporte PDF del tablero
// @Tags         dashboard
// @Produce      application/pdf
// @Param        q         query  string  false  "Subcadena del nombre"
// @Param        category  query  []string  false  "Nombre de categoría (repetible)"  collectionFormat(multi)
// @Success      200  {file}    binary
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.Report(c.UserContext(), parseDashboardQuery(c))
	if err != nil {
		h.log.Error().Err(err).Msg("no se pudo generar el reporte")
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// parseDashboardQuery lee q y los category repetidos; se ignoran los category vacíos.
// La q no se recorta: los espacios forman parte de la subcadena.
func parseDashboardQuery(c *fiber.Ctx) dto.DashboardQuery {
	q := dto.DashboardQuery{Q: c.Query("q")}
	for _, raw := range c.Context().QueryArgs().PeekMulti("category") {
		if name := strings.TrimSpace(string(raw)); name != "" {
			q.Categories = append(q.Categories, name)
		}
	}
	return q
}
