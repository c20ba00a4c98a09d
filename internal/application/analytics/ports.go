package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// ReportGenerator genera la representación en PDF del tablero.
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report *dto.DashboardResponse, generatedAt time.Time) ([]byte, error)
}
