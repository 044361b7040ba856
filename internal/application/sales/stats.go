package sales

import (
	"context"

	"github.com/tu-usuario/ventas-pro/internal/application/dto"
	"github.com/tu-usuario/ventas-pro/internal/domain/repository"
)

// StatsUseCase estadísticas de ventas (solo lectura).
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// TopProduct devuelve el producto más vendido por unidades acumuladas,
// o nil si todavía no hay ventas registradas.
func (uc *StatsUseCase) TopProduct(ctx context.Context) (*dto.TopProductResponse, error) {
	top, err := uc.statsRepo.TopSellingProduct(ctx)
	if err != nil {
		return nil, err
	}
	if top == nil {
		return nil, nil
	}
	return &dto.TopProductResponse{ProductName: top.ProductName, UnitsSold: top.UnitsSold}, nil
}

// DailySales serie de totales vendidos por día calendario (ventas activas).
func (uc *StatsUseCase) DailySales(ctx context.Context) ([]dto.DailySalesPoint, error) {
	rows, err := uc.statsRepo.DailySalesTotals(ctx)
	if err != nil {
		return nil, err
	}
	points := make([]dto.DailySalesPoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, dto.DailySalesPoint{
			Day:   r.Day.Format("2006-01-02"),
			Total: r.Total,
		})
	}
	return points, nil
}
