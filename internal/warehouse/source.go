package warehouse

import (
	"context"

	"sales-dashboard/internal/models"
)

// Source loads the consolidated sales dataset: the fact table joined to its
// dimension tables, one flat row per transaction. The query takes no
// parameters, so every Load returns the same logical dataset.
type Source interface {
	Load(ctx context.Context) ([]models.SalesRecord, error)
}
