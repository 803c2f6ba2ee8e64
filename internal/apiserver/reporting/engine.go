// Package reporting computes the read-only derived views of the inventory
// and contract data. Views are recomputed per request and never mutate
// state.
package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/common/cnst"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/estateops/estate-api/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// expiringWindow is how far ahead the dashboard looks for contracts about
// to end.
const expiringWindow = 30 * 24 * time.Hour

// Engine computes reporting views.
type Engine struct {
	db      database.Database
	logger  *zap.Logger
	metrics *metrics.Metrics
	// now is swappable for tests
	now func() time.Time
}

// NewEngine creates a reporting engine
func NewEngine(db database.Database, logger *zap.Logger) *Engine {
	return &Engine{db: db, logger: logger.Named("reporting"), now: time.Now}
}

// WithMetrics attaches the metrics registry for per-view query timing.
func (e *Engine) WithMetrics(m *metrics.Metrics) *Engine {
	e.metrics = m
	return e
}

func (e *Engine) timeView(view string) func() {
	start := time.Now()
	return func() {
		if e.metrics != nil {
			e.metrics.ReportQueryDone(view, start)
		}
	}
}

func pageArgs(q *dto.PageQuery) database.PageArgs {
	q.Normalize()
	return database.PageArgs{Offset: q.Offset(), Limit: q.Limit, Search: q.Search}
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// InventoryView is a paged slice of units with the filtered and overall
// counts.
type InventoryView struct {
	Inventories []*database.Inventory `json:"inventories"`
	SearchCount int64                 `json:"searchCount"`
	Count       int64                 `json:"count"`
}

// VacancyView adds the per-type breakdown to the vacant listing.
type VacancyView struct {
	InventoryView
	Breakdown []database.TypeCount `json:"breakdown"`
}

// VacantInventories lists units open for sale with the breakdown by type.
func (e *Engine) VacantInventories(ctx context.Context, q *dto.PageQuery) (*VacancyView, error) {
	defer e.timeView("vacant_inventories")()
	args := pageArgs(q)

	inventories, err := e.db.ListInventoriesByStatus(ctx, cnst.StatusForSale.String(), args)
	if err != nil {
		return nil, e.internal("vacant inventories", err)
	}
	searchCount, err := e.db.CountInventoriesByStatus(ctx, cnst.StatusForSale.String(), args.Search)
	if err != nil {
		return nil, e.internal("vacant inventories", err)
	}
	count, err := e.db.CountInventoriesByStatus(ctx, cnst.StatusForSale.String(), "")
	if err != nil {
		return nil, e.internal("vacant inventories", err)
	}
	breakdown, err := e.db.CountInventoriesByType(ctx, cnst.StatusForSale.String())
	if err != nil {
		return nil, e.internal("vacant inventories", err)
	}

	return &VacancyView{
		InventoryView: InventoryView{Inventories: inventories, SearchCount: searchCount, Count: count},
		Breakdown:     breakdown,
	}, nil
}

// OpenForSale lists units open for sale without the breakdown.
func (e *Engine) OpenForSale(ctx context.Context, q *dto.PageQuery) (*InventoryView, error) {
	defer e.timeView("open_for_sale")()
	args := pageArgs(q)

	inventories, err := e.db.ListInventoriesByStatus(ctx, cnst.StatusForSale.String(), args)
	if err != nil {
		return nil, e.internal("open for sale", err)
	}
	searchCount, err := e.db.CountInventoriesByStatus(ctx, cnst.StatusForSale.String(), args.Search)
	if err != nil {
		return nil, e.internal("open for sale", err)
	}
	count, err := e.db.CountInventoriesByStatus(ctx, cnst.StatusForSale.String(), "")
	if err != nil {
		return nil, e.internal("open for sale", err)
	}

	return &InventoryView{Inventories: inventories, SearchCount: searchCount, Count: count}, nil
}

// SoldView is the sold listing joined with current owners.
type SoldView struct {
	Inventories []*database.SoldInventoryRow `json:"inventories"`
	SearchCount int64                        `json:"searchCount"`
	Count       int64                        `json:"count"`
}

// SoldInventories lists sold units with their current owner and purchase
// date.
func (e *Engine) SoldInventories(ctx context.Context, q *dto.PageQuery) (*SoldView, error) {
	defer e.timeView("sold_inventories")()
	args := pageArgs(q)

	rows, err := e.db.ListSoldInventories(ctx, args)
	if err != nil {
		return nil, e.internal("sold inventories", err)
	}
	searchCount, err := e.db.CountSoldInventories(ctx, args.Search)
	if err != nil {
		return nil, e.internal("sold inventories", err)
	}
	count, err := e.db.CountSoldInventories(ctx, "")
	if err != nil {
		return nil, e.internal("sold inventories", err)
	}

	return &SoldView{Inventories: rows, SearchCount: searchCount, Count: count}, nil
}

func (e *Engine) internal(view string, err error) error {
	e.logger.Error("report query failed", zap.String("view", view), zap.Error(err))
	return i18n.ErrInternalServer
}
