// Package lifecycle owns every legal transition of an inventory unit and the
// matching relationship ledger writes. All multi-row mutations run inside a
// single database transaction so readers never observe a partial state.
package lifecycle

import (
	"context"
	"errors"
	"strings"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/common/cnst"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/estateops/estate-api/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Engine applies lifecycle transitions.
type Engine struct {
	db      database.Database
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewEngine creates a lifecycle engine
func NewEngine(db database.Database, logger *zap.Logger) *Engine {
	return &Engine{db: db, logger: logger.Named("lifecycle")}
}

// WithMetrics attaches the metrics registry. Transitions are counted per
// operation and outcome.
func (e *Engine) WithMetrics(m *metrics.Metrics) *Engine {
	e.metrics = m
	return e
}

func (e *Engine) countTransition(operation string, err error) {
	if e.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	e.metrics.LifecycleTransition(operation, outcome)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// duplicateKey recognizes unique-index violations across the supported
// drivers. Concurrent writers that both miss the existence check land here.
func duplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value")
}

// CreateInventory registers a new unit. Every unit starts as for_sale.
func (e *Engine) CreateInventory(ctx context.Context, req *dto.CreateInventoryRequest, actorID string) (*database.Inventory, error) {
	if req.InventoryType == "" || req.Floor == "" || req.FlatNo == "" {
		return nil, i18n.ErrorInventoryFields
	}

	inv := &database.Inventory{
		InventoryType: req.InventoryType,
		Floor:         req.Floor,
		FlatNo:        req.FlatNo,
		Status:        cnst.StatusForSale,
		CreatedBy:     actorID,
	}
	if err := e.db.CreateInventory(ctx, inv); err != nil {
		e.countTransition("create_inventory", err)
		e.logger.Error("failed to create inventory", zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	e.countTransition("create_inventory", nil)

	e.logger.Info("inventory created",
		zap.String("id", inv.ID),
		zap.String("type", inv.InventoryType))
	return inv, nil
}

// UpdateInventory changes the physical attributes of a unit without touching
// its status.
func (e *Engine) UpdateInventory(ctx context.Context, id string, req *dto.UpdateInventoryRequest) (*database.Inventory, error) {
	inv, err := e.db.GetInventoryByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, i18n.ErrorInventoryNotFound
		}
		return nil, i18n.ErrInternalServer
	}

	inv.InventoryType = req.InventoryType
	inv.Floor = req.Floor
	inv.FlatNo = req.FlatNo
	if err := e.db.UpdateInventory(ctx, inv); err != nil {
		e.logger.Error("failed to update inventory", zap.Error(err))
		return nil, i18n.ErrInternalServer
	}
	return inv, nil
}

// UpdateInventoryStatus is the administrative override. Any status may be
// set from any status; the deprecated "vacant" alias maps to for_sale.
func (e *Engine) UpdateInventoryStatus(ctx context.Context, id, rawStatus string) (*database.Inventory, error) {
	status, ok := cnst.NormalizeStatus(rawStatus)
	if !ok {
		return nil, i18n.ErrorInvalidStatus.WithParam("Status", rawStatus)
	}

	inv, err := e.db.GetInventoryByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, i18n.ErrorInventoryNotFound
		}
		return nil, i18n.ErrInternalServer
	}

	old := inv.Status
	inv.Status = status
	if err := e.db.UpdateInventory(ctx, inv); err != nil {
		e.logger.Error("failed to update inventory status", zap.Error(err))
		return nil, i18n.ErrInternalServer
	}

	e.logger.Info("inventory status overridden",
		zap.String("id", inv.ID),
		zap.String("from", old.String()),
		zap.String("to", status.String()))
	return inv, nil
}

// SellInventory records an ownership transfer. The unit transitions to sold
// in every successful branch. Re-selling to an owner whose ledger row is
// still active is a conflict; an inactive row is reactivated instead of
// duplicated.
func (e *Engine) SellInventory(ctx context.Context, req *dto.SellInventoryRequest) (*database.SellInventory, error) {
	if !validID(req.OwnerID) {
		return nil, i18n.ErrorInvalidOwnerID
	}
	if !validID(req.InventoryID) {
		return nil, i18n.ErrorInvalidInventoryID
	}

	var rec *database.SellInventory
	err := e.db.Transaction(ctx, func(ctx context.Context) error {
		if _, err := e.db.GetOwnerByID(ctx, req.OwnerID); err != nil {
			if notFound(err) {
				return i18n.ErrorOwnerNotFound
			}
			return err
		}
		inv, err := e.db.GetInventoryByID(ctx, req.InventoryID)
		if err != nil {
			if notFound(err) {
				return i18n.ErrorInventoryNotFound
			}
			return err
		}

		existing, err := e.db.GetSellRecord(ctx, req.OwnerID, req.InventoryID)
		switch {
		case err == nil && existing.IsActive:
			return i18n.ErrorInventoryAlreadySold
		case err == nil:
			// previously deactivated pair, reactivate the same row
			existing.IsActive = true
			existing.PurchaseDate = req.PurchaseDate
			if err := e.db.UpdateSellRecord(ctx, existing); err != nil {
				return err
			}
			rec = existing
		case notFound(err):
			rec = &database.SellInventory{
				InventoryID:  req.InventoryID,
				OwnerID:      req.OwnerID,
				IsActive:     true,
				PurchaseDate: req.PurchaseDate,
			}
			if err := e.db.CreateSellRecord(ctx, rec); err != nil {
				return err
			}
		default:
			return err
		}

		inv.Status = cnst.StatusSold
		return e.db.UpdateInventory(ctx, inv)
	})
	e.countTransition("sell_inventory", err)
	if err != nil {
		if i18n.IsI18nError(err) {
			return nil, err
		}
		// A racing writer can slip past the existence check; the unique
		// (owner_id, inventory_id) index turns that into a conflict,
		// not a server fault.
		if duplicateKey(err) {
			return nil, i18n.ErrorInventoryAlreadySold
		}
		e.logger.Error("sell inventory failed",
			zap.String("ownerId", req.OwnerID),
			zap.String("inventoryId", req.InventoryID),
			zap.Error(err))
		return nil, i18n.ErrInternalServer
	}

	e.logger.Info("inventory sold",
		zap.String("ownerId", req.OwnerID),
		zap.String("inventoryId", req.InventoryID))
	return rec, nil
}
