package database

import (
	"context"
	"strings"

	"github.com/estateops/estate-api/internal/common/cnst"
	"gorm.io/gorm"
)

// inventorySearch applies the case-insensitive OR search over type, floor
// and unit number.
func inventorySearch(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return db.Where("LOWER(inventory_type) LIKE ? OR LOWER(floor) LIKE ? OR LOWER(flat_no) LIKE ?",
		pattern, pattern, pattern)
}

// CreateInventory creates a new inventory unit
func (s *store) CreateInventory(ctx context.Context, inv *Inventory) error {
	if inv.ID == "" {
		inv.ID = newID()
	}
	return getDBFromContext(ctx, s.db).Create(inv).Error
}

// GetInventoryByID retrieves an inventory unit by id
func (s *store) GetInventoryByID(ctx context.Context, id string) (*Inventory, error) {
	var inv Inventory
	err := getDBFromContext(ctx, s.db).Where("id = ?", id).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// UpdateInventory updates an existing inventory unit
func (s *store) UpdateInventory(ctx context.Context, inv *Inventory) error {
	return getDBFromContext(ctx, s.db).Save(inv).Error
}

// ListInventories returns a page of inventory units
func (s *store) ListInventories(ctx context.Context, args PageArgs) ([]*Inventory, error) {
	var invs []*Inventory
	q := inventorySearch(getDBFromContext(ctx, s.db).Model(&Inventory{}), args.Search)
	err := q.Order("created_at desc").Offset(args.Offset).Limit(args.Limit).Find(&invs).Error
	return invs, err
}

// CountInventories counts inventory units matching the search filter
func (s *store) CountInventories(ctx context.Context, search string) (int64, error) {
	var count int64
	q := inventorySearch(getDBFromContext(ctx, s.db).Model(&Inventory{}), search)
	err := q.Count(&count).Error
	return count, err
}

// ListInventoriesByStatus returns a page of inventory units in the given status
func (s *store) ListInventoriesByStatus(ctx context.Context, status string, args PageArgs) ([]*Inventory, error) {
	var invs []*Inventory
	q := inventorySearch(getDBFromContext(ctx, s.db).Model(&Inventory{}).Where("status = ?", status), args.Search)
	err := q.Order("created_at desc").Offset(args.Offset).Limit(args.Limit).Find(&invs).Error
	return invs, err
}

// CountInventoriesByStatus counts inventory units in the given status
func (s *store) CountInventoriesByStatus(ctx context.Context, status, search string) (int64, error) {
	var count int64
	q := inventorySearch(getDBFromContext(ctx, s.db).Model(&Inventory{}).Where("status = ?", status), search)
	err := q.Count(&count).Error
	return count, err
}

// CountInventoriesByType groups units in the given status by inventory type
func (s *store) CountInventoriesByType(ctx context.Context, status string) ([]TypeCount, error) {
	var counts []TypeCount
	err := getDBFromContext(ctx, s.db).Model(&Inventory{}).
		Select("inventory_type, COUNT(*) as count").
		Where("status = ?", status).
		Group("inventory_type").
		Scan(&counts).Error
	return counts, err
}

// GetSellRecord retrieves the ledger row for an (owner, inventory) pair
func (s *store) GetSellRecord(ctx context.Context, ownerID, inventoryID string) (*SellInventory, error) {
	var rec SellInventory
	err := getDBFromContext(ctx, s.db).
		Where("owner_id = ? AND inventory_id = ?", ownerID, inventoryID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateSellRecord inserts a new ownership ledger row
func (s *store) CreateSellRecord(ctx context.Context, rec *SellInventory) error {
	if rec.ID == "" {
		rec.ID = newID()
	}
	return getDBFromContext(ctx, s.db).Create(rec).Error
}

// UpdateSellRecord updates an existing ownership ledger row
func (s *store) UpdateSellRecord(ctx context.Context, rec *SellInventory) error {
	return getDBFromContext(ctx, s.db).Save(rec).Error
}

// ListActiveSellRecordsByInventory returns the active ownership rows of a unit
func (s *store) ListActiveSellRecordsByInventory(ctx context.Context, inventoryID string) ([]*SellInventory, error) {
	var recs []*SellInventory
	err := getDBFromContext(ctx, s.db).
		Where("inventory_id = ? AND is_active = ?", inventoryID, true).
		Find(&recs).Error
	return recs, err
}

// ListSoldInventories returns sold units joined with their current owner
func (s *store) ListSoldInventories(ctx context.Context, args PageArgs) ([]*SoldInventoryRow, error) {
	var rows []*SoldInventoryRow
	q := getDBFromContext(ctx, s.db).Model(&Inventory{}).
		Select("inventories.*, sell_inventories.owner_id AS owner_id, owners.name AS owner_name, sell_inventories.purchase_date AS purchase_date").
		Joins("JOIN sell_inventories ON sell_inventories.inventory_id = inventories.id AND sell_inventories.is_active = ?", true).
		Joins("JOIN owners ON owners.id = sell_inventories.owner_id").
		Where("inventories.status = ?", cnst.StatusSold)
	if args.Search != "" {
		pattern := "%" + strings.ToLower(args.Search) + "%"
		q = q.Where("LOWER(inventories.inventory_type) LIKE ? OR LOWER(inventories.floor) LIKE ? OR LOWER(inventories.flat_no) LIKE ? OR LOWER(owners.name) LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	err := q.Order("inventories.created_at desc").Offset(args.Offset).Limit(args.Limit).Scan(&rows).Error
	return rows, err
}

// CountSoldInventories counts units with at least one active ownership row
func (s *store) CountSoldInventories(ctx context.Context, search string) (int64, error) {
	var count int64
	q := getDBFromContext(ctx, s.db).Model(&Inventory{}).
		Joins("JOIN sell_inventories ON sell_inventories.inventory_id = inventories.id AND sell_inventories.is_active = ?", true).
		Joins("JOIN owners ON owners.id = sell_inventories.owner_id").
		Where("inventories.status = ?", cnst.StatusSold)
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(inventories.inventory_type) LIKE ? OR LOWER(inventories.floor) LIKE ? OR LOWER(inventories.flat_no) LIKE ? OR LOWER(owners.name) LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	err := q.Count(&count).Error
	return count, err
}

// ListOwnedInventories returns units the owner currently holds
func (s *store) ListOwnedInventories(ctx context.Context, ownerID string) ([]*Inventory, error) {
	var invs []*Inventory
	err := getDBFromContext(ctx, s.db).Model(&Inventory{}).
		Joins("JOIN sell_inventories ON sell_inventories.inventory_id = inventories.id").
		Where("sell_inventories.owner_id = ? AND sell_inventories.is_active = ?", ownerID, true).
		Find(&invs).Error
	return invs, err
}

// CreateRentalRecords inserts tenancy ledger rows
func (s *store) CreateRentalRecords(ctx context.Context, recs []*RentalInventory) error {
	if len(recs) == 0 {
		return nil
	}
	for _, rec := range recs {
		if rec.ID == "" {
			rec.ID = newID()
		}
	}
	return getDBFromContext(ctx, s.db).Create(recs).Error
}

// DeleteRentalRecordsByInventory removes every tenancy row of a unit
func (s *store) DeleteRentalRecordsByInventory(ctx context.Context, inventoryID string) error {
	return getDBFromContext(ctx, s.db).
		Where("inventory_id = ?", inventoryID).
		Delete(&RentalInventory{}).Error
}

// ListActiveRentalRecordsByInventory returns the active tenancy rows of a unit
func (s *store) ListActiveRentalRecordsByInventory(ctx context.Context, inventoryID string) ([]*RentalInventory, error) {
	var recs []*RentalInventory
	err := getDBFromContext(ctx, s.db).
		Where("inventory_id = ? AND is_active = ?", inventoryID, true).
		Find(&recs).Error
	return recs, err
}

// ListRentedInventories returns units the tenant currently rents
func (s *store) ListRentedInventories(ctx context.Context, tenantID string) ([]*Inventory, error) {
	var invs []*Inventory
	err := getDBFromContext(ctx, s.db).Model(&Inventory{}).
		Joins("JOIN rental_inventories ON rental_inventories.inventory_id = inventories.id").
		Where("rental_inventories.tenant_id = ? AND rental_inventories.is_active = ?", tenantID, true).
		Find(&invs).Error
	return invs, err
}
