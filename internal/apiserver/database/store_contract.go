package database

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// emptyImageValues are the stored encodings of a contract without uploads.
var emptyImageValues = []string{"", "[]", "null"}

// contractSearch joins the covered unit and applies the case-insensitive
// OR search over its type, floor and unit number.
func contractSearch(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return db.Select("contracts.*").
		Joins("JOIN inventories ON inventories.id = contracts.inventory_id").
		Where("LOWER(inventories.inventory_type) LIKE ? OR LOWER(inventories.floor) LIKE ? OR LOWER(inventories.flat_no) LIKE ?",
			pattern, pattern, pattern)
}

// CreateContract creates a new contract
func (s *store) CreateContract(ctx context.Context, contract *Contract) error {
	if contract.ID == "" {
		contract.ID = newID()
	}
	return getDBFromContext(ctx, s.db).Create(contract).Error
}

// GetContractByID retrieves a contract by id
func (s *store) GetContractByID(ctx context.Context, id string) (*Contract, error) {
	var contract Contract
	err := getDBFromContext(ctx, s.db).Where("id = ?", id).First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// UpdateContract updates an existing contract
func (s *store) UpdateContract(ctx context.Context, contract *Contract) error {
	return getDBFromContext(ctx, s.db).Save(contract).Error
}

// ListContracts returns a page of contracts, newest first
func (s *store) ListContracts(ctx context.Context, args PageArgs) ([]*Contract, error) {
	var contracts []*Contract
	err := getDBFromContext(ctx, s.db).Model(&Contract{}).
		Order("created_at desc").
		Offset(args.Offset).Limit(args.Limit).
		Find(&contracts).Error
	return contracts, err
}

// CountContracts returns the total number of contracts
func (s *store) CountContracts(ctx context.Context) (int64, error) {
	var count int64
	err := getDBFromContext(ctx, s.db).Model(&Contract{}).Count(&count).Error
	return count, err
}

// CreateOwnerSignatures inserts owner signatory rows
func (s *store) CreateOwnerSignatures(ctx context.Context, recs []*OwnerSignContract) error {
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

// CreateTenantSignatures inserts tenant signatory rows
func (s *store) CreateTenantSignatures(ctx context.Context, recs []*TenantSignContract) error {
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

// DeleteOwnerSignaturesByContract removes every owner signatory row of a contract
func (s *store) DeleteOwnerSignaturesByContract(ctx context.Context, contractID string) error {
	return getDBFromContext(ctx, s.db).
		Where("contract_id = ?", contractID).
		Delete(&OwnerSignContract{}).Error
}

// DeleteTenantSignaturesByContract removes every tenant signatory row of a contract
func (s *store) DeleteTenantSignaturesByContract(ctx context.Context, contractID string) error {
	return getDBFromContext(ctx, s.db).
		Where("contract_id = ?", contractID).
		Delete(&TenantSignContract{}).Error
}

// ListContractOwners returns the owners that signed a contract
func (s *store) ListContractOwners(ctx context.Context, contractID string) ([]*Owner, error) {
	var owners []*Owner
	err := getDBFromContext(ctx, s.db).Model(&Owner{}).
		Joins("JOIN owner_sign_contracts ON owner_sign_contracts.owner_id = owners.id").
		Where("owner_sign_contracts.contract_id = ?", contractID).
		Find(&owners).Error
	return owners, err
}

// ListContractTenants returns the tenants that signed a contract
func (s *store) ListContractTenants(ctx context.Context, contractID string) ([]*Tenant, error) {
	var tenants []*Tenant
	err := getDBFromContext(ctx, s.db).Model(&Tenant{}).
		Joins("JOIN tenant_sign_contracts ON tenant_sign_contracts.tenant_id = tenants.id").
		Where("tenant_sign_contracts.contract_id = ?", contractID).
		Find(&tenants).Error
	return tenants, err
}

// ListExpiredContracts returns contracts whose end date has passed
func (s *store) ListExpiredContracts(ctx context.Context, asOf time.Time, args PageArgs) ([]*Contract, error) {
	var contracts []*Contract
	q := contractSearch(getDBFromContext(ctx, s.db).Model(&Contract{}), args.Search).
		Where("end_date <= ?", asOf)
	err := q.Order("end_date asc").Offset(args.Offset).Limit(args.Limit).Find(&contracts).Error
	return contracts, err
}

// CountExpiredContracts counts contracts whose end date has passed
func (s *store) CountExpiredContracts(ctx context.Context, asOf time.Time, search string) (int64, error) {
	var count int64
	q := contractSearch(getDBFromContext(ctx, s.db).Model(&Contract{}), search).
		Where("end_date <= ?", asOf)
	err := q.Count(&count).Error
	return count, err
}

// ListExpiringContracts returns contracts ending inside the [from, to] window
func (s *store) ListExpiringContracts(ctx context.Context, from, to time.Time, args PageArgs) ([]*Contract, error) {
	var contracts []*Contract
	q := contractSearch(getDBFromContext(ctx, s.db).Model(&Contract{}), args.Search).
		Where("end_date > ? AND end_date <= ?", from, to)
	err := q.Order("end_date asc").Offset(args.Offset).Limit(args.Limit).Find(&contracts).Error
	return contracts, err
}

// CountExpiringContracts counts contracts ending inside the [from, to] window
func (s *store) CountExpiringContracts(ctx context.Context, from, to time.Time, search string) (int64, error) {
	var count int64
	q := contractSearch(getDBFromContext(ctx, s.db).Model(&Contract{}), search).
		Where("end_date > ? AND end_date <= ?", from, to)
	err := q.Count(&count).Error
	return count, err
}

// ListUploadedContracts returns contracts that carry at least one image
func (s *store) ListUploadedContracts(ctx context.Context, args PageArgs) ([]*Contract, error) {
	var contracts []*Contract
	q := contractSearch(getDBFromContext(ctx, s.db).Model(&Contract{}), args.Search).
		Where("images IS NOT NULL AND images NOT IN ?", emptyImageValues)
	err := q.Order("contracts.created_at desc").Offset(args.Offset).Limit(args.Limit).Find(&contracts).Error
	return contracts, err
}

// CountUploadedContracts counts contracts that carry at least one image
func (s *store) CountUploadedContracts(ctx context.Context, search string) (int64, error) {
	var count int64
	q := contractSearch(getDBFromContext(ctx, s.db).Model(&Contract{}), search).
		Where("images IS NOT NULL AND images NOT IN ?", emptyImageValues)
	err := q.Count(&count).Error
	return count, err
}
