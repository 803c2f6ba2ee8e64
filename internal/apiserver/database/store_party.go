package database

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// partySearch applies the case-insensitive OR search over name and cnic.
func partySearch(db *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return db
	}
	pattern := "%" + strings.ToLower(search) + "%"
	return db.Where("LOWER(name) LIKE ? OR LOWER(cnic) LIKE ?", pattern, pattern)
}

// CreateOwner creates a new owner
func (s *store) CreateOwner(ctx context.Context, owner *Owner) error {
	if owner.ID == "" {
		owner.ID = newID()
	}
	return getDBFromContext(ctx, s.db).Create(owner).Error
}

// GetOwnerByID retrieves an owner by id
func (s *store) GetOwnerByID(ctx context.Context, id string) (*Owner, error) {
	var owner Owner
	err := getDBFromContext(ctx, s.db).Where("id = ?", id).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetOwnerByCnic retrieves an owner by cnic
func (s *store) GetOwnerByCnic(ctx context.Context, cnic string) (*Owner, error) {
	var owner Owner
	err := getDBFromContext(ctx, s.db).Where("cnic = ?", cnic).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// GetOwnerByEmail retrieves an owner by email
func (s *store) GetOwnerByEmail(ctx context.Context, email string) (*Owner, error) {
	var owner Owner
	err := getDBFromContext(ctx, s.db).Where("email = ?", email).First(&owner).Error
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// UpdateOwner updates an existing owner
func (s *store) UpdateOwner(ctx context.Context, owner *Owner) error {
	return getDBFromContext(ctx, s.db).Save(owner).Error
}

// ListOwners returns a page of owners
func (s *store) ListOwners(ctx context.Context, args PageArgs) ([]*Owner, error) {
	var owners []*Owner
	q := partySearch(getDBFromContext(ctx, s.db).Model(&Owner{}), args.Search)
	err := q.Order("created_at desc").Offset(args.Offset).Limit(args.Limit).Find(&owners).Error
	return owners, err
}

// CountOwners counts owners matching the search filter
func (s *store) CountOwners(ctx context.Context, search string) (int64, error) {
	var count int64
	q := partySearch(getDBFromContext(ctx, s.db).Model(&Owner{}), search)
	err := q.Count(&count).Error
	return count, err
}

// ListOwnersWithExpiredCnic returns owners whose cnic has expired as of the
// given time, oldest expiry first.
func (s *store) ListOwnersWithExpiredCnic(ctx context.Context, asOf time.Time, args PageArgs) ([]*Owner, error) {
	var owners []*Owner
	q := partySearch(getDBFromContext(ctx, s.db).Model(&Owner{}).Where("cnic_expiry <= ?", asOf), args.Search)
	err := q.Order("cnic_expiry asc").Offset(args.Offset).Limit(args.Limit).Find(&owners).Error
	return owners, err
}

// CountOwnersWithExpiredCnic counts owners with expired cnic matching the search
func (s *store) CountOwnersWithExpiredCnic(ctx context.Context, asOf time.Time, search string) (int64, error) {
	var count int64
	q := partySearch(getDBFromContext(ctx, s.db).Model(&Owner{}).Where("cnic_expiry <= ?", asOf), search)
	err := q.Count(&count).Error
	return count, err
}

// CreateTenant creates a new tenant
func (s *store) CreateTenant(ctx context.Context, tenant *Tenant) error {
	if tenant.ID == "" {
		tenant.ID = newID()
	}
	return getDBFromContext(ctx, s.db).Create(tenant).Error
}

// GetTenantByID retrieves a tenant by id
func (s *store) GetTenantByID(ctx context.Context, id string) (*Tenant, error) {
	var tenant Tenant
	err := getDBFromContext(ctx, s.db).Where("id = ?", id).First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetTenantByCnic retrieves a tenant by cnic
func (s *store) GetTenantByCnic(ctx context.Context, cnic string) (*Tenant, error) {
	var tenant Tenant
	err := getDBFromContext(ctx, s.db).Where("cnic = ?", cnic).First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetTenantByEmail retrieves a tenant by email
func (s *store) GetTenantByEmail(ctx context.Context, email string) (*Tenant, error) {
	var tenant Tenant
	err := getDBFromContext(ctx, s.db).Where("email = ?", email).First(&tenant).Error
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// UpdateTenant updates an existing tenant
func (s *store) UpdateTenant(ctx context.Context, tenant *Tenant) error {
	return getDBFromContext(ctx, s.db).Save(tenant).Error
}

// ListTenants returns a page of tenants
func (s *store) ListTenants(ctx context.Context, args PageArgs) ([]*Tenant, error) {
	var tenants []*Tenant
	q := partySearch(getDBFromContext(ctx, s.db).Model(&Tenant{}), args.Search)
	err := q.Order("created_at desc").Offset(args.Offset).Limit(args.Limit).Find(&tenants).Error
	return tenants, err
}

// CountTenants counts tenants matching the search filter
func (s *store) CountTenants(ctx context.Context, search string) (int64, error) {
	var count int64
	q := partySearch(getDBFromContext(ctx, s.db).Model(&Tenant{}), search)
	err := q.Count(&count).Error
	return count, err
}

// ListTenantsWithExpiredCnic returns tenants whose cnic has expired, oldest
// expiry first.
func (s *store) ListTenantsWithExpiredCnic(ctx context.Context, asOf time.Time, args PageArgs) ([]*Tenant, error) {
	var tenants []*Tenant
	q := partySearch(getDBFromContext(ctx, s.db).Model(&Tenant{}).Where("cnic_expiry <= ?", asOf), args.Search)
	err := q.Order("cnic_expiry asc").Offset(args.Offset).Limit(args.Limit).Find(&tenants).Error
	return tenants, err
}

// CountTenantsWithExpiredCnic counts tenants with expired cnic matching the search
func (s *store) CountTenantsWithExpiredCnic(ctx context.Context, asOf time.Time, search string) (int64, error) {
	var count int64
	q := partySearch(getDBFromContext(ctx, s.db).Model(&Tenant{}).Where("cnic_expiry <= ?", asOf), search)
	err := q.Count(&count).Error
	return count, err
}
