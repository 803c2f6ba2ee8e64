package reporting

import (
	"context"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
)

// OwnerListView is a page of owners with filtered and overall counts.
type OwnerListView struct {
	Owners      []*database.Owner `json:"owners"`
	SearchCount int64             `json:"searchCount"`
	Count       int64             `json:"count"`
}

// TenantListView is a page of tenants with filtered and overall counts.
type TenantListView struct {
	Tenants     []*database.Tenant `json:"tenants"`
	SearchCount int64              `json:"searchCount"`
	Count       int64              `json:"count"`
}

// ListOwners pages through owners with the shared name/cnic search.
func (e *Engine) ListOwners(ctx context.Context, q *dto.PageQuery) (*OwnerListView, error) {
	defer e.timeView("list_owners")()
	args := pageArgs(q)

	owners, err := e.db.ListOwners(ctx, args)
	if err != nil {
		return nil, e.internal("list owners", err)
	}
	searchCount, err := e.db.CountOwners(ctx, args.Search)
	if err != nil {
		return nil, e.internal("list owners", err)
	}
	count, err := e.db.CountOwners(ctx, "")
	if err != nil {
		return nil, e.internal("list owners", err)
	}
	return &OwnerListView{Owners: owners, SearchCount: searchCount, Count: count}, nil
}

// ListTenants pages through tenants.
func (e *Engine) ListTenants(ctx context.Context, q *dto.PageQuery) (*TenantListView, error) {
	defer e.timeView("list_tenants")()
	args := pageArgs(q)

	tenants, err := e.db.ListTenants(ctx, args)
	if err != nil {
		return nil, e.internal("list tenants", err)
	}
	searchCount, err := e.db.CountTenants(ctx, args.Search)
	if err != nil {
		return nil, e.internal("list tenants", err)
	}
	count, err := e.db.CountTenants(ctx, "")
	if err != nil {
		return nil, e.internal("list tenants", err)
	}
	return &TenantListView{Tenants: tenants, SearchCount: searchCount, Count: count}, nil
}

// ExpiredCnicOwners reports owners whose cnic expired on or before now,
// oldest expiry first.
func (e *Engine) ExpiredCnicOwners(ctx context.Context, q *dto.PageQuery) (*OwnerListView, error) {
	defer e.timeView("expired_cnic_owners")()
	args := pageArgs(q)
	now := e.now()

	owners, err := e.db.ListOwnersWithExpiredCnic(ctx, now, args)
	if err != nil {
		return nil, e.internal("expired cnic owners", err)
	}
	searchCount, err := e.db.CountOwnersWithExpiredCnic(ctx, now, args.Search)
	if err != nil {
		return nil, e.internal("expired cnic owners", err)
	}
	count, err := e.db.CountOwnersWithExpiredCnic(ctx, now, "")
	if err != nil {
		return nil, e.internal("expired cnic owners", err)
	}
	return &OwnerListView{Owners: owners, SearchCount: searchCount, Count: count}, nil
}

// ExpiredCnicTenants reports tenants whose cnic expired on or before now.
func (e *Engine) ExpiredCnicTenants(ctx context.Context, q *dto.PageQuery) (*TenantListView, error) {
	defer e.timeView("expired_cnic_tenants")()
	args := pageArgs(q)
	now := e.now()

	tenants, err := e.db.ListTenantsWithExpiredCnic(ctx, now, args)
	if err != nil {
		return nil, e.internal("expired cnic tenants", err)
	}
	searchCount, err := e.db.CountTenantsWithExpiredCnic(ctx, now, args.Search)
	if err != nil {
		return nil, e.internal("expired cnic tenants", err)
	}
	count, err := e.db.CountTenantsWithExpiredCnic(ctx, now, "")
	if err != nil {
		return nil, e.internal("expired cnic tenants", err)
	}
	return &TenantListView{Tenants: tenants, SearchCount: searchCount, Count: count}, nil
}

// OwnerDetail is an owner joined with the units they currently hold.
type OwnerDetail struct {
	Owner       *database.Owner       `json:"owner"`
	Inventories []*database.Inventory `json:"inventories"`
}

// TenantDetail is a tenant joined with the units they currently rent.
type TenantDetail struct {
	Tenant      *database.Tenant      `json:"tenant"`
	Inventories []*database.Inventory `json:"inventories"`
}

// ShowOwner returns one owner with their active holdings.
func (e *Engine) ShowOwner(ctx context.Context, id string) (*OwnerDetail, error) {
	defer e.timeView("show_owner")()

	owner, err := e.db.GetOwnerByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, i18n.ErrorOwnerNotFound
		}
		return nil, e.internal("show owner", err)
	}
	inventories, err := e.db.ListOwnedInventories(ctx, id)
	if err != nil {
		return nil, e.internal("show owner", err)
	}
	return &OwnerDetail{Owner: owner, Inventories: inventories}, nil
}

// ShowTenant returns one tenant with their active rentals.
func (e *Engine) ShowTenant(ctx context.Context, id string) (*TenantDetail, error) {
	defer e.timeView("show_tenant")()

	tenant, err := e.db.GetTenantByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, i18n.ErrorTenantNotFound
		}
		return nil, e.internal("show tenant", err)
	}
	inventories, err := e.db.ListRentedInventories(ctx, id)
	if err != nil {
		return nil, e.internal("show tenant", err)
	}
	return &TenantDetail{Tenant: tenant, Inventories: inventories}, nil
}

// InventoryDetail is a unit joined with its current owners.
type InventoryDetail struct {
	Inventory *database.Inventory `json:"inventory"`
	Owners    []*database.Owner   `json:"owners"`
}

// ShowInventory returns one unit with its active owners resolved.
func (e *Engine) ShowInventory(ctx context.Context, id string) (*InventoryDetail, error) {
	defer e.timeView("show_inventory")()

	inv, err := e.db.GetInventoryByID(ctx, id)
	if err != nil {
		if notFound(err) {
			return nil, i18n.ErrorInventoryNotFound
		}
		return nil, e.internal("show inventory", err)
	}
	return e.inventoryDetail(ctx, inv)
}

func (e *Engine) inventoryDetail(ctx context.Context, inv *database.Inventory) (*InventoryDetail, error) {
	recs, err := e.db.ListActiveSellRecordsByInventory(ctx, inv.ID)
	if err != nil {
		return nil, e.internal("show inventory", err)
	}
	owners := make([]*database.Owner, 0, len(recs))
	for _, rec := range recs {
		owner, err := e.db.GetOwnerByID(ctx, rec.OwnerID)
		if err != nil {
			if notFound(err) {
				continue
			}
			return nil, e.internal("show inventory", err)
		}
		owners = append(owners, owner)
	}
	return &InventoryDetail{Inventory: inv, Owners: owners}, nil
}

// InventoryListView is a page of units resolved with their owners.
type InventoryListView struct {
	Inventories []*InventoryDetail `json:"inventories"`
	SearchCount int64              `json:"searchCount"`
	Count       int64              `json:"count"`
}

// ShowInventories lists every unit with its current owners.
func (e *Engine) ShowInventories(ctx context.Context, q *dto.PageQuery) (*InventoryListView, error) {
	defer e.timeView("show_inventories")()
	args := pageArgs(q)

	inventories, err := e.db.ListInventories(ctx, args)
	if err != nil {
		return nil, e.internal("show inventories", err)
	}
	searchCount, err := e.db.CountInventories(ctx, args.Search)
	if err != nil {
		return nil, e.internal("show inventories", err)
	}
	count, err := e.db.CountInventories(ctx, "")
	if err != nil {
		return nil, e.internal("show inventories", err)
	}

	details := make([]*InventoryDetail, 0, len(inventories))
	for _, inv := range inventories {
		detail, err := e.inventoryDetail(ctx, inv)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return &InventoryListView{Inventories: details, SearchCount: searchCount, Count: count}, nil
}
