package database

import (
	"context"
	"time"
)

// PageArgs carries offset pagination and the optional case-insensitive
// substring search shared by every listing query.
type PageArgs struct {
	Offset int
	Limit  int
	Search string
}

// TypeCount is one bucket of the vacancy breakdown by inventory type.
type TypeCount struct {
	InventoryType string `json:"inventoryType"`
	Count         int64  `json:"count"`
}

// SoldInventoryRow is a sold unit joined with its current owner.
type SoldInventoryRow struct {
	Inventory
	OwnerID      string     `json:"ownerId"`
	OwnerName    string     `json:"ownerName"`
	PurchaseDate *time.Time `json:"purchaseDate"`
}

// Database defines the methods for database operations.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction executes fn inside a transaction. The transaction is
	// stored in the context passed to fn, so every Database call made
	// through that context joins it.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// User operations.
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
	CountUsers(ctx context.Context) (int64, error)

	// Agent operations.
	CreateAgent(ctx context.Context, agent *Agent) error
	GetAgentByID(ctx context.Context, id string) (*Agent, error)
	ListAgents(ctx context.Context) ([]*Agent, error)

	// Owner operations.
	CreateOwner(ctx context.Context, owner *Owner) error
	GetOwnerByID(ctx context.Context, id string) (*Owner, error)
	GetOwnerByCnic(ctx context.Context, cnic string) (*Owner, error)
	GetOwnerByEmail(ctx context.Context, email string) (*Owner, error)
	UpdateOwner(ctx context.Context, owner *Owner) error
	ListOwners(ctx context.Context, args PageArgs) ([]*Owner, error)
	CountOwners(ctx context.Context, search string) (int64, error)
	ListOwnersWithExpiredCnic(ctx context.Context, asOf time.Time, args PageArgs) ([]*Owner, error)
	CountOwnersWithExpiredCnic(ctx context.Context, asOf time.Time, search string) (int64, error)

	// Tenant operations.
	CreateTenant(ctx context.Context, tenant *Tenant) error
	GetTenantByID(ctx context.Context, id string) (*Tenant, error)
	GetTenantByCnic(ctx context.Context, cnic string) (*Tenant, error)
	GetTenantByEmail(ctx context.Context, email string) (*Tenant, error)
	UpdateTenant(ctx context.Context, tenant *Tenant) error
	ListTenants(ctx context.Context, args PageArgs) ([]*Tenant, error)
	CountTenants(ctx context.Context, search string) (int64, error)
	ListTenantsWithExpiredCnic(ctx context.Context, asOf time.Time, args PageArgs) ([]*Tenant, error)
	CountTenantsWithExpiredCnic(ctx context.Context, asOf time.Time, search string) (int64, error)

	// Inventory operations.
	CreateInventory(ctx context.Context, inv *Inventory) error
	GetInventoryByID(ctx context.Context, id string) (*Inventory, error)
	UpdateInventory(ctx context.Context, inv *Inventory) error
	ListInventories(ctx context.Context, args PageArgs) ([]*Inventory, error)
	CountInventories(ctx context.Context, search string) (int64, error)
	ListInventoriesByStatus(ctx context.Context, status string, args PageArgs) ([]*Inventory, error)
	CountInventoriesByStatus(ctx context.Context, status, search string) (int64, error)
	CountInventoriesByType(ctx context.Context, status string) ([]TypeCount, error)

	// Ownership ledger operations.
	GetSellRecord(ctx context.Context, ownerID, inventoryID string) (*SellInventory, error)
	CreateSellRecord(ctx context.Context, rec *SellInventory) error
	UpdateSellRecord(ctx context.Context, rec *SellInventory) error
	ListActiveSellRecordsByInventory(ctx context.Context, inventoryID string) ([]*SellInventory, error)
	ListSoldInventories(ctx context.Context, args PageArgs) ([]*SoldInventoryRow, error)
	CountSoldInventories(ctx context.Context, search string) (int64, error)
	ListOwnedInventories(ctx context.Context, ownerID string) ([]*Inventory, error)

	// Tenancy ledger operations.
	CreateRentalRecords(ctx context.Context, recs []*RentalInventory) error
	DeleteRentalRecordsByInventory(ctx context.Context, inventoryID string) error
	ListActiveRentalRecordsByInventory(ctx context.Context, inventoryID string) ([]*RentalInventory, error)
	ListRentedInventories(ctx context.Context, tenantID string) ([]*Inventory, error)

	// Contract operations.
	CreateContract(ctx context.Context, contract *Contract) error
	GetContractByID(ctx context.Context, id string) (*Contract, error)
	UpdateContract(ctx context.Context, contract *Contract) error
	ListContracts(ctx context.Context, args PageArgs) ([]*Contract, error)
	CountContracts(ctx context.Context) (int64, error)

	// Contract signatory operations.
	CreateOwnerSignatures(ctx context.Context, recs []*OwnerSignContract) error
	CreateTenantSignatures(ctx context.Context, recs []*TenantSignContract) error
	DeleteOwnerSignaturesByContract(ctx context.Context, contractID string) error
	DeleteTenantSignaturesByContract(ctx context.Context, contractID string) error
	ListContractOwners(ctx context.Context, contractID string) ([]*Owner, error)
	ListContractTenants(ctx context.Context, contractID string) ([]*Tenant, error)

	// Contract reporting queries.
	ListExpiredContracts(ctx context.Context, asOf time.Time, args PageArgs) ([]*Contract, error)
	CountExpiredContracts(ctx context.Context, asOf time.Time, search string) (int64, error)
	ListExpiringContracts(ctx context.Context, from, to time.Time, args PageArgs) ([]*Contract, error)
	CountExpiringContracts(ctx context.Context, from, to time.Time, search string) (int64, error)
	ListUploadedContracts(ctx context.Context, args PageArgs) ([]*Contract, error)
	CountUploadedContracts(ctx context.Context, search string) (int64, error)
}
