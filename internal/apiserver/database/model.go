package database

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/estateops/estate-api/internal/common/cnst"
)

// StringArray stores a list of strings as a JSON text column. It keeps the
// contact and image arrays portable across sqlite, postgres and mysql.
type StringArray []string

// Value implements driver.Valuer
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		a = StringArray{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (a *StringArray) Scan(value any) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}
}

// UserRole represents the role of a user
type UserRole string

const (
	RoleSuperAdmin UserRole = "super-admin"
	RoleAdmin      UserRole = "admin"
	RoleUser       UserRole = "user"
)

// User represents an operator account
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Role      UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Agent represents a commission agent
type Agent struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	CreatedBy string    `json:"createdBy" gorm:"type:varchar(36);index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Owner is a property owner. The relationship to inventories lives in the
// sell_inventories ledger, never embedded here.
type Owner struct {
	ID                string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name              string      `json:"name" gorm:"type:varchar(100);not null;index"`
	Father            string      `json:"father" gorm:"type:varchar(100);not null"`
	Cnic              string      `json:"cnic" gorm:"type:varchar(20);uniqueIndex;not null"`
	CnicExpiry        time.Time   `json:"cnicExpiry" gorm:"not null;index"`
	PhoneNumber       StringArray `json:"phoneNumber" gorm:"type:text"`
	EmergencyNumber   StringArray `json:"emergencyNumber" gorm:"type:text"`
	Whatsapp          StringArray `json:"whatsapp" gorm:"type:text"`
	Email             string      `json:"email" gorm:"type:varchar(255)"`
	CurrentAddress    string      `json:"currentAddress" gorm:"type:text;not null"`
	PermanentAddress  string      `json:"permanentAddress" gorm:"type:text;not null"`
	JobTitle          string      `json:"jobTitle" gorm:"type:varchar(100)"`
	JobLocation       string      `json:"jobLocation" gorm:"type:varchar(255)"`
	JobOrganization   string      `json:"jobOrganization" gorm:"type:varchar(255)"`
	BankName          string      `json:"bankName" gorm:"type:varchar(100)"`
	BankTitle         string      `json:"bankTitle" gorm:"type:varchar(100)"`
	BankBranchAddress string      `json:"bankBranchAddress" gorm:"type:text"`
	BankAccountNumber string      `json:"bankAccountNumber" gorm:"type:varchar(50)"`
	BankIbnNumber     string      `json:"bankIbnNumber" gorm:"type:varchar(50)"`
	Images            StringArray `json:"images" gorm:"type:text"`
	Remarks           string      `json:"remarks" gorm:"type:text"`
	CreatedBy         string      `json:"createdBy" gorm:"type:varchar(36);index"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// Tenant is a renting party with the same profile shape as Owner.
type Tenant struct {
	ID                string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name              string      `json:"name" gorm:"type:varchar(100);not null;index"`
	Father            string      `json:"father" gorm:"type:varchar(100);not null"`
	Cnic              string      `json:"cnic" gorm:"type:varchar(20);uniqueIndex;not null"`
	CnicExpiry        time.Time   `json:"cnicExpiry" gorm:"not null;index"`
	PhoneNumber       StringArray `json:"phoneNumber" gorm:"type:text"`
	EmergencyNumber   StringArray `json:"emergencyNumber" gorm:"type:text"`
	Whatsapp          StringArray `json:"whatsapp" gorm:"type:text"`
	Email             string      `json:"email" gorm:"type:varchar(255);index"`
	CurrentAddress    string      `json:"currentAddress" gorm:"type:text;not null"`
	PermanentAddress  string      `json:"permanentAddress" gorm:"type:text;not null"`
	JobTitle          string      `json:"jobTitle" gorm:"type:varchar(100)"`
	JobLocation       string      `json:"jobLocation" gorm:"type:varchar(255)"`
	JobOrganization   string      `json:"jobOrganization" gorm:"type:varchar(255)"`
	BankName          string      `json:"bankName" gorm:"type:varchar(100)"`
	BankTitle         string      `json:"bankTitle" gorm:"type:varchar(100)"`
	BankBranchAddress string      `json:"bankBranchAddress" gorm:"type:text"`
	BankAccountNumber string      `json:"bankAccountNumber" gorm:"type:varchar(50)"`
	BankIbnNumber     string      `json:"bankIbnNumber" gorm:"type:varchar(50)"`
	Images            StringArray `json:"images" gorm:"type:text"`
	Remarks           string      `json:"remarks" gorm:"type:text"`
	CreatedBy         string      `json:"createdBy" gorm:"type:varchar(36);index"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// Inventory is a physical unit (flat, shop, office). Status is mutated only
// through lifecycle transitions.
type Inventory struct {
	ID            string               `json:"id" gorm:"primaryKey;type:varchar(36)"`
	InventoryType string               `json:"inventoryType" gorm:"type:varchar(50);not null;index"`
	Floor         string               `json:"floor" gorm:"type:varchar(50);not null"`
	FlatNo        string               `json:"flatNo" gorm:"type:varchar(50);not null"`
	Status        cnst.InventoryStatus `json:"status" gorm:"type:varchar(20);not null;default:'for_sale';index"`
	CreatedBy     string               `json:"createdBy" gorm:"type:varchar(36);index"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// Contract covers exactly one inventory; an inventory accumulates a history
// of contracts over time.
type Contract struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	InventoryID string    `json:"inventoryId" gorm:"type:varchar(36);not null;index"`
	AgentID     string    `json:"agentId" gorm:"type:varchar(36);index"`
	SigningDate time.Time `json:"signingDate" gorm:"not null"`
	StartDate   time.Time `json:"startDate" gorm:"not null"`
	EndDate     time.Time `json:"endDate" gorm:"not null;index"`
	RenewalDate time.Time `json:"renewalDate" gorm:"not null"`

	MonthlyRentalAmount       string `json:"monthlyRentalAmount" gorm:"type:varchar(50);not null"`
	MonthlyTaxAmount          string `json:"monthlyTaxAmount" gorm:"type:varchar(50);not null"`
	BuildingManagementCharges string `json:"buildingManagementCharges" gorm:"type:varchar(50);not null"`
	SecurityDepositAmount     string `json:"securityDepositAmount" gorm:"type:varchar(50);not null"`
	AnnualRentalIncrease      string `json:"annualRentalIncrease" gorm:"type:varchar(50);not null"`

	WapdaSubmeterReading     int `json:"wapdaSubmeterReading"`
	GeneratorSubmeterReading int `json:"generatorSubmeterReading"`
	WaterSubmeterReading     int `json:"waterSubmeterReading"`

	MonthlyRentalDueDate         int    `json:"monthlyRentalDueDate" gorm:"not null"`
	MonthlyRentalOverDate        int    `json:"monthlyRentalOverDate" gorm:"not null"`
	TerminationNoticePeriod      int    `json:"terminationNoticePeriod" gorm:"not null"`
	NonrefundableSecurityDeposit string `json:"nonrefundableSecurityDeposit" gorm:"type:varchar(3);not null"`

	Remarks   string      `json:"remarks" gorm:"type:text"`
	Images    StringArray `json:"images" gorm:"type:text"`
	CreatedBy string      `json:"createdBy" gorm:"type:varchar(36);index"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// SellInventory is the ownership ledger. One row per (owner, inventory)
// pair; re-selling the same pair reactivates the row instead of inserting a
// duplicate, which the unique index enforces.
type SellInventory struct {
	ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	InventoryID  string     `json:"inventoryId" gorm:"type:varchar(36);not null;uniqueIndex:idx_sell_owner_inventory"`
	OwnerID      string     `json:"ownerId" gorm:"type:varchar(36);not null;uniqueIndex:idx_sell_owner_inventory"`
	IsActive     bool       `json:"isActive" gorm:"not null;default:true;index"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// RentalInventory is the tenancy ledger.
type RentalInventory struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	InventoryID string    `json:"inventoryId" gorm:"type:varchar(36);not null;index"`
	TenantID    string    `json:"tenantId" gorm:"type:varchar(36);not null;index"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true;index"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnerSignContract records an owner signing a contract. Rows are replaced
// wholesale on contract update.
type OwnerSignContract struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ContractID string    `json:"contractId" gorm:"type:varchar(36);not null;index"`
	OwnerID    string    `json:"ownerId" gorm:"type:varchar(36);not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TenantSignContract records a tenant signing a contract.
type TenantSignContract struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ContractID string    `json:"contractId" gorm:"type:varchar(36);not null;index"`
	TenantID   string    `json:"tenantId" gorm:"type:varchar(36);not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
