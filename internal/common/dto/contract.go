package dto

import "time"

// ContractRequest represents a request to create or update a rental contract.
// Owners and Tenants list the ids of every signing party; Inventory is the
// unit the contract covers.
type ContractRequest struct {
	Owners    []string `json:"owners" binding:"required,min=1"`
	Tenants   []string `json:"tenants" binding:"required,min=1"`
	Inventory string   `json:"inventory" binding:"required"`
	Agent     string   `json:"agent,omitempty"`

	SigningDate time.Time `json:"signingDate" binding:"required"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	RenewalDate time.Time `json:"renewalDate" binding:"required"`

	MonthlyRentalAmount       string `json:"monthlyRentalAmount" binding:"required"`
	MonthlyTaxAmount          string `json:"monthlyTaxAmount" binding:"required"`
	BuildingManagementCharges string `json:"buildingManagementCharges" binding:"required"`
	SecurityDepositAmount     string `json:"securityDepositAmount" binding:"required"`
	AnnualRentalIncrease      string `json:"annualRentalIncrease" binding:"required"`

	WapdaSubmeterReading     int `json:"wapdaSubmeterReading,omitempty"`
	GeneratorSubmeterReading int `json:"generatorSubmeterReading,omitempty"`
	WaterSubmeterReading     int `json:"waterSubmeterReading,omitempty"`

	MonthlyRentalDueDate         int    `json:"monthlyRentalDueDate" binding:"required"`
	MonthlyRentalOverDate        int    `json:"monthlyRentalOverDate" binding:"required"`
	TerminationNoticePeriod      int    `json:"terminationNoticePeriod" binding:"required"`
	NonrefundableSecurityDeposit string `json:"nonrefundableSecurityDeposit" binding:"required,oneof=yes no"`

	Remarks string   `json:"remarks,omitempty"`
	Images  []string `json:"images,omitempty"`
}
