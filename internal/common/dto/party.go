package dto

import "time"

// PartyRequest carries the shared profile fields of owners and tenants.
// Array fields replace the stored value wholesale on update.
type PartyRequest struct {
	Name              string    `json:"name" binding:"required"`
	Father            string    `json:"father" binding:"required"`
	Cnic              string    `json:"cnic" binding:"required"`
	CnicExpiry        time.Time `json:"cnicExpiry" binding:"required"`
	PhoneNumber       []string  `json:"phoneNumber,omitempty"`
	EmergencyNumber   []string  `json:"emergencyNumber,omitempty"`
	Whatsapp          []string  `json:"whatsapp,omitempty"`
	Email             string    `json:"email,omitempty" binding:"omitempty,email"`
	CurrentAddress    string    `json:"currentAddress" binding:"required"`
	PermanentAddress  string    `json:"permanentAddress" binding:"required"`
	JobTitle          string    `json:"jobTitle,omitempty"`
	JobLocation       string    `json:"jobLocation,omitempty"`
	JobOrganization   string    `json:"jobOrganization,omitempty"`
	BankName          string    `json:"bankName,omitempty"`
	BankTitle         string    `json:"bankTitle,omitempty"`
	BankBranchAddress string    `json:"bankBranchAddress,omitempty"`
	BankAccountNumber string    `json:"bankAccountNumber,omitempty"`
	BankIbnNumber     string    `json:"bankIbnNumber,omitempty"`
	Images            []string  `json:"images,omitempty"`
	Remarks           string    `json:"remarks,omitempty"`
}

// UpdateCnicRequest renews a party's CNIC expiry date
type UpdateCnicRequest struct {
	CnicExpiry time.Time `json:"cnicExpiry" binding:"required"`
}
