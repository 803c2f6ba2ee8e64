package cnst

// InventoryStatus is the lifecycle state of an inventory unit.
type InventoryStatus string

const (
	// StatusForSale is the initial state of every inventory unit.
	StatusForSale InventoryStatus = "for_sale"
	// StatusSold marks a unit with at least one active ownership record.
	StatusSold InventoryStatus = "sold"
	// StatusRented marks a unit covered by a rental contract.
	StatusRented InventoryStatus = "rented"

	// StatusVacantAlias is accepted on status overrides for backward
	// compatibility and normalized to StatusForSale.
	StatusVacantAlias = "vacant"
)

// String implements fmt.Stringer.
func (s InventoryStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the canonical statuses.
func (s InventoryStatus) Valid() bool {
	switch s {
	case StatusForSale, StatusSold, StatusRented:
		return true
	}
	return false
}

// NormalizeStatus maps raw status input, including the deprecated "vacant"
// alias, to a canonical InventoryStatus. The second return is false when the
// value is not recognized.
func NormalizeStatus(raw string) (InventoryStatus, bool) {
	if raw == StatusVacantAlias {
		return StatusForSale, true
	}
	s := InventoryStatus(raw)
	return s, s.Valid()
}
