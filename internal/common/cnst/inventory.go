package cnst

// Inventory unit types. Stored as free text; these are the values the
// vacancy breakdown groups by.
const (
	InventoryTypeFlat   = "Flat"
	InventoryTypeShop   = "Shop"
	InventoryTypeOffice = "Office"
)
