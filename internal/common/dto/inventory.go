package dto

import "time"

// CreateInventoryRequest represents a request to register an inventory unit
type CreateInventoryRequest struct {
	InventoryType string `json:"inventoryType" binding:"required"`
	Floor         string `json:"floor" binding:"required"`
	FlatNo        string `json:"flatNo" binding:"required"`
}

// UpdateInventoryRequest updates the physical attributes of a unit
type UpdateInventoryRequest struct {
	InventoryType string `json:"inventoryType" binding:"required"`
	Floor         string `json:"floor" binding:"required"`
	FlatNo        string `json:"flatNo" binding:"required"`
}

// UpdateInventoryStatusRequest overrides a unit's lifecycle status.
// Accepts the canonical statuses plus the deprecated "vacant" alias.
type UpdateInventoryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SellInventoryRequest records an ownership transfer of a unit
type SellInventoryRequest struct {
	InventoryID  string     `json:"inventoryId" binding:"required"`
	OwnerID      string     `json:"ownerId" binding:"required"`
	PurchaseDate *time.Time `json:"purchaseDate,omitempty"`
}

// AgentRequest represents a request to add a commission agent
type AgentRequest struct {
	Name string `json:"name" binding:"required"`
}
