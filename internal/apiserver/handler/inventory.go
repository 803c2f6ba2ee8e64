package handler

import (
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/gin-gonic/gin"
)

// AddInventory handles unit creation
func (h *Handler) AddInventory(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	inv, err := h.lifecycle.CreateInventory(c.Request.Context(), &req, actorID(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Created(i18n.SuccessInventoryAdded).WithPayload(inv).Send(c)
}

// UpdateInventory handles unit field updates
func (h *Handler) UpdateInventory(c *gin.Context) {
	var req dto.UpdateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	inv, err := h.lifecycle.UpdateInventory(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessInventoryUpdated).WithPayload(inv).Send(c)
}

// UpdateInventoryStatus overrides a unit's status directly
func (h *Handler) UpdateInventoryStatus(c *gin.Context) {
	var req dto.UpdateInventoryStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	inv, err := h.lifecycle.UpdateInventoryStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessInventoryStatusUpdated).WithPayload(inv).Send(c)
}

// SellInventory records a sale and marks the unit sold
func (h *Handler) SellInventory(c *gin.Context) {
	var req dto.SellInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := h.lifecycle.SellInventory(c.Request.Context(), &req)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Created(i18n.SuccessInventorySold).WithPayload(rec).Send(c)
}

// ShowInventory returns one unit with its active owners
func (h *Handler) ShowInventory(c *gin.Context) {
	detail, err := h.reporting.ShowInventory(c.Request.Context(), c.Param("id"))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessInventoryInfo).WithPayload(detail).Send(c)
}

// ShowInventories lists every unit with its current owners
func (h *Handler) ShowInventories(c *gin.Context) {
	view, err := h.reporting.ShowInventories(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessInventoryList).WithPayload(view).Send(c)
}

// VacantInventories lists units open for sale with a type breakdown
func (h *Handler) VacantInventories(c *gin.Context) {
	view, err := h.reporting.VacantInventories(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessReport).WithPayload(view).Send(c)
}

// OpenForSale lists units currently on the market
func (h *Handler) OpenForSale(c *gin.Context) {
	view, err := h.reporting.OpenForSale(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessReport).WithPayload(view).Send(c)
}

// SoldInventories lists sold units with their buyers
func (h *Handler) SoldInventories(c *gin.Context) {
	view, err := h.reporting.SoldInventories(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessReport).WithPayload(view).Send(c)
}
