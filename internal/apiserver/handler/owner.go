package handler

import (
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/gin-gonic/gin"
)

// AddOwner handles owner creation
func (h *Handler) AddOwner(c *gin.Context) {
	var req dto.PartyRequest
	if !bindJSON(c, &req) {
		return
	}

	owner, err := h.lifecycle.CreateOwner(c.Request.Context(), &req, actorID(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Created(i18n.SuccessOwnerAdded).WithPayload(owner).Send(c)
}

// UpdateOwner handles owner updates
func (h *Handler) UpdateOwner(c *gin.Context) {
	var req dto.PartyRequest
	if !bindJSON(c, &req) {
		return
	}

	owner, err := h.lifecycle.UpdateOwner(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessOwnerUpdated).WithPayload(owner).Send(c)
}

// UpdateOwnerCnic updates an owner's cnic expiry after renewal
func (h *Handler) UpdateOwnerCnic(c *gin.Context) {
	var req dto.UpdateCnicRequest
	if !bindJSON(c, &req) {
		return
	}

	owner, err := h.lifecycle.UpdateOwnerCnic(c.Request.Context(), c.Param("id"), req.CnicExpiry)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessCnicUpdated).WithPayload(owner).Send(c)
}

// ShowOwner returns one owner with their current holdings
func (h *Handler) ShowOwner(c *gin.Context) {
	detail, err := h.reporting.ShowOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessOwnerInfo).WithPayload(detail).Send(c)
}

// ShowOwners lists owners with paging and search
func (h *Handler) ShowOwners(c *gin.Context) {
	view, err := h.reporting.ListOwners(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessOwnerList).WithPayload(view).Send(c)
}

// ExpiredCnicOwners lists owners whose cnic needs renewal
func (h *Handler) ExpiredCnicOwners(c *gin.Context) {
	view, err := h.reporting.ExpiredCnicOwners(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessReport).WithPayload(view).Send(c)
}
