package handler

import (
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/gin-gonic/gin"
)

// AddTenant handles tenant creation
func (h *Handler) AddTenant(c *gin.Context) {
	var req dto.PartyRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.lifecycle.CreateTenant(c.Request.Context(), &req, actorID(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Created(i18n.SuccessTenantAdded).WithPayload(tenant).Send(c)
}

// UpdateTenant handles tenant updates
func (h *Handler) UpdateTenant(c *gin.Context) {
	var req dto.PartyRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.lifecycle.UpdateTenant(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessTenantUpdated).WithPayload(tenant).Send(c)
}

// UpdateTenantCnic updates a tenant's cnic expiry after renewal
func (h *Handler) UpdateTenantCnic(c *gin.Context) {
	var req dto.UpdateCnicRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.lifecycle.UpdateTenantCnic(c.Request.Context(), c.Param("id"), req.CnicExpiry)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessCnicUpdated).WithPayload(tenant).Send(c)
}

// ShowTenant returns one tenant with the units they rent
func (h *Handler) ShowTenant(c *gin.Context) {
	detail, err := h.reporting.ShowTenant(c.Request.Context(), c.Param("id"))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessTenantInfo).WithPayload(detail).Send(c)
}

// ShowTenants lists tenants with paging and search
func (h *Handler) ShowTenants(c *gin.Context) {
	view, err := h.reporting.ListTenants(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessTenantList).WithPayload(view).Send(c)
}

// ExpiredCnicTenants lists tenants whose cnic needs renewal
func (h *Handler) ExpiredCnicTenants(c *gin.Context) {
	view, err := h.reporting.ExpiredCnicTenants(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessReport).WithPayload(view).Send(c)
}
