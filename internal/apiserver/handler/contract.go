package handler

import (
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/gin-gonic/gin"
)

// AddContract handles rental contract creation
func (h *Handler) AddContract(c *gin.Context) {
	var req dto.ContractRequest
	if !bindJSON(c, &req) {
		return
	}

	contract, err := h.lifecycle.AddContract(c.Request.Context(), &req, actorID(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Created(i18n.SuccessContractAdded).WithPayload(contract).Send(c)
}

// UpdateContract handles rental contract updates
func (h *Handler) UpdateContract(c *gin.Context) {
	var req dto.ContractRequest
	if !bindJSON(c, &req) {
		return
	}

	contract, err := h.lifecycle.UpdateContract(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessContractUpdated).WithPayload(contract).Send(c)
}

// ShowContract returns one contract with its parties resolved
func (h *Handler) ShowContract(c *gin.Context) {
	detail, err := h.reporting.ShowContract(c.Request.Context(), c.Param("id"))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessContractInfo).WithPayload(detail).Send(c)
}

// ShowContracts lists contracts with their parties resolved
func (h *Handler) ShowContracts(c *gin.Context) {
	view, err := h.reporting.ShowContracts(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessContractList).WithPayload(view).Send(c)
}

// ContractDashboard returns the expiring, expired and uploaded facets
func (h *Handler) ContractDashboard(c *gin.Context) {
	dash, err := h.reporting.ContractDashboard(c.Request.Context(), pageQuery(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Success(i18n.SuccessDashboard).WithPayload(dash).Send(c)
}
