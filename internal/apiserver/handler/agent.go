package handler

import (
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/gin-gonic/gin"
)

// AddAgent handles agent creation
func (h *Handler) AddAgent(c *gin.Context) {
	var req dto.AgentRequest
	if !bindJSON(c, &req) {
		return
	}

	agent, err := h.lifecycle.CreateAgent(c.Request.Context(), &req, actorID(c))
	if err != nil {
		i18n.RespondWithError(c, err)
		return
	}

	i18n.Created(i18n.SuccessAgentAdded).WithPayload(agent).Send(c)
}

// ListAgents lists every agent
func (h *Handler) ListAgents(c *gin.Context) {
	agents, err := h.db.ListAgents(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list agents")
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	i18n.Success(i18n.SuccessAgentList).WithPayload(agents).Send(c)
}
