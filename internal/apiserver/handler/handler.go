package handler

import (
	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/apiserver/lifecycle"
	"github.com/estateops/estate-api/internal/apiserver/middleware"
	"github.com/estateops/estate-api/internal/apiserver/reporting"
	"github.com/estateops/estate-api/internal/auth/jwt"
	"github.com/estateops/estate-api/internal/auth/storage"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries the shared dependencies of all HTTP handlers.
type Handler struct {
	db         database.Database
	lifecycle  *lifecycle.Engine
	reporting  *reporting.Engine
	jwtService *jwt.Service
	sessions   storage.Store
	logger     *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(
	db database.Database,
	lc *lifecycle.Engine,
	rp *reporting.Engine,
	jwtService *jwt.Service,
	sessions storage.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		db:         db,
		lifecycle:  lc,
		reporting:  rp,
		jwtService: jwtService,
		sessions:   sessions,
		logger:     logger.Named("handler"),
	}
}

// bindJSON binds the request body and converts binding failures into the
// shared bad-request envelope.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		i18n.RespondWithError(c, i18n.ErrBadRequest.WithParam("Reason", err.Error()))
		return false
	}
	return true
}

// actorID returns the authenticated user's ID, or "" on public routes.
func actorID(c *gin.Context) string {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return ""
	}
	return claims.UserID
}

// pageQuery reads page, limit and search from the query string.
func pageQuery(c *gin.Context) *dto.PageQuery {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return &dto.PageQuery{}
	}
	return &q
}
