package handler

import (
	"errors"
	"time"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/apiserver/middleware"
	"github.com/estateops/estate-api/internal/auth/storage"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/estateops/estate-api/internal/i18n"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func userInfo(u *database.User) dto.UserInfo {
	return dto.UserInfo{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// issueTokens generates an access/refresh pair and records the refresh
// token as a live session.
func (h *Handler) issueTokens(c *gin.Context, user *database.User) (*dto.TokenPair, error) {
	access, err := h.jwtService.GenerateAccessToken(user.ID, user.Name, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	refresh, err := h.jwtService.GenerateRefreshToken(user.ID, user.Name, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	claims, err := h.jwtService.ValidateRefreshToken(refresh)
	if err != nil {
		return nil, err
	}
	err = h.sessions.SaveSession(c.Request.Context(), &storage.Session{
		Token:     refresh,
		UserID:    user.ID,
		ExpiresAt: claims.ExpiresAt.Unix(),
	})
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Register handles user registration
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.db.GetUserByEmail(ctx, req.Email); err == nil {
		i18n.RespondWithError(c, i18n.ErrorEmailExists)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Error("failed to look up user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	role := database.UserRole(req.Role)
	if role == "" {
		role = database.RoleUser
	}
	user := &database.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     role,
	}
	if err := h.db.CreateUser(ctx, user); err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		h.logger.Error("failed to issue tokens", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	i18n.Created(i18n.SuccessUserRegistered).
		WithPayload(dto.AuthResponse{User: userInfo(user), Token: *tokens}).
		Send(c)
}

// Login handles user login
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.db.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
		return
	}

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		h.logger.Error("failed to issue tokens", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	i18n.Success(i18n.SuccessLogin).
		WithPayload(dto.AuthResponse{User: userInfo(user), Token: *tokens}).
		Send(c)
}

// RefreshToken exchanges a live refresh token for a fresh pair. The old
// refresh token is revoked so each one can be spent only once.
func (h *Handler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	claims, err := h.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidRefreshToken)
		return
	}

	if _, err := h.sessions.GetSession(ctx, req.RefreshToken); err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidRefreshToken)
		return
	}

	user, err := h.db.GetUserByID(ctx, claims.UserID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrorUserNotFound)
		return
	}

	_ = h.sessions.DeleteSession(ctx, req.RefreshToken)

	tokens, err := h.issueTokens(c, user)
	if err != nil {
		h.logger.Error("failed to issue tokens", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	i18n.Success(i18n.SuccessTokenRefreshed).
		WithPayload(dto.AuthResponse{User: userInfo(user), Token: *tokens}).
		Send(c)
}

// ChangePassword handles password change requests
func (h *Handler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	ctx := c.Request.Context()
	user, err := h.db.GetUserByID(ctx, claims.UserID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrorUserNotFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		i18n.RespondWithError(c, i18n.ErrorInvalidOldPassword)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	user.Password = string(hashed)
	user.UpdatedAt = time.Now()
	if err := h.db.UpdateUser(ctx, user); err != nil {
		h.logger.Error("failed to update user", zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrInternalServer)
		return
	}

	// Changing the password revokes every outstanding refresh token
	if err := h.sessions.DeleteSessionsByUser(ctx, user.ID); err != nil {
		h.logger.Warn("failed to revoke sessions", zap.String("user_id", user.ID), zap.Error(err))
	}

	i18n.Success(i18n.SuccessPasswordChanged).Send(c)
}

// GetUserInfo handles getting current user info
func (h *Handler) GetUserInfo(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		i18n.RespondWithError(c, i18n.ErrUnauthorized)
		return
	}

	user, err := h.db.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		i18n.RespondWithError(c, i18n.ErrorUserNotFound)
		return
	}

	i18n.Success(i18n.SuccessUserInfo).WithPayload(userInfo(user)).Send(c)
}
