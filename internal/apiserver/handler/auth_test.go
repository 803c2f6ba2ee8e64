package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	w, env := s.do(t, http.MethodPost, "/api/user/register", dto.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, http.StatusCreated, env.StatusCode)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)

	// duplicate email
	w, env = s.do(t, http.MethodPost, "/api/user/register", dto.RegisterRequest{
		Name:     "Alice Again",
		Email:    "alice@example.com",
		Password: "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, http.StatusBadRequest, env.StatusCode)

	// wrong password
	w, _ = s.do(t, http.MethodPost, "/api/user/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// correct password
	w, env = s.do(t, http.MethodPost, "/api/user/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.NotEmpty(t, resp.Token.AccessToken)
}

func TestRegister_Validation(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodPost, "/api/user/register", dto.RegisterRequest{
		Name:     "Short",
		Email:    "short@example.com",
		Password: "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/user/register", dto.RegisterRequest{
		Name:     "Bad Email",
		Email:    "not-an-email",
		Password: "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserInfo_RequiresToken(t *testing.T) {
	s := newTestServer(t)
	tokens := s.register(t, "bob@example.com")

	w, _ := s.do(t, http.MethodGet, "/api/user/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env := s.do(t, http.MethodGet, "/api/user/me", nil, tokens.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var info dto.UserInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, "bob@example.com", info.Email)
}

func TestRefreshToken_RotatesSession(t *testing.T) {
	s := newTestServer(t)
	tokens := s.register(t, "carol@example.com")

	w, env := s.do(t, http.MethodPost, "/api/user/refresh-token", dto.RefreshRequest{
		RefreshToken: tokens.RefreshToken,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.NotEmpty(t, resp.Token.AccessToken)

	// the spent refresh token no longer works
	w, _ = s.do(t, http.MethodPost, "/api/user/refresh-token", dto.RefreshRequest{
		RefreshToken: tokens.RefreshToken,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// the rotated one does
	w, _ = s.do(t, http.MethodPost, "/api/user/refresh-token", dto.RefreshRequest{
		RefreshToken: resp.Token.RefreshToken,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	s := newTestServer(t)
	tokens := s.register(t, "dave@example.com")

	w, _ := s.do(t, http.MethodPost, "/api/user/refresh-token", dto.RefreshRequest{
		RefreshToken: tokens.AccessToken,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword_RevokesSessions(t *testing.T) {
	s := newTestServer(t)
	tokens := s.register(t, "erin@example.com")

	w, _ := s.do(t, http.MethodPost, "/api/user/change-password", dto.ChangePasswordRequest{
		OldPassword: "wrong-password",
		NewPassword: "newpassword123",
	}, tokens.AccessToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/user/change-password", dto.ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "newpassword123",
	}, tokens.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	// the pre-change refresh token was revoked
	w, _ = s.do(t, http.MethodPost, "/api/user/refresh-token", dto.RefreshRequest{
		RefreshToken: tokens.RefreshToken,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// old password no longer logs in
	w, _ = s.do(t, http.MethodPost, "/api/user/login", dto.LoginRequest{
		Email:    "erin@example.com",
		Password: "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/user/login", dto.LoginRequest{
		Email:    "erin@example.com",
		Password: "newpassword123",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
