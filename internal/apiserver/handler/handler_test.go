package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/estateops/estate-api/internal/apiserver/database"
	"github.com/estateops/estate-api/internal/apiserver/lifecycle"
	"github.com/estateops/estate-api/internal/apiserver/middleware"
	"github.com/estateops/estate-api/internal/apiserver/reporting"
	"github.com/estateops/estate-api/internal/auth/jwt"
	"github.com/estateops/estate-api/internal/auth/storage"
	"github.com/estateops/estate-api/internal/common/config"
	"github.com/estateops/estate-api/internal/common/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testServer struct {
	router   *gin.Engine
	handler  *Handler
	db       database.Database
	sessions storage.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := zap.NewNop()
	jwtSvc, err := jwt.NewService(config.JWTConfig{
		SecretKey:       "this-is-a-very-long-secret-key-for-testing",
		Duration:        time.Hour,
		RefreshDuration: 24 * time.Hour,
	})
	require.NoError(t, err)
	sessions := storage.NewMemoryStorage()

	h := NewHandler(
		db,
		lifecycle.NewEngine(db, logger),
		reporting.NewEngine(db, logger),
		jwtSvc,
		sessions,
		logger,
	)

	r := gin.New()
	h.RegisterRoutes(r, middleware.JWTAuthMiddleware(jwtSvc))

	return &testServer{router: r, handler: h, db: db, sessions: sessions}
}

// envelope mirrors the response body every endpoint writes.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, &env
}

// register creates a user through the API and returns its token pair.
func (s *testServer) register(t *testing.T, email string) dto.TokenPair {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/api/user/register", dto.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp.Token
}

func partyRequest(name, cnic string) dto.PartyRequest {
	return dto.PartyRequest{
		Name:             name,
		Father:           "Father",
		Cnic:             cnic,
		CnicExpiry:       time.Now().Add(365 * 24 * time.Hour),
		CurrentAddress:   "House 1, Street 2",
		PermanentAddress: "House 1, Street 2",
	}
}

func contractRequest(inventoryID string, owners, tenants []string) dto.ContractRequest {
	now := time.Now()
	return dto.ContractRequest{
		Owners:                       owners,
		Tenants:                      tenants,
		Inventory:                    inventoryID,
		SigningDate:                  now,
		StartDate:                    now,
		EndDate:                      now.Add(365 * 24 * time.Hour),
		RenewalDate:                  now.Add(365 * 24 * time.Hour),
		MonthlyRentalAmount:          "50000",
		MonthlyTaxAmount:             "2500",
		BuildingManagementCharges:    "3000",
		SecurityDepositAmount:        "100000",
		AnnualRentalIncrease:         "10%",
		MonthlyRentalDueDate:         5,
		MonthlyRentalOverDate:        10,
		TerminationNoticePeriod:      2,
		NonrefundableSecurityDeposit: "no",
	}
}
