package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/auth"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/database"
	"github.com/workforge-hr/workforge-backend-go/internal/pkg/jwt"
	"github.com/workforge-hr/workforge-backend-go/internal/repository/postgresql"
	authService "github.com/workforge-hr/workforge-backend-go/internal/service/auth"
)

var testHandlerDB *database.DB

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
)

func handlerTestInit(t *testing.T) {
	if testHandlerDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testHandlerDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
}

func truncateHandlerTables(t *testing.T, ctx context.Context) {
	tables := []string{"payroll", "attendance", "tasks", "employees", "users"}

	for _, table := range tables {
		_, err := testHandlerDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

func createHandlerTestUser(t *testing.T, ctx context.Context, username string, password string) string {
	var userID string
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	email := fmt.Sprintf("%s-%d@example.com", username, time.Now().UnixNano())
	err := testHandlerDB.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, 'user', true)
		RETURNING id
	`, username, email, string(hashedPassword)).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createTestAuthHandler() AuthHandler {
	userRepo := postgresql.NewUserRepository(testHandlerDB)
	settingsRepo := postgresql.NewSettingsRepository(testHandlerDB)
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	authSvc := authService.NewAuthService(userRepo, settingsRepo, jwtSvc)

	return NewAuthHandler(authSvc)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	createHandlerTestUser(t, ctx, "login-user", "password123")
	handler := createTestAuthHandler()

	body, _ := json.Marshal(auth.LoginRequest{
		Username: "login-user",
		Password: "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.Access)
	assert.NotEmpty(t, resp.Data.Refresh)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	createHandlerTestUser(t, ctx, "login-user", "password123")
	handler := createTestAuthHandler()

	body, _ := json.Marshal(auth.LoginRequest{
		Username: "login-user",
		Password: "wrong-password",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	handler := createTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	createHandlerTestUser(t, ctx, "refresh-user", "password123")
	handler := createTestAuthHandler()

	body, _ := json.Marshal(auth.LoginRequest{
		Username: "refresh-user",
		Password: "password123",
	})
	loginReq := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	loginRec := httptest.NewRecorder()
	handler.Login(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)

	var loginResp struct {
		Data struct {
			Refresh string `json:"refresh"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &loginResp))

	refreshBody, _ := json.Marshal(auth.RefreshRequest{RefreshToken: loginResp.Data.Refresh})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(refreshBody))
	rec := httptest.NewRecorder()

	handler.Refresh(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// The previous refresh token was rotated out; replaying it must fail.
	replay := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", bytes.NewReader(refreshBody))
	replayRec := httptest.NewRecorder()
	handler.Refresh(replayRec, replay)
	assert.Equal(t, http.StatusUnauthorized, replayRec.Code)
}
