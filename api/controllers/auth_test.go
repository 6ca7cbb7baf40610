package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/fenzolabs/fenzo-backend/internal/auth"
	pkgAuth "github.com/fenzolabs/fenzo-backend/pkg/auth"
	"github.com/fenzolabs/fenzo-backend/pkg/config"
	"github.com/fenzolabs/fenzo-backend/pkg/enums"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
)

type stubAuthService struct {
	login *authsvc.LoginResponse
	err   error

	loggedOut []string
}

func (s *stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResponse, error) {
	return s.login, s.err
}

func (s *stubAuthService) Refresh(ctx context.Context, req authsvc.RefreshRequest) (*authsvc.LoginResponse, error) {
	return s.login, s.err
}

func (s *stubAuthService) Logout(ctx context.Context, accessID string) error {
	s.loggedOut = append(s.loggedOut, accessID)
	return s.err
}

func TestAuthLoginSuccess(t *testing.T) {
	svc := &stubAuthService{login: &authsvc.LoginResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         authsvc.UserDTO{ID: uuid.New(), Email: "admin@fenzo.test", Role: enums.MemberRoleAdmin},
	}}
	handler := AuthLogin(svc, nil)

	body := `{"email":"admin@fenzo.test","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data authsvc.LoginResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.AccessToken != "access" {
		t.Fatalf("unexpected token: %s", envelope.Data.AccessToken)
	}
}

func TestAuthLoginRejectsMalformedEmail(t *testing.T) {
	handler := AuthLogin(&stubAuthService{}, nil)

	body := `{"email":"not-an-email","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	svc := &stubAuthService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")}
	handler := AuthLogin(svc, nil)

	body := `{"email":"admin@fenzo.test","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/login", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthLogoutRevokesSession(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10}
	accessID := uuid.NewString()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "admin@fenzo.test",
		Role:   enums.MemberRoleAdmin,
		JTI:    accessID,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	svc := &stubAuthService{}
	handler := AuthLogout(svc, cfg, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(svc.loggedOut) != 1 || svc.loggedOut[0] != accessID {
		t.Fatalf("expected logout with access id %s, got %v", accessID, svc.loggedOut)
	}
}

func TestAuthLogoutMissingToken(t *testing.T) {
	handler := AuthLogout(&stubAuthService{}, config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 10}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/v1/auth/logout", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
