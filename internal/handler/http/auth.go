package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/auth"
	"github.com/tracklabs/workforce-backend-go/internal/handler/http/response"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	LoginAdmin(w http.ResponseWriter, r *http.Request)
	LoginWorker(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	CheckAdmin(w http.ResponseWriter, r *http.Request)
	SubdomainAvailable(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

func (a *AuthHandlerImpl) setRefreshCookie(w http.ResponseWriter, token auth.TokenResponse) {
	http.SetCookie(w, a.jwtService.RefreshTokenCookie(token.RefreshToken, token.RefreshExp))
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResp, err := a.authService.RegisterAdmin(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, tokenResp)
	slog.Info("Admin registered", "tenant", tokenResp.Subdomain)
	response.Created(w, "Registration successful", tokenResp)
}

// LoginAdmin implements AuthHandler.
func (a *AuthHandlerImpl) LoginAdmin(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("LoginAdmin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResp, err := a.authService.LoginAdmin(r.Context(), loginReq)
	if err != nil {
		slog.Error("LoginAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, tokenResp)
	response.SuccessWithMessage(w, "Login successful", tokenResp)
}

// LoginWorker implements AuthHandler.
func (a *AuthHandlerImpl) LoginWorker(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("LoginWorker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResp, err := a.authService.LoginWorker(r.Context(), loginReq)
	if err != nil {
		slog.Error("LoginWorker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, tokenResp)
	response.SuccessWithMessage(w, "Login successful", tokenResp)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	accessToken := jwtauth.TokenFromHeader(r)

	refreshToken := ""
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	if err := a.authService.Logout(r.Context(), accessToken, refreshToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Expire the cookie
	http.SetCookie(w, a.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix()))
	response.SuccessWithMessage(w, "Logged out", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokenResp, err := a.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.setRefreshCookie(w, tokenResp)
	response.SuccessWithMessage(w, "Token refreshed", tokenResp)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	meResp, err := a.authService.Me(r.Context())
	if err != nil {
		slog.Error("Me service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, meResp)
}

// CheckAdmin implements AuthHandler.
func (a *AuthHandlerImpl) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	checkResp, err := a.authService.CheckAdminInitialization(r.Context())
	if err != nil {
		slog.Error("CheckAdmin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, checkResp)
}

// SubdomainAvailable implements AuthHandler.
func (a *AuthHandlerImpl) SubdomainAvailable(w http.ResponseWriter, r *http.Request) {
	var req auth.SubdomainAvailableRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubdomainAvailable decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	availResp, err := a.authService.SubdomainAvailable(r.Context(), req)
	if err != nil {
		slog.Error("SubdomainAvailable service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, availResp)
}
