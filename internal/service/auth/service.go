package auth

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/tracklabs/workforce-backend-go/internal/domain/auth"
	"github.com/tracklabs/workforce-backend-go/internal/domain/tenant"
	"github.com/tracklabs/workforce-backend-go/internal/domain/worker"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/database"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/jwt"
	"github.com/tracklabs/workforce-backend-go/internal/pkg/validator"
	"github.com/tracklabs/workforce-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	jwt.Service
	auth.AdminRepository
	tenant.TenantRepository
	worker.WorkerRepository
}

func NewAuthService(
	db *database.DB,
	jwtService jwt.Service,
	adminRepository auth.AdminRepository,
	tenantRepository tenant.TenantRepository,
	workerRepository worker.WorkerRepository,
) auth.AuthService {
	return &AuthServiceImpl{
		db:               db,
		Service:          jwtService,
		AdminRepository:  adminRepository,
		TenantRepository: tenantRepository,
		WorkerRepository: workerRepository,
	}
}

// SubdomainAvailable implements auth.AuthService.
func (a *AuthServiceImpl) SubdomainAvailable(ctx context.Context, req auth.SubdomainAvailableRequest) (auth.SubdomainAvailableResponse, error) {
	if tenant.IsReserved(req.Subdomain) {
		return auth.SubdomainAvailableResponse{}, tenant.ErrReservedTenant
	}
	if !validator.IsValidTenantSlug(req.Subdomain) {
		return auth.SubdomainAvailableResponse{}, tenant.ErrInvalidSlug
	}

	exists, err := a.TenantRepository.SlugExists(ctx, req.Subdomain)
	if err != nil {
		return auth.SubdomainAvailableResponse{}, err
	}

	if exists {
		return auth.SubdomainAvailableResponse{
			Available: false,
			Message:   "Subdomain is already taken",
		}, nil
	}

	return auth.SubdomainAvailableResponse{
		Available: true,
		Message:   "Subdomain is available",
	}, nil
}

// RegisterAdmin implements auth.AuthService. The tenant and its managing
// admin are created in one transaction so neither can exist without the
// other.
func (a *AuthServiceImpl) RegisterAdmin(ctx context.Context, req auth.RegisterAdminRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if tenant.IsReserved(req.Subdomain) {
		return auth.TokenResponse{}, tenant.ErrReservedTenant
	}

	exists, err := a.AdminRepository.Exists(ctx, req.Username, req.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if exists {
		return auth.TokenResponse{}, auth.ErrAdminExists
	}

	taken, err := a.TenantRepository.SlugExists(ctx, req.Subdomain)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if taken {
		return auth.TokenResponse{}, tenant.ErrSlugTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var admin auth.Admin

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := a.TenantRepository.Create(txCtx, tenant.Tenant{
			Slug: req.Subdomain,
			Name: req.Subdomain,
		}); err != nil {
			return err
		}

		admin, err = a.AdminRepository.Create(txCtx, auth.Admin{
			Tenant:       req.Subdomain,
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.tokenResponseForAdmin(admin)
}

// LoginAdmin implements auth.AuthService.
func (a *AuthServiceImpl) LoginAdmin(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if tenant.IsReserved(req.Subdomain) {
		return auth.TokenResponse{}, tenant.ErrReservedTenant
	}

	admin, err := a.AdminRepository.GetByLogin(ctx, req.Username, req.Subdomain)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.tokenResponseForAdmin(admin)
}

// LoginWorker implements auth.AuthService.
func (a *AuthServiceImpl) LoginWorker(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if tenant.IsReserved(req.Subdomain) {
		return auth.TokenResponse{}, tenant.ErrReservedTenant
	}

	w, err := a.WorkerRepository.GetByUsername(ctx, req.Username, req.Subdomain)
	if err != nil {
		if err == worker.ErrWorkerNotFound {
			return auth.TokenResponse{}, auth.ErrWorkerNotFound
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(w.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(w.ID, w.Username, w.Tenant, jwt.RoleWorker)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExp, err := a.Service.GenerateRefreshToken(w.ID, w.Username, w.Tenant, jwt.RoleWorker)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.TokenResponse{
		ID:           w.ID,
		Username:     w.Username,
		Name:         w.Name,
		Email:        w.Email,
		Subdomain:    w.Tenant,
		RFID:         w.RFID,
		Department:   w.DepartmentName,
		Role:         string(jwt.RoleWorker),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		RefreshExp:   refreshExp,
	}, nil
}

func (a *AuthServiceImpl) tokenResponseForAdmin(admin auth.Admin) (auth.TokenResponse, error) {
	accessToken, expiresAt, err := a.Service.GenerateAccessToken(admin.ID, admin.Username, admin.Tenant, jwt.RoleAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExp, err := a.Service.GenerateRefreshToken(admin.ID, admin.Username, admin.Tenant, jwt.RoleAdmin)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.TokenResponse{
		ID:           admin.ID,
		Username:     admin.Username,
		Email:        admin.Email,
		Subdomain:    admin.Tenant,
		Role:         string(jwt.RoleAdmin),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		RefreshExp:   refreshExp,
	}, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if refreshToken == "" || a.Service.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := a.Service.ParseToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if t, _ := claims["type"].(string); t != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	tenantSlug, _ := claims["tenant"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || tenantSlug == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	// Rotate: the old refresh token dies with the exchange
	a.Service.RevokeToken(refreshToken)

	if role == string(jwt.RoleAdmin) {
		admin, err := a.AdminRepository.GetByID(ctx, userID)
		if err != nil {
			return auth.TokenResponse{}, err
		}
		return a.tokenResponseForAdmin(admin)
	}

	w, err := a.WorkerRepository.GetByID(ctx, userID, tenantSlug)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(w.ID, w.Username, w.Tenant, jwt.RoleWorker)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	newRefresh, refreshExp, err := a.Service.GenerateRefreshToken(w.ID, w.Username, w.Tenant, jwt.RoleWorker)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return auth.TokenResponse{
		ID:           w.ID,
		Username:     w.Username,
		Name:         w.Name,
		Email:        w.Email,
		Subdomain:    w.Tenant,
		RFID:         w.RFID,
		Department:   w.DepartmentName,
		Role:         string(jwt.RoleWorker),
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresAt:    expiresAt,
		RefreshExp:   refreshExp,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string, refreshToken string) error {
	if accessToken != "" {
		a.Service.RevokeToken(accessToken)
	}
	if refreshToken != "" {
		a.Service.RevokeToken(refreshToken)
	}
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	tenantSlug, _ := claims["tenant"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || tenantSlug == "" {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	if role == string(jwt.RoleAdmin) {
		admin, err := a.AdminRepository.GetByID(ctx, userID)
		if err != nil {
			return auth.MeResponse{}, err
		}
		return auth.MeResponse{
			ID:        admin.ID,
			Username:  admin.Username,
			Email:     admin.Email,
			Subdomain: admin.Tenant,
			Role:      role,
		}, nil
	}

	w, err := a.WorkerRepository.GetByID(ctx, userID, tenantSlug)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		ID:         w.ID,
		Username:   w.Username,
		Name:       w.Name,
		Email:      w.Email,
		Subdomain:  w.Tenant,
		Role:       role,
		Department: w.DepartmentName,
	}, nil
}

// CheckAdminInitialization implements auth.AuthService.
func (a *AuthServiceImpl) CheckAdminInitialization(ctx context.Context) (auth.CheckAdminResponse, error) {
	count, err := a.AdminRepository.Count(ctx)
	if err != nil {
		return auth.CheckAdminResponse{}, err
	}

	if count == 0 {
		return auth.CheckAdminResponse{
			NeedInitialAdmin: true,
			Message:          "No admin registered yet",
		}, nil
	}

	return auth.CheckAdminResponse{
		NeedInitialAdmin: false,
		Message:          "Admin already initialized",
	}, nil
}
