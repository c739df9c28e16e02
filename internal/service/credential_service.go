package service

import (
	"context"
	"log/slog"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/middleware"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/repository"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminUsername is the account created on first boot so the review
// queue is reachable before anyone has provisioned credentials.
const DefaultAdminUsername = "admin"

const defaultAdminPassword = "admin123"

// dummyHash is compared against when the username does not exist so a login
// attempt takes roughly the same time either way.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)
	return h
}()

// CredentialService manages administrator accounts and login verification.
type CredentialService struct {
	adminRepo repository.AdminRepository
}

func NewCredentialService(adminRepo repository.AdminRepository) *CredentialService {
	return &CredentialService{adminRepo: adminRepo}
}

// SeedDefault creates the default administrator account when no
// administrators exist at all. An account of any name disables the default.
// Safe to call on every startup.
func (s *CredentialService) SeedDefault(ctx context.Context) error {
	count, err := s.adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}

	admin := &models.Administrator{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		// Another process may have seeded between the check and the insert.
		if again, getErr := s.adminRepo.GetByUsername(ctx, DefaultAdminUsername); getErr == nil && again != nil {
			return nil
		}
		return err
	}

	middleware.Logger.Info("Seeded default administrator account",
		slog.String("username", DefaultAdminUsername))
	return nil
}

// Verify checks a username/password pair and returns the matching
// administrator. Unknown usernames and wrong passwords produce the same
// error; a hash comparison runs in both cases.
func (s *CredentialService) Verify(ctx context.Context, username, password string) (*models.Administrator, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, models.NewInvalidCredentialsError()
	}
	return admin, nil
}

// AddAdmin provisions a new administrator account.
func (s *CredentialService) AddAdmin(ctx context.Context, username, password string) (*models.Administrator, error) {
	if err := validation.ValidateAdminUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewValidationError("Username is already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	admin := &models.Administrator{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ResetPassword replaces an existing administrator's password.
func (s *CredentialService) ResetPassword(ctx context.Context, username, password string) error {
	if err := validation.ValidatePassword(password); err != nil {
		return models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	return s.adminRepo.UpdatePassword(ctx, username, string(hash))
}

// ListAdmins returns all administrator accounts.
func (s *CredentialService) ListAdmins(ctx context.Context) ([]*models.Administrator, error) {
	return s.adminRepo.List(ctx)
}
