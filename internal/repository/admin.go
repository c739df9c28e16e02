package repository

import (
	"context"
	"errors"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"

	"gorm.io/gorm"
)

// AdminRepository defines persistence operations for administrator accounts.
type AdminRepository interface {
	// GetByUsername returns (nil, nil) when no such administrator exists so
	// callers can run a dummy hash comparison before reporting bad
	// credentials.
	GetByUsername(ctx context.Context, username string) (*models.Administrator, error)
	Create(ctx context.Context, admin *models.Administrator) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	List(ctx context.Context) ([]*models.Administrator, error)
	Count(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository returns a new AdminRepository implementation.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.Administrator, error) {
	var admin models.Administrator
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Administrator) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Administrator{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if res.Error != nil {
		return models.NewStorageError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Administrator", username)
	}
	return nil
}

func (r *adminRepository) List(ctx context.Context) ([]*models.Administrator, error) {
	var admins []*models.Administrator
	if err := r.db.WithContext(ctx).Order("username ASC").Find(&admins).Error; err != nil {
		return nil, models.NewStorageError(err)
	}
	return admins, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Administrator{}).Count(&n).Error; err != nil {
		return 0, models.NewStorageError(err)
	}
	return n, nil
}
