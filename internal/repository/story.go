// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/policy"

	"gorm.io/gorm"
)

// StoryRepository defines persistence operations for stories.
type StoryRepository interface {
	Submit(ctx context.Context, story *models.Story) error
	GetByID(ctx context.Context, id uint) (*models.Story, error)
	ListPublic(ctx context.Context, today time.Time, limit, offset int) ([]*models.Story, error)
	ListFeatured(ctx context.Context, today time.Time, limit, offset int) ([]*models.Story, error)
	ListPending(ctx context.Context) ([]*models.Story, error)
	IncrementViews(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) error
	Approve(ctx context.Context, id uint, expiry *time.Time) error
	Feature(ctx context.Context, id uint, expiry *time.Time) error
}

type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository returns a new StoryRepository implementation.
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

// Submit persists a new story in its initial moderation state. Whatever the
// caller put in the moderation fields is overwritten: every story starts
// pending, unfeatured, uncounted and never-expiring.
func (r *storyRepository) Submit(ctx context.Context, story *models.Story) error {
	story.ID = 0
	story.Approved = false
	story.Featured = false
	story.Likes = 0
	story.Views = 0
	story.ExpiryDate = nil

	if err := r.db.WithContext(ctx).Create(story).Error; err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *storyRepository) GetByID(ctx context.Context, id uint) (*models.Story, error) {
	var story models.Story
	if err := r.db.WithContext(ctx).First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Story", id)
		}
		return nil, models.NewStorageError(err)
	}
	return &story, nil
}

// publiclyVisible appends the SQL form of policy.IsPublic. The policy package
// stays the source of truth for the rule; the repository tests assert the two
// agree.
func publiclyVisible(db *gorm.DB, today time.Time) *gorm.DB {
	return db.
		Where("approved = ?", true).
		Where("expiry_date IS NULL OR expiry_date >= ?", policy.DateOnly(today))
}

func (r *storyRepository) ListPublic(ctx context.Context, today time.Time, limit, offset int) ([]*models.Story, error) {
	var stories []*models.Story
	err := publiclyVisible(r.db.WithContext(ctx).Model(&models.Story{}), today).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&stories).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return stories, nil
}

func (r *storyRepository) ListFeatured(ctx context.Context, today time.Time, limit, offset int) ([]*models.Story, error) {
	var stories []*models.Story
	err := publiclyVisible(r.db.WithContext(ctx).Model(&models.Story{}), today).
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&stories).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return stories, nil
}

func (r *storyRepository) ListPending(ctx context.Context) ([]*models.Story, error) {
	var stories []*models.Story
	err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, models.NewStorageError(err)
	}
	return stories, nil
}

// IncrementViews adds one view in a single UPDATE statement. A missing id is
// a silent no-op: counters are best-effort and a story vanishing mid-render
// must not fail the page.
func (r *storyRepository) IncrementViews(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Story{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return models.NewStorageError(res.Error)
	}
	return nil
}

// IncrementLikes adds one like in a single UPDATE statement; same no-op
// semantics as IncrementViews.
func (r *storyRepository) IncrementLikes(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Story{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return models.NewStorageError(res.Error)
	}
	return nil
}

// Approve marks the story approved and sets its expiry date, including back
// to NULL. Re-approving is not an error; it just updates the expiry.
func (r *storyRepository) Approve(ctx context.Context, id uint, expiry *time.Time) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Model(&models.Story{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approved":    true,
			"expiry_date": normalizeExpiry(expiry),
		}).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

// Feature marks the story featured and, when an expiry is supplied, updates
// it. Approval is deliberately not touched: a pending story can carry the
// featured flag, and the visibility policy keeps it off public surfaces
// until it is approved.
func (r *storyRepository) Feature(ctx context.Context, id uint, expiry *time.Time) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	updates := map[string]interface{}{"featured": true}
	if expiry != nil {
		updates["expiry_date"] = normalizeExpiry(expiry)
	}

	err := r.db.WithContext(ctx).
		Model(&models.Story{}).
		Where("id = ?", id).
		Updates(updates).Error
	if err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

// normalizeExpiry truncates a stored expiry to its UTC calendar date so the
// SQL visibility filter and policy.IsPublic compare the same value.
func normalizeExpiry(expiry *time.Time) *time.Time {
	if expiry == nil {
		return nil
	}
	d := policy.DateOnly(*expiry)
	return &d
}
