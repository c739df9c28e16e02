package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/cache"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/middleware"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/repository"
)

// ModerationService drives the admin review workflow: the pending queue and
// the approve/feature transitions. There is no reject, unapprove, or delete;
// a story leaves the queue only by being approved.
type ModerationService struct {
	storyRepo repository.StoryRepository
}

func NewModerationService(storyRepo repository.StoryRepository) *ModerationService {
	return &ModerationService{storyRepo: storyRepo}
}

// ListPending returns the review queue, newest first.
func (s *ModerationService) ListPending(ctx context.Context) ([]*models.Story, error) {
	return s.storyRepo.ListPending(ctx)
}

// Approve publishes a story, replacing its expiry date with the given value
// (nil means never expires). Approving an already approved story just
// updates the expiry.
func (s *ModerationService) Approve(ctx context.Context, id uint, expiry *time.Time) (*models.Story, error) {
	if err := s.storyRepo.Approve(ctx, id, expiry); err != nil {
		return nil, err
	}

	middleware.ModerationActions.WithLabelValues("approve").Inc()
	cache.InvalidateFeeds(ctx)

	slog.InfoContext(ctx, "Story approved",
		slog.Uint64("story_id", uint64(id)),
		slog.Any("expiry_date", expiry))

	return s.storyRepo.GetByID(ctx, id)
}

// Feature marks a story for the featured rail. Works on pending stories too;
// the flag only shows once the story is approved. Expiry is updated only
// when one is supplied.
func (s *ModerationService) Feature(ctx context.Context, id uint, expiry *time.Time) (*models.Story, error) {
	if err := s.storyRepo.Feature(ctx, id, expiry); err != nil {
		return nil, err
	}

	middleware.ModerationActions.WithLabelValues("feature").Inc()
	cache.InvalidateFeeds(ctx)

	slog.InfoContext(ctx, "Story featured",
		slog.Uint64("story_id", uint64(id)))

	return s.storyRepo.GetByID(ctx, id)
}
