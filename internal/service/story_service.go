package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/cache"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/middleware"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/policy"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/repository"
)

// DefaultFeedLimit is the page size served when the client does not ask for
// one. Only the first default-sized page is cached.
const DefaultFeedLimit = 20

// StoryService handles visitor-facing story operations: submission, the
// public and featured feeds, and engagement counters.
type StoryService struct {
	storyRepo repository.StoryRepository
	now       func() time.Time
}

type SubmitStoryInput struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Profile  string `json:"profile"`
	Body     string `json:"body"`
	ImageRef string `json:"image_ref"`
}

func NewStoryService(storyRepo repository.StoryRepository) *StoryService {
	return &StoryService{
		storyRepo: storyRepo,
		now:       time.Now,
	}
}

// Submit stores a new story in the review queue. Content is taken as
// submitted, empty fields included; moderation is the only quality gate.
func (s *StoryService) Submit(ctx context.Context, in SubmitStoryInput) (*models.Story, error) {
	story := &models.Story{
		Name:     strings.TrimSpace(in.Name),
		Title:    strings.TrimSpace(in.Title),
		Profile:  strings.TrimSpace(in.Profile),
		Body:     in.Body,
		ImageRef: strings.TrimSpace(in.ImageRef),
	}
	if err := s.storyRepo.Submit(ctx, story); err != nil {
		return nil, err
	}

	middleware.StorySubmissions.Inc()
	return story, nil
}

// PublicFeed returns approved, unexpired stories, newest first. The default
// first page is served through the cache; any other page goes straight to the
// store.
func (s *StoryService) PublicFeed(ctx context.Context, limit, offset int) ([]*models.Story, error) {
	return s.feed(ctx, cache.PublicFeedKey, limit, offset, s.storyRepo.ListPublic)
}

// FeaturedFeed returns the featured subset of the public feed.
func (s *StoryService) FeaturedFeed(ctx context.Context, limit, offset int) ([]*models.Story, error) {
	return s.feed(ctx, cache.FeaturedFeedKey, limit, offset, s.storyRepo.ListFeatured)
}

func (s *StoryService) feed(
	ctx context.Context,
	key string,
	limit, offset int,
	list func(ctx context.Context, today time.Time, limit, offset int) ([]*models.Story, error),
) ([]*models.Story, error) {
	today := s.now()

	var stories []*models.Story
	if offset == 0 && limit == DefaultFeedLimit {
		err := cache.Aside(ctx, key, &stories, cache.FeedTTL, func() error {
			var fetchErr error
			stories, fetchErr = list(ctx, today, limit, offset)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		stories, err = list(ctx, today, limit, offset)
		if err != nil {
			return nil, err
		}
	}

	s.countViews(ctx, stories)
	return stories, nil
}

// countViews records one view per story rendered on a public surface. It runs
// on cache hits too, so the stored counters keep moving while a cached page's
// view numbers lag by at most FeedTTL. A failed increment never breaks the
// render.
func (s *StoryService) countViews(ctx context.Context, stories []*models.Story) {
	for _, story := range stories {
		if err := s.storyRepo.IncrementViews(ctx, story.ID); err != nil {
			slog.WarnContext(ctx, "Failed to count story view",
				slog.Uint64("story_id", uint64(story.ID)))
			continue
		}
		middleware.StoryViews.Inc()
		story.Views++
	}
}

// GetPublicStory returns one story for public rendering and counts the view.
// Stories outside the visibility window look identical to stories that never
// existed.
func (s *StoryService) GetPublicStory(ctx context.Context, id uint) (*models.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.IsPublic(story, s.now()) {
		return nil, models.NewNotFoundError("Story", id)
	}

	if err := s.storyRepo.IncrementViews(ctx, id); err != nil {
		return nil, err
	}
	middleware.StoryViews.Inc()

	story.Views++
	return story, nil
}

// Like records a like. Liking an unknown story succeeds and changes nothing.
func (s *StoryService) Like(ctx context.Context, id uint) error {
	if err := s.storyRepo.IncrementLikes(ctx, id); err != nil {
		return err
	}
	middleware.StoryLikes.Inc()
	return nil
}
