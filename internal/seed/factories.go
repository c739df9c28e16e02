// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/policy"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// BuildStory constructs a pending story with plausible content but does not
// persist it.
func (f *Factory) BuildStory(overrides ...func(*models.Story)) *models.Story {
	person := gofakeit.Name()
	story := &models.Story{
		Name:     person,
		Title:    gofakeit.Sentence(6),
		Profile:  fmt.Sprintf("%s, founder of %s", person, gofakeit.Company()),
		Body:     gofakeit.Paragraph(3, 4, 12, "\n\n"),
		ImageRef: fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.rand.Intn(90)
	hoursBack := f.rand.Intn(24)
	story.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(story)
	}
	return story
}

// Approved marks a built story approved with plausible engagement numbers.
func (f *Factory) Approved() func(*models.Story) {
	return func(s *models.Story) {
		s.Approved = true
		s.Views = f.rand.Intn(5000)
		s.Likes = f.rand.Intn(s.Views + 1)
	}
}

// Featured marks a built story featured.
func Featured() func(*models.Story) {
	return func(s *models.Story) {
		s.Featured = true
	}
}

// ExpiringIn sets an expiry date the given number of days from now. Negative
// values produce already expired stories.
func ExpiringIn(days int) func(*models.Story) {
	return func(s *models.Story) {
		d := policy.DateOnly(time.Now().AddDate(0, 0, days))
		s.ExpiryDate = &d
	}
}

// CreateStory persists a built story.
func (f *Factory) CreateStory(overrides ...func(*models.Story)) (*models.Story, error) {
	story := f.BuildStory(overrides...)
	if err := f.db.Create(story).Error; err != nil {
		return nil, err
	}
	return story, nil
}

// CreateStoriesBatch persists multiple stories in a single DB call.
func (f *Factory) CreateStoriesBatch(stories []*models.Story) error {
	if len(stories) == 0 {
		return nil
	}
	return f.db.Create(&stories).Error
}
