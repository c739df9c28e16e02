package seed

import (
	"context"
	"fmt"
	"log"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/repository"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/service"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumPending  int
	NumApproved int
	NumFeatured int
	ShouldClean bool
}

// DefaultOptions returns a demo-sized data set.
func DefaultOptions() Options {
	return Options{
		NumPending:  5,
		NumApproved: 20,
		NumFeatured: 4,
	}
}

// Run populates the database with the default admin account and demo stories
// in every moderation state.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	if opts.ShouldClean {
		if err := db.Exec("DELETE FROM stories").Error; err != nil {
			return fmt.Errorf("failed to clean stories: %w", err)
		}
	}

	creds := service.NewCredentialService(repository.NewAdminRepository(db))
	if err := creds.SeedDefault(ctx); err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	f := NewFactory(db)

	var stories int
	for i := 0; i < opts.NumPending; i++ {
		if _, err := f.CreateStory(); err != nil {
			return err
		}
		stories++
	}
	for i := 0; i < opts.NumApproved; i++ {
		if _, err := f.CreateStory(f.Approved()); err != nil {
			return err
		}
		stories++
	}
	for i := 0; i < opts.NumFeatured; i++ {
		if _, err := f.CreateStory(f.Approved(), Featured()); err != nil {
			return err
		}
		stories++
	}

	// A couple of expiring stories so the visibility window is exercised in
	// demo data: one on its last visible day, one already gone.
	if _, err := f.CreateStory(f.Approved(), ExpiringIn(0)); err != nil {
		return err
	}
	if _, err := f.CreateStory(f.Approved(), ExpiringIn(-7)); err != nil {
		return err
	}
	stories += 2

	log.Printf("Seed complete: %d stories created", stories)
	return nil
}
