package server

import (
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitStory handles POST /api/stories. Anyone can submit; the story lands
// in the review queue and stays off every public surface until an admin
// approves it.
func (s *Server) SubmitStory(c *fiber.Ctx) error {
	if !s.featureFlags.Enabled("submissions", "ip:"+c.IP()) {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewValidationError("Story submissions are currently closed"))
	}

	var input service.SubmitStoryInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	story, err := s.storyService.Submit(c.UserContext(), input)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"story":   story,
		"message": "Story submitted for review",
	})
}

// GetStories handles GET /api/stories (the public feed).
func (s *Server) GetStories(c *fiber.Ctx) error {
	p := parsePagination(c, service.DefaultFeedLimit)

	stories, err := s.storyService.PublicFeed(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	if stories == nil {
		stories = []*models.Story{}
	}

	return c.JSON(fiber.Map{"stories": stories})
}

// GetFeaturedStories handles GET /api/stories/featured.
func (s *Server) GetFeaturedStories(c *fiber.Ctx) error {
	p := parsePagination(c, service.DefaultFeedLimit)

	stories, err := s.storyService.FeaturedFeed(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	if stories == nil {
		stories = []*models.Story{}
	}

	return c.JSON(fiber.Map{"stories": stories})
}

// GetStory handles GET /api/stories/:id. Each successful fetch counts as one
// view. Pending and expired stories return 404.
func (s *Server) GetStory(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	story, err := s.storyService.GetPublicStory(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"story": story})
}

// LikeStory handles POST /api/stories/:id/like. Likes are unguarded; the
// endpoint always succeeds, even for ids that do not exist.
func (s *Server) LikeStory(c *fiber.Ctx) error {
	if !s.featureFlags.Enabled("likes", "ip:"+c.IP()) {
		return models.RespondWithError(c, fiber.StatusServiceUnavailable,
			models.NewValidationError("Likes are currently disabled"))
	}

	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.storyService.Like(c.UserContext(), id); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Liked"})
}
