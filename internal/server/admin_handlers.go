package server

import (
	"fmt"
	"time"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// expiryDateLayout is the wire format for expiry dates. Calendar dates only;
// the time of day never matters for visibility.
const expiryDateLayout = "2006-01-02"

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type moderationInput struct {
	// ExpiryDate is the last day the story stays visible, "YYYY-MM-DD".
	// Empty means never expires.
	ExpiryDate string `json:"expiry_date"`
}

// Login handles POST /api/admin/login and returns a bearer token for the
// moderation routes.
func (s *Server) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if input.Username == "" || input.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username and password are required"))
	}

	admin, err := s.credentialService.Verify(c.UserContext(), input.Username, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, err := s.generateToken(admin.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"admin": admin,
	})
}

// GetPendingStories handles GET /api/admin/stories/pending (the review queue).
func (s *Server) GetPendingStories(c *fiber.Ctx) error {
	stories, err := s.moderationService.ListPending(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	if stories == nil {
		stories = []*models.Story{}
	}

	return c.JSON(fiber.Map{"stories": stories})
}

// ApproveStory handles POST /api/admin/stories/:id/approve. The request body
// may carry an expiry date; omitting it publishes the story indefinitely.
func (s *Server) ApproveStory(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	expiry, err := s.parseModerationExpiry(c)
	if err != nil {
		return nil
	}

	story, err := s.moderationService.Approve(c.UserContext(), id, expiry)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"story":   story,
		"message": "Story approved",
	})
}

// FeatureStory handles POST /api/admin/stories/:id/feature. Featuring works
// on pending stories too; the flag only shows once the story is approved.
func (s *Server) FeatureStory(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	expiry, err := s.parseModerationExpiry(c)
	if err != nil {
		return nil
	}

	story, err := s.moderationService.Feature(c.UserContext(), id, expiry)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"story":   story,
		"message": "Story featured",
	})
}

// GetFeatureFlags handles GET /api/admin/feature-flags.
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"flags": s.featureFlags.Raw(),
	})
}

// parseModerationExpiry reads the optional expiry date from the request body.
// A missing or empty body means no expiry. On a malformed date it writes a
// 400 response and returns errResponseWritten.
func (s *Server) parseModerationExpiry(c *fiber.Ctx) (*time.Time, error) {
	if len(c.Body()) == 0 {
		return nil, nil
	}

	var input moderationInput
	if err := c.BodyParser(&input); err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
		return nil, errResponseWritten
	}
	if input.ExpiryDate == "" {
		return nil, nil
	}

	d, err := time.Parse(expiryDateLayout, input.ExpiryDate)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("expiry_date must be formatted YYYY-MM-DD"))
		return nil, errResponseWritten
	}
	return &d, nil
}

// generateToken creates an admin JWT for the given username.
func (s *Server) generateToken(username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   username,                      // Subject (admin username)
		"scope": "admin",                       // Moderation scope
		"iss":   "emerging-icons-api",          // Issuer
		"exp":   now.Add(time.Hour * 8).Unix(), // Expiration (one shift)
		"iat":   now.Unix(),                    // Issued at
		"nbf":   now.Unix(),                    // Not before
		"jti":   s.generateJTI(),               // JWT ID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
