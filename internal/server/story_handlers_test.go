package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/config"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/featureflags"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/models"
	"github.com/naveenkumar921995-cmd/The-Emerging-Icons/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStoryRepository is a mock of the StoryRepository interface
type MockStoryRepository struct {
	mock.Mock
}

func (m *MockStoryRepository) Submit(ctx context.Context, story *models.Story) error {
	args := m.Called(ctx, story)
	return args.Error(0)
}

func (m *MockStoryRepository) GetByID(ctx context.Context, id uint) (*models.Story, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Story), args.Error(1)
}

func (m *MockStoryRepository) ListPublic(ctx context.Context, today time.Time, limit, offset int) ([]*models.Story, error) {
	args := m.Called(ctx, today, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Story), args.Error(1)
}

func (m *MockStoryRepository) ListFeatured(ctx context.Context, today time.Time, limit, offset int) ([]*models.Story, error) {
	args := m.Called(ctx, today, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Story), args.Error(1)
}

func (m *MockStoryRepository) ListPending(ctx context.Context) ([]*models.Story, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Story), args.Error(1)
}

func (m *MockStoryRepository) IncrementViews(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoryRepository) IncrementLikes(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoryRepository) Approve(ctx context.Context, id uint, expiry *time.Time) error {
	args := m.Called(ctx, id, expiry)
	return args.Error(0)
}

func (m *MockStoryRepository) Feature(ctx context.Context, id uint, expiry *time.Time) error {
	args := m.Called(ctx, id, expiry)
	return args.Error(0)
}

// newStoryTestServer wires a Server around the mock repository with all
// public feature flags on.
func newStoryTestServer(repo *MockStoryRepository) *Server {
	s := &Server{
		config:       &config.Config{JWTSecret: "test_secret", FeatureFlags: "submissions=on,likes=on"},
		featureFlags: featureflags.NewManager("submissions=on,likes=on"),
	}
	s.storyService = service.NewStoryService(repo)
	s.moderationService = service.NewModerationService(repo)
	return s
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmitStory(t *testing.T) {
	mockRepo := new(MockStoryRepository)
	s := newStoryTestServer(mockRepo)

	app := fiber.New()
	app.Post("/api/stories", s.SubmitStory)

	tests := []struct {
		name           string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"name":  "Asha",
				"title": "From Garage to Market",
				"body":  "It started with one broken fridge.",
			},
			mockSetup: func() {
				mockRepo.On("Submit", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			// Free text is stored as submitted; blank fields are legitimate
			// and the review queue is where quality is judged.
			name: "Empty Fields Accepted",
			body: map[string]string{},
			mockSetup: func() {
				mockRepo.On("Submit", mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/stories", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSubmitStory_FlagOff(t *testing.T) {
	mockRepo := new(MockStoryRepository)
	s := newStoryTestServer(mockRepo)
	s.featureFlags = featureflags.NewManager("submissions=off,likes=on")

	app := fiber.New()
	app.Post("/api/stories", s.SubmitStory)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/stories", map[string]string{
		"name": "Asha", "title": "T", "body": "B",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	mockRepo.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestGetStories(t *testing.T) {
	mockRepo := new(MockStoryRepository)
	s := newStoryTestServer(mockRepo)

	mockRepo.On("ListPublic", mock.Anything, mock.Anything, 20, 0).
		Return([]*models.Story{
			{ID: 2, Title: "Newest", Approved: true},
			{ID: 1, Title: "Older", Approved: true, Views: 6},
		}, nil).Once()
	mockRepo.On("IncrementViews", mock.Anything, uint(2)).Return(nil).Once()
	mockRepo.On("IncrementViews", mock.Anything, uint(1)).Return(nil).Once()

	app := fiber.New()
	app.Get("/api/stories", s.GetStories)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stories", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Stories []models.Story `json:"stories"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Stories, 2)
	assert.Equal(t, "Newest", body.Stories[0].Title)

	// Each listed story picked up the view from this render.
	assert.Equal(t, 1, body.Stories[0].Views)
	assert.Equal(t, 7, body.Stories[1].Views)

	mockRepo.AssertExpectations(t)
}

func TestGetFeaturedStories(t *testing.T) {
	mockRepo := new(MockStoryRepository)
	s := newStoryTestServer(mockRepo)

	mockRepo.On("ListFeatured", mock.Anything, mock.Anything, 20, 0).
		Return([]*models.Story{{ID: 3, Title: "Spotlight", Approved: true, Featured: true}}, nil).Once()
	mockRepo.On("IncrementViews", mock.Anything, uint(3)).Return(nil).Once()

	app := fiber.New()
	app.Get("/api/stories/featured", s.GetFeaturedStories)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/stories/featured", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mockRepo.AssertExpectations(t)
}

func TestGetStory(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockSetup      func(m *MockStoryRepository)
		expectedStatus int
	}{
		{
			name:   "Success Counts View",
			target: "/api/stories/5",
			mockSetup: func(m *MockStoryRepository) {
				m.On("GetByID", mock.Anything, uint(5)).
					Return(&models.Story{ID: 5, Approved: true, Views: 1}, nil).Once()
				m.On("IncrementViews", mock.Anything, uint(5)).Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Pending Story Hidden",
			target: "/api/stories/6",
			mockSetup: func(m *MockStoryRepository) {
				m.On("GetByID", mock.Anything, uint(6)).
					Return(&models.Story{ID: 6, Approved: false}, nil).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Unknown ID",
			target: "/api/stories/7",
			mockSetup: func(m *MockStoryRepository) {
				m.On("GetByID", mock.Anything, uint(7)).
					Return(nil, models.NewNotFoundError("Story", 7)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid ID",
			target:         "/api/stories/zero",
			mockSetup:      func(m *MockStoryRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockStoryRepository)
			tt.mockSetup(mockRepo)
			s := newStoryTestServer(mockRepo)

			app := fiber.New()
			app.Get("/api/stories/:id", s.GetStory)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLikeStory(t *testing.T) {
	mockRepo := new(MockStoryRepository)
	s := newStoryTestServer(mockRepo)

	// Unknown ids succeed too; the repository treats them as no-ops.
	mockRepo.On("IncrementLikes", mock.Anything, uint(41)).Return(nil).Once()

	app := fiber.New()
	app.Post("/api/stories/:id/like", s.LikeStory)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/stories/41/like", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mockRepo.AssertExpectations(t)
}

func TestLikeStory_FlagOff(t *testing.T) {
	mockRepo := new(MockStoryRepository)
	s := newStoryTestServer(mockRepo)
	s.featureFlags = featureflags.NewManager("submissions=on,likes=off")

	app := fiber.New()
	app.Post("/api/stories/:id/like", s.LikeStory)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/stories/41/like", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	mockRepo.AssertNotCalled(t, "IncrementLikes", mock.Anything, mock.Anything)
}
