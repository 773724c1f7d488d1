package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"storyhive/internal/http-api/dto"
	"storyhive/internal/http-api/handler"
	"storyhive/internal/http-api/service"
	"storyhive/internal/models"
	"storyhive/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupAPI wires a real store behind the full route table, the same
// shape cmd/api-server builds.
func setupAPI() *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := store.New()
	tierService := service.NewSubscriptionTierService(st)

	r := gin.New()
	api := r.Group("/api")
	handler.NewAuthHandler(service.NewAuthService(st)).RegisterRoutes(api)
	handler.NewUserHandler(service.NewUserService(st), tierService).RegisterRoutes(api)
	handler.NewContentHandler(service.NewContentService(st)).RegisterRoutes(api)
	handler.NewEpisodeHandler(service.NewEpisodeService(st)).RegisterRoutes(api)
	handler.NewInteractionHandler(service.NewInteractionService(st)).RegisterRoutes(api)
	handler.NewCommentHandler(service.NewCommentService(st)).RegisterRoutes(api)
	handler.NewSubscriptionTierHandler(tierService).RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPlatformEndToEnd(t *testing.T) {
	r := setupAPI()

	// Register a creator.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]any{
		"username":   "mika",
		"password":   "long-enough-password",
		"email":      "mika@example.com",
		"is_creator": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var creator dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creator))
	assert.NotContains(t, w.Body.String(), "password")

	// Duplicate username is rejected regardless of the other fields.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "mika",
		"password": "another-long-password",
		"email":    "different@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Login round trip.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "mika", "password": "long-enough-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "mika", "password": "wrong-password-entirely",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Publish a content with one episode.
	w = doJSON(t, r, http.MethodPost, "/api/content", map[string]any{
		"title":        "Neon City Dreams",
		"description":  "A runner in a city that never sleeps",
		"content_type": "webtoon",
		"genre":        "cyberpunk",
		"user_id":      creator.ID,
		"status":       "published",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var content models.Content
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &content))

	w = doJSON(t, r, http.MethodPost, "/api/episodes", map[string]any{
		"content_id":     content.ID,
		"title":          "Pilot",
		"episode_number": 1,
		"content_data":   map[string]any{"panels": []string{"p1.png"}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var episode models.Episode
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &episode))

	// Like the content: first time creates, second time replays.
	likeBody := map[string]any{
		"user_id":          creator.ID,
		"content_id":       content.ID,
		"interaction_type": "like",
	}
	w = doJSON(t, r, http.MethodPost, "/api/interactions", likeBody)
	require.Equal(t, http.StatusCreated, w.Code)
	var like models.Interaction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &like))

	w = doJSON(t, r, http.MethodPost, "/api/interactions", likeBody)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/content/%d", content.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var liked models.Content
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Equal(t, 1, liked.LikeCount)

	// Search and trending see the published content.
	w = doJSON(t, r, http.MethodGet, "/api/content?search=NEON", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var found []models.Content
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found, 1)

	w = doJSON(t, r, http.MethodGet, "/api/content?trending=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// A reply tree on the content.
	w = doJSON(t, r, http.MethodPost, "/api/comments", map[string]any{
		"user_id": creator.ID, "content_id": content.ID, "text": "root",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var root models.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &root))

	w = doJSON(t, r, http.MethodPost, "/api/comments", map[string]any{
		"user_id": creator.ID, "content_id": content.ID, "text": "reply",
		"parent_comment_id": root.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/comments/%d", root.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/content/%d/comments", content.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var remaining []models.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &remaining))
	assert.Empty(t, remaining)

	// Subscription tiers hang off the creator.
	w = doJSON(t, r, http.MethodPost, "/api/subscription-tiers", map[string]any{
		"user_id": creator.ID, "name": "Supporter", "price": 500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/users/%d/subscription-tiers", creator.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tiers []models.SubscriptionTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiers))
	require.Len(t, tiers, 1)
	assert.Equal(t, "Supporter", tiers[0].Name)

	// Deleting the content takes its episode and interactions along.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/content/%d", content.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/episodes/%d", episode.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/interactions/%d", like.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserPatchEndToEnd(t *testing.T) {
	r := setupAPI()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "rin",
		"password": "long-enough-password",
		"email":    "rin@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/users/%d", user.ID), map[string]any{
		"bio": "ink and pixels",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "ink and pixels", *updated.Bio)
	assert.Equal(t, "rin", updated.Username)

	// Changing the password re-hashes it and the new one logs in.
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/users/%d", user.ID), map[string]any{
		"password": "brand-new-password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "rin", "password": "brand-new-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "rin", "password": "long-enough-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown and malformed ids.
	w = doJSON(t, r, http.MethodGet, "/api/users/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
