package server

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"recipehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionFlow(t *testing.T) {
	s, app, db := newTestServer(t)

	follower := createHandlerTestUser(t, db, "follower")
	author := createHandlerTestUser(t, db, "chef")
	bearer := bearerFor(t, s, follower)

	subscribeURL := fmt.Sprintf("/api/users/%d/subscribe", author.ID)

	t.Run("Subscribe", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, subscribeURL, bearer, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Username     string `json:"username"`
			IsSubscribed bool   `json:"is_subscribed"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "chef", body.Username)
		assert.True(t, body.IsSubscribed)
	})

	t.Run("Subscribing again is a conflict", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, subscribeURL, bearer, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Self-subscription is rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/users/%d/subscribe", follower.ID), bearer, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Subscriptions listing shows the author", func(t *testing.T) {
		db.Create(&models.Recipe{AuthorID: author.ID, Name: "Soup", Text: "x", CookingTime: 5})
		db.Create(&models.Recipe{AuthorID: author.ID, Name: "Cake", Text: "x", CookingTime: 5})

		resp := doJSON(t, app, http.MethodGet, "/api/users/subscriptions?recipes_limit=1", bearer, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body []struct {
			Username     string          `json:"username"`
			RecipesCount int             `json:"recipes_count"`
			Recipes      []models.Recipe `json:"recipes"`
		}
		decodeBody(t, resp, &body)
		require.Len(t, body, 1)
		assert.Equal(t, "chef", body[0].Username)
		assert.Equal(t, 2, body[0].RecipesCount)
		assert.Len(t, body[0].Recipes, 1)
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, subscribeURL, bearer, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Unsubscribing again is not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, subscribeURL, bearer, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Subscribe to a missing user", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/api/users/9999/subscribe", bearer, nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUserProfiles(t *testing.T) {
	s, app, db := newTestServer(t)

	user := createHandlerTestUser(t, db, "profiled")
	other := createHandlerTestUser(t, db, "other")
	bearer := bearerFor(t, s, user)

	t.Run("Public profile is visible anonymously", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d", other.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Username     string `json:"username"`
			IsSubscribed bool   `json:"is_subscribed"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "other", body.Username)
		assert.False(t, body.IsSubscribed)
	})

	t.Run("Missing profile", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users/9999", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Profile update", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPut, "/api/users/me", bearer,
			strings.NewReader(`{"first_name":"Ada","last_name":"Lovelace"}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "Ada", body.FirstName)
		assert.Equal(t, "Lovelace", body.LastName)
	})

	t.Run("User listing is public", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/users", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body []struct {
			Username string `json:"username"`
		}
		decodeBody(t, resp, &body)
		assert.Len(t, body, 2)
	})
}
