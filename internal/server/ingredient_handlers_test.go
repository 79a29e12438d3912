package server

import (
	"fmt"
	"net/http"
	"testing"

	"recipehub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientEndpoints(t *testing.T) {
	_, app, db := newTestServer(t)

	for _, ing := range []models.Ingredient{
		{Name: "salt", MeasurementUnit: "g"},
		{Name: "saffron", MeasurementUnit: "g"},
		{Name: "milk", MeasurementUnit: "ml"},
	} {
		ing := ing
		require.NoError(t, db.Create(&ing).Error)
	}

	t.Run("Prefix search", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/ingredients?name=sa", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body []models.Ingredient
		decodeBody(t, resp, &body)
		require.Len(t, body, 2)
		assert.Equal(t, "saffron", body[0].Name)
		assert.Equal(t, "salt", body[1].Name)
	})

	t.Run("Get by ID", func(t *testing.T) {
		var milk models.Ingredient
		require.NoError(t, db.Where("name = ?", "milk").First(&milk).Error)

		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/ingredients/%d", milk.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body models.Ingredient
		decodeBody(t, resp, &body)
		assert.Equal(t, "milk", body.Name)
		assert.Equal(t, "ml", body.MeasurementUnit)
	})

	t.Run("Missing ingredient", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/ingredients/9999", "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
