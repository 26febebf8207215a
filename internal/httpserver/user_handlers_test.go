package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/sunnyday_shop/internal/models"
	"github.com/Skotchmaster/sunnyday_shop/internal/transport"
)

func TestSyncUserCreates(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]string{
		"external_id":     "u1",
		"email":           "u1@example.com",
		"name":            "First User",
		"profile_picture": "https://example.com/u1.png",
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/users", load)
	require.NoError(t, env.U.SyncUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.SyncUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User created", resp.Message)
	require.NotZero(t, resp.UserID)

	var user models.User
	require.NoError(t, env.DB.First(&user, resp.UserID).Error)
	require.Equal(t, "u1", user.ExternalID)
	require.Equal(t, "u1@example.com", user.Email)
}

func TestSyncUserUpdatesInPlace(t *testing.T) {
	env := newTestEnv(t)

	first := map[string]string{
		"external_id": "u1",
		"email":       "u1@example.com",
		"name":        "First User",
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/users", first)
	require.NoError(t, env.U.SyncUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	second := map[string]string{
		"external_id": "u1",
		"email":       "renamed@example.com",
		"name":        "Renamed User",
	}
	rec, c = env.doJSONRequest(http.MethodPost, "/api/users", second)
	require.NoError(t, env.U.SyncUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.SyncUserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "User updated", resp.Message)

	var count int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	var user models.User
	require.NoError(t, env.DB.Where("external_id = ?", "u1").First(&user).Error)
	require.Equal(t, "renamed@example.com", user.Email)
	require.Equal(t, "Renamed User", user.Name)
}

func TestSyncUserMissingFields(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]string{"email": "nobody@example.com"}

	_, c := env.doJSONRequest(http.MethodPost, "/api/users", load)
	requireHTTPError(t, env.U.SyncUser(c), http.StatusBadRequest)
}
