package integration

import (
	"net/http"
	"strings"
	"testing"

	"castingfy/internal/models"
	"castingfy/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTalentProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	userID, token := ts.CreateActiveUser("actress@example.com", models.UserRoleTalent, "Old Name")

	w := ts.SendRequest(http.MethodPut, "/api/v1/profiles/talent", map[string]interface{}{
		"display_name":     "New Name",
		"bio":              "Award-winning stage actress",
		"location":         "Almaty",
		"gender":           "female",
		"skills":           []string{"acting", "singing"},
		"languages":        []string{"kazakh", "russian", "english"},
		"instagram_handle": "newname_official",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile struct {
		UserID      string `json:"user_id"`
		DisplayName string `json:"display_name"`
		Gender      string `json:"gender"`
	}
	ts.DecodeJSON(w, &profile)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "New Name", profile.DisplayName)
	assert.Equal(t, "female", profile.Gender)
}

func TestUpdateTalentProfileRejectsBadGender(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("g@example.com", models.UserRoleTalent, "G")

	w := ts.SendRequest(http.MethodPut, "/api/v1/profiles/talent", map[string]interface{}{
		"display_name": "G",
		"gender":       "robot",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRoleMismatch(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, talentToken := ts.CreateActiveUser("t@example.com", models.UserRoleTalent, "T")
	_, producerToken := ts.CreateActiveUser("p@example.com", models.UserRoleProducer, "P")

	// A talent cannot edit a producer profile and vice versa.
	w := ts.SendRequest(http.MethodPut, "/api/v1/profiles/producer", map[string]interface{}{
		"display_name": "Sneaky",
	}, talentToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.SendRequest(http.MethodPut, "/api/v1/profiles/talent", map[string]interface{}{
		"display_name": "Sneaky",
	}, producerToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublicProfileHidesPrivateFields(t *testing.T) {
	ts := helpers.NewTestServer(t)
	userID, _ := ts.CreateActiveUser("private@example.com", models.UserRoleTalent, "Private Person")

	w := ts.SendRequest(http.MethodGet, "/api/v1/users/"+userID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "private@example.com")
	assert.False(t, strings.Contains(body, "password"), "password material must never leak")

	var resp struct {
		ID           string  `json:"id"`
		Role         string  `json:"role"`
		Rating       float64 `json:"rating"`
		ReviewCount  int64   `json:"review_count"`
		GalleryCount int64   `json:"gallery_count"`
	}
	ts.DecodeJSON(w, &resp)
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "talent", resp.Role)
	assert.Equal(t, int64(0), resp.ReviewCount)
}

func TestGetMe(t *testing.T) {
	ts := helpers.NewTestServer(t)
	userID, token := ts.CreateActiveUser("me@example.com", models.UserRoleProducer, "Me Myself")

	w := ts.SendRequest(http.MethodGet, "/api/v1/users/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID              string `json:"id"`
		Email           string `json:"email"`
		ProducerProfile *struct {
			DisplayName string `json:"display_name"`
		} `json:"producer_profile"`
	}
	ts.DecodeJSON(w, &resp)
	assert.Equal(t, userID, resp.ID)
	assert.Equal(t, "me@example.com", resp.Email)
	require.NotNil(t, resp.ProducerProfile)
	assert.Equal(t, "Me Myself", resp.ProducerProfile.DisplayName)
}

func TestDeactivateAccountKeepsRow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	userID, token := ts.CreateActiveUser("leaver@example.com", models.UserRoleTalent, "Leaver")

	w := ts.SendRequest(http.MethodDelete, "/api/v1/users/me", nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// The account is suspended, never removed: the row survives and
	// anything referencing the id keeps resolving.
	var user models.User
	require.NoError(t, ts.DB.First(&user, "id = ?", userID).Error)
	assert.Equal(t, models.UserStatusSuspended, user.Status)

	// A suspended account cannot log back in.
	w = ts.SendRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "leaver@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Its refresh tokens are gone.
	var tokens int64
	require.NoError(t, ts.DB.Model(&models.RefreshToken{}).Where("user_id = ?", userID).Count(&tokens).Error)
	assert.Equal(t, int64(0), tokens)

	// Its public profile stays reachable.
	w = ts.SendRequest(http.MethodGet, "/api/v1/users/"+userID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
