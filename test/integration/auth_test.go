package integration

import (
	"net/http"
	"testing"

	"castingfy/internal/models"
	"castingfy/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndVerifyFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	userID := ts.RegisterUser("talent@example.com", models.UserRoleTalent, "Jane Doe")
	require.NotEmpty(t, userID)

	// Verification email went out to the new address.
	assert.Equal(t, "talent@example.com", ts.Email.LastTo())

	// Account starts pending and unverified.
	var user models.User
	require.NoError(t, ts.DB.First(&user, "id = ?", userID).Error)
	assert.Equal(t, models.UserStatusPending, user.Status)
	assert.False(t, user.IsVerified)

	ts.VerifyUser("talent@example.com")

	require.NoError(t, ts.DB.First(&user, "id = ?", userID).Error)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerificationToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	ts.RegisterUser("dup@example.com", models.UserRoleTalent, "First")

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":        "dup@example.com",
		"password":     "password123",
		"role":         "producer",
		"display_name": "Second",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	ts := helpers.NewTestServer(t)

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":        "admin@example.com",
		"password":     "password123",
		"role":         "admin",
		"display_name": "Sneaky",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.RegisterUser("user@example.com", models.UserRoleTalent, "User")

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshRotatesToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.RegisterUser("rotate@example.com", models.UserRoleTalent, "Rotator")
	ts.VerifyUser("rotate@example.com")

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "rotate@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		RefreshToken string `json:"refresh_token"`
	}
	ts.DecodeJSON(w, &login)

	w = ts.SendRequest(http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": login.RefreshToken,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var refreshed struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	ts.DecodeJSON(w, &refreshed)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The consumed token no longer works.
	w = ts.SendRequest(http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": login.RefreshToken,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestChangePassword(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("pw@example.com", models.UserRoleTalent, "Changer")

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/change-password", map[string]string{
		"current_password": "password123",
		"new_password":     "newpassword456",
	}, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	// Old password is gone, new one works.
	w = ts.SendRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "pw@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.Login("pw@example.com", "newpassword456")
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	ts := helpers.NewTestServer(t)
	_, token := ts.CreateActiveUser("pw2@example.com", models.UserRoleTalent, "Changer")

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/change-password", map[string]string{
		"current_password": "not-the-password",
		"new_password":     "newpassword456",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	ts := helpers.NewTestServer(t)

	w := ts.SendRequest(http.MethodGet, "/api/v1/users/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
