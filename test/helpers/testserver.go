package helpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"castingfy/internal/app"
	"castingfy/internal/config"
	"castingfy/internal/email"
	"castingfy/internal/models"
	"castingfy/internal/services"
	"castingfy/internal/social"
	"castingfy/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestServer bundles the router, its database and the captured
// outbound email for request-level tests.
type TestServer struct {
	t      *testing.T
	DB     *gorm.DB
	Router *gin.Engine
	Email  *email.MockProvider
}

// NewTestServer builds a full API server backed by an in-memory
// database, a temp-dir storage backend and a mock mail provider.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	cfg.Social.InstagramBaseURL = "http://127.0.0.1:0"
	cfg.Social.TimeoutSeconds = 1
	config.AppConfig = cfg

	db := NewTestDB(t)

	mock := email.NewMockProvider()
	container := services.NewServiceContainer(
		email.NewService(mock),
		storage.NewLocalStorage(),
		social.NewInstagramClientWithBase(cfg.Social.InstagramBaseURL, time.Second),
	)

	return &TestServer{
		t:      t,
		DB:     db,
		Router: app.SetupRouter(db, container),
		Email:  mock,
	}
}

// SendRequest performs one request against the router. A non-empty
// token goes out as a Bearer header.
func (ts *TestServer) SendRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	ts.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded response body.
func (ts *TestServer) DecodeJSON(w *httptest.ResponseRecorder, target interface{}) {
	ts.t.Helper()
	require.NoError(ts.t, json.Unmarshal(w.Body.Bytes(), target))
}

// RegisterUser creates an account through the API and returns its id.
func (ts *TestServer) RegisterUser(emailAddr string, role models.UserRole, displayName string) string {
	ts.t.Helper()

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"email":        emailAddr,
		"password":     "password123",
		"role":         role,
		"display_name": displayName,
	}, "")
	require.Equal(ts.t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	ts.DecodeJSON(w, &resp)
	return resp.ID
}

// VerifyUser walks the email verification flow using the token stored
// on the account.
func (ts *TestServer) VerifyUser(emailAddr string) {
	ts.t.Helper()

	var user models.User
	require.NoError(ts.t, ts.DB.Where("email = ?", emailAddr).First(&user).Error)
	require.NotEmpty(ts.t, user.VerificationToken)

	w := ts.SendRequest(http.MethodGet, "/api/v1/auth/verify-email?token="+user.VerificationToken, nil, "")
	require.Equal(ts.t, http.StatusOK, w.Code, w.Body.String())
}

// Login returns the access token for the credentials.
func (ts *TestServer) Login(emailAddr, password string) string {
	ts.t.Helper()

	w := ts.SendRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    emailAddr,
		"password": password,
	}, "")
	require.Equal(ts.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	ts.DecodeJSON(w, &resp)
	return resp.AccessToken
}

// CreateActiveUser registers, verifies and logs in one user.
func (ts *TestServer) CreateActiveUser(emailAddr string, role models.UserRole, displayName string) (userID, token string) {
	ts.t.Helper()

	userID = ts.RegisterUser(emailAddr, role, displayName)
	ts.VerifyUser(emailAddr)
	token = ts.Login(emailAddr, "password123")
	return userID, token
}
