package apperrors

import (
	"castingfy/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope: {"error": {...}}.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError renders any error as JSON. Unknown errors are wrapped
// as 500 and their cause stays server-side.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
