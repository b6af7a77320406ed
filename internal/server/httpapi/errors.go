package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/gin-gonic/gin"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

// statusFor maps service errors onto HTTP status codes and stable error codes.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, common.ErrAlreadyExists):
		return http.StatusConflict, "already_exists"
	case errors.Is(err, common.ErrTokenExpired):
		return http.StatusUnauthorized, "token_expired"
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, "refresh_token_expired"
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, common.ErrTransactionFailed):
		return http.StatusServiceUnavailable, "transaction_failed"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(status, errorEnvelope{Error: apiError{Message: msg, Code: code}})
}

// respondServiceError hides the detail of unexpected failures; they are
// logged by the request logger through c.Error.
func respondServiceError(c *gin.Context, err error) {
	status, code := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		respondError(c, status, code, common.ErrorInternal)
		return
	}
	respondError(c, status, code, err)
}

func badRequest(c *gin.Context, err error) {
	respondError(c, http.StatusBadRequest, "invalid_argument", err)
}
