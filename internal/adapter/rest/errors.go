package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviseapp/revise/internal/entity"
)

var errInvalidID = errors.New("invalid id")

// APIError is the wire shape of a failed request.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorEnvelope wraps APIError for JSON responses.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// respondError translates domain sentinels onto HTTP statuses. Anything
// unrecognised is a 500 with a generic message so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidConfidenceLevel),
		errors.Is(err, entity.ErrTopicNotRated):
		respondErrorStatus(c, http.StatusBadRequest, "invalid_argument", err)
	case errors.Is(err, entity.ErrSubjectNotFound),
		errors.Is(err, entity.ErrTopicNotFound),
		errors.Is(err, entity.ErrSubtopicNotFound),
		errors.Is(err, entity.ErrTaskNotFound),
		errors.Is(err, entity.ErrTaskTypeNotFound),
		errors.Is(err, entity.ErrUserNotFound):
		respondErrorStatus(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, entity.ErrDuplicateUser):
		respondErrorStatus(c, http.StatusConflict, "already_exists", err)
	case errors.Is(err, entity.ErrInvalidCredentials):
		respondErrorStatus(c, http.StatusUnauthorized, "unauthenticated", err)
	case errors.Is(err, entity.ErrStatsUnavailable):
		respondErrorStatus(c, http.StatusServiceUnavailable, "unavailable", err)
	default:
		c.JSON(http.StatusInternalServerError, ErrorEnvelope{
			Error: APIError{Message: "internal error", Code: "internal"},
		})
	}
}

func respondErrorStatus(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: code}})
}
