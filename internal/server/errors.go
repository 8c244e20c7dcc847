package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	carrierdomain "github.com/harborline/freightline/internal/carrier/domain"
	currencydomain "github.com/harborline/freightline/internal/currency/domain"
	"github.com/harborline/freightline/internal/pricing"
	quotedomain "github.com/harborline/freightline/internal/quote/domain"
	ratedomain "github.com/harborline/freightline/internal/ratecard/domain"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInternal       = errors.New("internal_error")
	ErrInvalidRequest = errors.New("invalid_request")
)

// ErrorHandlingMiddleware converts the last gin error into a JSON error
// body. Handlers never write error responses themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ratedomain.ErrInvalidID),
		errors.Is(err, ratedomain.ErrInvalidMode),
		errors.Is(err, ratedomain.ErrInvalidType),
		errors.Is(err, ratedomain.ErrInvalidStatus),
		errors.Is(err, ratedomain.ErrInvalidSection),
		errors.Is(err, ratedomain.ErrInvalidBasis),
		errors.Is(err, ratedomain.ErrInvalidValidityWindow),
		errors.Is(err, ratedomain.ErrInvalidDate),
		errors.Is(err, carrierdomain.ErrInvalidID),
		errors.Is(err, carrierdomain.ErrInvalidCode),
		errors.Is(err, carrierdomain.ErrInvalidName),
		errors.Is(err, currencydomain.ErrInvalidCurrency),
		errors.Is(err, currencydomain.ErrInvalidRate),
		errors.Is(err, currencydomain.ErrBaseImmutable),
		errors.Is(err, quotedomain.ErrInvalidRequest),
		errors.Is(err, pricing.ErrMissingRate),
		errors.Is(err, pricing.ErrUnknownBasis):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ratedomain.ErrNotFound),
		errors.Is(err, ratedomain.ErrNoDraft),
		errors.Is(err, carrierdomain.ErrNotFound),
		errors.Is(err, currencydomain.ErrNotFound),
		errors.Is(err, quotedomain.ErrNoMatch),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ratedomain.ErrDraftInProgress),
		errors.Is(err, carrierdomain.ErrCodeConflict):
		return true
	default:
		return false
	}
}
