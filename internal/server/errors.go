package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	reportdomain "github.com/rentora/rentora/internal/report/domain"
	tariffdomain "github.com/rentora/rentora/internal/tariff/domain"
	tenantdomain "github.com/rentora/rentora/internal/tenant/domain"
)

// apiError carries the HTTP status a handler error maps to.
type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *apiError) Error() string { return e.Message }

var (
	ErrNotFound           = &apiError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}
	ErrServiceUnavailable = &apiError{Status: http.StatusServiceUnavailable, Code: "service_unavailable", Message: "service unavailable"}
)

func newValidationError(field, code, message string) error {
	return &apiError{Status: http.StatusBadRequest, Code: code, Message: message, Field: field}
}

func invalidRequestError() error {
	return &apiError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "invalid request body"}
}

// badRequestErrs are domain sentinels that signal caller mistakes.
var badRequestErrs = []error{
	tariffdomain.ErrInvalidOwner,
	tariffdomain.ErrInvalidUnit,
	tariffdomain.ErrInvalidUtilityType,
	tariffdomain.ErrInvalidPeriod,
	tariffdomain.ErrNegativeConsumption,
	tenantdomain.ErrInvalidOwner,
	tenantdomain.ErrInvalidName,
}

// AbortWithError translates service errors into JSON error responses.
func AbortWithError(c *gin.Context, err error) {
	var api *apiError
	if errors.As(err, &api) {
		c.AbortWithStatusJSON(api.Status, gin.H{"error": api})
		return
	}

	var ve *reportdomain.ValidationError
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": ve})
		return
	}

	for _, sentinel := range badRequestErrs {
		if errors.Is(err, sentinel) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"code":    sentinel.Error(),
				"message": strings.ReplaceAll(sentinel.Error(), "_", " "),
			}})
			return
		}
	}

	if errors.Is(err, tariffdomain.ErrMissingSchedule) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": gin.H{
			"code":    tariffdomain.ErrMissingSchedule.Error(),
			"message": "no tariff schedule configured for this utility type",
		}})
		return
	}

	var ce *reportdomain.CollaboratorError
	if errors.As(err, &ce) {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": gin.H{
			"code":    "collaborator_failed",
			"message": "a data source failed while building the report",
			"op":      ce.Op,
		}})
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": gin.H{
		"code":    "internal_error",
		"message": "internal server error",
	}})
}

// parseOptionalTime accepts RFC3339 or plain dates. A plain end date keeps
// its zero clock; the report layer normalizes it to end of day.
func parseOptionalTime(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

func parseOptionalBool(value string) (bool, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "":
		return false, nil
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, errors.New("invalid_bool")
	}
}
