package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

var badRequestErrors = []error{
	domain.ErrInvalidMeasurement,
	domain.ErrInvalidEmail,
	domain.ErrPasswordTooShort,
	domain.ErrInvalidGender,
	domain.ErrInvalidActivityLevel,
	domain.ErrInvalidProfileValue,
	domain.ErrWorkoutNameEmpty,
	domain.ErrInvalidWorkoutType,
	domain.ErrWorkoutTimeMissing,
	domain.ErrWorkoutEndBefore,
	domain.ErrNegativeTotals,
	domain.ErrMealNameEmpty,
	domain.ErrInvalidMealType,
	domain.ErrMealTimeMissing,
	domain.ErrNegativeNutrients,
}

var notFoundErrors = []error{
	domain.ErrMeasurementNotFound,
	domain.ErrWorkoutNotFound,
	domain.ErrMealNotFound,
	domain.ErrUserNotFound,
}

var conflictErrors = []error{
	domain.ErrMeasurementConflict,
	domain.ErrWorkoutConflict,
	domain.ErrMealConflict,
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// handleError maps domain sentinels to status codes. Anything unknown is
// logged and reported as a 500 without details.
func handleError(c *gin.Context, err error) {
	switch {
	case isAny(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})
	case isAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, errorResponse{Error: "email already exists"})
	case isAny(err, conflictErrors):
		c.JSON(http.StatusConflict, errorResponse{
			Error:   "version conflict",
			Message: "Data has been modified elsewhere. Reload and retry.",
		})
	default:
		_ = c.Error(err)
		log.Errorf("[ERROR] %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// currentUser reads the authenticated user id. The auth middleware always
// sets it, so a miss is a wiring bug.
func currentUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "user context missing"})
	}
	return userID, ok
}
