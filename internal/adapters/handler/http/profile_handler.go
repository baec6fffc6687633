package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/services"
)

type ProfileHandler struct {
	svc *services.ProfileService
}

func NewProfileHandler(svc *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// updateProfileRequest uses pointers so absent fields are left untouched.
// date_of_birth is a calendar date (YYYY-MM-DD).
type updateProfileRequest struct {
	FirstName          *string  `json:"first_name"`
	LastName           *string  `json:"last_name"`
	DateOfBirth        *string  `json:"date_of_birth"`
	HeightCm           *float64 `json:"height_cm"`
	WeightKg           *float64 `json:"weight_kg"`
	Gender             *string  `json:"gender"`
	ActivityLevel      *string  `json:"activity_level"`
	ActivityMultiplier *float64 `json:"activity_multiplier"`
}

type profileResponse struct {
	*domain.User
	Effective domain.Profile `json:"effective_profile"`
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/profile", h.Get)
	router.PUT("/profile", h.Update)
}

// Get godoc
// @Summary      Current user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{User: view.User, Effective: view.Effective})
}

// Update godoc
// @Summary      Update profile fields used by the metrics calculator
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "fields to change"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	upd := domain.ProfileUpdate{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		HeightCm:           req.HeightCm,
		WeightKg:           req.WeightKg,
		Gender:             req.Gender,
		ActivityLevel:      req.ActivityLevel,
		ActivityMultiplier: req.ActivityMultiplier,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(time.DateOnly, *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid date_of_birth, use YYYY-MM-DD"})
			return
		}
		upd.DateOfBirth = &dob
	}

	view, err := h.svc.Update(c.Request.Context(), userID, upd)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{User: view.User, Effective: view.Effective})
}
