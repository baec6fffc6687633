package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/services"
)

type HealthMetricsHandler struct {
	svc *services.HealthMetricsService
}

func NewHealthMetricsHandler(svc *services.HealthMetricsService) *HealthMetricsHandler {
	return &HealthMetricsHandler{svc: svc}
}

type createHealthMetricsRequest struct {
	CurrentWeightKg float64  `json:"current_weight_kg" binding:"required"`
	BodyFatPercent  *float64 `json:"body_fat_percent"`
	GoalWeightKg    *float64 `json:"goal_weight_kg"`
	WaterPercent    *float64 `json:"water_percent"`
	WaistCm         *float64 `json:"waist_cm"`
	HipCm           *float64 `json:"hip_cm"`
	ChestCm         *float64 `json:"chest_cm"`
	ThighCm         *float64 `json:"thigh_cm"`
	ArmCm           *float64 `json:"arm_cm"`
	NeckCm          *float64 `json:"neck_cm"`
	Notes           string   `json:"notes" binding:"max=1000"`
}

type patchHealthMetricsRequest struct {
	CurrentWeightKg *float64 `json:"current_weight_kg"`
	BodyFatPercent  *float64 `json:"body_fat_percent"`
	GoalWeightKg    *float64 `json:"goal_weight_kg"`
	WaterPercent    *float64 `json:"water_percent"`
	WaistCm         *float64 `json:"waist_cm"`
	HipCm           *float64 `json:"hip_cm"`
	ChestCm         *float64 `json:"chest_cm"`
	ThighCm         *float64 `json:"thigh_cm"`
	ArmCm           *float64 `json:"arm_cm"`
	NeckCm          *float64 `json:"neck_cm"`
	Notes           *string  `json:"notes" binding:"omitempty,max=1000"`
	Version         int      `json:"version"`
}

func (h *HealthMetricsHandler) RegisterRoutes(router *gin.RouterGroup) {
	metrics := router.Group("/health-metrics")
	{
		metrics.POST("", h.Create)
		metrics.GET("", h.List)
		metrics.GET("/latest", h.Latest)
		metrics.GET("/calculations", h.Calculations)
		metrics.GET("/:id", h.Get)
		metrics.PATCH("/:id", h.Patch)
		metrics.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary      Record a body measurement and derive its metrics
// @Tags         health-metrics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHealthMetricsRequest  true  "raw measurement"
// @Success      201   {object}  domain.HealthMetrics
// @Failure      400   {object}  errorResponse
// @Router       /health-metrics [post]
func (h *HealthMetricsHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req createHealthMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.svc.Create(c.Request.Context(), userID, domain.MeasurementInput{
		CurrentWeightKg: req.CurrentWeightKg,
		BodyFatPercent:  req.BodyFatPercent,
		GoalWeightKg:    req.GoalWeightKg,
		WaterPercent:    req.WaterPercent,
		WaistCm:         req.WaistCm,
		HipCm:           req.HipCm,
		ChestCm:         req.ChestCm,
		ThighCm:         req.ThighCm,
		ArmCm:           req.ArmCm,
		NeckCm:          req.NeckCm,
		Notes:           req.Notes,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List godoc
// @Summary      All entries of the user, newest first
// @Tags         health-metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.HealthMetrics
// @Router       /health-metrics [get]
func (h *HealthMetricsHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Latest godoc
// @Summary      Newest entry of the user
// @Tags         health-metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.HealthMetrics
// @Failure      404  {object}  errorResponse
// @Router       /health-metrics/latest [get]
func (h *HealthMetricsHandler) Latest(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entry, err := h.svc.Latest(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Calculations godoc
// @Summary      Classified summary of the newest entry
// @Tags         health-metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.MetricsSummary
// @Failure      404  {object}  errorResponse
// @Router       /health-metrics/calculations [get]
func (h *HealthMetricsHandler) Calculations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *HealthMetricsHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	entry, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Patch godoc
// @Summary      Merge changed fields into an entry and recompute it
// @Tags         health-metrics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "entry id"
// @Param        body  body      patchHealthMetricsRequest  true  "changed fields and the version last read"
// @Success      200   {object}  domain.HealthMetrics
// @Failure      409   {object}  errorResponse
// @Router       /health-metrics/{id} [patch]
func (h *HealthMetricsHandler) Patch(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req patchHealthMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	entry, err := h.svc.Update(c.Request.Context(), services.UpdateHealthMetricsInput{
		ID:     c.Param("id"),
		UserID: userID,
		Patch: domain.MeasurementPatch{
			CurrentWeightKg: req.CurrentWeightKg,
			BodyFatPercent:  req.BodyFatPercent,
			GoalWeightKg:    req.GoalWeightKg,
			WaterPercent:    req.WaterPercent,
			WaistCm:         req.WaistCm,
			HipCm:           req.HipCm,
			ChestCm:         req.ChestCm,
			ThighCm:         req.ThighCm,
			ArmCm:           req.ArmCm,
			NeckCm:          req.NeckCm,
			Notes:           req.Notes,
		},
		Version: req.Version,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *HealthMetricsHandler) Delete(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
