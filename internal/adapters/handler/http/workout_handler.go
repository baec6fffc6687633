package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/services"
)

type WorkoutHandler struct {
	svc *services.WorkoutService
}

func NewWorkoutHandler(svc *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{svc: svc}
}

type createWorkoutRequest struct {
	Name                string     `json:"name" binding:"required,max=255"`
	Description         string     `json:"description"`
	StartTime           time.Time  `json:"start_time" binding:"required"`
	EndTime             *time.Time `json:"end_time"`
	TotalCaloriesBurned int        `json:"total_calories_burned"`
	TotalDuration       int        `json:"total_duration"`
	TotalSets           int        `json:"total_sets"`
	TotalReps           int        `json:"total_reps"`
	TotalWeight         float64    `json:"total_weight"`
	WorkoutType         string     `json:"workout_type"`
	IsCompleted         bool       `json:"is_completed"`
}

type updateWorkoutRequest struct {
	Name                *string    `json:"name" binding:"omitempty,max=255"`
	Description         *string    `json:"description"`
	StartTime           *time.Time `json:"start_time"`
	EndTime             *time.Time `json:"end_time"`
	TotalCaloriesBurned *int       `json:"total_calories_burned"`
	TotalDuration       *int       `json:"total_duration"`
	TotalSets           *int       `json:"total_sets"`
	TotalReps           *int       `json:"total_reps"`
	TotalWeight         *float64   `json:"total_weight"`
	WorkoutType         *string    `json:"workout_type"`
	IsCompleted         *bool      `json:"is_completed"`
	Version             int        `json:"version"`
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workouts := router.Group("/workouts")
	{
		workouts.POST("", h.Create)
		workouts.GET("", h.List)
		workouts.GET("/streak/current", h.CurrentStreak)
		workouts.GET("/:id", h.Get)
		workouts.PUT("/:id", h.Update)
		workouts.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary      Log a workout
// @Tags         workouts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkoutRequest  true  "workout"
// @Success      201   {object}  domain.Workout
// @Failure      400   {object}  errorResponse
// @Router       /workouts [post]
func (h *WorkoutHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req createWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	w, err := h.svc.Create(c.Request.Context(), services.CreateWorkoutInput{
		UserID:              userID,
		Name:                req.Name,
		Description:         req.Description,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		TotalCaloriesBurned: req.TotalCaloriesBurned,
		TotalDuration:       req.TotalDuration,
		TotalSets:           req.TotalSets,
		TotalReps:           req.TotalReps,
		TotalWeight:         req.TotalWeight,
		WorkoutType:         req.WorkoutType,
		IsCompleted:         req.IsCompleted,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, w)
}

func (h *WorkoutHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.svc.ListByUserID(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *WorkoutHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	w, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	w, err := h.svc.Update(c.Request.Context(), services.UpdateWorkoutInput{
		ID:                  c.Param("id"),
		UserID:              userID,
		Name:                req.Name,
		Description:         req.Description,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		TotalCaloriesBurned: req.TotalCaloriesBurned,
		TotalDuration:       req.TotalDuration,
		TotalSets:           req.TotalSets,
		TotalReps:           req.TotalReps,
		TotalWeight:         req.TotalWeight,
		WorkoutType:         req.WorkoutType,
		IsCompleted:         req.IsCompleted,
		Version:             req.Version,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
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

// CurrentStreak godoc
// @Summary      Consecutive local days with a workout
// @Description  tz is an IANA zone name. Unknown or empty zones fall back to UTC.
// @Tags         workouts
// @Produce      json
// @Security     BearerAuth
// @Param        tz   query     string  false  "IANA timezone"
// @Success      200  {object}  streak.Result
// @Router       /workouts/streak/current [get]
func (h *WorkoutHandler) CurrentStreak(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	res, err := h.svc.CurrentStreak(c.Request.Context(), userID, c.Query("tz"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
