package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/services"
)

type MealHandler struct {
	svc *services.MealService
}

func NewMealHandler(svc *services.MealService) *MealHandler {
	return &MealHandler{svc: svc}
}

type createMealRequest struct {
	Name          string    `json:"name" binding:"required,max=255"`
	Description   string    `json:"description"`
	MealTime      time.Time `json:"meal_time" binding:"required"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFat      float64   `json:"total_fat"`
	TotalFiber    float64   `json:"total_fiber"`
	TotalSugar    float64   `json:"total_sugar"`
	TotalSodium   float64   `json:"total_sodium"`
	MealType      string    `json:"meal_type"`
	ServingSize   float64   `json:"serving_size"`
	ServingUnit   string    `json:"serving_unit"`
}

type updateMealRequest struct {
	Name          *string    `json:"name" binding:"omitempty,max=255"`
	Description   *string    `json:"description"`
	MealTime      *time.Time `json:"meal_time"`
	TotalCalories *float64   `json:"total_calories"`
	TotalProtein  *float64   `json:"total_protein"`
	TotalCarbs    *float64   `json:"total_carbs"`
	TotalFat      *float64   `json:"total_fat"`
	TotalFiber    *float64   `json:"total_fiber"`
	TotalSugar    *float64   `json:"total_sugar"`
	TotalSodium   *float64   `json:"total_sodium"`
	MealType      *string    `json:"meal_type"`
	ServingSize   *float64   `json:"serving_size"`
	ServingUnit   *string    `json:"serving_unit"`
	Version       int        `json:"version"`
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.POST("", h.Create)
		meals.GET("", h.List)
		meals.GET("/streak/current", h.CurrentStreak)
		meals.GET("/:id", h.Get)
		meals.PUT("/:id", h.Update)
		meals.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary      Log a meal
// @Tags         meals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMealRequest  true  "meal"
// @Success      201   {object}  domain.Meal
// @Failure      400   {object}  errorResponse
// @Router       /meals [post]
func (h *MealHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	m, err := h.svc.Create(c.Request.Context(), services.CreateMealInput{
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		MealTime:      req.MealTime,
		TotalCalories: req.TotalCalories,
		TotalProtein:  req.TotalProtein,
		TotalCarbs:    req.TotalCarbs,
		TotalFat:      req.TotalFat,
		TotalFiber:    req.TotalFiber,
		TotalSugar:    req.TotalSugar,
		TotalSodium:   req.TotalSodium,
		MealType:      req.MealType,
		ServingSize:   req.ServingSize,
		ServingUnit:   req.ServingUnit,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

func (h *MealHandler) List(c *gin.Context) {
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

func (h *MealHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	m, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MealHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	m, err := h.svc.Update(c.Request.Context(), services.UpdateMealInput{
		ID:            c.Param("id"),
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		MealTime:      req.MealTime,
		TotalCalories: req.TotalCalories,
		TotalProtein:  req.TotalProtein,
		TotalCarbs:    req.TotalCarbs,
		TotalFat:      req.TotalFat,
		TotalFiber:    req.TotalFiber,
		TotalSugar:    req.TotalSugar,
		TotalSodium:   req.TotalSodium,
		MealType:      req.MealType,
		ServingSize:   req.ServingSize,
		ServingUnit:   req.ServingUnit,
		Version:       req.Version,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MealHandler) Delete(c *gin.Context) {
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
// @Summary      Consecutive local days with a logged meal
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        tz   query     string  false  "IANA timezone"
// @Success      200  {object}  streak.Result
// @Router       /meals/streak/current [get]
func (h *MealHandler) CurrentStreak(c *gin.Context) {
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
