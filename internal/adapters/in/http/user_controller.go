package http

import (
	"net/http"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/in"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	useCase       in.UserUseCase
	geocoding     in.GeocodingUseCase
	notifications in.NotificationUseCase
	cfg           *config.Config
}

func NewUserController(
	useCase in.UserUseCase,
	geocoding in.GeocodingUseCase,
	notifications in.NotificationUseCase,
	cfg *config.Config,
) *UserController {
	return &UserController{
		useCase:       useCase,
		geocoding:     geocoding,
		notifications: notifications,
		cfg:           cfg,
	}
}

func (c *UserController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(basicAuth(c.cfg))
	{
		api.PUT("/users/:userId/location", c.saveLocation)
		api.GET("/users/:userId/location", c.getLocation)
		api.GET("/users/:userId/notifications", c.listNotifications)
	}
}

type SaveLocationRequest struct {
	Lat     *float64 `json:"lat" binding:"required"`
	Lon     *float64 `json:"lon" binding:"required"`
	Address string   `json:"address,omitempty"`
}

func (c *UserController) saveLocation(ctx *gin.Context) {
	var req SaveLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := domain.GeoPoint{
		Lat:     *req.Lat,
		Lon:     *req.Lon,
		Address: req.Address,
	}

	// Пустой адрес восстанавливаем обратным геокодированием
	if location.Address == "" {
		location = *c.geocoding.Reverse(ctx.Request.Context(), location.Lat, location.Lon)
	}

	if err := c.useCase.SaveSelectedLocation(ctx.Request.Context(), ctx.Param("userId"), location); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, location)
}

func (c *UserController) getLocation(ctx *gin.Context) {
	location, err := c.useCase.GetSelectedLocation(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, location)
}

func (c *UserController) listNotifications(ctx *gin.Context) {
	notifications, err := c.notifications.List(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
