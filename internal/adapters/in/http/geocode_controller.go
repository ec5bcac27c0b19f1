package http

import (
	"net/http"
	"strconv"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/in"
	"github.com/gin-gonic/gin"
)

type GeocodeController struct {
	useCase in.GeocodingUseCase
	cfg     *config.Config
}

func NewGeocodeController(useCase in.GeocodingUseCase, cfg *config.Config) *GeocodeController {
	return &GeocodeController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *GeocodeController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(basicAuth(c.cfg))
	{
		api.GET("/geocode/reverse", c.reverse)
		api.GET("/geocode/search", c.search)
	}
}

func (c *GeocodeController) reverse(ctx *gin.Context) {
	lat, err := strconv.ParseFloat(ctx.Query("lat"), 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lat parameter"})
		return
	}

	lon, err := strconv.ParseFloat(ctx.Query("lon"), 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lon parameter"})
		return
	}

	point := c.useCase.Reverse(ctx.Request.Context(), lat, lon)

	ctx.JSON(http.StatusOK, point)
}

func (c *GeocodeController) search(ctx *gin.Context) {
	query := ctx.Query("q")
	if query == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter q is required"})
		return
	}

	point, err := c.useCase.Forward(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, point)
}
