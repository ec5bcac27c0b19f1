package http

import (
	"io"
	"net/http"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/in"
	"github.com/gin-gonic/gin"
)

type TechnicianController struct {
	useCase in.TechnicianUseCase
	cfg     *config.Config
}

func NewTechnicianController(useCase in.TechnicianUseCase, cfg *config.Config) *TechnicianController {
	return &TechnicianController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *TechnicianController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(basicAuth(c.cfg))
	{
		api.GET("/technicians/:technicianId", c.get)
		api.PUT("/technicians/:technicianId/availability", c.setAvailability)
		api.POST("/technicians/:technicianId/photo", c.setPhoto)
	}
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

func (c *TechnicianController) get(ctx *gin.Context) {
	technician, err := c.useCase.Get(ctx.Request.Context(), ctx.Param("technicianId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, technician)
}

func (c *TechnicianController) setAvailability(ctx *gin.Context) {
	var req SetAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.useCase.SetAvailability(ctx.Request.Context(), ctx.Param("technicianId"), *req.Available); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"available": *req.Available})
}

func (c *TechnicianController) setPhoto(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := c.useCase.SetPhoto(ctx.Request.Context(), ctx.Param("technicianId"), fileHeader.Filename, data)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"photoUrl": url})
}
