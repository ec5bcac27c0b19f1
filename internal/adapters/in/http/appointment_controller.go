package http

import (
	"net/http"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/json_types"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/in"
	"github.com/gin-gonic/gin"
)

type AppointmentController struct {
	useCase in.AppointmentUseCase
	cfg     *config.Config
}

func NewAppointmentController(useCase in.AppointmentUseCase, cfg *config.Config) *AppointmentController {
	return &AppointmentController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *AppointmentController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(basicAuth(c.cfg))
	{
		api.POST("/appointments", c.book)
		api.GET("/appointments/:id", c.get)
		api.GET("/users/:userId/appointments", c.listForUser)
		api.GET("/technicians/:technicianId/appointments", c.listForTechnician)

		api.POST("/appointments/:id/accept", c.accept)
		api.POST("/appointments/:id/reject", c.reject)
		api.POST("/appointments/:id/cancel", c.cancel)
		api.POST("/appointments/:id/arrive", c.arrive)
		api.POST("/appointments/:id/start-repair", c.startRepair)
		api.POST("/appointments/:id/start-testing", c.startTesting)
		api.POST("/appointments/:id/complete", c.complete)
	}
}

type BookAppointmentRequest struct {
	UserID        string                   `json:"userId" binding:"required"`
	TechnicianID  string                   `json:"technicianId" binding:"required"`
	ServiceType   string                   `json:"serviceType" binding:"required,oneof=home-service walk-in"`
	ScheduledDate json_types.DateTime      `json:"scheduledDate" binding:"required"`
	Diagnosis     domain.DiagnosisSnapshot `json:"diagnosis" binding:"required"`
	Location      *domain.GeoPoint         `json:"location,omitempty"`
}

type TechnicianActionRequest struct {
	TechnicianID string `json:"technicianId" binding:"required"`
	Reason       string `json:"reason,omitempty"`
}

type CancelAppointmentRequest struct {
	UserID string `json:"userId" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

type StartRepairRequest struct {
	TechnicianID        string              `json:"technicianId" binding:"required"`
	EstimatedCompletion json_types.DateTime `json:"estimatedCompletion" binding:"required"`
}

func (c *AppointmentController) book(ctx *gin.Context) {
	var req BookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.Book(ctx.Request.Context(), in.BookAppointmentRequest{
		UserID:        req.UserID,
		TechnicianID:  req.TechnicianID,
		ServiceType:   domain.ServiceType(req.ServiceType),
		ScheduledDate: req.ScheduledDate.Date,
		Diagnosis:     req.Diagnosis,
		Location:      req.Location,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, appointment)
}

func (c *AppointmentController) get(ctx *gin.Context) {
	appointment, err := c.useCase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) listForUser(ctx *gin.Context) {
	appointments, err := c.useCase.ListForUser(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (c *AppointmentController) listForTechnician(ctx *gin.Context) {
	appointments, err := c.useCase.ListForTechnician(ctx.Request.Context(), ctx.Param("technicianId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (c *AppointmentController) accept(ctx *gin.Context) {
	var req TechnicianActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.Accept(ctx.Request.Context(), ctx.Param("id"), req.TechnicianID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) reject(ctx *gin.Context) {
	var req TechnicianActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.Reject(ctx.Request.Context(), ctx.Param("id"), req.TechnicianID, req.Reason)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) cancel(ctx *gin.Context) {
	var req CancelAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.Cancel(ctx.Request.Context(), ctx.Param("id"), req.UserID, req.Reason)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) arrive(ctx *gin.Context) {
	var req TechnicianActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.MarkArrived(ctx.Request.Context(), ctx.Param("id"), req.TechnicianID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) startRepair(ctx *gin.Context) {
	var req StartRepairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.StartRepair(ctx.Request.Context(), ctx.Param("id"), req.TechnicianID, req.EstimatedCompletion.Date)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) startTesting(ctx *gin.Context) {
	var req TechnicianActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.StartTesting(ctx.Request.Context(), ctx.Param("id"), req.TechnicianID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}

func (c *AppointmentController) complete(ctx *gin.Context) {
	var req TechnicianActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := c.useCase.Complete(ctx.Request.Context(), ctx.Param("id"), req.TechnicianID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, appointment)
}
