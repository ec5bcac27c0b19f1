package http

import (
	"net/http"

	"github.com/fixmate/repair-marketplace-api/internal/config"
	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/fixmate/repair-marketplace-api/internal/core/ports/in"
	"github.com/gin-gonic/gin"
)

type DiagnosisController struct {
	useCase in.DiagnosisUseCase
	cfg     *config.Config
}

func NewDiagnosisController(useCase in.DiagnosisUseCase, cfg *config.Config) *DiagnosisController {
	return &DiagnosisController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *DiagnosisController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(basicAuth(c.cfg))
	{
		api.POST("/diagnosis/estimate", c.estimate)
		api.GET("/diagnosis/issues/:category", c.issues)
	}
}

type EstimateRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Brand       string `json:"brand" binding:"required"`
	Model       string `json:"model,omitempty"`
	Issue       string `json:"issue,omitempty"`
	CustomIssue string `json:"customIssue,omitempty"`
}

func (c *DiagnosisController) estimate(ctx *gin.Context) {
	var req EstimateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Issue == "" && req.CustomIssue == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Either issue or customIssue is required"})
		return
	}

	estimate, err := c.useCase.Estimate(ctx.Request.Context(), domain.DiagnosisRequest{
		UserID:      req.UserID,
		Category:    req.Category,
		Brand:       req.Brand,
		Model:       req.Model,
		Issue:       req.Issue,
		CustomIssue: req.CustomIssue,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, estimate)
}

func (c *DiagnosisController) issues(ctx *gin.Context) {
	category := ctx.Param("category")

	issues, err := c.useCase.PredefinedIssues(category)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"category": category,
		"issues":   issues,
	})
}
