package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"generate-webstory-service/application/ports/inbound"
	"generate-webstory-service/application/ports/outbound"
	"generate-webstory-service/application/services"
	"generate-webstory-service/infrastructure/gin_interface/dto"
)

type WebstoryController interface {
	CreateWebstory(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type webstoryController struct {
	logger   outbound.LoggerPort
	pipeline inbound.WebstoryPipelinePort
}

func NewWebstoryController(logger outbound.LoggerPort, pipeline inbound.WebstoryPipelinePort) WebstoryController {
	return &webstoryController{
		logger:   logger,
		pipeline: pipeline,
	}
}

func (w *webstoryController) CreateWebstory(c *gin.Context) {
	var req dto.CreateWebstoryRequest
	newCtx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.ArticleText) == "" && (strings.TrimSpace(req.Title) == "" || len(req.Bullets) == 0) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "either article_text or title with bullets is required",
		})
		return
	}

	storyID := uuid.NewString()

	story, err := w.pipeline.StartPipeline(newCtx, inbound.StartPipelineParams{
		StoryID:     storyID,
		ArticleText: req.ArticleText,
		Title:       req.Title,
		Bullets:     req.Bullets,
	})
	if err != nil {
		w.logger.ErrorWithFields(err, "webstory pipeline failed", map[string]interface{}{
			"story_id": storyID,
		})
		c.AbortWithStatusJSON(statusForPipelineError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateWebstoryResponse{
		StoryID:     story.ID,
		Title:       story.Title,
		SlideCount:  len(story.Slides),
		PublicURL:   story.PublicURL,
		DownloadURL: story.DownloadURL,
	})
}

func statusForPipelineError(err error) int {
	if errors.Is(err, services.ErrMissingTitle) || errors.Is(err, services.ErrNoBullets) {
		return http.StatusBadRequest
	}

	var storageErr *services.StorageError
	if errors.As(err, &storageErr) {
		return http.StatusInternalServerError
	}

	var summarizationErr *services.SummarizationError
	var promptErr *services.PromptError
	var synthesisErr *services.SynthesisError
	if errors.As(err, &summarizationErr) || errors.As(err, &promptErr) || errors.As(err, &synthesisErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func (w *webstoryController) RegisterRoutes(g *gin.Engine) {
	g.POST("/webstories", w.CreateWebstory)
}
