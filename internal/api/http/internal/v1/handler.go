package v1

import (
	"github.com/teacher-reviews/backend/internal/config"
	"github.com/teacher-reviews/backend/internal/repository"
	"github.com/teacher-reviews/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// @title TeacherReviews API
// @version 1.0
// @description CRUD API for cities, universities, teachers and reviews

// @BasePath /api

// @securityDefinitions.basic AdminBasicAuth

type Handler struct {
	services  *service.Services
	txManager repository.Transactor
	config    *config.Config
}

func NewHandler(
	services *service.Services,
	txManager repository.Transactor,
	config *config.Config,
) *Handler {
	return &Handler{
		services:  services,
		txManager: txManager,
		config:    config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	api.Use(h.transactionMiddleware)

	h.initCityRoutes(api)
	h.initUniversityRoutes(api)
	h.initTeacherRoutes(api)
	h.initReviewRoutes(api)
}
