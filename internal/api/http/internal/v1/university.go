package v1

import (
	"net/http"

	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initUniversityRoutes(api *gin.RouterGroup) {
	university := api.Group("/University")
	university.GET("/get", h.getUniversity)
	university.GET("/getall", h.getAllUniversities)
	university.POST("/create", h.adminAuthMiddleware, h.createUniversity)
	university.PUT("/update", h.adminAuthMiddleware, h.updateUniversity)
	university.DELETE("/delete", h.adminAuthMiddleware, h.deleteUniversity)
	university.GET("/getcity", h.getUniversityCity)
	university.GET("/getteachers", h.getUniversityTeachers)
}

type createUniversityRequest struct {
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required"`
	CityID       string `json:"cityId" binding:"required"`
}

type updateUniversityRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Abbreviation string `json:"abbreviation" binding:"required"`
	CityID       string `json:"cityId" binding:"required"`
}

// @Summary Get University
// @Tags University
// @Produce json
// @Param id query string true "university id"
// @Success 200 {object} domain.University
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /University/get [get]
func (h *Handler) getUniversity(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	university, err := h.services.Universities.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, university)
}

// @Summary Get Universities
// @Tags University
// @Produce json
// @Success 200 {object} []domain.University
// @Failure 500 {object} domain.APIError
// @Router /University/getall [get]
func (h *Handler) getAllUniversities(c *gin.Context) {
	universities, err := h.services.Universities.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, universities)
}

// @Summary Create University
// @Tags University
// @Security AdminBasicAuth
// @Accept json
// @Produce json
// @Param input body createUniversityRequest true "university"
// @Success 200 {object} domain.University
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /University/create [post]
func (h *Handler) createUniversity(c *gin.Context) {
	var req createUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	university, err := h.services.Universities.Create(c.Request.Context(), domain.University{
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		CityID:       req.CityID,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, university)
}

// @Summary Update University
// @Tags University
// @Security AdminBasicAuth
// @Accept json
// @Produce json
// @Param input body updateUniversityRequest true "university"
// @Success 200 {object} domain.University
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /University/update [put]
func (h *Handler) updateUniversity(c *gin.Context) {
	var req updateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	university, err := h.services.Universities.Update(c.Request.Context(), domain.University{
		ID:           req.ID,
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
		CityID:       req.CityID,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, university)
}

// @Summary Delete University
// @Tags University
// @Security AdminBasicAuth
// @Produce json
// @Param id query string true "university id"
// @Success 200 {object} domain.University
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /University/delete [delete]
func (h *Handler) deleteUniversity(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	university, err := h.services.Universities.Delete(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, university)
}

// @Summary Get University City
// @Tags University
// @Produce json
// @Param id query string true "university id"
// @Success 200 {object} domain.City
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /University/getcity [get]
func (h *Handler) getUniversityCity(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Universities.GetCity(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Get University Teachers
// @Tags University
// @Produce json
// @Param id query string true "university id"
// @Success 200 {object} []domain.Teacher
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /University/getteachers [get]
func (h *Handler) getUniversityTeachers(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	teachers, err := h.services.Universities.GetTeachers(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, teachers)
}
