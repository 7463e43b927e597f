package v1

import (
	"net/http"

	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initTeacherRoutes(api *gin.RouterGroup) {
	teacher := api.Group("/Teacher")
	teacher.GET("/get", h.getTeacher)
	teacher.GET("/getall", h.getAllTeachers)
	teacher.POST("/create", h.createTeacher)
	teacher.PUT("/update", h.updateTeacher)
	teacher.DELETE("/delete", h.deleteTeacher)
	teacher.GET("/getreviews", h.getTeacherReviews)
	teacher.GET("/university", h.getTeacherUniversity)
}

type createTeacherRequest struct {
	Name         string `json:"name" binding:"required"`
	Surname      string `json:"surname" binding:"required"`
	Patronymic   string `json:"patronymic"`
	UniversityID string `json:"universityId" binding:"required"`
}

type updateTeacherRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Surname      string `json:"surname" binding:"required"`
	Patronymic   string `json:"patronymic"`
	UniversityID string `json:"universityId" binding:"required"`
}

// @Summary Get Teacher
// @Tags Teacher
// @Produce json
// @Param id query string true "teacher id"
// @Success 200 {object} domain.Teacher
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /Teacher/get [get]
func (h *Handler) getTeacher(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	teacher, err := h.services.Teachers.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// @Summary Get Teachers
// @Tags Teacher
// @Produce json
// @Success 200 {object} []domain.Teacher
// @Failure 500 {object} domain.APIError
// @Router /Teacher/getall [get]
func (h *Handler) getAllTeachers(c *gin.Context) {
	teachers, err := h.services.Teachers.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, teachers)
}

// @Summary Create Teacher
// @Tags Teacher
// @Accept json
// @Produce json
// @Param input body createTeacherRequest true "teacher"
// @Success 200 {object} domain.Teacher
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /Teacher/create [post]
func (h *Handler) createTeacher(c *gin.Context) {
	var req createTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	teacher, err := h.services.Teachers.Create(c.Request.Context(), domain.Teacher{
		Name:         req.Name,
		Surname:      req.Surname,
		Patronymic:   req.Patronymic,
		UniversityID: req.UniversityID,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// @Summary Update Teacher
// @Tags Teacher
// @Accept json
// @Produce json
// @Param input body updateTeacherRequest true "teacher"
// @Success 200 {object} domain.Teacher
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /Teacher/update [put]
func (h *Handler) updateTeacher(c *gin.Context) {
	var req updateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	teacher, err := h.services.Teachers.Update(c.Request.Context(), domain.Teacher{
		ID:           req.ID,
		Name:         req.Name,
		Surname:      req.Surname,
		Patronymic:   req.Patronymic,
		UniversityID: req.UniversityID,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// @Summary Delete Teacher
// @Tags Teacher
// @Produce json
// @Param id query string true "teacher id"
// @Success 200 {object} domain.Teacher
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /Teacher/delete [delete]
func (h *Handler) deleteTeacher(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	teacher, err := h.services.Teachers.Delete(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, teacher)
}

// @Summary Get Teacher Reviews
// @Tags Teacher
// @Produce json
// @Param id query string true "teacher id"
// @Success 200 {object} []domain.Review
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /Teacher/getreviews [get]
func (h *Handler) getTeacherReviews(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	reviews, err := h.services.Teachers.GetReviews(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// @Summary Get Teacher University
// @Tags Teacher
// @Produce json
// @Param id query string true "teacher id"
// @Success 200 {object} domain.University
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /Teacher/university [get]
func (h *Handler) getTeacherUniversity(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	university, err := h.services.Teachers.GetUniversity(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, university)
}
