package v1

import (
	"net/http"

	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initReviewRoutes(api *gin.RouterGroup) {
	review := api.Group("/Review")
	review.GET("/getall", h.getAllReviews)
	review.POST("/create", h.adminAuthMiddleware, h.createReview)
	review.DELETE("/delete", h.adminAuthMiddleware, h.deleteReview)
}

type createReviewRequest struct {
	Rate      int    `json:"rate" binding:"required,min=1,max=5"`
	Text      string `json:"text"`
	TeacherID string `json:"teacherId" binding:"required"`
}

// @Summary Get Reviews
// @Tags Review
// @Produce json
// @Success 200 {object} []domain.Review
// @Failure 500 {object} domain.APIError
// @Router /Review/getall [get]
func (h *Handler) getAllReviews(c *gin.Context) {
	reviews, err := h.services.Reviews.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// @Summary Create Review
// @Tags Review
// @Security AdminBasicAuth
// @Accept json
// @Produce json
// @Param input body createReviewRequest true "review"
// @Success 200 {object} domain.Review
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /Review/create [post]
func (h *Handler) createReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	review, err := h.services.Reviews.Create(c.Request.Context(), domain.Review{
		Rate:      req.Rate,
		Text:      req.Text,
		TeacherID: req.TeacherID,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// @Summary Delete Review
// @Tags Review
// @Security AdminBasicAuth
// @Produce json
// @Param id query string true "review id"
// @Success 200 {object} domain.Review
// @Failure 400 {object} domain.APIError
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /Review/delete [delete]
func (h *Handler) deleteReview(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	review, err := h.services.Reviews.Delete(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
