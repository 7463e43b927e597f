package v1

import (
	"net/http"

	"github.com/teacher-reviews/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCityRoutes(api *gin.RouterGroup) {
	city := api.Group("/City")
	city.GET("/get", h.getCity)
	city.GET("/getall", h.getAllCities)
	city.POST("/create", h.createCity)
	city.PUT("/update", h.updateCity)
	city.DELETE("/delete", h.deleteCity)
	city.GET("/universities", h.getCityUniversities)
}

type idRequest struct {
	ID string `form:"id" binding:"required"`
}

type createCityRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateCityRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// @Summary Get City
// @Tags City
// @Description Get one city by id
// @Produce json
// @Param id query string true "city id"
// @Success 200 {object} domain.City
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /City/get [get]
func (h *Handler) getCity(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Get Cities
// @Tags City
// @Description Get all cities
// @Produce json
// @Success 200 {object} []domain.City
// @Failure 500 {object} domain.APIError
// @Router /City/getall [get]
func (h *Handler) getAllCities(c *gin.Context) {
	cities, err := h.services.Cities.GetAll(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// @Summary Create City
// @Tags City
// @Description Create a city with a unique name
// @Accept json
// @Produce json
// @Param input body createCityRequest true "city"
// @Success 200 {object} domain.City
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /City/create [post]
func (h *Handler) createCity(c *gin.Context) {
	var req createCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.Create(c.Request.Context(), domain.City{Name: req.Name})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Update City
// @Tags City
// @Description Rename an existing city
// @Accept json
// @Produce json
// @Param input body updateCityRequest true "city"
// @Success 200 {object} domain.City
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /City/update [put]
func (h *Handler) updateCity(c *gin.Context) {
	var req updateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.Update(c.Request.Context(), domain.City{ID: req.ID, Name: req.Name})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Delete City
// @Tags City
// @Description Delete a city and everything that belongs to it
// @Produce json
// @Param id query string true "city id"
// @Success 200 {object} domain.City
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /City/delete [delete]
func (h *Handler) deleteCity(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.Delete(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Get City Universities
// @Tags City
// @Description Get universities located in a city
// @Produce json
// @Param id query string true "city id"
// @Success 200 {object} []domain.University
// @Failure 400 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Router /City/universities [get]
func (h *Handler) getCityUniversities(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	universities, err := h.services.Cities.GetUniversities(c.Request.Context(), req.ID)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, universities)
}
