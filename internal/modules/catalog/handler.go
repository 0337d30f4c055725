package catalog

import (
	"net/http"

	"buildconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	services := api.Group("/services")
	{
		services.GET("/categories", h.ListCategories)
		services.GET("/search", h.Search)
	}
}

// ListCategories
// @Summary		List service categories
// @Tags		Services
// @Success		200	{array}	domain.ServiceCategory
// @Router		/services/categories [GET]
func (h *Handler) ListCategories(c *gin.Context) {
	list, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Search
// @Summary		Search service categories
// @Tags		Services
// @Param		category	query	string	false	"Category slug"
// @Param		query		query	string	false	"Matches name, description or service names"
// @Success		200	{array}	domain.ServiceCategory
// @Router		/services/search [GET]
func (h *Handler) Search(c *gin.Context) {
	q := SearchQuery{Category: c.Query("category"), Query: c.Query("query")}

	list, err := h.service.SearchCategories(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}
