package review

import (
	"net/http"

	"buildconnect/internal/middleware"
	"buildconnect/internal/pkg/response"
	"buildconnect/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/reviews/vendor/:vendor_id", h.ListForVendor)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/reviews", h.Submit)
}

// Submit reviews a completed booking.
// @Summary		Submit review
// @Tags		Reviews
// @Param		request	body	CreateReviewRequest	true	"booking_id, rating 1-5, comment"
// @Success		201	{object}	domain.Review
// @Failure		400	{object}	map[string]interface{} "Not completed, already reviewed or invalid rating"
// @Failure		404	{object}	map[string]interface{} "Booking not found"
// @Router		/reviews [POST]
func (h *Handler) Submit(c *gin.Context) {
	var req CreateReviewRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	rv, err := h.service.Submit(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) ListForVendor(c *gin.Context) {
	list, err := h.service.ListForVendor(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}
