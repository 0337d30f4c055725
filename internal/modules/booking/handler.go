package booking

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

// RegisterRoutes mounts the booking endpoints. vendorOnly and adminOnly are
// groups that already enforce the role.
func (h *Handler) RegisterRoutes(protected, vendorOnly, adminOnly *gin.RouterGroup) {
	protected.POST("/bookings", h.Create)
	protected.GET("/bookings", h.List)
	protected.GET("/bookings/:id", h.Get)
	protected.PATCH("/bookings/:id", h.Update)

	vendorOnly.GET("/vendors/bookings", h.ListForVendor)
	adminOnly.GET("/bookings", h.ListAll)
}

// Create books a service for the caller.
// @Summary		Create booking
// @Tags		Bookings
// @Param		request	body	CreateBookingRequest	true	"service, schedule, location and estimated price"
// @Success		201	{object}	domain.Booking
// @Failure		400	{object}	map[string]interface{} "Validation error"
// @Router		/bookings [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), middleware.UserID(c), middleware.Role(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.Role(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// Update changes status, vendor, final price or payment fields.
// @Summary		Update booking
// @Tags		Bookings
// @Param		id		path	string					true	"Booking ID"
// @Param		request	body	UpdateBookingRequest	true	"Fields to change"
// @Success		200	{object}	domain.Booking
// @Failure		400	{object}	map[string]interface{} "Validation error or transition not allowed"
// @Failure		403	{object}	map[string]interface{} "Not a party to the booking or field not allowed"
// @Failure		404	{object}	map[string]interface{} "Booking not found"
// @Router		/bookings/{id} [PATCH]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), req, middleware.UserID(c), middleware.Role(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListForVendor(c *gin.Context) {
	list, err := h.service.ListForVendor(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), middleware.UserID(c), middleware.Role(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}
