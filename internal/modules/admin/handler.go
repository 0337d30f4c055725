package admin

import (
	"net/http"

	"buildconnect/internal/middleware"
	"buildconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin dashboard. admin must already enforce the
// admin role.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/stats", h.GetStats)
	admin.GET("/vendors", h.ListVendors)
	admin.PATCH("/vendors/:id/approve", h.ApproveVendor)
	admin.PATCH("/vendors/:id/reject", h.RejectVendor)
}

// RegisterVendorRoutes mounts reports for the calling vendor.
func (h *Handler) RegisterVendorRoutes(vendorOnly *gin.RouterGroup) {
	vendorOnly.GET("/vendors/earnings", h.GetEarnings)
}

// GetStats
// @Summary		Platform statistics
// @Tags		Admin
// @Security	BearerAuth
// @Success		200	{object}	StatsResponse
// @Failure		403	{object}	map[string]interface{} "Admin access required"
// @Router		/admin/stats [GET]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// ListVendors returns every vendor profile with its user details.
// @Summary		List all vendors
// @Tags		Admin
// @Security	BearerAuth
// @Success		200	{array}	domain.VendorWithUser
// @Router		/admin/vendors [GET]
func (h *Handler) ListVendors(c *gin.Context) {
	list, err := h.service.ListVendors(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// ApproveVendor
// @Summary		Approve vendor profile
// @Tags		Admin
// @Security	BearerAuth
// @Param		id	path	string	true	"Vendor profile ID"
// @Success		200	{object}	domain.VendorProfile
// @Failure		404	{object}	map[string]interface{} "Profile not found"
// @Router		/admin/vendors/{id}/approve [PATCH]
func (h *Handler) ApproveVendor(c *gin.Context) {
	p, err := h.service.ApproveVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// RejectVendor
// @Summary		Reject vendor profile
// @Tags		Admin
// @Security	BearerAuth
// @Param		id	path	string	true	"Vendor profile ID"
// @Success		200	{object}	domain.VendorProfile
// @Failure		404	{object}	map[string]interface{} "Profile not found"
// @Router		/admin/vendors/{id}/reject [PATCH]
func (h *Handler) RejectVendor(c *gin.Context) {
	p, err := h.service.RejectVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// GetEarnings
// @Summary		Vendor earnings
// @Tags		Vendors
// @Security	BearerAuth
// @Success		200	{object}	EarningsResponse
// @Router		/vendors/earnings [GET]
func (h *Handler) GetEarnings(c *gin.Context) {
	earnings, err := h.service.VendorEarnings(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, earnings)
}
