package vendors

import (
	"net/http"
	"strconv"
	"strings"

	"buildconnect/internal/middleware"
	"buildconnect/internal/pkg/apperr"
	"buildconnect/internal/pkg/response"
	"buildconnect/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

var errBadApprovedOnly = apperr.Validation("VALIDATION_ERROR", "Invalid query").
	WithDetails(map[string]string{"approved_only": "must be a boolean"})

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/vendors", h.List)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/vendors/profile", h.CreateProfile)
	protected.GET("/vendors/profile", h.GetProfile)
}

// CreateProfile turns the caller into a vendor awaiting approval.
// @Summary		Create vendor profile
// @Tags		Vendors
// @Param		request	body	CreateProfileRequest	true	"services, experience, availability, rates"
// @Success		201	{object}	domain.VendorProfile
// @Failure		400	{object}	map[string]interface{} "Validation error or profile already exists"
// @Failure		403	{object}	map[string]interface{} "Admins cannot become vendors"
// @Router		/vendors/profile [POST]
func (h *Handler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	profile, err := h.service.CreateProfile(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, profile)
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile)
}

// List returns vendors, approved ones only unless approved_only=false.
// @Summary		List vendors
// @Tags		Vendors
// @Param		service			query	string	false	"Exact service name"
// @Param		approved_only	query	bool	false	"Defaults to true"
// @Success		200	{array}	domain.VendorProfile
// @Router		/vendors [GET]
func (h *Handler) List(c *gin.Context) {
	q := ListQuery{Service: strings.TrimSpace(c.Query("service")), ApprovedOnly: true}
	if raw := c.Query("approved_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.FromError(c, errBadApprovedOnly)
			return
		}
		q.ApprovedOnly = v
	}

	list, err := h.service.ListVendors(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}
