package auth

import (
	"net/http"

	"buildconnect/internal/middleware"
	"buildconnect/internal/pkg/response"
	"buildconnect/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts register and login behind mw (rate limiting).
func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup, mw ...gin.HandlerFunc) {
	authGroup := api.Group("/auth", mw...)
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.Me)
}

// Register creates a customer or vendor account.
// @Summary		Register
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"email, password, full_name, phone, role"
// @Success		201	{object}	AuthResponse
// @Failure		400	{object}	map[string]interface{} "Validation error or email already registered"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// Login exchanges credentials for an access token.
// @Summary		Login
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"email, password"
// @Success		200	{object}	AuthResponse
// @Failure		401	{object}	map[string]interface{} "Invalid email or password"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := validator.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// Me returns the user loaded by JWTAuth.
func (h *Handler) Me(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		response.Success(c, http.StatusOK, user)
		return
	}

	user, err := h.service.Me(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
