package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the mock login endpoint.
type Handler struct {
	issuer        *TokenIssuer
	adminEmail    string
	adminPassword string
}

func NewHandler(issuer *TokenIssuer, adminEmail, adminPassword string) *Handler {
	return &Handler{issuer: issuer, adminEmail: adminEmail, adminPassword: adminPassword}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/auth/login", h.Login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login checks the fixed demo credential pair and issues a token. The user
// record matches what the dashboard expects after a successful login.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	if req.Email != h.adminEmail || req.Password != h.adminPassword {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	token, err := h.issuer.Issue(req.Email, "Admin User", "admin")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		Name:  "Admin User",
		Email: req.Email,
		Role:  "admin",
	})
}
