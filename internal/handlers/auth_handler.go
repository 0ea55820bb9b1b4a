package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"beautestore/internal/services"
)

// AuthHandler handles HTTP requests for the back-office account.
type AuthHandler struct {
	auth     *services.AuthService
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the auth routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Get("/me", h.HandleMe)
	auth.Post("/login", h.HandleLogin)
	auth.Post("/logout", h.HandleLogout)
}

// HandleMe returns the deployment's single user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	user, err := h.auth.Me()
	if err != nil {
		return fail(c, err, "Utilisateur introuvable")
	}
	return c.JSON(user)
}

// LoginRequest is the body of a login attempt.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates the admin and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, err, "")
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Identifiants invalides",
		})
	}
	return c.JSON(fiber.Map{"token": token})
}

// HandleLogout acknowledges the logout. Sessions are stateless, so
// there is nothing to invalidate server-side.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}
