package handlers

import (
	"errors"

	"hospital-info-server/internal/config"
	"hospital-info-server/internal/middleware"
	"hospital-info-server/internal/models"
	"hospital-info-server/internal/repository"
	"hospital-info-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Users repository.UserRepository
	Cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users repository.UserRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Users: users, Cfg: cfg}
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Role           string `json:"role" binding:"required"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"licenseNumber"`
	Department     string `json:"department"`
}

// RegisterResponse represents the response body for successful registration.
type RegisterResponse struct {
	User  models.UserSanitized `json:"user"`
	Token string               `json:"token"`
}

// Register handles user registration and returns a signed token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		utils.BadRequest(c, "Invalid role")
		return
	}

	user := models.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           role,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		Department:     req.Department,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.Users.Insert(&user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			utils.Conflict(c, "User with this email already exists")
		} else {
			utils.InternalServerError(c, "Failed to create user")
		}
		return
	}

	token, err := utils.GenerateToken(&user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	c.JSON(201, RegisterResponse{User: user.Sanitize(), Token: token})
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	Success bool                 `json:"success"`
	User    models.UserSanitized `json:"user"`
	Token   string               `json:"token"`
}

// Login authenticates an email+role pair against the stored credentials.
// An unknown pair and a wrong password are reported distinctly, matching the
// existing client contract.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		// An unknown role can never match a stored identity.
		utils.BadRequest(c, "User not found")
		return
	}

	user, err := h.Users.ByEmailAndRole(req.Email, role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.BadRequest(c, "User not found")
		} else {
			utils.InternalServerError(c, "Server error")
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.BadRequest(c, "Invalid password")
		return
	}

	token, err := utils.GenerateToken(user, h.Cfg)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	c.JSON(200, LoginResponse{Success: true, User: user.Sanitize(), Token: token})
}

// Me returns the authenticated identity's public fields.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.Unauthorized(c, "Authentication token required")
		return
	}

	user, err := h.Users.ByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			utils.InternalServerError(c, "Server error")
		}
		return
	}

	c.JSON(200, user.Sanitize())
}
