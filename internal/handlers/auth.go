package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"lnkshrt/internal/models"
	"lnkshrt/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !usernameRe.MatchString(req.Username) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Username cannot contain special characters other than underscores and dashes.",
		})
		return
	}

	passwordHash, err := utils.HashString(req.Password)
	if err != nil {
		h.logger.Error("Failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	newUser := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	// Duplicate username/email is decided by the unique constraints, not a
	// pre-check, so concurrent signups cannot race past each other.
	if err := h.db.WithContext(c.Request.Context()).Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "The username or email is already in use."})
			return
		}
		h.logger.Error("Failed to create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	h.logger.Info("Created account", "username", newUser.Username)
	h.auditService.LogAction(&newUser.ID, "SIGNUP", newUser.Username, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// CreateToken is the login endpoint: it verifies form credentials and
// issues a fresh bearer token. Unknown username and wrong password produce
// the same response.
func (h *Handler) CreateToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).Where("username = ?", req.Username).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Error("Failed to look up user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err != nil || !utils.VerifyHash(req.Password, user.PasswordHash) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	token, err := h.tokenService.Issue(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Failed to issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	h.auditService.LogAction(&user.ID, "LOGIN", user.Username, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}
