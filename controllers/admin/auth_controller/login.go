package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Nautica-Marine/nautica-store-backend/config"
	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/Nautica-Marine/nautica-store-backend/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Admin login
// @Description Verifies credentials and issues a signed token, also set as an HttpOnly cookie
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param credentials body models.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} models.AdminLoginResponse
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Router /admin/login [post]
func Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Username and password are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.AdminUser
	err := config.StoreGorm.WithContext(ctx).First(&admin, "username = ?", req.Username).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[admin.auth.login] database error: %v", err)
		}
		// Same response for unknown user and wrong password
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("[admin.auth.login] failed login attempt for %q from %s", req.Username, c.ClientIP())
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid credentials"))
		return
	}

	token, err := services.GetJWTService().GenerateAdminJWT(admin.ID, admin.Username)
	if err != nil {
		log.Printf("[admin.auth.login] failed to sign token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, 7*24*3600, "/", "", false, true)

	log.Printf("[admin.auth.login] %s logged in", admin.Username)
	c.JSON(http.StatusOK, models.AdminLoginResponse{Token: token, Username: admin.Username})
}

// Logout godoc
// @Summary Admin logout
// @Description Clears the auth cookie
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
