package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ministore/storefront/config"
	"github.com/ministore/storefront/dto"
	"github.com/ministore/storefront/utils"
)

// Login checks the configured admin credentials and issues a signed,
// expiring access token. When ADMIN_PASSWORD_HASH is set the password is
// verified against the bcrypt hash; otherwise both values are compared in
// constant time. Rejections carry no detail beyond "invalid credentials".
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		userOK := utils.SecureCompare(body.Username, cfg.AdminUsername)

		var passOK bool
		if cfg.AdminPasswordHash != "" {
			passOK = utils.CheckPassword(cfg.AdminPasswordHash, body.Password) == nil
		} else {
			passOK = utils.SecureCompare(body.Password, cfg.AdminPassword)
		}

		if !userOK || !passOK {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		ttl := time.Duration(cfg.AccessTTLMinutes) * time.Minute
		token, err := utils.GenerateAccessToken(body.Username, cfg.JWTSecret, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Login successful",
			"token":   token,
		})
	}
}
