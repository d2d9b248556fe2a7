package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"civicreporter/config"
	"civicreporter/middlewares"
	"civicreporter/models"
	"civicreporter/reporter"
	"civicreporter/session"
	authUtils "civicreporter/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	reporter *reporter.Reporter
	auth     config.AuthConfig
	secure   bool
}

func NewAuthController(r *reporter.Reporter, auth config.AuthConfig, production bool) *AuthController {
	return &AuthController{reporter: r, auth: auth, secure: production}
}

// LoginAdmin starts the admin session and hands back a token both in the
// body and as the auth_token cookie.
func (h *AuthController) LoginAdmin(c *gin.Context) {
	ctx := c.Request.Context()

	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.reporter.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			slog.InfoContext(ctx, "admin login rejected", "email", input.Email)
		}
		respondError(c, err, "Something went wrong")
		return
	}

	token, err := authUtils.GenerateToken(sess, h.auth.JWTSecret, h.auth.TokenTTL)
	if err != nil {
		h.reporter.Logout()
		respondError(c, err, "Something went wrong")
		return
	}

	h.setAuthCookie(c, token, int(h.auth.TokenTTL/time.Second))
	slog.InfoContext(ctx, "admin logged in", "email", sess.Email)

	c.JSON(http.StatusOK, gin.H{
		"email": sess.Email,
		"role":  sess.Role,
		"token": token,
	})
}

// LogoutAdmin clears the session unconditionally.
func (h *AuthController) LogoutAdmin(c *gin.Context) {
	h.reporter.Logout()
	h.setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetMe returns the session admitted by the admin middleware.
func (h *AuthController) GetMe(c *gin.Context) {
	sess, ok := c.MustGet(middlewares.SessionKey).(models.Session)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (h *AuthController) setAuthCookie(c *gin.Context, value string, maxAge int) {
	sameSite := http.SameSiteLaxMode
	if h.secure {
		sameSite = http.SameSiteNoneMode
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middlewares.AuthCookieName,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		Domain:   h.auth.Domain,
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: sameSite,
	})
}
