package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gtnglobal/gtn-backend/config"
)

type Handler struct {
	codec        *Codec
	adminUser    string
	adminPass    string
	cookieSecure bool
}

func NewHandler(codec *Codec, cfg *config.Config) *Handler {
	return &Handler{
		codec:        codec,
		adminUser:    cfg.AdminUser,
		adminPass:    cfg.AdminPass,
		cookieSecure: cfg.CookieSecure,
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// ============================
// 🔑 Login - POST /api/login
// Accepts JSON or form-encoded credentials.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	username := strings.TrimSpace(req.Username)
	if username != h.adminUser || req.Password != h.adminPass {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
		return
	}

	h.setCookie(c, h.codec.Issue(username), h.codec.TTLSeconds())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ============================
// 🚪 Logout - POST /api/logout
// Clears the cookie unconditionally; there is no server-side state to drop.
func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ============================
// 👁 Session check - GET /api/session
// Reports validity as a boolean, never as an error.
func (h *Handler) Session(c *gin.Context) {
	token, err := c.Cookie(CookieName)
	c.JSON(http.StatusOK, gin.H{"authenticated": err == nil && h.codec.Verify(token)})
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	// Cross-site frontends need SameSite=None, which browsers only accept
	// on Secure cookies. Plain-HTTP deployments fall back to Lax.
	if h.cookieSecure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(CookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
