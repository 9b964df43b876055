package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/maisonbelle/salon-api/internal/auth"
	"github.com/maisonbelle/salon-api/internal/config"
	"github.com/maisonbelle/salon-api/internal/httperr"
	"github.com/maisonbelle/salon-api/internal/httpresp"
	"github.com/maisonbelle/salon-api/internal/middleware"
	"github.com/maisonbelle/salon-api/internal/store"
)

type AuthHandler struct {
	st     *store.Store
	config *config.Config
}

func NewAuthHandler(st *store.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{st: st, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Me returns the resolved caller, or null for anonymous requests.
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	httpresp.OK(c, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c)
	httpresp.Success(c)
}

// Login authenticates local password accounts (staff bootstrap). OAuth
// sign-ins go through Callback instead.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.st.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	if user.PasswordHash == "" {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password")
		return
	}

	now := time.Now()
	method := "password"
	signedIn, err := h.st.UpsertUser(c.Request.Context(), store.UpsertUserParams{
		OpenID:       user.OpenID,
		LoginMethod:  &method,
		LastSignedIn: &now,
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to record sign-in")
		return
	}

	token, err := auth.NewSessionToken(h.config.JWTSecret, user.OpenID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to create session")
		return
	}

	auth.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"user":  signedIn,
		"token": token,
	})
}

// --------- OAuth ---------

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type userInfo struct {
	Sub    string `json:"sub"`
	OpenID string `json:"openId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Callback finishes the external OAuth flow: exchanges the code, reads the
// identity document, upserts the user and mints the session cookie. The
// provider and its token issuance are outside this service.
func (h *AuthHandler) Callback(c *gin.Context) {
	if h.config.OAuthTokenURL == "" || h.config.OAuthUserInfoURL == "" {
		httperr.Unavailable(c, "oauth_not_configured", "OAuth sign-in is not configured")
		return
	}

	code := c.Query("code")
	if code == "" {
		httperr.BadRequest(c, "missing_code", "Missing authorization code")
		return
	}

	resp, err := http.PostForm(h.config.OAuthTokenURL, url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {h.config.OAuthClientID},
		"client_secret": {h.config.OAuthClientSecret},
	})
	if err != nil {
		httperr.Internal(c, "oauth_exchange_failed", "Failed to exchange authorization code")
		return
	}
	defer resp.Body.Close()

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil || tok.AccessToken == "" {
		httperr.Internal(c, "oauth_exchange_failed", "Failed to exchange authorization code")
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, h.config.OAuthUserInfoURL, nil)
	if err != nil {
		httperr.Internal(c, "oauth_userinfo_failed", "Failed to load identity")
		return
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	infoResp, err := http.DefaultClient.Do(req)
	if err != nil {
		httperr.Internal(c, "oauth_userinfo_failed", "Failed to load identity")
		return
	}
	defer infoResp.Body.Close()

	var info userInfo
	if err := json.NewDecoder(infoResp.Body).Decode(&info); err != nil {
		httperr.Internal(c, "oauth_userinfo_failed", "Failed to load identity")
		return
	}

	openID := info.OpenID
	if openID == "" {
		openID = info.Sub
	}
	if openID == "" {
		httperr.Internal(c, "oauth_userinfo_failed", "Identity document has no subject")
		return
	}

	now := time.Now()
	method := "oauth"
	user, err := h.st.UpsertUser(c.Request.Context(), store.UpsertUserParams{
		OpenID:       openID,
		Name:         &info.Name,
		Email:        &info.Email,
		LoginMethod:  &method,
		LastSignedIn: &now,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_upsert_user", "Failed to store user")
		return
	}

	token, err := auth.NewSessionToken(h.config.JWTSecret, user.OpenID)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to create session")
		return
	}

	auth.SetSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}
