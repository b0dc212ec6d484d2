package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pagelift/internal/auth"
	"pagelift/internal/model"
	"pagelift/internal/repository"
)

const (
	oauthStateCookie = "pl_oauth_state"
	oauthNextCookie  = "pl_oauth_next"
)

// AuthHandler owns the Google login flow and session cookies.
type AuthHandler struct {
	oauth         *auth.OAuth
	sessions      *auth.Sessions
	users         repository.UserRepository
	secureCookies bool
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(oauth *auth.OAuth, sessions *auth.Sessions, users repository.UserRepository, secureCookies bool) *AuthHandler {
	return &AuthHandler{oauth: oauth, sessions: sessions, users: users, secureCookies: secureCookies}
}

// Login starts the OAuth flow. A random state cookie guards the callback
// against CSRF; an optional next parameter is remembered for after login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	state := uuid.NewString()
	h.setCookie(c, oauthStateCookie, state, time.Now().Add(10*time.Minute))

	if next := c.Query("next"); auth.IsAllowedRedirect(next) {
		h.setCookie(c, oauthNextCookie, next, time.Now().Add(10*time.Minute))
	}

	return c.Redirect(h.oauth.AuthCodeURL(state), fiber.StatusFound)
}

// Callback finishes the OAuth flow: it validates state, exchanges the code,
// upserts the user, issues the session cookie, and redirects to the validated
// next path. Any failure redirects to /login?error=auth rather than erroring.
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return h.failLogin(c)
	}
	h.clearCookie(c, oauthStateCookie)

	code := c.Query("code")
	if code == "" {
		return h.failLogin(c)
	}

	token, err := h.oauth.Exchange(c.UserContext(), code)
	if err != nil {
		logHandlerError(c, "auth.callback", err)
		return h.failLogin(c)
	}

	gu, err := h.oauth.UserInfo(c.UserContext(), token)
	if err != nil {
		logHandlerError(c, "auth.callback", err)
		return h.failLogin(c)
	}

	user, err := h.users.Upsert(c.UserContext(), &model.User{
		ID:        gu.ID,
		Email:     gu.Email,
		Name:      gu.Name,
		Picture:   gu.Picture,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		logHandlerError(c, "auth.callback", err)
		return h.failLogin(c)
	}

	sessionToken, expiresAt, err := h.sessions.Issue(user.ID, user.Email)
	if err != nil {
		logHandlerError(c, "auth.callback", err)
		return h.failLogin(c)
	}
	h.setCookie(c, auth.SessionCookieName, sessionToken, expiresAt)

	next := c.Query("next")
	if next == "" {
		next = c.Cookies(oauthNextCookie)
	}
	h.clearCookie(c, oauthNextCookie)

	return c.Redirect(auth.SafeRedirectPath(next), fiber.StatusFound)
}

// Logout drops the session cookie and sends the browser back to login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearCookie(c, auth.SessionCookieName)
	return c.Redirect("/login", fiber.StatusFound)
}

func (h *AuthHandler) failLogin(c *fiber.Ctx) error {
	return c.Redirect("/login?error=auth", fiber.StatusFound)
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, name, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  expires,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
