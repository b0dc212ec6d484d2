package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"pagelift/internal/config"
)

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleUser is the identity payload returned by the userinfo endpoint.
// ID is the Google account id, a decimal string that is not a UUID.
type GoogleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// OAuth wraps the Google OAuth2 code-exchange flow. Outbound HTTP calls go
// through an otelhttp-instrumented client so exchanges show up in traces.
type OAuth struct {
	config      *oauth2.Config
	userInfoURL string
}

// Option customizes the OAuth client. Mainly used by tests to point the
// provider endpoints at a stub server.
type Option func(*OAuth)

// WithEndpoint overrides the provider's auth and token endpoints.
func WithEndpoint(e oauth2.Endpoint) Option {
	return func(o *OAuth) {
		o.config.Endpoint = e
	}
}

// WithUserInfoURL overrides the userinfo endpoint.
func WithUserInfoURL(u string) Option {
	return func(o *OAuth) {
		o.userInfoURL = u
	}
}

// NewOAuth builds the OAuth client from configuration.
func NewOAuth(cfg config.AuthConfig, opts ...Option) *OAuth {
	o := &OAuth{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		userInfoURL: defaultUserInfoURL,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AuthCodeURL returns the consent page URL carrying the CSRF state.
func (o *OAuth) AuthCodeURL(state string) string {
	return o.config.AuthCodeURL(state)
}

// Exchange trades the callback code for a token.
func (o *OAuth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := o.config.Exchange(o.httpContext(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}
	return tok, nil
}

// UserInfo fetches the authenticated user's profile with the given token.
func (o *OAuth) UserInfo(ctx context.Context, token *oauth2.Token) (*GoogleUser, error) {
	resp, err := o.config.Client(o.httpContext(ctx), token).Get(o.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var gu GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if gu.Email == "" {
		return nil, fmt.Errorf("userinfo missing email")
	}
	return &gu, nil
}

// httpContext installs the traced base client the oauth2 package will use.
func (o *OAuth) httpContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})
}
