package model

import "time"

// BrandProfile captures the voice and look of a brand, used to steer page
// generation. Each profile is owned by exactly one user; list queries must
// never cross that boundary. The full row is exposed over the API.
type BrandProfile struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Industry       string    `json:"industry"`
	Tone           string    `json:"tone"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	LogoURL        string    `json:"logo_url"`
	CreatedAt      time.Time `json:"created_at"`
}
