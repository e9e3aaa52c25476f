package utils

import (
	"fmt"

	"stage/config"

	"github.com/go-resty/resty/v2"
)

// IdentityUser is the subset of the identity provider's user payload we
// mirror locally.
type IdentityUser struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ImageURL       string `json:"image_url"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// FetchIdentityUser fetches one user from the identity provider's REST API by
// external id.
func FetchIdentityUser(clerkUserID string) (*IdentityUser, error) {
	if config.AppConfig.ClerkSecret == "" {
		return nil, fmt.Errorf("identity provider secret not configured")
	}

	client := resty.New().
		SetBaseURL(config.AppConfig.ClerkApiUrl).
		SetAuthToken(config.AppConfig.ClerkSecret)

	var identity IdentityUser
	resp, err := client.R().
		SetResult(&identity).
		SetPathParam("userId", clerkUserID).
		Get("/users/{userId}")
	if err != nil {
		return nil, fmt.Errorf("fetch identity user: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("identity provider returned %d", resp.StatusCode())
	}

	return &identity, nil
}
