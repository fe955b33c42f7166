package renamed

import (
	"context"
)

// AccountAPI exposes account-level operations.
type AccountAPI struct {
	httpClient *httpClient
}

func newAccountAPI(httpClient *httpClient) *AccountAPI {
	return &AccountAPI{httpClient: httpClient}
}

// Get returns the authenticated user profile and remaining credits.
func (a *AccountAPI) Get() (*User, error) {
	var user User
	if err := a.httpClient.get("/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetWithContext returns the user profile with a caller-supplied context.
func (a *AccountAPI) GetWithContext(ctx context.Context) (*User, error) {
	var user User
	if err := a.httpClient.getWithContext(ctx, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
