package client

import (
	"context"
	"net/http"

	sdk "github.com/clubpro-dev/qistadmin/sdk"
)

// Login exchanges credentials for a bearer token. The client does not store
// the token itself; the session manager owns persistence.
func (c *Client) Login(ctx context.Context, email, password string) (sdk.LoginResult, error) {
	var out sdk.LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, "/login", body, &out); err != nil {
		return sdk.LoginResult{}, err
	}
	return out, nil
}

func (c *Client) Profile(ctx context.Context) (sdk.AdminProfile, error) {
	var out sdk.AdminProfile
	if err := c.get(ctx, "/profile", nil, &out); err != nil {
		return sdk.AdminProfile{}, err
	}
	return out, nil
}

// UpdateProfile updates the admin's own record; a non-nil picture switches
// the request to multipart.
func (c *Client) UpdateProfile(ctx context.Context, fullName string, picture *Upload) (sdk.AdminProfile, error) {
	var out sdk.AdminProfile
	if picture != nil {
		fields := map[string]string{"fullName": fullName}
		if err := c.upload(ctx, http.MethodPut, "/profile", fields, []Upload{*picture}, &out); err != nil {
			return sdk.AdminProfile{}, err
		}
		return out, nil
	}
	if err := c.put(ctx, "/profile", map[string]string{"fullName": fullName}, &out); err != nil {
		return sdk.AdminProfile{}, err
	}
	return out, nil
}
