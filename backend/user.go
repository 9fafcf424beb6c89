package backend

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/tnhappykids/appcore/core/user"
)

var _ user.API = (*Client)(nil)

func (c *Client) Login(ctx context.Context, creds user.Credentials) (user.User, string, error) {
	raw, err := c.postJSON(ctx, "login.php", creds)
	if err != nil {
		return user.User{}, "", err
	}
	var usr user.User
	if err := unwrap(raw, "user", &usr); err != nil {
		return user.User{}, "", err
	}
	var token string
	if err := unwrap(raw, "token", &token); err != nil {
		return user.User{}, "", err
	}
	c.SetToken(token)
	return usr, token, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.postForm(ctx, "forgot_password.php", url.Values{"email": {email}})
	return err
}

func (c *Client) GetUsers(ctx context.Context, filter user.QueryFilter) ([]user.User, error) {
	query := url.Values{}
	if filter.Role != "" {
		query.Set("role", filter.Role)
	}
	if filter.Branch != "" {
		query.Set("branch", filter.Branch)
	}
	if filter.ID != "" {
		query.Set("id", filter.ID)
	}
	var users []user.User
	if err := c.get(ctx, "get_users.php", query, "users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) EditUser(ctx context.Context, uu user.UpdateUser) error {
	_, err := c.postJSON(ctx, "edit_user.php", uu)
	return err
}

func (c *Client) UpdateProfile(ctx context.Context, pu user.ProfileUpdate) error {
	fields := map[string]string{
		"user_id": pu.UserID,
		"name":    pu.Name,
		"email":   pu.Email,
		"mobile":  pu.Mobile,
	}
	if pu.Password != "" {
		fields["password"] = pu.Password
	}
	_, err := c.postMultipart(ctx, "update_profile.php", fields, "photo", pu.PhotoPath)
	return err
}

// rawString tolerates backends that emit numbers where ids are expected.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
