package backend

import "context"

func (c *Client) Health(ctx context.Context) (*Health, error) {
	health := &Health{}
	if err := c.Get(ctx, "", "/api/v1/health", health); err != nil {
		return nil, err
	}
	return health, nil
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	authResp := &AuthResponse{}
	if err := c.Post(ctx, "", "/api/v1/auth/login", req, authResp); err != nil {
		return nil, err
	}
	return authResp, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	authResp := &AuthResponse{}
	if err := c.Post(ctx, "", "/api/v1/auth/register", req, authResp); err != nil {
		return nil, err
	}
	return authResp, nil
}
