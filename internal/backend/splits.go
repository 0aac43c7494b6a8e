package backend

import (
	"context"
	"fmt"
)

func (c *Client) CreateSplit(ctx context.Context, token string, req CreateSplitRequest) (*SplitTemplate, error) {
	split := &SplitTemplate{}
	if err := c.Post(ctx, token, "/api/v1/splits", req, split); err != nil {
		return nil, err
	}
	return split, nil
}

func (c *Client) GetSplit(ctx context.Context, token, id string) (*SplitTemplate, error) {
	split := &SplitTemplate{}
	if err := c.Get(ctx, token, "/api/v1/splits/"+id, split); err != nil {
		return nil, err
	}
	return split, nil
}

func (c *Client) UserSplits(ctx context.Context, token, userID string) ([]SplitTemplate, error) {
	var splits []SplitTemplate
	path := fmt.Sprintf("/api/v1/splits/user/%s", userID)
	if err := c.Get(ctx, token, path, &splits); err != nil {
		return nil, err
	}
	return splits, nil
}

func (c *Client) ActivateSplit(ctx context.Context, token, id string) error {
	// one meaningful active split per user is enforced server side,
	// activating one deactivates the rest
	return c.Post(ctx, token, fmt.Sprintf("/api/v1/splits/%s/activate", id), struct{}{}, nil)
}

func (c *Client) DeactivateSplit(ctx context.Context, token, id string) error {
	return c.Post(ctx, token, fmt.Sprintf("/api/v1/splits/%s/deactivate", id), struct{}{}, nil)
}
