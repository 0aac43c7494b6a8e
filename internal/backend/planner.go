package backend

import (
	"context"
	"fmt"
)

func (c *Client) UserRecommendations(ctx context.Context, token, userID string) ([]PlannerRecommendation, error) {
	var recommendations []PlannerRecommendation
	path := fmt.Sprintf("/api/v1/planner/user/%s", userID)
	if err := c.Get(ctx, token, path, &recommendations); err != nil {
		return nil, err
	}
	return recommendations, nil
}

func (c *Client) GenerateRecommendation(ctx context.Context, token, userID string) (*PlannerRecommendation, error) {
	recommendation := &PlannerRecommendation{}
	path := fmt.Sprintf("/api/v1/planner/generate/%s", userID)
	if err := c.Post(ctx, token, path, struct{}{}, recommendation); err != nil {
		return nil, err
	}
	return recommendation, nil
}
