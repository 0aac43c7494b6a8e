package backend

import (
	"context"
	"fmt"
	"net/url"
)

// UserNutrition fetches the nutrition record for one explicit ISO date
// (yyyy-MM-dd); there is no "today" default on the API side.
func (c *Client) UserNutrition(ctx context.Context, token, userID, date string) (*DailyNutrition, error) {
	nutrition := &DailyNutrition{}
	path := fmt.Sprintf("/api/v1/nutrition/user/%s?date=%s", userID, url.QueryEscape(date))
	if err := c.Get(ctx, token, path, nutrition); err != nil {
		return nil, err
	}
	return nutrition, nil
}

func (c *Client) UpsertNutrition(ctx context.Context, token string, req UpsertNutritionRequest) (*DailyNutrition, error) {
	nutrition := &DailyNutrition{}
	if err := c.Post(ctx, token, "/api/v1/nutrition", req, nutrition); err != nil {
		return nil, err
	}
	return nutrition, nil
}
