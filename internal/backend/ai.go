package backend

import "context"

func (c *Client) CoachingSuggestions(ctx context.Context, token string) (*CoachingSuggestions, error) {
	suggestions := &CoachingSuggestions{}
	if err := c.Get(ctx, token, "/api/v1/ai/coaching", suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (c *Client) ExplainWorkout(ctx context.Context, token string, req ExplainWorkoutRequest) (*WorkoutExplanation, error) {
	explanation := &WorkoutExplanation{}
	if err := c.Post(ctx, token, "/api/v1/ai/explain-workout", req, explanation); err != nil {
		return nil, err
	}
	return explanation, nil
}

func (c *Client) GenerateWorkoutPlan(ctx context.Context, token string, req WorkoutPlanRequest) (*WorkoutPlan, error) {
	plan := &WorkoutPlan{}
	if err := c.Post(ctx, token, "/api/v1/ai/workout", req, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (c *Client) SuggestOverload(ctx context.Context, token string, req OverloadRequest) (*PlannerRecommendation, error) {
	recommendation := &PlannerRecommendation{}
	if err := c.Post(ctx, token, "/api/v1/ai/overload", req, recommendation); err != nil {
		return nil, err
	}
	return recommendation, nil
}

func (c *Client) GenerateSplit(ctx context.Context, token string, req GenerateSplitRequest) (*SplitTemplate, error) {
	split := &SplitTemplate{}
	if err := c.Post(ctx, token, "/api/v1/ai/generate-split", req, split); err != nil {
		return nil, err
	}
	return split, nil
}

func (c *Client) DailyMotivation(ctx context.Context, token string) (*DailyMotivation, error) {
	motivation := &DailyMotivation{}
	if err := c.Get(ctx, token, "/api/v1/ai/motivation", motivation); err != nil {
		return nil, err
	}
	return motivation, nil
}

func (c *Client) ResetDailyMotivation(ctx context.Context, token string) (*DailyMotivation, error) {
	motivation := &DailyMotivation{}
	if err := c.Post(ctx, token, "/api/v1/ai/motivation/reset", struct{}{}, motivation); err != nil {
		return nil, err
	}
	return motivation, nil
}
