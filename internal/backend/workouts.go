package backend

import (
	"context"
	"fmt"
)

func (c *Client) CreateWorkout(ctx context.Context, token string, req CreateWorkoutRequest) (*WorkoutSession, error) {
	session := &WorkoutSession{}
	if err := c.Post(ctx, token, "/api/v1/workouts", req, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Client) GetWorkout(ctx context.Context, token, id string) (*WorkoutSession, error) {
	session := &WorkoutSession{}
	if err := c.Get(ctx, token, "/api/v1/workouts/"+id, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (c *Client) UserWorkouts(ctx context.Context, token, userID string) ([]WorkoutSession, error) {
	var sessions []WorkoutSession
	path := fmt.Sprintf("/api/v1/workouts/user/%s", userID)
	if err := c.Get(ctx, token, path, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) DeleteWorkout(ctx context.Context, token, id string) error {
	return c.Delete(ctx, token, "/api/v1/workouts/"+id, nil)
}
