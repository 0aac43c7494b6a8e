package backend

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
)

const exercisesCacheKey = "exercises::list"

// ListExercises returns the exercise library. The library changes rarely and
// is fetched by almost every page, so responses are cached for a short while;
// exercise mutations drop the cache.
func (c *Client) ListExercises(ctx context.Context, token string) ([]Exercise, error) {
	if cached, err := c.cache.Get([]byte(exercisesCacheKey)); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			log.Tracef("exercise library served from cache, %d exercises", len(exercises))
			return exercises, nil
		}
		log.Errorf("failed to unmarshal cached exercise library: %s", err)
	}

	var exercises []Exercise
	if err := c.Get(ctx, token, "/api/v1/exercises", &exercises); err != nil {
		return nil, err
	}

	if exercisesBytes, err := json.Marshal(exercises); err == nil {
		if err := c.cache.Set([]byte(exercisesCacheKey), exercisesBytes, exerciseCacheExpire); err != nil {
			log.Errorf("failed to cache exercise library: %s", err)
		}
	}

	return exercises, nil
}

func (c *Client) GetExercise(ctx context.Context, token, id string) (*Exercise, error) {
	exercise := &Exercise{}
	if err := c.Get(ctx, token, "/api/v1/exercises/"+id, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

func (c *Client) CreateExercise(ctx context.Context, token string, req CreateExerciseRequest) (*Exercise, error) {
	exercise := &Exercise{}
	if err := c.Post(ctx, token, "/api/v1/exercises", req, exercise); err != nil {
		return nil, err
	}
	c.cache.Del([]byte(exercisesCacheKey))
	return exercise, nil
}

func (c *Client) AddExerciseMedia(ctx context.Context, token, exerciseID string, req AddExerciseMediaRequest) (*ExerciseMedia, error) {
	media := &ExerciseMedia{}
	path := fmt.Sprintf("/api/v1/exercises/%s/media", exerciseID)
	if err := c.Post(ctx, token, path, req, media); err != nil {
		return nil, err
	}
	c.cache.Del([]byte(exercisesCacheKey))
	return media, nil
}
