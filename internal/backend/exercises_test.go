package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListExercises_Cached(t *testing.T) {
	listCalls := 0
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/exercises":
			listCalls++
			fmt.Fprint(w, `{"status":"success","data":[{"id":"ex-1","name":"Bench Press","primary_muscle":"Chest"}]}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/exercises":
			fmt.Fprint(w, `{"status":"success","data":{"id":"ex-2","name":"Squat","primary_muscle":"Quads"}}`)
		default:
			http.Error(w, "unexpected path/method", http.StatusBadRequest)
		}
	}))
	defer testServer.Close()

	client := NewClient(testServer.URL, testServer.Client(), nil)
	ctx := context.Background()

	exercises, err := client.ListExercises(ctx, "tok")
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "Bench Press", exercises[0].Name)
	assert.Equal(t, 1, listCalls)

	// second list is served from the cache
	_, err = client.ListExercises(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 1, listCalls)

	// creating an exercise drops the cache
	_, err = client.CreateExercise(ctx, "tok", CreateExerciseRequest{
		Name:          "Squat",
		PrimaryMuscle: "Quads",
		Equipment:     "Barbell",
	})
	require.NoError(t, err)

	_, err = client.ListExercises(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls)
}
