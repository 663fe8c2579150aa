package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"netshots-service/internal/weather"
	"netshots-service/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCreate_HonorsCallerSuppliedID(t *testing.T) {
	db := newTestDB(t)
	seedProfile(t, db, "alice", "Alice", "Adams")
	matches := NewMatchService(db, nil)

	m, err := matches.Create(context.Background(), "alice", map[string]interface{}{
		"id":      "custom-id",
		"date":    "2024-05-01T10:00:00Z",
		"picture": "p.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-id", m.ID)

	m, err = matches.Create(context.Background(), "alice", map[string]interface{}{
		"date":    "2024-05-02T10:00:00Z",
		"picture": "p.jpg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID, "missing id must be generated")
}

func TestMatchCreate_EnrichmentAttachedWhenLookupSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main":{"temp":18.3},"weather":[{"description":"light rain"}]}`))
	}))
	defer srv.Close()

	db := newTestDB(t)
	seedProfile(t, db, "alice", "Alice", "Adams")
	matches := NewMatchService(db, weather.NewClient(srv.URL, "test-key"))

	m, err := matches.Create(context.Background(), "alice", map[string]interface{}{
		"date":      "2024-05-01T10:00:00Z",
		"picture":   "p.jpg",
		"latitude":  41.65,
		"longitude": -0.88,
	})
	require.NoError(t, err)
	require.NotNil(t, m.Temperature)
	assert.Equal(t, 18.3, *m.Temperature)
	require.NotNil(t, m.WeatherDescription)
	assert.Equal(t, "light rain", *m.WeatherDescription)
}

func TestMatchCreate_EnrichmentFailureNeverBlocksCreation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	db := newTestDB(t)
	seedProfile(t, db, "alice", "Alice", "Adams")
	matches := NewMatchService(db, weather.NewClient(srv.URL, "test-key"))

	m, err := matches.Create(context.Background(), "alice", map[string]interface{}{
		"date":      "2024-05-01T10:00:00Z",
		"picture":   "p.jpg",
		"latitude":  41.65,
		"longitude": -0.88,
	})
	require.NoError(t, err, "enrichment failure must not fail match creation")
	assert.Nil(t, m.Temperature)
	assert.Nil(t, m.WeatherDescription)
}

func TestMatchCreate_NoCoordinatesSkipsLookup(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	db := newTestDB(t)
	seedProfile(t, db, "alice", "Alice", "Adams")
	matches := NewMatchService(db, weather.NewClient(srv.URL, "test-key"))

	_, err := matches.Create(context.Background(), "alice", map[string]interface{}{
		"date":     "2024-05-01T10:00:00Z",
		"picture":  "p.jpg",
		"latitude": "not-a-number",
	})
	require.NoError(t, err)
	assert.False(t, called, "lookup must not run without usable coordinates")
}

func TestMatchUpdate_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	seedProfile(t, db, "alice", "Alice", "Adams")
	m := seedMatch(t, db, "alice", "2024-05-01T10:00:00Z")
	matches := NewMatchService(db, nil)

	updated, err := matches.Update(context.Background(), "alice", m.ID, map[string]interface{}{
		"isVictory": "yes",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsVictory)

	_, err = matches.Update(context.Background(), "mallory", m.ID, map[string]interface{}{
		"isVictory": false,
	})
	assert.True(t, errors.Is(err, ErrForbidden), "non-owner update must be forbidden, got %v", err)

	_, err = matches.Update(context.Background(), "alice", "no-such-match", map[string]interface{}{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMatchDelete_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	seedProfile(t, db, "alice", "Alice", "Adams")
	m := seedMatch(t, db, "alice", "2024-05-01T10:00:00Z")
	matches := NewMatchService(db, nil)

	err := matches.Delete(context.Background(), "mallory", m.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	err = matches.Delete(context.Background(), "alice", "no-such-match")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, matches.Delete(context.Background(), "alice", m.ID))

	var count int64
	require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMatchResults_AscendingByDate(t *testing.T) {
	db := newTestDB(t)
	seedProfile(t, db, "alice", "Alice", "Adams")
	matches := NewMatchService(db, nil)

	for _, m := range []struct {
		date    string
		victory bool
	}{
		{"2024-02-01T10:00:00Z", false},
		{"2024-01-01T10:00:00Z", true},
		{"2024-03-01T10:00:00Z", true},
	} {
		_, err := matches.Create(context.Background(), "alice", map[string]interface{}{
			"date":      m.date,
			"picture":   "p.jpg",
			"isVictory": m.victory,
		})
		require.NoError(t, err)
	}

	results, err := matches.Results(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, results)
}
