//go:build unit

package rooms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"weatherstay/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomsTestConfig(baseURL string) config.RoomsConfig {
	return config.RoomsConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		RPS:     100,
	}
}

func TestGetRoom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/rooms/room-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"room-1","name":"Sea View","basePrice":100,"location":"Lisbon"}`))
	}))
	defer srv.Close()

	client := New(roomsTestConfig(srv.URL))
	room, err := client.GetRoom(context.Background(), "room-1")
	require.NoError(t, err)

	assert.Equal(t, "room-1", room.ID)
	assert.Equal(t, "Sea View", room.Name)
	assert.Equal(t, 100.0, room.BasePrice)
	assert.Equal(t, "Lisbon", room.Location)
}

func TestGetRoomNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(roomsTestConfig(srv.URL))
	_, err := client.GetRoom(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetRoomRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"room-1","name":"Sea View","basePrice":100,"location":"Lisbon"}`))
	}))
	defer srv.Close()

	client := New(roomsTestConfig(srv.URL))
	room, err := client.GetRoom(context.Background(), "room-1")
	require.NoError(t, err)
	assert.Equal(t, "Sea View", room.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetRoomGivesUpAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(roomsTestConfig(srv.URL))
	_, err := client.GetRoom(context.Background(), "room-1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetRoomUnreachable(t *testing.T) {
	client := New(roomsTestConfig("http://127.0.0.1:1"))
	_, err := client.GetRoom(context.Background(), "room-1")
	assert.ErrorIs(t, err, ErrUnavailable)
}
