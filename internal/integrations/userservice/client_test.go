package userservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/logger"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		users := []userRecord{}
		if q.Get("username") == "joao" && q.Get("password") == "s3cr&t" {
			users = append(users, userRecord{ID: 1, Username: "joao", Name: "João Silva", ProfessionalID: "1", Password: "s3cr&t"})
		}
		if q.Get("username") == "broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(users)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Authenticate(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL+"/", time.Second, logger.NewNop())

	user, err := c.Authenticate(context.Background(), "joao", "s3cr&t")
	require.NoError(t, err)
	assert.Equal(t, User{ID: 1, Username: "joao", Name: "João Silva", ProfessionalID: "1"}, *user)
}

func TestClient_Authenticate_Errors(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL, time.Second, logger.NewNop())

	_, err := c.Authenticate(context.Background(), "joao", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = c.Authenticate(context.Background(), "broken", "x")
	assert.ErrorIs(t, err, ErrUnavailable)

	down := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logger.NewNop())
	_, err = down.Authenticate(context.Background(), "joao", "s3cr&t")
	assert.ErrorIs(t, err, ErrUnavailable)
}
