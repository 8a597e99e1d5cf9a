package boardctl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/goboard/internal/common"
	"github.com/stretchr/testify/require"
)

func TestClientLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/user/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "Secret123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"token_type":   "bearer",
			"user":         map[string]any{"id": 1, "username": "alice", "email": "a@x.com"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	info, err := c.Login(context.Background(), "alice", []byte("Secret123"))
	require.NoError(t, err)
	require.Equal(t, "tok", info.AccessToken)
	require.Equal(t, "alice", info.User.Username)

	_, err = c.Login(context.Background(), "alice", []byte("wrong"))
	require.True(t, errors.Is(err, common.ErrorUnauthorized))
}

func TestClientRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Register(context.Background(), "alice", "a@x.com", []byte("Secret123"))
	require.True(t, errors.Is(err, common.ErrorConflict))
}

func TestClientAskQuestion_SendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "subject": "s"})
	}))
	defer srv.Close()

	q, err := NewClient(srv.URL).AskQuestion(context.Background(), "tok", "s", "c")
	require.NoError(t, err)
	require.Equal(t, int64(7), q.ID)
}

func TestClientGetQuestion_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetQuestion(context.Background(), 999)
	require.True(t, errors.Is(err, common.ErrorNotFound))
}
