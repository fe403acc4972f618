package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/swiss-tournament/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapServiceErrorToHTTP(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: id 4", services.ErrPlayerNotFound), http.StatusNotFound},
		{services.ErrSelfMatch, http.StatusBadRequest},
		{fmt.Errorf("%w: 3 players registered", services.ErrOddPlayerCount), http.StatusConflict},
		{fmt.Errorf("%w: acquire connection: refused", services.ErrDataStoreUnavailable), http.StatusServiceUnavailable},
		{services.ErrPublishingDisabled, http.StatusServiceUnavailable},
		{fmt.Errorf("%w: commit", services.ErrDataStore), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			mapServiceErrorToHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestReadJSON(t *testing.T) {
	type input struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"name": "Alice"}`, ""},
		{"empty", ``, "body must not be empty"},
		{"syntax", `{"name": }`, "badly-formed JSON"},
		{"truncated", `{"name": "Al`, "badly-formed JSON"},
		{"wrong type", `{"name": 4}`, `incorrect JSON type for field "name"`},
		{"unknown key", `{"nick": "A"}`, `unknown key "nick"`},
		{"two values", `{"name": "A"}{"name": "B"}`, "single JSON value"},
		{"too large", `{"name": "` + strings.Repeat("a", 1_048_577) + `"}`, "must not be larger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst input
			err := readJSON(rec, req, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "Alice", dst.Name)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetIDFromURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"12", 12, false},
		{"", 0, true},
		{"x1", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
	}

	for _, tt := range tests {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("playerID", tt.raw)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		got, err := getIDFromURL(req, "playerID")
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://club.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	assert.True(t, check(req), "requests without Origin are allowed")

	req.Header.Set("Origin", "https://club.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))

	assert.True(t, originChecker([]string{"*"})(req))
	assert.True(t, originChecker(nil)(req))
}
