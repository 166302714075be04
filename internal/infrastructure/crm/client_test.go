package crm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appconfig "clientportal/internal/config"
	"clientportal/internal/domain/entities"
)

func TestClient_CreateContact(t *testing.T) {
	ctx := context.Background()
	lead := entities.Lead{Name: "Ana Maria Lima", Email: " ana@example.com ", Company: "Acme", Source: "website", Tags: []string{"lead"}}

	t.Run("sends bearer request and returns contact id", func(t *testing.T) {
		var got contactRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/contacts/", r.URL.Path)
			assert.Equal(t, "Bearer key-1", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"contact":{"id":"c-42"}}`))
		}))
		defer srv.Close()

		c := NewClient(appconfig.CRMConfig{BaseURL: srv.URL + "/", APIKey: "key-1", LocationID: "loc-1"}, zap.NewNop())
		id, err := c.CreateContact(ctx, lead)
		require.NoError(t, err)
		assert.Equal(t, "c-42", id)
		assert.Equal(t, "Ana", got.FirstName)
		assert.Equal(t, "Maria Lima", got.LastName)
		assert.Equal(t, "ana@example.com", got.Email)
		assert.Equal(t, "loc-1", got.LocationID)
		assert.Equal(t, "Acme", got.CompanyName)
	})

	t.Run("non-2xx becomes StatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"bad email"}`))
		}))
		defer srv.Close()

		c := NewClient(appconfig.CRMConfig{BaseURL: srv.URL, APIKey: "k"}, nil)
		_, err := c.CreateContact(ctx, lead)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
		assert.Contains(t, statusErr.Body, "bad email")
	})

	t.Run("not configured", func(t *testing.T) {
		c := NewClient(appconfig.CRMConfig{}, nil)
		_, err := c.CreateContact(ctx, lead)
		assert.ErrorIs(t, err, ErrCRMNotConfigured)
	})
}

func TestSplitName(t *testing.T) {
	first, last := splitName("  Cher ")
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)
}
