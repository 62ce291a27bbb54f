package supabaseclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2025-2-NADS4/Projeto4/internal/config"
)

func TestFetchTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/orders", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "5000", r.URL.Query().Get("limit"))
		assert.Equal(t, "chave", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer chave", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"p1","totalAmount":10.5},{"id":"p2","totalAmount":3}]`)
	}))
	defer server.Close()

	client := NewClient(config.Supabase{URL: server.URL, Key: "chave"})

	var rows []struct {
		ID          string  `json:"id"`
		TotalAmount float64 `json:"totalAmount"`
	}
	require.NoError(t, client.FetchTable(context.Background(), "orders", 5000, &rows))

	require.Len(t, rows, 2)
	assert.Equal(t, "p1", rows[0].ID)
	assert.Equal(t, 3.0, rows[1].TotalAmount)
}

func TestFetchTableUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"message":"falhou"}`)
	}))
	defer server.Close()

	client := NewClient(config.Supabase{URL: server.URL, Key: "chave"})

	var rows []map[string]any
	err := client.FetchTable(context.Background(), "orders", 10, &rows)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestSignInWithPassword(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantUserID string
	}{
		{
			name:       "Login aceito",
			status:     http.StatusOK,
			body:       `{"access_token":"tok","expires_in":3600,"user":{"id":"u-1","email":"ana@cannoli.com"}}`,
			wantUserID: "u-1",
		},
		{
			name:    "Credenciais recusadas",
			status:  http.StatusBadRequest,
			body:    `{"error":"invalid_grant"}`,
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "Falha do servidor",
			status:  http.StatusBadGateway,
			body:    `{}`,
			wantErr: ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/auth/v1/token", r.URL.Path)
				assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"email":"ana@cannoli.com","password":"segredo"}`, string(body))

				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			client := NewClient(config.Supabase{URL: server.URL, Key: "chave"})
			resp, err := client.SignInWithPassword(context.Background(), "ana@cannoli.com", "segredo")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, resp.User.ID)
		})
	}
}
