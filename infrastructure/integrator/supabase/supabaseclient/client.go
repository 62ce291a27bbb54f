package supabaseclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/2025-2-NADS4/Projeto4/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("credenciais recusadas pelo Supabase")
	ErrUnexpectedStatus   = errors.New("resposta inesperada do Supabase")
)

type Client interface {
	FetchTable(ctx context.Context, table string, limit uint64, dest any) error
	SignInWithPassword(ctx context.Context, email, password string) (*SignInResponse, error)
}

type SupabaseClient struct {
	httpClient *http.Client
	config     config.Supabase
}

func NewClient(cfg config.Supabase) Client {
	return &SupabaseClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

func (c *SupabaseClient) endpoint(segments ...string) (*url.URL, error) {
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(append([]string{endpoint.Path}, segments...)...)
	return endpoint, nil
}

func (c *SupabaseClient) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.config.Key)
	req.Header.Set("Authorization", "Bearer "+c.config.Key)
	req.Header.Set("Accept", "application/json")
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%w: %s: %s", ErrUnexpectedStatus, resp.Status, string(body))
}
