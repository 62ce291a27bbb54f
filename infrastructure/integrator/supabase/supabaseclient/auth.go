package supabaseclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SignInResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	User        AuthUser `json:"user"`
}

// SignInWithPassword autentica no GoTrue com o fluxo grant_type=password
func (c *SupabaseClient) SignInWithPassword(ctx context.Context, email, password string) (*SignInResponse, error) {
	endpoint, err := c.endpoint("/auth/v1/token")
	if err != nil {
		return nil, err
	}

	query := endpoint.Query()
	query.Set("grant_type", "password")
	endpoint.RawQuery = query.Encode()

	body, err := json.Marshal(signInRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar credenciais: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("apikey", c.config.Key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição de login: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return nil, unexpectedStatus(resp)
	}

	var response SignInResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta de login: %w", err)
	}

	return &response, nil
}
