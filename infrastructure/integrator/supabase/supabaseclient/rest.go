package supabaseclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FetchTable lê até limit linhas de uma tabela pelo PostgREST e decodifica em dest
func (c *SupabaseClient) FetchTable(ctx context.Context, table string, limit uint64, dest any) error {
	endpoint, err := c.endpoint("/rest/v1", table)
	if err != nil {
		return err
	}

	query := endpoint.Query()
	query.Set("select", "*")
	query.Set("limit", strconv.FormatUint(limit, 10))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição da tabela %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("erro ao decodificar a tabela %s: %w", table, err)
	}

	return nil
}
