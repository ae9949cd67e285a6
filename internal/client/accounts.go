package client

import (
	"context"
	"fmt"

	"github.com/astria-api/astria-go/internal/http"
	"github.com/astria-api/astria-go/pkg/astria"
)

// AccountsClient implements astria.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
	}
}

// List implements astria.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context) (*astria.CollectionResponse[astria.Account], error) {
	resp, err := c.httpClient.Get(ctx, versioned("/accounts"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	accounts, err := astria.DecodeCollection[astria.Account](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing accounts: %w", err)
	}

	return accounts, nil
}
