package client

import (
	"context"
	"fmt"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/internal/http"
	"github.com/astria-api/astria-go/pkg/astria"
)

// TunesClient implements astria.TunesClient.
type TunesClient struct {
	httpClient *http.Client
}

// NewTunesClient creates a new tunes client.
func NewTunesClient(httpClient *http.Client) *TunesClient {
	return &TunesClient{
		httpClient: httpClient,
	}
}

// List implements astria.TunesClient.List.
func (c *TunesClient) List(ctx context.Context, params *astria.ListOptions) (*astria.PaginatedResponse[astria.Tune], error) {
	opts, err := params.RequestOptions()
	if err != nil {
		return nil, err
	}

	return c.list(ctx, opts)
}

// All implements astria.TunesClient.All.
func (c *TunesClient) All(ctx context.Context, params *astria.ListOptions) (*astria.CollectionResponse[astria.Tune], error) {
	opts, err := params.RequestOptions()
	if err != nil {
		return nil, err
	}

	return astria.Paginate(ctx, c.list, opts)
}

func (c *TunesClient) list(ctx context.Context, opts *astria.RequestOptions) (*astria.PaginatedResponse[astria.Tune], error) {
	return listPage[astria.Tune](ctx, c.httpClient, versioned("/tunes"), opts)
}

// Get implements astria.TunesClient.Get.
func (c *TunesClient) Get(ctx context.Context, tuneID int64, opts ...*astria.RequestOptions) (*astria.Response[*astria.Tune], error) {
	err := validateID(tuneID, constants.ErrInvalidTuneID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, tunePath(tuneID), requestOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("getting tune: %w", err)
	}

	return decodeOne[astria.Tune](resp, "tune")
}

// Create implements astria.TunesClient.Create.
func (c *TunesClient) Create(ctx context.Context, request *astria.TuneCreateRequest, opts ...*astria.RequestOptions) (*astria.Response[*astria.Tune], error) {
	resp, err := c.httpClient.Post(ctx, versioned("/tunes"), request, requestOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("creating tune: %w", err)
	}

	return decodeOne[astria.Tune](resp, "tune")
}

// Delete implements astria.TunesClient.Delete.
func (c *TunesClient) Delete(ctx context.Context, tuneID int64, opts ...*astria.RequestOptions) (*astria.Response[*astria.Tune], error) {
	err := validateID(tuneID, constants.ErrInvalidTuneID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, tunePath(tuneID), requestOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("deleting tune: %w", err)
	}

	return astria.NewResponse[*astria.Tune](resp, nil), nil
}
