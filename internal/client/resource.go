package client

import (
	"context"
	"fmt"

	"github.com/astria-api/astria-go/internal/http"
	"github.com/astria-api/astria-go/pkg/astria"
)

// listPage fetches one page of a collection and decodes it.
func listPage[T any](ctx context.Context, httpClient *http.Client, path string, opts *astria.RequestOptions) (*astria.PaginatedResponse[T], error) {
	resp, err := httpClient.Get(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	page, err := astria.DecodePage[T](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return page, nil
}

// decodeOne wraps the single resource held in the "data" member of resp.
func decodeOne[T any](resp *astria.RawResponse, what string) (*astria.Response[*T], error) {
	data, err := astria.DecodeData[*T](resp)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return astria.NewResponse(resp, data), nil
}

// requestOptions folds the optional per-call options into one value, later ones winning.
func requestOptions(opts []*astria.RequestOptions) *astria.RequestOptions {
	var merged *astria.RequestOptions

	for _, opt := range opts {
		if opt != nil {
			merged = astria.MergeOptions(merged, opt)
		}
	}

	return merged
}

func validateID(id int64, sentinel error) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", sentinel, id)
	}

	return nil
}

func tunePath(tuneID int64) string {
	return versioned(fmt.Sprintf("/tunes/%d", tuneID))
}

func promptsPath(tuneID int64) string {
	return versioned(fmt.Sprintf("/%d/prompts", tuneID))
}

func promptPath(tuneID, promptID int64) string {
	return versioned(fmt.Sprintf("/%d/prompts/%d", tuneID, promptID))
}
