package astria

import (
	"context"
	"errors"
	"fmt"

	"github.com/astria-api/astria-go/internal/constants"
)

// PaginationPerPage is the page size requested while walking every page.
const PaginationPerPage = constants.PaginationPerPage

// ErrNilPage is returned when a PageFunc reports neither a page nor an error.
var ErrNilPage = errors.New("page fetch returned no page")

// PageFunc fetches a single page of a collection with the given options.
type PageFunc[T any] func(ctx context.Context, opts *RequestOptions) (*PaginatedResponse[T], error)

// Paginate calls fetch once per page, starting at page 1, and concatenates
// the items of every page.
//
// Each call receives opts deep merged with page=<n> and per_page=100; those
// two keys always override any page or per_page in opts. The total number of
// pages is taken from the first page only. Paging stops once the current page
// reaches that total, so fetch is called at least once even when the server
// reports zero pages. The returned collection carries the raw response of the
// last page fetched. Any error stops paging and is returned as-is.
func Paginate[T any](ctx context.Context, fetch PageFunc[T], opts *RequestOptions) (*CollectionResponse[T], error) {
	var (
		currentPage int
		totalPages  int
		lastRaw     *RawResponse
	)

	collection := []T{}

	for {
		currentPage++

		pageOpts := MergeOptions(opts, &RequestOptions{
			Query: map[string]interface{}{
				"page":     currentPage,
				"per_page": PaginationPerPage,
			},
		})

		page, err := fetch(ctx, pageOpts)
		if err != nil {
			return nil, err
		}

		if page == nil {
			return nil, fmt.Errorf("page %d: %w", currentPage, ErrNilPage)
		}

		if currentPage == 1 {
			totalPages = page.TotalPages()
		}

		collection = append(collection, page.Data...)
		lastRaw = page.HTTPResponse

		if currentPage >= totalPages {
			break
		}
	}

	return NewCollectionResponse(lastRaw, collection), nil
}
