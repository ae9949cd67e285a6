package astria

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/astria-api/astria-go/internal/constants"
)

// RawResponse is a completed HTTP response with its body fully read.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *RawResponse) Decode(v interface{}) error {
	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Response wraps the raw HTTP response of a call together with its decoded data.
type Response[T any] struct {
	HTTPResponse *RawResponse
	Data         T
}

// NewResponse wraps raw and data.
func NewResponse[T any](raw *RawResponse, data T) *Response[T] {
	return &Response[T]{HTTPResponse: raw, Data: data}
}

// CollectionResponse is a Response whose data is an ordered collection.
type CollectionResponse[T any] struct {
	Response[[]T]
}

// NewCollectionResponse wraps raw and items.
func NewCollectionResponse[T any](raw *RawResponse, items []T) *CollectionResponse[T] {
	return &CollectionResponse[T]{Response: Response[[]T]{HTTPResponse: raw, Data: items}}
}

// Pagination describes the page a PaginatedResponse holds.
type Pagination struct {
	CurrentPage  int `json:"current_page"  yaml:"current_page"`
	PerPage      int `json:"per_page"      yaml:"per_page"`
	TotalEntries int `json:"total_entries" yaml:"total_entries"`
	TotalPages   int `json:"total_pages"   yaml:"total_pages"`
}

// PaginatedResponse is a single page of a collection.
type PaginatedResponse[T any] struct {
	CollectionResponse[T]

	Pagination Pagination
}

// TotalPages returns the number of pages reported by the server.
func (p *PaginatedResponse[T]) TotalPages() int {
	return p.Pagination.TotalPages
}

// DecodeData decodes the "data" member of a JSON response body.
// Keys of the data object that T does not declare are ignored.
func DecodeData[T any](raw *RawResponse) (T, error) {
	var envelope struct {
		Data T `json:"data"`
	}

	err := raw.Decode(&envelope)

	return envelope.Data, err
}

// DecodeCollection decodes the "data" array of a JSON response body.
func DecodeCollection[T any](raw *RawResponse) (*CollectionResponse[T], error) {
	items, err := DecodeData[[]T](raw)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	return NewCollectionResponse(raw, items), nil
}

// DecodePage decodes one page of a collection. Pagination is read from the
// body's "pagination" object, or from the X-Page, X-Per-Page, X-Total and
// X-Total-Pages headers when the body has none.
func DecodePage[T any](raw *RawResponse) (*PaginatedResponse[T], error) {
	var envelope struct {
		Data       []T         `json:"data"`
		Pagination *Pagination `json:"pagination"`
	}

	err := raw.Decode(&envelope)
	if err != nil {
		return nil, err
	}

	if envelope.Data == nil {
		envelope.Data = []T{}
	}

	pagination := paginationFromHeader(raw.Header)
	if envelope.Pagination != nil {
		pagination = *envelope.Pagination
	}

	return &PaginatedResponse[T]{
		CollectionResponse: *NewCollectionResponse(raw, envelope.Data),
		Pagination:         pagination,
	}, nil
}

func paginationFromHeader(header http.Header) Pagination {
	return Pagination{
		CurrentPage:  headerInt(header, constants.HeaderCurrentPage),
		PerPage:      headerInt(header, constants.HeaderPerPage),
		TotalEntries: headerInt(header, constants.HeaderTotalEntries),
		TotalPages:   headerInt(header, constants.HeaderTotalPages),
	}
}

func headerInt(header http.Header, key string) int {
	value, err := strconv.Atoi(header.Get(key))
	if err != nil {
		return 0
	}

	return value
}
