package astria

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/google/go-querystring/query"

	"github.com/astria-api/astria-go/internal/maputil"
)

// RequestOptions carries the query parameters and headers of a single request.
//
// Query values may be scalars, string slices or nested
// map[string]interface{} values; nested maps are sent as key[sub]=value.
type RequestOptions struct {
	Query   map[string]interface{}
	Headers map[string]string
}

// MergeOptions returns a new RequestOptions holding base overlaid with override.
// Query maps are deep merged; headers in override replace those in base.
// Header names are compared in canonical form, so "accept" replaces "Accept".
// Either argument may be nil and neither is modified.
func MergeOptions(base, override *RequestOptions) *RequestOptions {
	merged := &RequestOptions{}

	var (
		baseQuery, overrideQuery     map[string]interface{}
		baseHeaders, overrideHeaders map[string]string
	)

	if base != nil {
		baseQuery, baseHeaders = base.Query, base.Headers
	}

	if override != nil {
		overrideQuery, overrideHeaders = override.Query, override.Headers
	}

	merged.Query = maputil.DeepMerge(baseQuery, overrideQuery)
	merged.Headers = maputil.MergeStrings(canonicalHeaders(baseHeaders), canonicalHeaders(overrideHeaders))

	return merged
}

// canonicalHeaders rekeys headers by their canonical name. Keys are visited in
// sorted order so a map holding two spellings of one header resolves the same
// way every time.
func canonicalHeaders(headers map[string]string) map[string]string {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	out := make(map[string]string, len(headers))
	for _, key := range keys {
		out[http.CanonicalHeaderKey(key)] = headers[key]
	}

	return out
}

// Values encodes the query map as url.Values.
func (o *RequestOptions) Values() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	encodeQuery(values, "", o.Query)

	return values
}

func encodeQuery(values url.Values, prefix string, params map[string]interface{}) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		name := key
		if prefix != "" {
			name = prefix + "[" + key + "]"
		}

		switch value := params[key].(type) {
		case nil:
		case map[string]interface{}:
			encodeQuery(values, name, value)
		case map[string]string:
			for sub, v := range value {
				values.Add(name+"["+sub+"]", v)
			}
		case []string:
			for _, v := range value {
				values.Add(name, v)
			}
		case []interface{}:
			for _, v := range value {
				values.Add(name, fmt.Sprint(v))
			}
		default:
			values.Set(name, fmt.Sprint(value))
		}
	}
}

// ListOptions are the filtering, sorting and paging parameters accepted by list endpoints.
type ListOptions struct {
	// Page is the 1-based page to fetch. Ignored by the All methods.
	Page int `url:"page,omitempty"`
	// PerPage is the page size. Ignored by the All methods, which always use 100.
	PerPage int `url:"per_page,omitempty"`
	// Sort is a sorting policy such as "name:desc".
	Sort string `url:"sort,omitempty"`
	// Filter is sent as filter[key]=value.
	Filter map[string]string `url:"-"`
	// Extra query parameters and headers merged on top of the above.
	Extra *RequestOptions `url:"-"`
}

// RequestOptions converts the list options to request options.
func (o *ListOptions) RequestOptions() (*RequestOptions, error) {
	if o == nil {
		return &RequestOptions{}, nil
	}

	values, err := query.Values(o)
	if err != nil {
		return nil, fmt.Errorf("encoding list options: %w", err)
	}

	params := make(map[string]interface{}, len(values)+1)

	for key, vs := range values {
		if len(vs) == 1 {
			params[key] = vs[0]

			continue
		}

		params[key] = vs
	}

	if len(o.Filter) > 0 {
		filter := make(map[string]interface{}, len(o.Filter))
		for key, value := range o.Filter {
			filter[key] = value
		}

		params["filter"] = filter
	}

	return MergeOptions(&RequestOptions{Query: params}, o.Extra), nil
}
