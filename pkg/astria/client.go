package astria

import (
	"context"
)

// TunesClient defines operations for tunes.
type TunesClient interface {
	List(ctx context.Context, params *ListOptions) (*PaginatedResponse[Tune], error)
	All(ctx context.Context, params *ListOptions) (*CollectionResponse[Tune], error)
	Get(ctx context.Context, tuneID int64, opts ...*RequestOptions) (*Response[*Tune], error)
	Create(ctx context.Context, request *TuneCreateRequest, opts ...*RequestOptions) (*Response[*Tune], error)
	Delete(ctx context.Context, tuneID int64, opts ...*RequestOptions) (*Response[*Tune], error)
}

// PromptsClient defines operations for the prompts of a tune.
type PromptsClient interface {
	List(ctx context.Context, tuneID int64, params *ListOptions) (*PaginatedResponse[Prompt], error)
	All(ctx context.Context, tuneID int64, params *ListOptions) (*CollectionResponse[Prompt], error)
	Get(ctx context.Context, tuneID, promptID int64, opts ...*RequestOptions) (*Response[*Prompt], error)
	Create(ctx context.Context, tuneID int64, request *PromptCreateRequest, opts ...*RequestOptions) (*Response[*Prompt], error)
	Update(ctx context.Context, tuneID, promptID int64, request *PromptUpdateRequest, opts ...*RequestOptions) (*Response[*Prompt], error)
	Delete(ctx context.Context, tuneID, promptID int64, opts ...*RequestOptions) (*Response[*Prompt], error)
}

// AccountsClient defines operations for accounts.
type AccountsClient interface {
	List(ctx context.Context) (*CollectionResponse[Account], error)
}

// Client is the Astria API client.
type Client interface {
	Tunes() TunesClient
	Prompts() PromptsClient
	Accounts() AccountsClient

	// Config returns the resolved configuration the client was built with.
	Config() Config
}
