package client

import (
	"context"
	"fmt"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/internal/http"
	"github.com/astria-api/astria-go/pkg/astria"
)

// PromptsClient implements astria.PromptsClient.
type PromptsClient struct {
	httpClient *http.Client
}

// NewPromptsClient creates a new prompts client.
func NewPromptsClient(httpClient *http.Client) *PromptsClient {
	return &PromptsClient{
		httpClient: httpClient,
	}
}

// List implements astria.PromptsClient.List.
func (c *PromptsClient) List(ctx context.Context, tuneID int64, params *astria.ListOptions) (*astria.PaginatedResponse[astria.Prompt], error) {
	err := validateID(tuneID, constants.ErrInvalidTuneID)
	if err != nil {
		return nil, err
	}

	opts, err := params.RequestOptions()
	if err != nil {
		return nil, err
	}

	return c.pageFunc(tuneID)(ctx, opts)
}

// All implements astria.PromptsClient.All.
func (c *PromptsClient) All(ctx context.Context, tuneID int64, params *astria.ListOptions) (*astria.CollectionResponse[astria.Prompt], error) {
	err := validateID(tuneID, constants.ErrInvalidTuneID)
	if err != nil {
		return nil, err
	}

	opts, err := params.RequestOptions()
	if err != nil {
		return nil, err
	}

	return astria.Paginate(ctx, c.pageFunc(tuneID), opts)
}

// pageFunc binds the tune so the paginator only supplies request options.
func (c *PromptsClient) pageFunc(tuneID int64) astria.PageFunc[astria.Prompt] {
	return func(ctx context.Context, opts *astria.RequestOptions) (*astria.PaginatedResponse[astria.Prompt], error) {
		return listPage[astria.Prompt](ctx, c.httpClient, promptsPath(tuneID), opts)
	}
}

// Get implements astria.PromptsClient.Get.
func (c *PromptsClient) Get(ctx context.Context, tuneID, promptID int64, opts ...*astria.RequestOptions) (*astria.Response[*astria.Prompt], error) {
	err := validateIDs(tuneID, promptID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, promptPath(tuneID, promptID), requestOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("getting prompt: %w", err)
	}

	return decodeOne[astria.Prompt](resp, "prompt")
}

// Create implements astria.PromptsClient.Create.
func (c *PromptsClient) Create(ctx context.Context, tuneID int64, request *astria.PromptCreateRequest, opts ...*astria.RequestOptions) (*astria.Response[*astria.Prompt], error) {
	err := validateID(tuneID, constants.ErrInvalidTuneID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, promptsPath(tuneID), request, requestOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("creating prompt: %w", err)
	}

	return decodeOne[astria.Prompt](resp, "prompt")
}

// Update implements astria.PromptsClient.Update.
func (c *PromptsClient) Update(ctx context.Context, tuneID, promptID int64, request *astria.PromptUpdateRequest, opts ...*astria.RequestOptions) (*astria.Response[*astria.Prompt], error) {
	err := validateIDs(tuneID, promptID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, promptPath(tuneID, promptID), request, requestOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("updating prompt: %w", err)
	}

	return decodeOne[astria.Prompt](resp, "prompt")
}

// Delete implements astria.PromptsClient.Delete.
func (c *PromptsClient) Delete(ctx context.Context, tuneID, promptID int64, opts ...*astria.RequestOptions) (*astria.Response[*astria.Prompt], error) {
	err := validateIDs(tuneID, promptID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, promptPath(tuneID, promptID), requestOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("deleting prompt: %w", err)
	}

	return astria.NewResponse[*astria.Prompt](resp, nil), nil
}

func validateIDs(tuneID, promptID int64) error {
	err := validateID(tuneID, constants.ErrInvalidTuneID)
	if err != nil {
		return err
	}

	return validateID(promptID, constants.ErrInvalidPromptID)
}
