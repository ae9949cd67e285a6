package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astria-api/astria-go/internal/constants"
	"github.com/astria-api/astria-go/pkg/astria"
)

// listFlags are the pagination, sorting and filtering flags shared by list commands.
type listFlags struct {
	allPages bool
	page     int
	perPage  int
	sort     string
	filters  []string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&f.page, "page", 0, "page to fetch (ignored with --all)")
	cmd.Flags().IntVar(&f.perPage, "per-page", constants.DefaultPageSize, "results per page (ignored with --all)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sorting policy, e.g. created_at:desc")
	cmd.Flags().StringArrayVar(&f.filters, "filter", nil, "filter as key=value (repeatable)")
}

func (f *listFlags) options() (*astria.ListOptions, error) {
	params := &astria.ListOptions{Sort: f.sort}

	if !f.allPages {
		params.Page = f.page
		params.PerPage = f.perPage
	}

	for _, filter := range f.filters {
		key, value, found := strings.Cut(filter, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidFilter, filter)
		}

		if params.Filter == nil {
			params.Filter = map[string]string{}
		}

		params.Filter[key] = value
	}

	return params, nil
}
