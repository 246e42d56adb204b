package directory

import (
	"context"

	"github.com/ytget/rm-browser/internal/model"
)

// Fetcher defines the interface for fetching a page of characters.
type Fetcher interface {
	FetchPage(ctx context.Context, query model.Query) (model.PageResult, error)
}
