package driving

import (
	"context"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// MenuService provides menu queries to external actors.
type MenuService interface {
	// QueryMenu runs the full query pipeline over the current snapshot:
	// organize, filter, sort, and score when a search term is present.
	QueryMenu(ctx context.Context, filter domain.Filter) (domain.MenuView, error)

	// OrganizeMenu structures the current snapshot without filtering.
	OrganizeMenu(ctx context.Context) (domain.OrganizedMenu, error)

	// Statistics computes aggregate metrics over the current snapshot,
	// narrowed by the filter first. A zero filter reports on everything.
	Statistics(ctx context.Context, filter domain.Filter) (domain.MenuStatistics, error)

	// Validate checks the current snapshot for catalog quality problems.
	Validate(ctx context.Context) (domain.ValidationReport, error)
}
