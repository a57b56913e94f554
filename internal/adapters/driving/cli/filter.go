package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/8ui/restomenu-core-sub000/internal/adapters/driven/config/file"
	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// filterFlags collects the query dimensions shared by the query and
// stats commands. Each command registers its own instance so flag state
// never leaks between commands.
type filterFlags struct {
	category   string
	categories []string
	tagsAll    []string
	tagsAny    []string
	tagsNotAll []string
	tagsNotAny []string
	priceMin   int64
	priceMax   int64
	outlet     string
	channel    string
	activeOnly bool
	sortBy     string
	sortOrder  string
	anchor     string
}

// register declares the filter flags on cmd.
func (ff *filterFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&ff.category, "category", "", "restrict to one category id")
	flags.StringSliceVar(&ff.categories, "categories", nil, "restrict to a set of category ids")
	flags.StringSliceVar(&ff.tagsAll, "tags-all", nil, "keep products carrying every listed tag id")
	flags.StringSliceVar(&ff.tagsAny, "tags-any", nil, "keep products carrying at least one listed tag id")
	flags.StringSliceVar(&ff.tagsNotAll, "tags-not-all", nil, "drop products carrying every listed tag id together")
	flags.StringSliceVar(&ff.tagsNotAny, "tags-not-any", nil, "drop products carrying any listed tag id")
	flags.Int64Var(&ff.priceMin, "price-min", 0, "minimum price in minor currency units")
	flags.Int64Var(&ff.priceMax, "price-max", 0, "maximum price in minor currency units")
	flags.StringVar(&ff.outlet, "outlet", "", "restrict to one outlet id")
	flags.StringVar(&ff.channel, "channel", "", "restrict to one fulfillment channel (delivery, pickup, inside)")
	flags.BoolVar(&ff.activeOnly, "active", false, "keep only active products and categories")
	flags.StringVar(&ff.sortBy, "sort", "", "sort strategy (name, price, popularity, categoryPriority)")
	flags.StringVar(&ff.sortOrder, "order", "", "sort direction (asc, desc)")
	flags.StringVar(&ff.anchor, "anchor", "", "anchor category id for the categoryPriority strategy")
}

// build assembles a domain filter from the parsed flags. The first
// positional argument, if any, becomes the search term. Sort strategy
// and direction fall back to the configured defaults when no flag
// names them.
func (ff *filterFlags) build(cmd *cobra.Command, args []string) (domain.Filter, error) {
	filter := domain.Filter{
		CategoryID:       ff.category,
		CategoryIDs:      ff.categories,
		TagIDsAll:        ff.tagsAll,
		TagIDsAny:        ff.tagsAny,
		TagIDsNotAll:     ff.tagsNotAll,
		TagIDsNotAny:     ff.tagsNotAny,
		OutletID:         ff.outlet,
		ActiveOnly:       ff.activeOnly,
		AnchorCategoryID: ff.anchor,
	}

	if len(args) > 0 {
		filter.SearchTerm = args[0]
	}

	// Zero is a legal bound, so presence is what matters.
	if cmd.Flags().Changed("price-min") {
		filter.PriceMin = &ff.priceMin
	}
	if cmd.Flags().Changed("price-max") {
		filter.PriceMax = &ff.priceMax
	}

	channel, err := domain.ParseChannel(ff.channel)
	if err != nil {
		return domain.Filter{}, err
	}
	filter.Channel = channel

	sortBy := ff.sortBy
	sortOrder := ff.sortOrder
	if configStore != nil {
		if sortBy == "" {
			sortBy = configStore.GetString(configfile.KeyDefaultSort)
		}
		if sortOrder == "" {
			sortOrder = configStore.GetString(configfile.KeyDefaultOrder)
		}
		if filter.OutletID == "" {
			filter.OutletID = configStore.GetString(configfile.KeyDefaultOutlet)
		}
		if filter.Channel == "" {
			channel, err := domain.ParseChannel(configStore.GetString(configfile.KeyDefaultChannel))
			if err != nil {
				return domain.Filter{}, fmt.Errorf("configured default channel: %w", err)
			}
			filter.Channel = channel
		}
	}

	if sortBy != "" {
		strategy, err := domain.ParseSortStrategy(sortBy)
		if err != nil {
			return domain.Filter{}, err
		}
		filter.SortBy = strategy
	}

	order, err := domain.ParseSortOrder(sortOrder)
	if err != nil {
		return domain.Filter{}, err
	}
	filter.SortOrder = order

	return filter, nil
}
