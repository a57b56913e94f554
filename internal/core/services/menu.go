package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
	"github.com/8ui/restomenu-core-sub000/internal/core/ports/driven"
	"github.com/8ui/restomenu-core-sub000/internal/core/ports/driving"
	"github.com/8ui/restomenu-core-sub000/internal/logger"
)

// Ensure MenuService implements the interface.
var _ driving.MenuService = (*MenuService)(nil)

// MenuService answers menu queries over snapshots borrowed from a
// catalog source. The service holds no state beyond the source handle,
// so one instance serves concurrent callers.
type MenuService struct {
	source driven.CatalogSource
}

// NewMenuService creates a new menu service.
func NewMenuService(source driven.CatalogSource) *MenuService {
	return &MenuService{source: source}
}

// QueryMenu runs the full query pipeline: organize, filter, sort, and
// score when a search term is present. With a search term and no explicit
// sort strategy the buckets are ranked by descending relevance, ties
// keeping catalog order.
func (s *MenuService) QueryMenu(ctx context.Context, filter domain.Filter) (domain.MenuView, error) {
	logger.Section("Menu Query")

	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.MenuView{}, err
	}

	filter.SearchTerm = NormalizeTerm(filter.SearchTerm)
	tagNames := snap.TagNames()

	menu := Organize(snap)
	logger.Debug("Organized: %d categories, %d uncategorized, %d products",
		len(menu.Categories), len(menu.Uncategorized), menu.ProductCount())

	menu = ApplyFilters(menu, filter, tagNames)

	view := domain.MenuView{}

	if filter.HasSearch() {
		view.Scores = scoreMenu(menu, filter.SearchTerm, tagNames)
	}

	switch {
	case filter.SortBy != "":
		sorted, fallback := SortMenu(menu, filter)
		menu = sorted
		view.SortFallback = fallback
		if fallback {
			logger.Warn("Sort strategy %q unsatisfiable, kept catalog order", filter.SortBy)
		}
	case filter.HasSearch():
		menu = rankMenu(menu, view.Scores)
	}

	view.Menu = menu
	view.TotalProducts = menu.ProductCount()
	view.TotalCategories = len(menu.Categories)

	logger.Info("Query result: %d products across %d categories", view.TotalProducts, view.TotalCategories)
	return view, nil
}

// OrganizeMenu structures the current snapshot without filtering.
func (s *MenuService) OrganizeMenu(ctx context.Context) (domain.OrganizedMenu, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.OrganizedMenu{}, err
	}
	return Organize(snap), nil
}

// Statistics computes aggregate metrics over the current snapshot,
// narrowed by the filter first. Aggregation is pure, so statistics over a
// filtered view equal statistics computed after filtering by any route.
func (s *MenuService) Statistics(ctx context.Context, filter domain.Filter) (domain.MenuStatistics, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.MenuStatistics{}, err
	}

	filter.SearchTerm = NormalizeTerm(filter.SearchTerm)
	tagNames := snap.TagNames()

	menu := ApplyFilters(Organize(snap), filter, tagNames)
	return ComputeStatistics(menu, tagNames), nil
}

// Validate checks the current snapshot for catalog quality problems.
func (s *MenuService) Validate(ctx context.Context) (domain.ValidationReport, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.ValidationReport{}, err
	}
	return ValidateMenu(Organize(snap)), nil
}

func (s *MenuService) snapshot(ctx context.Context) (domain.Snapshot, error) {
	if s.source == nil {
		return domain.Snapshot{}, domain.ErrCatalogUnavailable
	}
	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}

// scoreMenu computes relevance scores for every distinct product left in
// the menu, keyed by product id.
func scoreMenu(menu domain.OrganizedMenu, term string, tagNames map[string]string) map[string]int {
	products := distinctProducts(menu)
	scores := make(map[string]int, len(products))
	for _, p := range products {
		scores[p.ID] = ScoreProduct(p, term, tagNames)
	}
	return scores
}

// rankMenu orders every bucket by descending relevance score, keeping
// catalog order among equal scores.
func rankMenu(menu domain.OrganizedMenu, scores map[string]int) domain.OrganizedMenu {
	rank := func(products []domain.Product) []domain.Product {
		out := make([]domain.Product, len(products))
		copy(out, products)
		sort.SliceStable(out, func(i, j int) bool {
			return scores[out[i].ID] > scores[out[j].ID]
		})
		return out
	}

	out := domain.OrganizedMenu{
		Categories:    make([]domain.OrganizedCategory, len(menu.Categories)),
		Uncategorized: rank(menu.Uncategorized),
	}
	for i, c := range menu.Categories {
		out.Categories[i] = domain.OrganizedCategory{
			Category: c.Category,
			Products: rank(c.Products),
		}
	}
	return out
}
