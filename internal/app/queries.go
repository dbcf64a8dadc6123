package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"staycation/internal/catalog"
	"staycation/internal/domain"
	"staycation/internal/pagination"
)

// Cache keys shared by the read paths and the writers that invalidate them.
const catalogKey = "catalog:v1"

func hotelKey(id int64) string   { return fmt.Sprintf("hotel:%d", id) }
func reviewsKey(id int64) string { return fmt.Sprintf("reviews:%d", id) }

// cacheGet reports a hit only for an entry that was found and decoded. Read
// and decode errors are logged and count as a miss.
func cacheGet(ctx context.Context, c domain.Cache, key string, dst any) bool {
	ok, err := c.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed, falling back to store")
		return false
	}
	return ok
}

type SearchParams struct {
	Query    catalog.Query
	Filters  catalog.Filters
	Sort     catalog.SortKey
	Page     int
	PageSize int
}

type SearchResult struct {
	Hotels     []domain.Hotel     `json:"hotels"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
	Pager      []pagination.Token `json:"pager"`
}

type QueryService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// Catalog returns every listable hotel, served from cache when possible.
func (s *QueryService) Catalog(ctx context.Context) ([]domain.Hotel, error) {
	var hs []domain.Hotel
	if cacheGet(ctx, s.cache, catalogKey, &hs) {
		return hs, nil
	}
	hs, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	if err := s.cache.Set(ctx, catalogKey, hs, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Msg("catalog cache set failed")
	}
	return hs, nil
}

// Search runs the filter/sort pipeline over the catalog and returns the
// requested page. Out-of-range pages come back empty with the real totals.
func (s *QueryService) Search(ctx context.Context, p SearchParams) (SearchResult, error) {
	hs, err := s.Catalog(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	if p.Page == 0 {
		p.Page = 1
	}
	matched := catalog.Search(hs, p.Query, p.Filters, p.Sort)
	pg := pagination.Paginate(matched, p.PageSize, p.Page)
	return SearchResult{
		Hotels:     pg.Items,
		Total:      pg.Total,
		Page:       pg.Page,
		PageSize:   pg.PageSize,
		TotalPages: pg.TotalPages,
		Pager:      pagination.Pager(pg.ClampedPage, pg.TotalPages),
	}, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	key := hotelKey(id)
	var h domain.Hotel
	if cacheGet(ctx, s.cache, key, &h) {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

// InvalidateCatalog drops the cached catalog listing.
func (s *QueryService) InvalidateCatalog(ctx context.Context) error {
	return s.cache.Del(ctx, catalogKey)
}
