package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"staycation/internal/catalog"
	"staycation/internal/domain"
)

// IngestionService copies hotels from a catalog source into the store and
// evicts the cache entries the write makes stale.
type IngestionService struct {
	source domain.CatalogSource
	repo   domain.HotelRepository
	cache  domain.Cache
}

func NewIngestionService(src domain.CatalogSource, r domain.HotelRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{source: src, repo: r, cache: cache}
}

// Fetch pulls the upstream catalog, normalizes each record and drops the
// ones that fail validation. Skipped records are returned as errors
// joined together so the caller can log them.
func (s *IngestionService) Fetch(ctx context.Context) ([]domain.Hotel, error) {
	if s.source == nil {
		return nil, errors.New("no catalog source configured")
	}
	raw, err := s.source.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	out := make([]domain.Hotel, 0, len(raw))
	var skipped []error
	seen := make(map[int64]bool, len(raw))
	for _, h := range raw {
		h = normalizeHotel(h)
		if err := catalog.Validate([]domain.Hotel{h}); err != nil {
			skipped = append(skipped, err)
			continue
		}
		if seen[h.ID] {
			skipped = append(skipped, fmt.Errorf("duplicate hotel id %d", h.ID))
			continue
		}
		seen[h.ID] = true
		out = append(out, h)
	}
	return out, errors.Join(skipped...)
}

// IngestHotel upserts one hotel. Reviews already stored for it are kept.
func (s *IngestionService) IngestHotel(ctx context.Context, h domain.Hotel) error {
	h = normalizeHotel(h)
	if err := catalog.Validate([]domain.Hotel{h}); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return fmt.Errorf("upsert hotel %d: %w", h.ID, err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, hotelKey(h.ID))
	}
	return nil
}

// Finish evicts the catalog listing once a batch of upserts is done.
func (s *IngestionService) Finish(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, catalogKey)
}

// Run fetches the source and upserts every valid hotel with at most
// workers writes in flight, then evicts the catalog listing. It returns
// how many hotels were stored. Individual upsert failures are logged and
// skipped; only a fetch failure or a cancelled ctx aborts the run.
func (s *IngestionService) Run(ctx context.Context, workers int) (int, error) {
	hotels, err := s.Fetch(ctx)
	if len(hotels) == 0 && err != nil {
		return 0, err
	}
	if err != nil {
		log.Warn().Err(err).Msg("some catalog records were skipped")
	}

	n, err := s.fanOut(ctx, workers, len(hotels), func(i int) (int64, error) {
		return hotels[i].ID, s.IngestHotel(ctx, hotels[i])
	})
	if err != nil {
		return n, err
	}

	if err := s.Finish(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog cache eviction failed")
	}
	return n, nil
}

// Refresh re-fetches the given hotels one by one from the source and
// upserts them. Unknown or invalid ids are logged and skipped.
func (s *IngestionService) Refresh(ctx context.Context, ids []int64, workers int) (int, error) {
	if s.source == nil {
		return 0, errors.New("no catalog source configured")
	}
	n, err := s.fanOut(ctx, workers, len(ids), func(i int) (int64, error) {
		h, err := s.source.GetHotel(ctx, ids[i])
		if err != nil {
			return ids[i], fmt.Errorf("fetch hotel %d: %w", ids[i], err)
		}
		return ids[i], s.IngestHotel(ctx, h)
	})
	if err != nil {
		return n, err
	}
	if err := s.Finish(ctx); err != nil {
		log.Warn().Err(err).Msg("catalog cache eviction failed")
	}
	return n, nil
}

// fanOut runs fn for indexes [0, count) with at most workers calls in
// flight and returns how many succeeded. Only a cancelled ctx stops it
// early.
func (s *IngestionService) fanOut(ctx context.Context, workers, count int, fn func(i int) (int64, error)) (int, error) {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg sync.WaitGroup
		ok atomic.Int64
	)
	for i := 0; i < count; i++ {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return int(ok.Load()), err
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer sem.Release(1)

			id, err := fn(i)
			if err != nil {
				log.Warn().Int64("id", id).Err(err).Msg("ingest failed")
				return
			}
			ok.Add(1)
			log.Debug().Int64("id", id).Msg("ingest ok")
		}(i)
	}
	wg.Wait()
	return int(ok.Load()), nil
}
