// Package catalog holds the in-memory hotel catalog and the pure
// search/filter/sort pipeline that runs over it.
package catalog

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"staycation/internal/domain"
)

type seedFile struct {
	Hotels []domain.Hotel `yaml:"hotels"`
}

// LoadFile reads a YAML seed file of hotels.
func LoadFile(path string) ([]domain.Hotel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a YAML catalog and checks ids are unique and positive.
func Decode(r io.Reader) ([]domain.Hotel, error) {
	var sf seedFile
	if err := yaml.NewDecoder(r).Decode(&sf); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(sf.Hotels); err != nil {
		return nil, err
	}
	return sf.Hotels, nil
}

func Validate(hotels []domain.Hotel) error {
	seen := make(map[int64]bool, len(hotels))
	for _, h := range hotels {
		if h.ID <= 0 {
			return fmt.Errorf("hotel %q has invalid id %d", h.Name, h.ID)
		}
		if seen[h.ID] {
			return fmt.Errorf("duplicate hotel id %d", h.ID)
		}
		if h.Price <= 0 {
			return fmt.Errorf("hotel %d has non-positive price", h.ID)
		}
		if h.Rating < domain.MinRating || h.Rating > domain.MaxRating {
			return fmt.Errorf("hotel %d has rating %d outside 1..5", h.ID, h.Rating)
		}
		seen[h.ID] = true
	}
	return nil
}

// FileSource serves a YAML seed file as a catalog source.
type FileSource struct {
	Path string
}

func (f FileSource) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(f.Path)
}

func (f FileSource) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	hs, err := f.ListHotels(ctx)
	if err != nil {
		return domain.Hotel{}, err
	}
	for _, h := range hs {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, fmt.Errorf("hotel %d: %w", id, domain.ErrHotelNotFound)
}
