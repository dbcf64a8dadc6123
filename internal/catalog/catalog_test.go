package catalog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycation/internal/catalog"
	"staycation/internal/domain"
)

func TestDecode(t *testing.T) {
	src := `
hotels:
  - id: 7
    name: Orange City Grand
    city: Nagpur
    location: Civil Lines, Nagpur
    rating: 4
    price: 3200
    discount: 10
    room_types: [Double, Suite]
    amenities: [wifi, pool]
`
	hs, err := catalog.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, int64(7), hs[0].ID)
	assert.Equal(t, []string{"Double", "Suite"}, hs[0].RoomTypes)
	require.NotNil(t, hs[0].Discount)
	assert.Equal(t, 10, *hs[0].Discount)
	assert.Nil(t, hs[0].OriginalPrice)
}

func TestDecode_RejectsDuplicateIDs(t *testing.T) {
	src := `
hotels:
  - {id: 1, name: A, rating: 3, price: 100}
  - {id: 1, name: B, rating: 3, price: 100}
`
	_, err := catalog.Decode(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate hotel id 1")
}

func TestLoadFile_SeedCatalog(t *testing.T) {
	hs, err := catalog.LoadFile("../../data/hotels.yaml")
	require.NoError(t, err)
	assert.Len(t, hs, 12)
}

func TestFileSource_GetHotel(t *testing.T) {
	src := catalog.FileSource{Path: "../../data/hotels.yaml"}
	h, err := src.GetHotel(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Marine Drive Residency", h.Name)

	_, err = src.GetHotel(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrHotelNotFound)
}
