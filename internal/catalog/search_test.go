package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycation/internal/catalog"
	"staycation/internal/domain"
)

func fixture() []domain.Hotel {
	return []domain.Hotel{
		{ID: 1, Name: "Taj Palace", Location: "Colaba, Mumbai", City: "Mumbai", Rating: 5, Price: 8500,
			RoomTypes: []string{"Deluxe", "Suite"}, Amenities: []string{"wifi", "pool", "gym"}},
		{ID: 2, Name: "Marine Residency", Location: "Marine Drive", City: "Mumbai", Rating: 4, Price: 4200,
			RoomTypes: []string{"Single", "Double"}, Amenities: []string{"wifi", "ac"}},
		{ID: 3, Name: "koregaon Suites", Location: "Koregaon Park", City: "Pune", Rating: 4, Price: 3900,
			RoomTypes: []string{"Double", "Suite"}, Amenities: []string{"wifi", "pool"}},
		{ID: 4, Name: "Budget Inn", Location: "Sitabuldi", City: "Nagpur", Rating: 2, Price: 900,
			RoomTypes: []string{"Single"}, Amenities: []string{"wifi"}},
		{ID: 5, Name: "Lonavala Retreat", Location: "Tiger Point", City: "Lonavala", Rating: 5, Price: 4200,
			RoomTypes: []string{"Suite"}, Amenities: []string{"wifi", "pool", "gym", "parking"}},
	}
}

func ids(hs []domain.Hotel) []int64 {
	out := make([]int64, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.ID)
	}
	return out
}

func TestSearch_LocationQuery(t *testing.T) {
	hs := fixture()

	got := catalog.Search(hs, catalog.Query{Location: "  MUMBAI "}, catalog.DefaultFilters(), catalog.SortPriceLow)
	assert.Equal(t, []int64{2, 1}, ids(got))

	// name match
	got = catalog.Search(hs, catalog.Query{Location: "retreat"}, catalog.DefaultFilters(), catalog.SortPriceLow)
	assert.Equal(t, []int64{5}, ids(got))

	// blank query matches everything
	got = catalog.Search(hs, catalog.Query{Location: "   "}, catalog.DefaultFilters(), catalog.SortPriceLow)
	assert.Len(t, got, len(hs))
}

func TestSearch_Filters(t *testing.T) {
	hs := fixture()

	cases := []struct {
		name string
		f    catalog.Filters
		want []int64
	}{
		{"price bounds inclusive", catalog.Filters{PriceMin: 900, PriceMax: 4200}, []int64{4, 3, 2, 5}},
		{"stars", catalog.Filters{PriceMax: catalog.DefaultPriceMax, Stars: []int{5}}, []int64{5, 1}},
		{"room types any-of", catalog.Filters{PriceMax: catalog.DefaultPriceMax, RoomTypes: []string{"Single", "Double"}}, []int64{4, 3, 2}},
		{"amenities all-of", catalog.Filters{PriceMax: catalog.DefaultPriceMax, Amenities: []string{"pool", "gym"}}, []int64{5, 1}},
		{"combined", catalog.Filters{PriceMax: 5000, Stars: []int{4, 5}, Amenities: []string{"pool"}}, []int64{3, 5}},
		{"nothing matches", catalog.Filters{PriceMax: catalog.DefaultPriceMax, Amenities: []string{"spa"}}, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := catalog.Search(hs, catalog.Query{}, tc.f, catalog.SortPriceLow)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestSearch_ResultIsSubsetAndSatisfiesFilters(t *testing.T) {
	hs := fixture()
	byID := map[int64]domain.Hotel{}
	for _, h := range hs {
		byID[h.ID] = h
	}
	filterSets := []catalog.Filters{
		catalog.DefaultFilters(),
		{PriceMin: 1000, PriceMax: 5000},
		{PriceMax: catalog.DefaultPriceMax, Stars: []int{2, 4}},
		{PriceMax: catalog.DefaultPriceMax, RoomTypes: []string{"Suite"}, Amenities: []string{"wifi"}},
	}
	for _, f := range filterSets {
		for _, key := range catalog.SortKeys {
			for _, h := range catalog.Search(hs, catalog.Query{Location: "a"}, f, key) {
				orig, ok := byID[h.ID]
				require.True(t, ok)
				assert.Equal(t, orig.Name, h.Name)
				assert.True(t, f.Match(h), "hotel %d violates %+v", h.ID, f)
			}
		}
	}
}

func TestSearch_SortKeys(t *testing.T) {
	hs := fixture()
	f := catalog.DefaultFilters()

	assert.Equal(t, []int64{4, 3, 2, 5, 1}, ids(catalog.Search(hs, catalog.Query{}, f, catalog.SortPriceLow)))
	assert.Equal(t, []int64{1, 2, 5, 3, 4}, ids(catalog.Search(hs, catalog.Query{}, f, catalog.SortPriceHigh)))
	assert.Equal(t, []int64{1, 5, 2, 3, 4}, ids(catalog.Search(hs, catalog.Query{}, f, catalog.SortRatingHigh)))
	assert.Equal(t, []int64{4, 2, 3, 1, 5}, ids(catalog.Search(hs, catalog.Query{}, f, catalog.SortRatingLow)))
	// collation ignores case: "koregaon" sorts between "Budget" and "Lonavala"
	assert.Equal(t, []int64{4, 3, 5, 2, 1}, ids(catalog.Search(hs, catalog.Query{}, f, catalog.SortName)))
}

func TestSearch_StableOnTies(t *testing.T) {
	hs := []domain.Hotel{
		{ID: 10, Name: "A", Rating: 3, Price: 100},
		{ID: 11, Name: "B", Rating: 3, Price: 100},
		{ID: 12, Name: "C", Rating: 3, Price: 50},
		{ID: 13, Name: "D", Rating: 3, Price: 100},
	}
	f := catalog.DefaultFilters()
	assert.Equal(t, []int64{12, 10, 11, 13}, ids(catalog.Search(hs, catalog.Query{}, f, catalog.SortPriceLow)))
	assert.Equal(t, []int64{10, 11, 13, 12}, ids(catalog.Search(hs, catalog.Query{}, f, catalog.SortPriceHigh)))
	assert.Equal(t, []int64{10, 11, 12, 13}, ids(catalog.Search(hs, catalog.Query{}, f, catalog.SortRatingHigh)))
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	hs := fixture()
	before := ids(hs)
	_ = catalog.Search(hs, catalog.Query{}, catalog.DefaultFilters(), catalog.SortPriceHigh)
	assert.Equal(t, before, ids(hs))
}

func TestParseSortKey(t *testing.T) {
	k, err := catalog.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortPriceLow, k)

	k, err = catalog.ParseSortKey("rating-high")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortRatingHigh, k)

	_, err = catalog.ParseSortKey("cheapest")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFilters_Active(t *testing.T) {
	assert.False(t, catalog.DefaultFilters().Active())
	assert.True(t, catalog.Filters{PriceMax: 5000}.Active())
	assert.True(t, catalog.Filters{PriceMax: catalog.DefaultPriceMax, Stars: []int{3}}.Active())
}
