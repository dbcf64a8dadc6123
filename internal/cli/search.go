package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"staycation/internal/browse"
	"staycation/internal/catalog"
	"staycation/internal/pagination"
)

type searchOptions struct {
	location  string
	minPrice  float64
	maxPrice  float64
	stars     []int
	roomTypes []string
	amenities []string
	sort      string
	page      int
	pageSize  int
}

func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	o := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search [location]",
		Short: "Search the catalog",
		Long: `Search hotels by name, area or city and narrow the list with filters.

Results are sorted (price-low by default) and paginated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.location = args[0]
			}
			return runSearch(rootOpts, o, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Float64Var(&o.minPrice, "min-price", 0, "minimum nightly price")
	cmd.Flags().Float64Var(&o.maxPrice, "max-price", catalog.DefaultPriceMax, "maximum nightly price")
	cmd.Flags().IntSliceVar(&o.stars, "stars", nil, "star ratings to include (any of)")
	cmd.Flags().StringSliceVar(&o.roomTypes, "room-types", nil, "room types to include (any of)")
	cmd.Flags().StringSliceVar(&o.amenities, "amenities", nil, "required amenities (all of)")
	cmd.Flags().StringVar(&o.sort, "sort", string(catalog.SortPriceLow), "sort order: price-low|price-high|rating-high|rating-low|name")
	cmd.Flags().IntVarP(&o.page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&o.pageSize, "page-size", pagination.DefaultPageSize, "hotels per page")
	return cmd
}

func runSearch(rootOpts *RootOptions, o *searchOptions, w io.Writer) error {
	key, err := catalog.ParseSortKey(o.sort)
	if err != nil {
		return err
	}
	if o.page < 1 || o.pageSize < 1 {
		return fmt.Errorf("page and page-size must be positive")
	}
	hotels, err := rootOpts.loadCatalog()
	if err != nil {
		return err
	}

	st := browse.New().
		WithQuery(catalog.Query{Location: o.location}).
		WithFilters(catalog.Filters{
			PriceMin:  o.minPrice,
			PriceMax:  o.maxPrice,
			Stars:     o.stars,
			RoomTypes: o.roomTypes,
			Amenities: o.amenities,
		}).
		WithSort(key)
	st.PageSize = o.pageSize
	view := st.WithPage(o.page).Render(hotels)

	if rootOpts.Format == "json" {
		return writeJSON(w, view)
	}

	if len(view.Hotels) == 0 {
		fmt.Fprintf(w, "No hotels found (%d match).\n", view.Total)
		return nil
	}
	for _, h := range view.Hotels {
		sold := ""
		if h.SoldOut {
			sold = "  [sold out]"
		}
		fmt.Fprintf(w, "%3d  %-36s %-28s %s  ₹%.0f%s\n",
			h.ID, h.Name, h.Location, strings.Repeat("★", h.Rating), h.Price, sold)
	}
	fmt.Fprintf(w, "\npage %d of %d, %d hotels", view.Page, view.TotalPages, view.Total)
	if len(view.Pager) > 0 {
		parts := make([]string, 0, len(view.Pager))
		for _, t := range view.Pager {
			s := t.String()
			if !t.Ellipsis && t.Page == view.Page {
				s = "[" + s + "]"
			}
			parts = append(parts, s)
		}
		fmt.Fprintf(w, "  %s", strings.Join(parts, " "))
	}
	fmt.Fprintln(w)
	return nil
}
