// Package browse models a client's browsing session: which screen is
// shown, the active search, and the page being viewed. Every transition
// returns a new State; nothing is shared between sessions.
package browse

import (
	"staycation/internal/catalog"
	"staycation/internal/domain"
	"staycation/internal/pagination"
)

type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenHotels    Screen = "hotels"
	ScreenDashboard Screen = "dashboard"
)

type State struct {
	Screen   Screen
	Query    catalog.Query
	Filters  catalog.Filters
	Sort     catalog.SortKey
	Page     int
	PageSize int
}

// New returns the initial session: home screen, default filters, first page.
func New() State {
	return State{
		Screen:   ScreenHome,
		Filters:  catalog.DefaultFilters(),
		Sort:     catalog.SortPriceLow,
		Page:     1,
		PageSize: pagination.DefaultPageSize,
	}
}

// Navigate switches screens and goes back to the first page.
func (s State) Navigate(to Screen) State {
	s.Screen = to
	s.Page = 1
	return s
}

// WithQuery runs a new search: it shows the hotel list from page 1.
func (s State) WithQuery(q catalog.Query) State {
	s.Query = q
	s.Screen = ScreenHotels
	s.Page = 1
	return s
}

func (s State) WithFilters(f catalog.Filters) State {
	s.Filters = f
	s.Page = 1
	return s
}

// WithSort changes ordering only; the current page is kept.
func (s State) WithSort(k catalog.SortKey) State {
	s.Sort = k
	return s
}

func (s State) WithPage(n int) State {
	s.Page = n
	return s
}

// View is what a screen shows for one State.
type View struct {
	Hotels     []domain.Hotel
	Total      int
	Page       int
	TotalPages int
	Pager      []pagination.Token
}

// Render applies the state's search to hotels and cuts out the current page.
func (s State) Render(hotels []domain.Hotel) View {
	matched := catalog.Search(hotels, s.Query, s.Filters, s.Sort)
	pg := pagination.Paginate(matched, s.PageSize, s.Page)
	return View{
		Hotels:     pg.Items,
		Total:      pg.Total,
		Page:       pg.Page,
		TotalPages: pg.TotalPages,
		Pager:      pagination.Pager(pg.ClampedPage, pg.TotalPages),
	}
}
