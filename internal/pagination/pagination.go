// Package pagination slices ordered lists into pages and builds the
// page-number sequence shown by pagers.
package pagination

import "strconv"

// DefaultPageSize is the listing page size used when callers pass none.
const DefaultPageSize = 10

// maxVisiblePages is the largest page count shown without ellipses.
const maxVisiblePages = 5

type Page[T any] struct {
	Items       []T
	Total       int
	PageSize    int
	Page        int // as requested
	ClampedPage int // Page clamped to [1, TotalPages]
	TotalPages  int
}

// TotalPages returns ceil(total/size), never less than 1.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	n := (total + size - 1) / size
	if n < 1 {
		return 1
	}
	return n
}

// Paginate returns the window of items for page (1-based). A page outside
// [1, TotalPages] yields no items rather than an error.
func Paginate[T any](items []T, size, page int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	p := Page[T]{
		Items:      []T{},
		Total:      len(items),
		PageSize:   size,
		Page:       page,
		TotalPages: TotalPages(len(items), size),
	}
	p.ClampedPage = clamp(page, 1, p.TotalPages)
	if page < 1 || page > p.TotalPages {
		return p
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	if start < end {
		p.Items = items[start:end]
	}
	return p
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Token is one pager slot: a page number or an ellipsis.
type Token struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func (t Token) String() string {
	if t.Ellipsis {
		return "…"
	}
	return strconv.Itoa(t.Page)
}

// Pager returns the page-number display sequence for current page c out
// of total pages t. It returns nil when t <= 1: no pager is shown.
func Pager(c, t int) []Token {
	if t <= 1 {
		return nil
	}
	var out []Token
	pages := func(from, to int) {
		for i := from; i <= to; i++ {
			out = append(out, Token{Page: i})
		}
	}
	gap := func() { out = append(out, Token{Ellipsis: true}) }

	switch {
	case t <= maxVisiblePages:
		pages(1, t)
	case c <= 3:
		pages(1, 3)
		if t > 4 {
			gap()
			pages(t, t)
		}
	case c >= t-2:
		pages(1, 1)
		if t > 4 {
			gap()
		}
		pages(t-2, t)
	default:
		pages(1, 1)
		gap()
		pages(c-1, c+1)
		gap()
		pages(t, t)
	}
	return out
}
