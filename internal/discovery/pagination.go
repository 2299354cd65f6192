package discovery

import "sort"

// Ellipsis is the gap marker in a windowed page list
const Ellipsis = -1

// WindowedPages builds the page strip for a paginator: always page 1, always
// the last page, a one-page window around the current page, and an Ellipsis
// wherever consecutive entries skip more than one page.
//
// WindowedPages(5, 10) yields [1 Ellipsis 4 5 6 Ellipsis 10].
func WindowedPages(current, total int) []int {
	if total < 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	seen := map[int]bool{1: true}
	if total > 1 {
		seen[total] = true
	}
	for p := current - 1; p <= current+1; p++ {
		if p >= 2 && p <= total-1 {
			seen[p] = true
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	out := make([]int, 0, len(pages)+2)
	prev := 0
	for _, p := range pages {
		if prev > 0 && p-prev > 1 {
			out = append(out, Ellipsis)
		}
		out = append(out, p)
		prev = p
	}
	return out
}

// Pager exposes pagination moves over gateway-computed totals. It never
// derives totals itself; they come straight from the list response meta.
type Pager struct {
	Current int
	Total   int
}

// HasPrev reports whether a previous page exists
func (p Pager) HasPrev() bool {
	return p.Current > 1
}

// HasNext reports whether a next page exists
func (p Pager) HasNext() bool {
	return p.Current < p.Total
}

// Clamp snaps a requested page into the valid range
func (p Pager) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if p.Total > 0 && page > p.Total {
		return p.Total
	}
	return page
}

// Pages returns the windowed page strip for rendering
func (p Pager) Pages() []int {
	return WindowedPages(p.Current, p.Total)
}
