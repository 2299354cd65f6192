package discovery

import (
	"net/url"
	"strconv"

	"github.com/sTrAy74/swi-web/internal/gateway"
)

// Browser-facing query parameter names. The services key is plural here but
// singular on the upstream wire; ToQuery performs that rename.
const (
	paramSearch        = "search"
	paramCity          = "city"
	paramState         = "state"
	paramMinExperience = "min_experience"
	paramMaxExperience = "max_experience"
	paramMinRating     = "min_rating"
	paramMaxRating     = "max_rating"
	paramServices      = "services"
	paramSortBy        = "sortBy"
	paramOrder         = "order"
	paramPage          = "page"
	paramPageSize      = "pageSize"
)

// Decode reads filter and page state out of a URL query. Absent keys take
// their defaults and unparseable numeric values count as absent, so any
// hand-mangled URL still decodes into a usable state.
func Decode(values url.Values) (FilterState, PageState) {
	filter := FilterState{
		Query:         values.Get(paramSearch),
		City:          values.Get(paramCity),
		State:         values.Get(paramState),
		MinExperience: parseIntPtr(values.Get(paramMinExperience)),
		MaxExperience: parseIntPtr(values.Get(paramMaxExperience)),
		MinRating:     parseFloatPtr(values.Get(paramMinRating)),
		MaxRating:     parseFloatPtr(values.Get(paramMaxRating)),
		Services:      values.Get(paramServices),
		SortBy:        values.Get(paramSortBy),
		Order:         values.Get(paramOrder),
	}

	page := PageState{}
	if n, err := strconv.Atoi(values.Get(paramPage)); err == nil {
		page.Page = n
	}
	if n, err := strconv.Atoi(values.Get(paramPageSize)); err == nil {
		page.PageSize = n
	}

	return filter.Normalize(), page.Normalize()
}

// Encode writes filter and page state into a URL query, omitting every
// value that matches its default. Encoding the default state yields an
// empty query, and url.Values.Encode gives the canonical key ordering.
func Encode(filter FilterState, page PageState) url.Values {
	filter = filter.Normalize()
	page = page.Normalize()

	values := url.Values{}
	setNonEmpty(values, paramSearch, filter.Query)
	setNonEmpty(values, paramCity, filter.City)
	setNonEmpty(values, paramState, filter.State)
	if filter.MinExperience != nil {
		values.Set(paramMinExperience, strconv.Itoa(*filter.MinExperience))
	}
	if filter.MaxExperience != nil {
		values.Set(paramMaxExperience, strconv.Itoa(*filter.MaxExperience))
	}
	if filter.MinRating != nil {
		values.Set(paramMinRating, formatFloat(*filter.MinRating))
	}
	if filter.MaxRating != nil {
		values.Set(paramMaxRating, formatFloat(*filter.MaxRating))
	}
	setNonEmpty(values, paramServices, filter.Services)
	if filter.SortBy != DefaultSortBy {
		values.Set(paramSortBy, filter.SortBy)
	}
	if filter.Order != DefaultOrder {
		values.Set(paramOrder, filter.Order)
	}
	if page.Page != DefaultPage {
		values.Set(paramPage, strconv.Itoa(page.Page))
	}
	if page.PageSize != DefaultPageSize {
		values.Set(paramPageSize, strconv.Itoa(page.PageSize))
	}
	return values
}

// CanonicalQuery is the stable string form of a discovery state, used both
// for shareable URLs and as a cache key.
func CanonicalQuery(filter FilterState, page PageState) string {
	return Encode(filter, page).Encode()
}

// ToQuery maps browser-facing state onto the upstream list request. The
// plural services key becomes the singular service key expected upstream.
func ToQuery(filter FilterState, page PageState) gateway.ProvidersQuery {
	filter = filter.Normalize()
	page = page.Normalize()
	return gateway.ProvidersQuery{
		Page:          page.Page,
		PageSize:      page.PageSize,
		Search:        filter.Query,
		City:          filter.City,
		State:         filter.State,
		MinExperience: filter.MinExperience,
		MaxExperience: filter.MaxExperience,
		MinRating:     filter.MinRating,
		MaxRating:     filter.MaxRating,
		Service:       filter.Services,
		SortBy:        filter.SortBy,
		Order:         filter.Order,
	}
}

func setNonEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
