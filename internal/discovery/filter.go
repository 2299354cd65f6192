package discovery

// Sort defaults for provider discovery. These are also the values the codec
// omits from encoded URLs, keeping canonical URLs free of noise.
const (
	DefaultSortBy   = "createdAt"
	DefaultOrder    = "desc"
	DefaultPage     = 1
	DefaultPageSize = 10
)

// FilterState is the complete set of provider discovery filters. Numeric
// bounds are pointers: nil means the bound is unset, which is distinct from
// a bound of zero.
type FilterState struct {
	Query         string
	City          string
	State         string
	MinExperience *int
	MaxExperience *int
	MinRating     *float64
	MaxRating     *float64
	Services      string
	SortBy        string
	Order         string
}

// PageState is the pagination cursor over a filtered result set
type PageState struct {
	Page     int
	PageSize int
}

// DefaultFilter returns the empty filter with default sort applied
func DefaultFilter() FilterState {
	return FilterState{SortBy: DefaultSortBy, Order: DefaultOrder}
}

// DefaultPageState returns the first page at the default size
func DefaultPageState() PageState {
	return PageState{Page: DefaultPage, PageSize: DefaultPageSize}
}

// Normalize fills absent sort fields with defaults and rejects unknown
// order values. It never touches the numeric bounds: an inverted or
// out-of-range bound is forwarded as-is for the backend to resolve.
func (f FilterState) Normalize() FilterState {
	if f.SortBy == "" {
		f.SortBy = DefaultSortBy
	}
	if f.Order != "asc" && f.Order != "desc" {
		f.Order = DefaultOrder
	}
	return f
}

// Normalize clamps the page state to usable values
func (p PageState) Normalize() PageState {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Equal reports whether two filter states select the same result set
func (f FilterState) Equal(other FilterState) bool {
	return f.Query == other.Query &&
		f.City == other.City &&
		f.State == other.State &&
		intPtrEqual(f.MinExperience, other.MinExperience) &&
		intPtrEqual(f.MaxExperience, other.MaxExperience) &&
		floatPtrEqual(f.MinRating, other.MinRating) &&
		floatPtrEqual(f.MaxRating, other.MaxRating) &&
		f.Services == other.Services &&
		f.SortBy == other.SortBy &&
		f.Order == other.Order
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
