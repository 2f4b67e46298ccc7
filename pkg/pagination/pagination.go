package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 25
	// MaxPageSize caps how many rows any page can request.
	MaxPageSize = 100
)

// Params holds page-number pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// NormalizePageSize enforces the configured default and maximum sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// TotalPages returns ceil(count / size). An empty collection still has one
// (empty) page so navigation always has somewhere to stand.
func TotalPages(count, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// ClampPage pins a requested page into [1, totalPages]. Out-of-range pages
// are a navigation artifact, not an error.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages >= 1 && page > totalPages {
		return totalPages
	}
	return page
}

// InRange reports whether the page needs no clamping; callers use this to
// disable previous/next controls.
func InRange(page, totalPages int) bool {
	return page >= 1 && page <= totalPages
}

// Bounds returns the half-open [lo, hi) slice window for the page, clipped
// to the collection size.
func Bounds(page, size, count int) (int, int) {
	if size < 1 {
		size = DefaultPageSize
	}
	page = ClampPage(page, TotalPages(count, size))
	lo := (page - 1) * size
	if lo > count {
		lo = count
	}
	hi := lo + size
	if hi > count {
		hi = count
	}
	return lo, hi
}
