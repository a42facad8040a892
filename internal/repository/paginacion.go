package repository

// PageSize is the fixed page size for catalog and dashboard listings.
const PageSize = 20

// ClampPage normalizes a requested page number against the total row count.
// Pages below 1 become 1; pages past the end collapse to the last page, so an
// out-of-range request always returns content instead of an empty list.
func ClampPage(page int, total int64, limit int) int {
	if limit <= 0 {
		limit = PageSize
	}
	last := int((total + int64(limit) - 1) / int64(limit))
	if last < 1 {
		last = 1
	}
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}
