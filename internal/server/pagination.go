package server

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizePage clamps the requested page window and returns the equivalent
// limit/offset pair plus the values actually applied.
func normalizePage(page, pageSize int32) (limit, offset int, outPage, outPageSize int32) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	limit = int(pageSize)
	offset = int(page-1) * limit
	return limit, offset, page, pageSize
}
