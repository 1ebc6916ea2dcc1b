package search

// PageResult is one page of an ordered result set.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into the requested page and reports the total page
// count. Input order defines page order; callers that need a specific order
// must sort beforehand.
//
// page and pageSize must both be >= 1. Defaults for missing user input are a
// caller concern and are applied at the handler layer, not here. A page past
// the end yields an empty Items with the correct TotalPages.
func Paginate[T any](items []T, page, pageSize int) PageResult[T] {
	totalPages := (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(items) {
		return PageResult[T]{Items: []T{}, TotalPages: totalPages}
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return PageResult[T]{Items: items[start:end], TotalPages: totalPages}
}
