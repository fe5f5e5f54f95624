package domain

import "fmt"

// Compile-time check that PageRequest is a ValueObject.
var _ ValueObject = PageRequest{}

// PageRequest is the validated paging window requested by a caller.
// Page numbers are 1-based.
type PageRequest struct {
	page int
	size int
}

// NewPageRequest creates a PageRequest, rejecting page or size below 1.
func NewPageRequest(page, size int) (PageRequest, error) {
	fields := make(map[string]string)
	if page < 1 {
		fields["page"] = fmt.Sprintf("must be >= 1, got %d", page)
	}
	if size < 1 {
		fields["page_size"] = fmt.Sprintf("must be >= 1, got %d", size)
	}
	if len(fields) > 0 {
		return PageRequest{}, &ValidationError{Fields: fields}
	}
	return PageRequest{page: page, size: size}, nil
}

// Page returns the 1-based page number.
func (p PageRequest) Page() int { return p.page }

// Size returns the page size.
func (p PageRequest) Size() int { return p.size }

// Offset returns the zero-based index of the first element in the window.
func (p PageRequest) Offset() int { return (p.page - 1) * p.size }

// EqualityComponents implements ValueObject.
func (p PageRequest) EqualityComponents() []any {
	return []any{p.page, p.size}
}

// Page is the envelope produced by slicing a full result set into one window.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

// NewPage slices the full, already filtered and sorted item set into the
// window described by req. The total count always reflects the full set.
// A window past the last page yields an empty item list with unchanged
// totals; zero items yield zero total pages but a still-valid empty page.
func NewPage[T any](items []T, req PageRequest) Page[T] {
	total := len(items)

	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.Size()
	if end > total {
		end = total
	}

	window := make([]T, end-start)
	copy(window, items[start:end])

	return Page[T]{
		Items:      window,
		Page:       req.Page(),
		PageSize:   req.Size(),
		TotalCount: total,
		TotalPages: (total + req.Size() - 1) / req.Size(),
	}
}

// MapPage converts a Page's items through fn, preserving the paging metadata.
// Used to project domain entities into DTOs without recomputing totals.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, len(p.Items))
	for i := range p.Items {
		items[i] = fn(p.Items[i])
	}
	return Page[U]{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}
