// Package paging splits ordered sequences into fixed-size pages.
package paging

// Page is one slice of a longer sequence
type Page[T any] struct {
	Items  []T
	Number int // 1-based, clamped into [1, Count]
	Count  int // never zero
	Total  int
}

// PageCount returns ceil(total/size), with an empty sequence still counting as one page
func PageCount(total, size int) int {
	if size < 1 {
		size = 1
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Paginate returns page number page of items. Out-of-range page numbers are clamped.
func Paginate[T any](items []T, size, page int) Page[T] {
	if size < 1 {
		size = 1
	}
	count := PageCount(len(items), size)
	if page < 1 {
		page = 1
	} else if page > count {
		page = count
	}

	start := (page - 1) * size
	end := min(start+size, len(items))
	if start > end {
		start = end
	}

	return Page[T]{
		Items:  items[start:end:end],
		Number: page,
		Count:  count,
		Total:  len(items),
	}
}

// Cursor remembers the page a view is showing
type Cursor struct {
	Number int
	Size   int
}

// NewCursor starts at page 1
func NewCursor(size int) Cursor {
	return Cursor{Number: 1, Size: size}
}

// Reset returns to page 1
func (c *Cursor) Reset() {
	c.Number = 1
}

// Next advances one page; it stops at the last page of a total-item sequence
func (c *Cursor) Next(total int) bool {
	if c.Number >= PageCount(total, c.Size) {
		return false
	}
	c.Number++
	return true
}

// Prev goes back one page; it stops at page 1
func (c *Cursor) Prev() bool {
	if c.Number <= 1 {
		return false
	}
	c.Number--
	return true
}
