package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Index    int
	Total    int
	Document bool
	Busy     bool
}

// CurrentIndex returns the row under the cursor
func (c *ModelContext) CurrentIndex() int {
	return c.Index
}

// TotalItems returns the number of rows on screen
func (c *ModelContext) TotalItems() int {
	return c.Total
}

// ViewingDocument reports whether a text document or image is open
func (c *ModelContext) ViewingDocument() bool {
	return c.Document
}

// Loading reports whether a fetch is running
func (c *ModelContext) Loading() bool {
	return c.Busy
}
