package repository

// DefaultPageSize is used when Paginate is called with a page size of 0
const DefaultPageSize = 10

// Cursor tracks one browsing session over the repository.
// The zero value is not ready for use; call NewCursor.
type Cursor struct {
	Offset int
	Page   int
}

// NewCursor returns a cursor positioned before the first page
func NewCursor() *Cursor {
	return &Cursor{Offset: 0, Page: 1}
}

// Reset starts a new browsing session
func (c *Cursor) Reset() {
	c.Offset = 0
	c.Page = 1
}

// Page is one window of contacts returned by Paginate
type Page struct {
	Contacts   []Entry
	Number     int
	TotalPages int
	HasMore    bool
}
