package note

// Note is a persisted note. The id is assigned by the store and never
// changes; content and keywords are fixed at creation (notes are only ever
// created and deleted, never updated).
type Note struct {
	ID       int64
	Content  Content
	Keywords Keywords
}

// New is a note before the store has assigned its id.
type New struct {
	Content  Content
	Keywords Keywords
}

// Summary is the (id, keywords) projection used for listing. Content stays
// in the store.
type Summary struct {
	ID       int64
	Keywords Keywords
}
