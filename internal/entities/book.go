package entities

// ReadStatus tracks where the user is with a book.
type ReadStatus string

const (
	ReadStatusUnread    ReadStatus = "unread"
	ReadStatusReading   ReadStatus = "reading"
	ReadStatusCompleted ReadStatus = "completed"
)

// Valid reports whether the status is one of the three known values.
func (s ReadStatus) Valid() bool {
	switch s {
	case ReadStatusUnread, ReadStatusReading, ReadStatusCompleted:
		return true
	}
	return false
}

// Book holds the shared bibliographic data sourced from ISBN lookup.
// It is immutable from the client's perspective.
type Book struct {
	ID            string   `json:"id,omitempty"`
	ISBN13        string   `json:"isbn_13,omitempty"`
	ISBN10        string   `json:"isbn_10,omitempty"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PublishedYear int      `json:"published_year,omitempty"`
	Description   string   `json:"description,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
}

// UserBook is a book scoped to one account: the shared bibliographic record
// plus the owner's annotations. Rating 0 means "not rated"; the wire format
// carries null in that case.
type UserBook struct {
	ID            string     `json:"user_book_id"`
	Rating        int        `json:"rating,omitempty"`
	ReadStatus    ReadStatus `json:"read_status"`
	Genres        []string   `json:"genres,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	PersonalNotes string     `json:"personal_notes,omitempty"`
	Book          Book       `json:"book"`
}

// Rated reports whether the user has rated the book.
func (b UserBook) Rated() bool {
	return b.Rating >= 1 && b.Rating <= 5
}
