package editor

import (
	"strings"

	"github.com/athenaeumapp/athenaeum/internal/api"
	"github.com/athenaeumapp/athenaeum/internal/entities"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Buffer is the mutable draft of one user book's editable fields. It is
// always a distinct structure from the persisted record: mutations never
// touch the source of truth until Save sends them.
type Buffer struct {
	Rating        int                 `validate:"gte=0,lte=5"`
	ReadStatus    entities.ReadStatus `validate:"oneof=unread reading completed"`
	PersonalNotes string
	Genres        []string `validate:"unique"`
	Tags          []string `validate:"unique"`
}

// NewBuffer seeds a draft from the persisted record. Slices are copied so
// the record cannot be mutated through the buffer.
func NewBuffer(book entities.UserBook) *Buffer {
	status := book.ReadStatus
	if !status.Valid() {
		status = entities.ReadStatusUnread
	}
	return &Buffer{
		Rating:        book.Rating,
		ReadStatus:    status,
		PersonalNotes: book.PersonalNotes,
		Genres:        append([]string(nil), book.Genres...),
		Tags:          append([]string(nil), book.Tags...),
	}
}

// AddGenre appends the trimmed text unless it is empty or already present
// (case-sensitive exact match). Reports whether an entry was added.
func (b *Buffer) AddGenre(text string) bool {
	var added bool
	b.Genres, added = appendUnique(b.Genres, text)
	return added
}

// RemoveGenre removes an exact match; a no-op when absent.
func (b *Buffer) RemoveGenre(text string) bool {
	var removed bool
	b.Genres, removed = removeExact(b.Genres, text)
	return removed
}

// AddTag behaves like AddGenre for the tag set.
func (b *Buffer) AddTag(text string) bool {
	var added bool
	b.Tags, added = appendUnique(b.Tags, text)
	return added
}

// RemoveTag removes an exact match; a no-op when absent.
func (b *Buffer) RemoveTag(text string) bool {
	var removed bool
	b.Tags, removed = removeExact(b.Tags, text)
	return removed
}

// Changed reports whether the draft differs from the persisted record.
func (b *Buffer) Changed(book entities.UserBook) bool {
	if b.Rating != book.Rating ||
		b.ReadStatus != book.ReadStatus ||
		b.PersonalNotes != book.PersonalNotes {
		return true
	}
	return !equalStrings(b.Genres, book.Genres) || !equalStrings(b.Tags, book.Tags)
}

// Validate checks the draft invariants: rating absent or 1..5, read status
// one of the three known values, no duplicate genres or tags.
func (b *Buffer) Validate() error {
	return validate.Struct(b)
}

// UpdateRequest converts the draft into the wire format. A zero rating
// transmits as null; genre and tag sets are always present, even empty.
// The sets are copied so edits made while the request is in flight cannot
// rewrite the payload.
func (b *Buffer) UpdateRequest() api.UpdateBookRequest {
	var rating *int
	if b.Rating >= 1 && b.Rating <= 5 {
		r := b.Rating
		rating = &r
	}

	genres := append([]string{}, b.Genres...)
	tags := append([]string{}, b.Tags...)

	return api.UpdateBookRequest{
		Rating:        rating,
		ReadStatus:    string(b.ReadStatus),
		PersonalNotes: b.PersonalNotes,
		Genres:        genres,
		Tags:          tags,
	}
}

func appendUnique(set []string, text string) ([]string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return set, false
	}
	for _, existing := range set {
		if existing == trimmed {
			return set, false
		}
	}
	return append(set, trimmed), true
}

func removeExact(set []string, text string) ([]string, bool) {
	for i, existing := range set {
		if existing == text {
			return append(set[:i], set[i+1:]...), true
		}
	}
	return set, false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
