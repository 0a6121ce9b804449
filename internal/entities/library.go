package entities

// Library is a named, optionally public collection of user books. Membership
// is a separate relation: the same user book can belong to many libraries.
type Library struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsPublic  bool   `json:"is_public"`
	IsDefault bool   `json:"is_default,omitempty"`
	Slug      string `json:"slug,omitempty"`
}

// LibraryRef is the short form returned by the missing-libraries endpoint.
type LibraryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}
