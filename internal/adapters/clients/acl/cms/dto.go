// Package cms holds the CMS page API wire documents and their translation
// to domain pages.
package cms

// PageDTO matches the CMS Page schema. The CMS calls the template key
// "template" and the parent id "parent".
type PageDTO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Template  string `json:"template"`
	Parent    *int64 `json:"parent,omitempty"`
	Position  int    `json:"position"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PageListResponseDTO matches the CMS PageList schema.
type PageListResponseDTO struct {
	Pages []PageDTO `json:"pages"`
	Count int64     `json:"count"`
}

// CountResponseDTO matches the CMS Count schema.
type CountResponseDTO struct {
	Count int64 `json:"count"`
}

// WritePageRequestDTO is the body of create and update calls. ClaimUnique
// asks the CMS to reserve the template for this page and answer 409 if
// another page holds it.
type WritePageRequestDTO struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Template    string `json:"template"`
	Parent      *int64 `json:"parent"`
	ClaimUnique bool   `json:"claim_unique,omitempty"`
}

// MoveRequestDTO matches the CMS MovePage schema.
type MoveRequestDTO struct {
	Target   int64  `json:"target"`
	Position string `json:"position"`
}
