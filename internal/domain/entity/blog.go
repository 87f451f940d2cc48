package entity

import "time"

// BlogStatus is the publication state of a blog post.
type BlogStatus string

const (
	BlogStatusDraft  BlogStatus = "draft"
	BlogStatusPublic BlogStatus = "public"
)

// IsValid checks if the BlogStatus is a valid value.
func (s BlogStatus) IsValid() bool {
	return s == BlogStatusDraft || s == BlogStatusPublic
}

// Blog is an editorial post. PlainContent is derived from Content.
type Blog struct {
	ID           string     `json:"_id"`
	Title        string     `json:"title"`
	Thumbnail    string     `json:"thumbnail"`
	Content      string     `json:"content"`
	PlainContent string     `json:"plainContent"`
	Status       BlogStatus `json:"status"`
	AuthorEmail  string     `json:"authorEmail,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
