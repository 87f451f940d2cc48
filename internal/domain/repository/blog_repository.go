package repository

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrBlogNotFound is returned when no blog post matches the id.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines the interface for blog storage.
type BlogRepository interface {
	// Create inserts a new blog post.
	Create(ctx context.Context, blog *entity.Blog) (*InsertResult, error)

	// FindByID retrieves a blog post by id.
	FindByID(ctx context.Context, id string) (*entity.Blog, error)

	// FindAll returns every blog post, newest first. An empty status matches all posts.
	FindAll(ctx context.Context, status entity.BlogStatus) ([]*entity.Blog, error)

	// UpdateStatus sets the publication status of a blog post.
	UpdateStatus(ctx context.Context, id string, status entity.BlogStatus, now time.Time) (*UpdateResult, error)

	// Delete removes a blog post by id.
	Delete(ctx context.Context, id string) (*DeleteResult, error)
}
