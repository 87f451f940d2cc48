package usecase

import (
	"context"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
)

// CreateBlogInput defines a new blog post. Content is HTML.
type CreateBlogInput struct {
	Title     string
	Thumbnail string
	Content   string
	Status    string
}

// BlogUsecase defines the blog operations.
type BlogUsecase interface {
	Create(ctx context.Context, authorEmail string, input CreateBlogInput) (*repository.InsertResult, error)
	// List returns every post regardless of status unless status is given.
	List(ctx context.Context, status string) ([]*entity.Blog, error)
	Get(ctx context.Context, id string) (*entity.Blog, error)
	SetStatus(ctx context.Context, id, status string) (*repository.UpdateResult, error)
	Delete(ctx context.Context, id string) (*repository.DeleteResult, error)
}
