package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/usecase"
	"bloodlink/internal/util"

	"github.com/pkg/errors"
)

type blogService struct {
	blogRepo repository.BlogRepository
	logger   *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(blogRepo repository.BlogRepository, logger *slog.Logger) usecase.BlogUsecase {
	return &blogService{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

// Create stores a post with plain text derived from its HTML. New posts are drafts unless stated.
func (srv *blogService) Create(ctx context.Context, authorEmail string, input usecase.CreateBlogInput) (*repository.InsertResult, error) {
	status, err := parseBlogStatus(input.Status, entity.BlogStatusDraft)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	blog := &entity.Blog{
		Title:        strings.TrimSpace(input.Title),
		Thumbnail:    input.Thumbnail,
		Content:      input.Content,
		PlainContent: util.PlainText(input.Content),
		Status:       status,
		AuthorEmail:  strings.ToLower(authorEmail),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := srv.blogRepo.Create(ctx, blog)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create blog")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Created blog post",
		slog.String("blog_id", result.InsertedID),
		slog.String("status", string(status)),
	)

	return result, nil
}

func (srv *blogService) List(ctx context.Context, status string) ([]*entity.Blog, error) {
	filter, err := parseBlogStatus(status, "")
	if err != nil {
		return nil, err
	}

	blogs, err := srv.blogRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, nil
}

func (srv *blogService) Get(ctx context.Context, id string) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get blog")
	}

	return blog, nil
}

func (srv *blogService) SetStatus(ctx context.Context, id, status string) (*repository.UpdateResult, error) {
	parsed, err := parseBlogStatus(status, "")
	if err != nil {
		return nil, err
	}
	if parsed == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status is required")
	}

	result, err := srv.blogRepo.UpdateStatus(ctx, id, parsed, time.Now().UTC())
	if err != nil {
		return nil, translateRepoError(err, "failed to update blog status")
	}

	return result, nil
}

func (srv *blogService) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	result, err := srv.blogRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to delete blog")
	}

	return result, nil
}

// parseBlogStatus returns fallback for an empty status.
func parseBlogStatus(status string, fallback entity.BlogStatus) (entity.BlogStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized == "" {
		return fallback, nil
	}

	parsed := entity.BlogStatus(normalized)
	if !parsed.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("status must be draft or public")
	}

	return parsed, nil
}
