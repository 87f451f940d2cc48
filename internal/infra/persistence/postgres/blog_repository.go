package postgres

import (
	"context"
	"time"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) (*repository.InsertResult, error) {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID.String()

	return &repository.InsertResult{Acknowledged: true, InsertedID: blog.ID}, nil
}

func (repo *blogRepository) FindByID(ctx context.Context, id string) (*entity.Blog, error) {
	blogID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var blogM model.BlogModel
	if err := repo.db.WithContext(ctx).Where("id = ?", blogID).First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by ID")
	}

	return toBlogDomain(&blogM), nil
}

func (repo *blogRepository) FindAll(ctx context.Context, status entity.BlogStatus) ([]*entity.Blog, error) {
	query := repo.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var blogModels []*model.BlogModel
	if err := query.Order("created_at DESC").Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, nil
}

func (repo *blogRepository) UpdateStatus(ctx context.Context, id string, status entity.BlogStatus, now time.Time) (*repository.UpdateResult, error) {
	blogID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", blogID).
		Updates(map[string]any{"status": string(status), "updated_at": now})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog status")
	}

	return updateResult(result.RowsAffected), nil
}

func (repo *blogRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	blogID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).Where("id = ?", blogID).Delete(&model.BlogModel{})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blog")
	}

	return deleteResult(result.RowsAffected), nil
}
