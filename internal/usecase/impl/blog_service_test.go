package impl

import (
	"context"
	"testing"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	mockRepo "bloodlink/internal/mocks/repository"
	"bloodlink/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBlogService(t *testing.T) (usecase.BlogUsecase, *mockRepo.MockBlogRepository) {
	blogRepo := mockRepo.NewMockBlogRepository(t)

	return NewBlogService(blogRepo, newDiscardLogger()), blogRepo
}

func TestBlogService_Create_DerivesPlainContent(t *testing.T) {
	srv, blogRepo := createTestBlogService(t)
	ctx := context.Background()

	blogRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Blog) bool {
			return b.PlainContent == "Give blood\nSave lives." &&
				b.Status == entity.BlogStatusDraft &&
				b.AuthorEmail == "v@x.com" &&
				b.Title == "Why donate"
		})).
		Return(&repository.InsertResult{Acknowledged: true, InsertedID: "b1"}, nil)

	result, err := srv.Create(ctx, "V@x.com", usecase.CreateBlogInput{
		Title:   "  Why donate ",
		Content: "<h1>Give blood</h1><p>Save <b>lives</b>.</p>",
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", result.InsertedID)
}

func TestBlogService_Create_RejectsUnknownStatus(t *testing.T) {
	srv, _ := createTestBlogService(t)

	_, err := srv.Create(context.Background(), "v@x.com", usecase.CreateBlogInput{Title: "t", Status: "archived"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBlogService_List(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		filter  entity.BlogStatus
		wantErr error
	}{
		{name: "all posts", status: "", filter: ""},
		{name: "published only", status: "Public", filter: entity.BlogStatusPublic},
		{name: "unknown status", status: "hidden", wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, blogRepo := createTestBlogService(t)
			ctx := context.Background()

			if tt.wantErr == nil {
				blogRepo.EXPECT().FindAll(ctx, tt.filter).Return([]*entity.Blog{{ID: "b1"}}, nil)
			}

			blogs, err := srv.List(ctx, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Len(t, blogs, 1)
		})
	}
}

func TestBlogService_Get_NotFound(t *testing.T) {
	srv, blogRepo := createTestBlogService(t)
	ctx := context.Background()

	blogRepo.EXPECT().FindByID(ctx, "b1").Return(nil, repository.ErrBlogNotFound)

	_, err := srv.Get(ctx, "b1")
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestBlogService_SetStatus(t *testing.T) {
	srv, blogRepo := createTestBlogService(t)
	ctx := context.Background()

	blogRepo.EXPECT().
		UpdateStatus(ctx, "b1", entity.BlogStatusPublic, mock.AnythingOfType("time.Time")).
		Return(&repository.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	result, err := srv.SetStatus(ctx, "b1", "public")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	_, err = srv.SetStatus(ctx, "b1", "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBlogService_Delete(t *testing.T) {
	srv, blogRepo := createTestBlogService(t)
	ctx := context.Background()

	blogRepo.EXPECT().Delete(ctx, "b1").Return(&repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)
	blogRepo.EXPECT().Delete(ctx, "bad").Return(nil, repository.ErrInvalidID)

	result, err := srv.Delete(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	_, err = srv.Delete(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}
