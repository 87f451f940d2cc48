package mongo

import (
	"testing"
	"time"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "bloodlink.test"

var fixedNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// setFields returns the $set document of the first update command sent.
func setFields(mt *mtest.T) map[string]bson.RawValue {
	mt.Helper()

	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "update", evt.CommandName)

	update := evt.Command.Lookup("updates").Array().Index(0).Value().Document()
	elems, err := update.Lookup("u", "$set").Document().Elements()
	require.NoError(mt, err)

	fields := make(map[string]bson.RawValue, len(elems))
	for _, e := range elems {
		fields[e.Key()] = e.Value()
	}

	return fields
}

func keys(fields map[string]bson.RawValue) []string {
	out := make([]string, 0, len(fields))
	for k := range fields {
		out = append(out, k)
	}

	return out
}

func TestUserRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("create returns inserted id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user := &entity.User{Email: "A@X.com", Name: "A", CreatedAt: fixedNow, UpdatedAt: fixedNow}
		res, err := repo.Create(mt.Context(), user)
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Len(mt, res.InsertedID, 24)
		assert.Equal(mt, res.InsertedID, user.ID)
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.Create(mt.Context(), &entity.User{Email: "a@x.com"})
		assert.ErrorIs(mt, err, repository.ErrDuplicateEmail)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "a@x.com"},
			{Key: "name", Value: "A"},
			{Key: "role", Value: "volunteer"},
		}))

		user, err := repo.FindByEmail(mt.Context(), "A@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), user.ID)
		assert.Equal(mt, entity.RoleVolunteer, user.Role)
		assert.Equal(mt, entity.UserStatus(""), user.Status)
		assert.False(mt, user.IsBlocked())
	})

	mt.Run("find by email not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByEmail(mt.Context(), "ghost@x.com")
		assert.ErrorIs(mt, err, repository.ErrUserNotFound)
	})

	mt.Run("find all", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "b@x.com"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@x.com"}},
		))

		users, err := repo.FindAll(mt.Context())
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "b@x.com", users[0].Email)
	})

	mt.Run("update role by id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.UpdateRoleByID(mt.Context(), primitive.NewObjectID().Hex(), entity.RoleAdmin, fixedNow)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)
	})

	mt.Run("update role with malformed id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		_, err := repo.UpdateRoleByID(mt.Context(), "not-an-id", entity.RoleAdmin, fixedNow)
		assert.ErrorIs(mt, err, repository.ErrInvalidID)
	})

	mt.Run("update profile of unknown user", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		name := "B"
		res, err := repo.UpdateProfile(mt.Context(), "ghost@x.com", entity.ProfileUpdate{Name: &name}, fixedNow)
		require.NoError(mt, err)
		assert.Zero(mt, res.MatchedCount)
	})

	mt.Run("count", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		n, err := repo.Count(mt.Context())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})
}

func TestDonationRequestRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewDonationRequestRepository(mt.DB)
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "requesterEmail", Value: "v@x.com"},
			{Key: "bloodGroup", Value: "O+"},
			{Key: "status", Value: "inprogress"},
			{Key: "donorEmail", Value: "d@x.com"},
		}))

		req, err := repo.FindByID(mt.Context(), oid.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, oid.Hex(), req.ID)
		assert.Equal(mt, entity.DonationStatusInProgress, req.Status)
		assert.Equal(mt, "d@x.com", req.DonorEmail)
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := NewDonationRequestRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(mt.Context(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrDonationRequestNotFound)
	})

	mt.Run("find by malformed id", func(mt *mtest.T) {
		repo := NewDonationRequestRepository(mt.DB)

		_, err := repo.FindByID(mt.Context(), "xyz")
		assert.ErrorIs(mt, err, repository.ErrInvalidID)
	})

	mt.Run("find by requester", func(mt *mtest.T) {
		repo := NewDonationRequestRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "requesterEmail", Value: "v@x.com"}, {Key: "status", Value: "pending"}},
		))

		requests, err := repo.Find(mt.Context(), repository.DonationRequestFilter{RequesterEmail: "V@x.com"})
		require.NoError(mt, err)
		require.Len(mt, requests, 1)
		assert.Equal(mt, entity.DonationStatusPending, requests[0].Status)
	})

	mt.Run("assign donor", func(mt *mtest.T) {
		repo := NewDonationRequestRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.AssignDonor(mt.Context(), primitive.NewObjectID().Hex(),
			entity.DonorRef{ID: "d1", Email: "D@x.com"}, entity.DonationStatusInProgress, fixedNow)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.ModifiedCount)

		fields := setFields(mt)
		assert.ElementsMatch(mt, []string{"donorId", "donorName", "donorEmail", "status", "updatedAt"}, keys(fields))
		assert.Equal(mt, "d1", fields["donorId"].StringValue())
		assert.Equal(mt, "d@x.com", fields["donorEmail"].StringValue())
		assert.Equal(mt, string(entity.DonationStatusInProgress), fields["status"].StringValue())
		assert.True(mt, fixedNow.Equal(fields["updatedAt"].Time()))
	})

	mt.Run("update status sets only status and updatedAt", func(mt *mtest.T) {
		repo := NewDonationRequestRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.UpdateStatus(mt.Context(), primitive.NewObjectID().Hex(), entity.DonationStatusDone, fixedNow)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)

		fields := setFields(mt)
		assert.ElementsMatch(mt, []string{"status", "updatedAt"}, keys(fields))
		assert.Equal(mt, "done", fields["status"].StringValue())
		assert.True(mt, fixedNow.Equal(fields["updatedAt"].Time()))
	})

	mt.Run("update status with malformed id", func(mt *mtest.T) {
		repo := NewDonationRequestRepository(mt.DB)

		_, err := repo.UpdateStatus(mt.Context(), "xyz", entity.DonationStatusDone, fixedNow)
		assert.ErrorIs(mt, err, repository.ErrInvalidID)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewDonationRequestRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.Delete(mt.Context(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Equal(mt, int64(1), res.DeletedCount)
	})
}

func TestBlogRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("create", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		blog := &entity.Blog{Title: "T", Content: "<p>x</p>", PlainContent: "x", Status: entity.BlogStatusDraft}
		res, err := repo.Create(mt.Context(), blog)
		require.NoError(mt, err)
		assert.NotEmpty(mt, res.InsertedID)
	})

	mt.Run("list by status", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "T"}, {Key: "status", Value: "public"}},
		))

		blogs, err := repo.FindAll(mt.Context(), entity.BlogStatusPublic)
		require.NoError(mt, err)
		require.Len(mt, blogs, 1)
		assert.Equal(mt, entity.BlogStatusPublic, blogs[0].Status)
	})

	mt.Run("find missing", func(mt *mtest.T) {
		repo := NewBlogRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(mt.Context(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrBlogNotFound)
	})
}

func TestPaymentRepository(t *testing.T) {
	mt := newMock(t)

	mt.Run("duplicate transaction", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.Create(mt.Context(), &entity.Payment{TransactionID: "pi_1"})
		assert.ErrorIs(mt, err, repository.ErrDuplicateTransaction)
	})

	mt.Run("total amount", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: nil}, {Key: "total", Value: 35.5}},
		))

		total, err := repo.TotalAmount(mt.Context())
		require.NoError(mt, err)
		assert.InDelta(mt, 35.5, total, 0.0001)
	})

	mt.Run("total amount with no payments", func(mt *mtest.T) {
		repo := NewPaymentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		total, err := repo.TotalAmount(mt.Context())
		require.NoError(mt, err)
		assert.Zero(mt, total)
	})
}

func TestIndexPlan(t *testing.T) {
	plan := indexPlan()

	for _, coll := range []string{CollectionUsers, CollectionDonationRequests, CollectionBlogs, CollectionPayments} {
		assert.NotEmpty(t, plan[coll], coll)
	}
	require.NotNil(t, plan[CollectionUsers][0].Options)
	assert.True(t, *plan[CollectionUsers][0].Options.Unique)
	assert.True(t, *plan[CollectionPayments][0].Options.Unique)
}
