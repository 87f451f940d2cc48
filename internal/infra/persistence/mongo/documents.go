package mongo

import (
	"strings"
	"time"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}

	return oid, nil
}

func insertedHex(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}

	return ""
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type userDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	Name       string             `bson:"name"`
	Avatar     string             `bson:"avatar,omitempty"`
	Role       string             `bson:"role,omitempty"`
	Status     string             `bson:"status,omitempty"`
	BloodGroup string             `bson:"bloodGroup,omitempty"`
	District   string             `bson:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func fromUserDomain(u *entity.User) *userDocument {
	return &userDocument{
		Email:      normalizeEmail(u.Email),
		Name:       u.Name,
		Avatar:     u.Avatar,
		Role:       string(u.Role),
		Status:     string(u.Status),
		BloodGroup: u.BloodGroup,
		District:   u.District,
		Upazila:    u.Upazila,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (d *userDocument) toDomain() *entity.User {
	return &entity.User{
		ID:         d.ID.Hex(),
		Email:      d.Email,
		Name:       d.Name,
		Avatar:     d.Avatar,
		Role:       entity.Role(d.Role),
		Status:     entity.UserStatus(d.Status),
		BloodGroup: d.BloodGroup,
		District:   d.District,
		Upazila:    d.Upazila,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type donationRequestDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	RequesterName     string             `bson:"requesterName"`
	RequesterEmail    string             `bson:"requesterEmail"`
	RecipientName     string             `bson:"recipientName"`
	RecipientDistrict string             `bson:"recipientDistrict"`
	RecipientUpazila  string             `bson:"recipientUpazila"`
	RecipientDivision string             `bson:"recipientDivision,omitempty"`
	HospitalName      string             `bson:"hospitalName"`
	FullAddress       string             `bson:"fullAddress"`
	BloodGroup        string             `bson:"bloodGroup"`
	DonationDate      string             `bson:"donationDate"`
	DonationTime      string             `bson:"donationTime"`
	RequestMessage    string             `bson:"requestMessage"`
	Status            string             `bson:"status"`
	DonorID           string             `bson:"donorId,omitempty"`
	DonorName         string             `bson:"donorName,omitempty"`
	DonorEmail        string             `bson:"donorEmail,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"`
}

func fromDonationRequestDomain(r *entity.DonationRequest) *donationRequestDocument {
	return &donationRequestDocument{
		RequesterName:     r.RequesterName,
		RequesterEmail:    normalizeEmail(r.RequesterEmail),
		RecipientName:     r.RecipientName,
		RecipientDistrict: r.RecipientDistrict,
		RecipientUpazila:  r.RecipientUpazila,
		RecipientDivision: r.RecipientDivision,
		HospitalName:      r.HospitalName,
		FullAddress:       r.FullAddress,
		BloodGroup:        r.BloodGroup,
		DonationDate:      r.DonationDate,
		DonationTime:      r.DonationTime,
		RequestMessage:    r.RequestMessage,
		Status:            string(r.Status),
		DonorID:           r.DonorID,
		DonorName:         r.DonorName,
		DonorEmail:        normalizeEmail(r.DonorEmail),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func (d *donationRequestDocument) toDomain() *entity.DonationRequest {
	return &entity.DonationRequest{
		ID:                d.ID.Hex(),
		RequesterName:     d.RequesterName,
		RequesterEmail:    d.RequesterEmail,
		RecipientName:     d.RecipientName,
		RecipientDistrict: d.RecipientDistrict,
		RecipientUpazila:  d.RecipientUpazila,
		RecipientDivision: d.RecipientDivision,
		HospitalName:      d.HospitalName,
		FullAddress:       d.FullAddress,
		BloodGroup:        d.BloodGroup,
		DonationDate:      d.DonationDate,
		DonationTime:      d.DonationTime,
		RequestMessage:    d.RequestMessage,
		Status:            entity.DonationStatus(d.Status),
		DonorID:           d.DonorID,
		DonorName:         d.DonorName,
		DonorEmail:        d.DonorEmail,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

type blogDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Thumbnail    string             `bson:"thumbnail"`
	Content      string             `bson:"content"`
	PlainContent string             `bson:"plainContent"`
	Status       string             `bson:"status"`
	AuthorEmail  string             `bson:"authorEmail,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func fromBlogDomain(b *entity.Blog) *blogDocument {
	return &blogDocument{
		Title:        b.Title,
		Thumbnail:    b.Thumbnail,
		Content:      b.Content,
		PlainContent: b.PlainContent,
		Status:       string(b.Status),
		AuthorEmail:  normalizeEmail(b.AuthorEmail),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (d *blogDocument) toDomain() *entity.Blog {
	return &entity.Blog{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Thumbnail:    d.Thumbnail,
		Content:      d.Content,
		PlainContent: d.PlainContent,
		Status:       entity.BlogStatus(d.Status),
		AuthorEmail:  d.AuthorEmail,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type paymentDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Amount        float64            `bson:"amount"`
	Currency      string             `bson:"currency"`
	TransactionID string             `bson:"transactionId"`
	Message       string             `bson:"message,omitempty"`
	PaymentMethod string             `bson:"paymentMethod"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func fromPaymentDomain(p *entity.Payment) *paymentDocument {
	return &paymentDocument{
		Name:          p.Name,
		Email:         normalizeEmail(p.Email),
		Amount:        p.Amount,
		Currency:      p.Currency,
		TransactionID: p.TransactionID,
		Message:       p.Message,
		PaymentMethod: p.PaymentMethod,
		CreatedAt:     p.CreatedAt,
	}
}

func (d *paymentDocument) toDomain() *entity.Payment {
	return &entity.Payment{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Email:         d.Email,
		Amount:        d.Amount,
		Currency:      d.Currency,
		TransactionID: d.TransactionID,
		Message:       d.Message,
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt,
	}
}

func toInsertResult(insertedID any) *repository.InsertResult {
	return &repository.InsertResult{Acknowledged: true, InsertedID: insertedHex(insertedID)}
}

func toUpdateResult(matched, modified int64) *repository.UpdateResult {
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: modified}
}

func toDeleteResult(deleted int64) *repository.DeleteResult {
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: deleted}
}
