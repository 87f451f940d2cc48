package postgres

import (
	"strings"

	"bloodlink/internal/domain/entity"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/model"

	"github.com/google/uuid"
)

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, repository.ErrInvalidID
	}

	return parsed, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
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

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:         m.ID.String(),
		Email:      m.Email,
		Name:       m.Name,
		Avatar:     m.Avatar,
		Role:       entity.Role(m.Role),
		Status:     entity.UserStatus(m.Status),
		BloodGroup: m.BloodGroup,
		District:   m.District,
		Upazila:    m.Upazila,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromDonationRequestDomain(r *entity.DonationRequest) *model.DonationRequestModel {
	return &model.DonationRequestModel{
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

func toDonationRequestDomain(m *model.DonationRequestModel) *entity.DonationRequest {
	return &entity.DonationRequest{
		ID:                m.ID.String(),
		RequesterName:     m.RequesterName,
		RequesterEmail:    m.RequesterEmail,
		RecipientName:     m.RecipientName,
		RecipientDistrict: m.RecipientDistrict,
		RecipientUpazila:  m.RecipientUpazila,
		RecipientDivision: m.RecipientDivision,
		HospitalName:      m.HospitalName,
		FullAddress:       m.FullAddress,
		BloodGroup:        m.BloodGroup,
		DonationDate:      m.DonationDate,
		DonationTime:      m.DonationTime,
		RequestMessage:    m.RequestMessage,
		Status:            entity.DonationStatus(m.Status),
		DonorID:           m.DonorID,
		DonorName:         m.DonorName,
		DonorEmail:        m.DonorEmail,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func fromBlogDomain(b *entity.Blog) *model.BlogModel {
	return &model.BlogModel{
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

func toBlogDomain(m *model.BlogModel) *entity.Blog {
	return &entity.Blog{
		ID:           m.ID.String(),
		Title:        m.Title,
		Thumbnail:    m.Thumbnail,
		Content:      m.Content,
		PlainContent: m.PlainContent,
		Status:       entity.BlogStatus(m.Status),
		AuthorEmail:  m.AuthorEmail,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromPaymentDomain(p *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
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

func toPaymentDomain(m *model.PaymentModel) *entity.Payment {
	return &entity.Payment{
		ID:            m.ID.String(),
		Name:          m.Name,
		Email:         m.Email,
		Amount:        m.Amount,
		Currency:      m.Currency,
		TransactionID: m.TransactionID,
		Message:       m.Message,
		PaymentMethod: m.PaymentMethod,
		CreatedAt:     m.CreatedAt,
	}
}

func updateResult(rowsAffected int64) *repository.UpdateResult {
	// Postgres reports matched rows; an update that matched always rewrites updated_at.
	return &repository.UpdateResult{Acknowledged: true, MatchedCount: rowsAffected, ModifiedCount: rowsAffected}
}

func deleteResult(rowsAffected int64) *repository.DeleteResult {
	return &repository.DeleteResult{Acknowledged: true, DeletedCount: rowsAffected}
}
