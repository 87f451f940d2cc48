package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/domain/access"
	"bloodlink/internal/domain/constants"
	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/domain/service"
	"bloodlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DonationRequestServiceParams holds dependencies for DonationRequestService, injected by Fx.
type DonationRequestServiceParams struct {
	fx.In

	RequestRepo repository.DonationRequestRepository
	QRCode      service.QRCodeService
	Publisher   service.EventPublisher `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

type donationRequestService struct {
	requestRepo repository.DonationRequestRepository
	qrcode      service.QRCodeService
	ownership   access.OwnershipPolicy
	events      eventEmitter
	logger      *slog.Logger
}

// NewDonationRequestService is the constructor for donationRequestService.
func NewDonationRequestService(params DonationRequestServiceParams) usecase.DonationRequestUsecase {
	return &donationRequestService{
		requestRepo: params.RequestRepo,
		qrcode:      params.QRCode,
		ownership:   access.OwnershipPolicy{Strict: params.Config.Access.StrictOwnership},
		events:      eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *donationRequestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *donationRequestService) Create(ctx context.Context, caller access.Caller, input usecase.CreateDonationRequestInput) (*repository.InsertResult, error) {
	if !entity.IsValidBloodGroup(input.BloodGroup) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown blood group")
	}

	requesterEmail := input.RequesterEmail
	if strings.TrimSpace(requesterEmail) == "" {
		requesterEmail = caller.Email
	}

	now := time.Now().UTC()
	req := &entity.DonationRequest{
		RequesterName:     input.RequesterName,
		RequesterEmail:    strings.ToLower(strings.TrimSpace(requesterEmail)),
		RecipientName:     input.RecipientName,
		RecipientDistrict: input.RecipientDistrict,
		RecipientUpazila:  input.RecipientUpazila,
		RecipientDivision: input.RecipientDivision,
		HospitalName:      input.HospitalName,
		FullAddress:       input.FullAddress,
		BloodGroup:        input.BloodGroup,
		DonationDate:      input.DonationDate,
		DonationTime:      input.DonationTime,
		RequestMessage:    input.RequestMessage,
		Status:            entity.DonationStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	result, err := srv.requestRepo.Create(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create donation request")
	}

	srv.log(ctx).Info("Created donation request",
		slog.String("request_id", result.InsertedID),
		slog.String("blood_group", req.BloodGroup),
	)
	srv.events.emit(ctx, constants.EventDonationRequestCreated, result.InsertedID, map[string]any{
		"bloodGroup":        req.BloodGroup,
		"recipientDistrict": req.RecipientDistrict,
		"donationDate":      req.DonationDate,
	})

	return result, nil
}

func (srv *donationRequestService) List(ctx context.Context, status string) ([]*entity.DonationRequest, error) {
	filter := repository.DonationRequestFilter{}
	if status != "" {
		parsed, ok := entity.ParseDonationStatus(status)
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown donation status")
		}
		filter.Status = parsed
	}

	return srv.find(ctx, filter)
}

func (srv *donationRequestService) ListByRequester(ctx context.Context, email string) ([]*entity.DonationRequest, error) {
	return srv.find(ctx, repository.DonationRequestFilter{RequesterEmail: email})
}

func (srv *donationRequestService) ListByDonor(ctx context.Context, email string) ([]*entity.DonationRequest, error) {
	return srv.find(ctx, repository.DonationRequestFilter{DonorEmail: email})
}

func (srv *donationRequestService) find(ctx context.Context, filter repository.DonationRequestFilter) ([]*entity.DonationRequest, error) {
	requests, err := srv.requestRepo.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donation requests")
	}

	return requests, nil
}

func (srv *donationRequestService) Get(ctx context.Context, id string) (*entity.DonationRequest, error) {
	req, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get donation request")
	}

	return req, nil
}

func (srv *donationRequestService) ShareCode(ctx context.Context, id string) ([]byte, error) {
	req, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateDonationRequestQR(req.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share code")
	}

	return png, nil
}

// SetStatus changes the status of a request. Any status may follow any other.
func (srv *donationRequestService) SetStatus(ctx context.Context, caller access.Caller, id, status string) (*repository.UpdateResult, error) {
	parsed, ok := entity.ParseDonationStatus(status)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown donation status")
	}

	if err := srv.checkOwnership(ctx, caller, id, access.ActionSetStatus); err != nil {
		return nil, err
	}

	result, err := srv.requestRepo.UpdateStatus(ctx, id, parsed, time.Now().UTC())
	if err != nil {
		return nil, translateRepoError(err, "failed to update donation status")
	}

	if result.MatchedCount > 0 {
		srv.events.emit(ctx, constants.EventDonationRequestStatusChange, id, map[string]any{"status": string(parsed)})
	}

	return result, nil
}

func (srv *donationRequestService) Donate(ctx context.Context, caller access.Caller, id string, input usecase.DonateInput) (*repository.UpdateResult, error) {
	status := entity.DonationStatusInProgress
	if input.Status != "" {
		parsed, ok := entity.ParseDonationStatus(input.Status)
		if !ok {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown donation status")
		}
		status = parsed
	}

	donor := entity.DonorRef{
		ID:    input.DonorID,
		Name:  input.DonorName,
		Email: input.DonorEmail,
	}
	if strings.TrimSpace(donor.Email) == "" {
		donor.Email = caller.Email
	}

	result, err := srv.requestRepo.AssignDonor(ctx, id, donor, status, time.Now().UTC())
	if err != nil {
		return nil, translateRepoError(err, "failed to assign donor")
	}

	if result.MatchedCount > 0 {
		srv.log(ctx).Info("Donor assigned",
			slog.String("request_id", id),
			slog.String("donor_email", donor.Email),
		)
		srv.events.emit(ctx, constants.EventDonationRequestDonorAssign, id, map[string]any{
			"donorEmail": donor.Email,
			"status":     string(status),
		})
	}

	return result, nil
}

func (srv *donationRequestService) Delete(ctx context.Context, caller access.Caller, id string) (*repository.DeleteResult, error) {
	if err := srv.checkOwnership(ctx, caller, id, access.ActionDeleteRequest); err != nil {
		return nil, err
	}

	result, err := srv.requestRepo.Delete(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to delete donation request")
	}

	return result, nil
}

// checkOwnership loads the request only when the policy is strict.
func (srv *donationRequestService) checkOwnership(ctx context.Context, caller access.Caller, id string, action access.DonationAction) error {
	if !srv.ownership.Strict {
		return nil
	}

	req, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	return srv.ownership.Check(caller, req, action)
}
