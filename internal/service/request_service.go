package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cargofunds/internal/model"
	"cargofunds/internal/repository"
	"cargofunds/pkg/apperror"
	"cargofunds/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// --- DTOs ---

type RequestPayload struct {
	RequestNumber string          `json:"request_number"`
	RequestCode   string          `json:"request_code"`
	RequestDate   string          `json:"request_date"` // YYYY-MM-DD, defaults to today
	Culture       string          `json:"culture"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Nature        string          `json:"nature"`
	Confirmed     *bool           `json:"confirmed"`
	DriverID      *uuid.UUID      `json:"driver_id"`
	TransporterID *uuid.UUID      `json:"transporter_id"`
	Comments      string          `json:"comments"`
}

type RequestResponse struct {
	ID               uuid.UUID       `json:"id"`
	RequestNumber    string          `json:"request_number"`
	RequestCode      string          `json:"request_code"`
	RequestDate      string          `json:"request_date"`
	Culture          string          `json:"culture"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	Nature           string          `json:"nature"`
	Confirmed        *bool           `json:"confirmed"`
	DriverID         *uuid.UUID      `json:"driver_id"`
	TransporterID    *uuid.UUID      `json:"transporter_id"`
	CreatedBy        string          `json:"created_by"`
	ConfirmationDate *time.Time      `json:"confirmation_date"`
	Comments         string          `json:"comments"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// --- Interface ---

type RequestService interface {
	CreateRequest(ctx context.Context, req RequestPayload, caller string) (RequestResponse, error)
	UpdateRequest(ctx context.Context, id string, req RequestPayload) (RequestResponse, error)
	DeleteRequest(ctx context.Context, id string) error
	GetRequest(ctx context.Context, id string) (RequestResponse, error)
	GetRequestByNumber(ctx context.Context, number string) (RequestResponse, error)
	ListRequests(ctx context.Context, page pagination.Params) ([]RequestResponse, int64, error)
	ListRequestsByStatus(ctx context.Context, status string) ([]RequestResponse, error)
	ListRequestsByType(ctx context.Context, requestType string) ([]RequestResponse, error)
	ListRequestsByDate(ctx context.Context, date time.Time) ([]RequestResponse, error)
	AssignDriver(ctx context.Context, requestID, driverID string) (RequestResponse, error)
	AssignTransporter(ctx context.Context, requestID, transporterID string) (RequestResponse, error)
	ConfirmRequest(ctx context.Context, id string) (RequestResponse, error)
	UpdateRequestStatus(ctx context.Context, id, status string) (RequestResponse, error)
}

// --- Implementation ---

type requestService struct {
	requestRepo     repository.RequestRepository
	driverRepo      repository.MemberRepository[model.Driver]
	transporterRepo repository.MemberRepository[model.Transporter]
	userRepo        repository.UserRepository
	txManager       repository.TransactionManager
	opts            options
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	driverRepo repository.MemberRepository[model.Driver],
	transporterRepo repository.MemberRepository[model.Transporter],
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	opts ...Option,
) RequestService {
	return &requestService{
		requestRepo:     requestRepo,
		driverRepo:      driverRepo,
		transporterRepo: transporterRepo,
		userRepo:        userRepo,
		txManager:       txManager,
		opts:            buildOptions(opts),
	}
}

func (s *requestService) CreateRequest(ctx context.Context, req RequestPayload, caller string) (RequestResponse, error) {
	if err := validateRequestPayload(req); err != nil {
		return RequestResponse{}, err
	}

	now := s.opts.now()
	requestDate := startOfDay(now)
	if req.RequestDate != "" {
		parsed, err := time.Parse(DateLayout, req.RequestDate)
		if err != nil {
			return RequestResponse{}, apperror.Invalidf("Invalid request date: %s", req.RequestDate)
		}
		requestDate = parsed
	}

	status := model.RequestPending
	if req.Status != "" {
		if !model.IsValidRequestStatus(req.Status) {
			return RequestResponse{}, invalidStatusErr()
		}
		status = req.Status
	}

	confirmed := false
	if req.Confirmed != nil {
		confirmed = *req.Confirmed
	}

	request := model.Request{
		RequestNumber: req.RequestNumber,
		RequestCode:   req.RequestCode,
		RequestDate:   requestDate,
		Culture:       req.Culture,
		Type:          req.Type,
		Amount:        req.Amount,
		Status:        status,
		Nature:        req.Nature,
		Confirmed:     &confirmed,
		Comments:      req.Comments,
	}
	if confirmed {
		request.ConfirmationDate = &now
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureNumberAvailable(txCtx, req.RequestNumber, uuid.Nil); err != nil {
			return err
		}

		if req.DriverID != nil {
			if _, err := s.driverRepo.FindByID(txCtx, *req.DriverID); err != nil {
				return lookupErr(err, "Driver", "id", *req.DriverID)
			}
			request.DriverID = req.DriverID
		}
		if req.TransporterID != nil {
			if _, err := s.transporterRepo.FindByID(txCtx, *req.TransporterID); err != nil {
				return lookupErr(err, "Transporter", "id", *req.TransporterID)
			}
			request.TransporterID = req.TransporterID
		}

		creator, err := s.userRepo.GetByUsername(txCtx, caller)
		if err != nil {
			return lookupErr(err, "User", "username", caller)
		}
		request.CreatedByID = &creator.ID

		if err := s.requestRepo.Create(txCtx, &request); err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		return nil
	})
	if err != nil {
		return RequestResponse{}, err
	}

	s.opts.metrics.IncrementRequestCreated()
	logrus.WithFields(logrus.Fields{
		"request_id":     request.ID,
		"request_number": request.RequestNumber,
		"created_by":     caller,
	}).Info("request created")

	return s.reload(ctx, request.ID)
}

func (s *requestService) UpdateRequest(ctx context.Context, id string, req RequestPayload) (RequestResponse, error) {
	requestID, err := parseID("Request", id)
	if err != nil {
		return RequestResponse{}, err
	}
	if err := validateRequestPayload(req); err != nil {
		return RequestResponse{}, err
	}

	return s.mutate(ctx, requestID, func(txCtx context.Context, request *model.Request) error {
		if err := s.ensureNumberAvailable(txCtx, req.RequestNumber, request.ID); err != nil {
			return err
		}

		// Status, confirmation and team fields belong to the dedicated operations.
		request.RequestNumber = req.RequestNumber
		request.RequestCode = req.RequestCode
		request.Type = req.Type
		request.Amount = req.Amount
		request.Culture = req.Culture
		request.Nature = req.Nature
		request.Comments = req.Comments
		return nil
	})
}

func (s *requestService) DeleteRequest(ctx context.Context, id string) error {
	requestID, err := parseID("Request", id)
	if err != nil {
		return err
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		request, err := s.requestRepo.FindByIDForUpdate(txCtx, requestID)
		if err != nil {
			return lookupErr(err, "Request", "id", requestID)
		}
		if request.IsConfirmed() {
			return apperror.Invalid("Cannot delete a confirmed request")
		}
		if err := s.requestRepo.Delete(txCtx, request.ID); err != nil {
			return fmt.Errorf("failed to delete request: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("request_id", requestID).Info("request deleted")
	return nil
}

func (s *requestService) GetRequest(ctx context.Context, id string) (RequestResponse, error) {
	requestID, err := parseID("Request", id)
	if err != nil {
		return RequestResponse{}, err
	}
	return s.reload(ctx, requestID)
}

func (s *requestService) GetRequestByNumber(ctx context.Context, number string) (RequestResponse, error) {
	request, err := s.requestRepo.FindByNumber(ctx, number)
	if err != nil {
		return RequestResponse{}, lookupErr(err, "Request", "requestNumber", number)
	}
	return toRequestResponse(*request), nil
}

func (s *requestService) ListRequests(ctx context.Context, page pagination.Params) ([]RequestResponse, int64, error) {
	requests, total, err := s.requestRepo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch requests: %w", err)
	}
	return toRequestResponses(requests), total, nil
}

func (s *requestService) ListRequestsByStatus(ctx context.Context, status string) ([]RequestResponse, error) {
	requests, err := s.requestRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests by status: %w", err)
	}
	return toRequestResponses(requests), nil
}

func (s *requestService) ListRequestsByType(ctx context.Context, requestType string) ([]RequestResponse, error) {
	requests, err := s.requestRepo.ListByType(ctx, requestType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests by type: %w", err)
	}
	return toRequestResponses(requests), nil
}

func (s *requestService) ListRequestsByDate(ctx context.Context, date time.Time) ([]RequestResponse, error) {
	day := startOfDay(date)
	requests, err := s.requestRepo.ListByDateRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests by date: %w", err)
	}
	return toRequestResponses(requests), nil
}

// AssignDriver sets the request's driver without the availability checks the team registry applies.
func (s *requestService) AssignDriver(ctx context.Context, requestID, driverID string) (RequestResponse, error) {
	rid, err := parseID("Request", requestID)
	if err != nil {
		return RequestResponse{}, err
	}
	did, err := parseID("Driver", driverID)
	if err != nil {
		return RequestResponse{}, err
	}

	resp, err := s.mutate(ctx, rid, func(txCtx context.Context, request *model.Request) error {
		if _, err := s.driverRepo.FindByID(txCtx, did); err != nil {
			return lookupErr(err, "Driver", "id", did)
		}
		request.DriverID = &did
		if request.HasTeam() {
			request.Status = model.RequestAssigned
		}
		return nil
	})
	if err == nil {
		s.opts.metrics.IncrementTeamAssignment("driver", "assign")
	}
	return resp, err
}

func (s *requestService) AssignTransporter(ctx context.Context, requestID, transporterID string) (RequestResponse, error) {
	rid, err := parseID("Request", requestID)
	if err != nil {
		return RequestResponse{}, err
	}
	tid, err := parseID("Transporter", transporterID)
	if err != nil {
		return RequestResponse{}, err
	}

	resp, err := s.mutate(ctx, rid, func(txCtx context.Context, request *model.Request) error {
		if _, err := s.transporterRepo.FindByID(txCtx, tid); err != nil {
			return lookupErr(err, "Transporter", "id", tid)
		}
		request.TransporterID = &tid
		if request.HasTeam() {
			request.Status = model.RequestAssigned
		}
		return nil
	})
	if err == nil {
		s.opts.metrics.IncrementTeamAssignment("transporter", "assign")
	}
	return resp, err
}

func (s *requestService) ConfirmRequest(ctx context.Context, id string) (RequestResponse, error) {
	requestID, err := parseID("Request", id)
	if err != nil {
		return RequestResponse{}, err
	}

	resp, err := s.mutate(ctx, requestID, func(_ context.Context, request *model.Request) error {
		if !request.HasTeam() {
			return apperror.Invalid("Cannot confirm request without assigned driver and transporter")
		}
		request.MarkConfirmed(s.opts.now())
		return nil
	})
	if err != nil {
		return RequestResponse{}, err
	}

	s.opts.metrics.IncrementRequestConfirmed()
	logrus.WithField("request_id", requestID).Info("request confirmed")
	return resp, nil
}

// UpdateRequestStatus sets any valid status. CONFIRMED here does not require a team;
// ConfirmRequest is the gated path.
func (s *requestService) UpdateRequestStatus(ctx context.Context, id, status string) (RequestResponse, error) {
	requestID, err := parseID("Request", id)
	if err != nil {
		return RequestResponse{}, err
	}
	if !model.IsValidRequestStatus(status) {
		return RequestResponse{}, invalidStatusErr()
	}

	resp, err := s.mutate(ctx, requestID, func(_ context.Context, request *model.Request) error {
		request.Status = status
		if status == model.RequestConfirmed {
			request.MarkConfirmed(s.opts.now())
		}
		return nil
	})
	if err != nil {
		return RequestResponse{}, err
	}

	if status == model.RequestConfirmed {
		s.opts.metrics.IncrementRequestConfirmed()
	}
	logrus.WithFields(logrus.Fields{"request_id": requestID, "status": status}).Info("request status updated")
	return resp, nil
}

// --- Helpers ---

// mutate locks the request, applies fn and saves it in one unit of work.
func (s *requestService) mutate(ctx context.Context, id uuid.UUID, fn func(txCtx context.Context, request *model.Request) error) (RequestResponse, error) {
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		request, err := s.requestRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return lookupErr(err, "Request", "id", id)
		}
		if err := fn(txCtx, request); err != nil {
			return err
		}
		if err := s.requestRepo.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}
		return nil
	})
	if err != nil {
		return RequestResponse{}, err
	}
	return s.reload(ctx, id)
}

func (s *requestService) reload(ctx context.Context, id uuid.UUID) (RequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return RequestResponse{}, lookupErr(err, "Request", "id", id)
	}
	return toRequestResponse(*request), nil
}

// ensureNumberAvailable fails when number belongs to a request other than self.
func (s *requestService) ensureNumberAvailable(ctx context.Context, number string, self uuid.UUID) error {
	existing, err := s.requestRepo.FindByNumber(ctx, number)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check request number: %w", err)
	}
	if existing.ID != self {
		return apperror.Invalidf("Request number already exists: %s", number)
	}
	return nil
}

func validateRequestPayload(req RequestPayload) error {
	if strings.TrimSpace(req.RequestNumber) == "" {
		return apperror.Invalid("Request number is required")
	}
	if strings.TrimSpace(req.RequestCode) == "" {
		return apperror.Invalid("Request code is required")
	}
	if strings.TrimSpace(req.Type) == "" {
		return apperror.Invalid("Request type is required")
	}
	if !req.Amount.IsPositive() {
		return apperror.Invalid("Request amount must be positive")
	}
	return nil
}

func invalidStatusErr() error {
	return apperror.Invalidf("Invalid status. Valid statuses are: %s", strings.Join(model.RequestStatuses, ", "))
}

func toRequestResponse(r model.Request) RequestResponse {
	resp := RequestResponse{
		ID:               r.ID,
		RequestNumber:    r.RequestNumber,
		RequestCode:      r.RequestCode,
		RequestDate:      r.RequestDate.UTC().Format(DateLayout),
		Culture:          r.Culture,
		Type:             r.Type,
		Amount:           r.Amount,
		Status:           r.Status,
		Nature:           r.Nature,
		Confirmed:        r.Confirmed,
		DriverID:         r.DriverID,
		TransporterID:    r.TransporterID,
		ConfirmationDate: r.ConfirmationDate,
		Comments:         r.Comments,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.CreatedBy != nil {
		resp.CreatedBy = r.CreatedBy.Username
	}
	return resp
}

func toRequestResponses(requests []model.Request) []RequestResponse {
	result := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		result = append(result, toRequestResponse(r))
	}
	return result
}
