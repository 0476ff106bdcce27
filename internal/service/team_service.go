package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cargofunds/internal/metrics"
	"cargofunds/internal/model"
	"cargofunds/internal/repository"
	"cargofunds/pkg/apperror"
	"cargofunds/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// --- DTOs ---

type EmployeePayload struct {
	Matricule string `json:"matricule"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CIN       string `json:"cin"`
	Available *bool  `json:"available"` // defaults to true on create, unchanged on update when omitted
}

type DriverPayload struct {
	EmployeePayload
	LicenseNumber string `json:"license_number"`
}

type TransporterPayload struct {
	EmployeePayload
	VehicleType string `json:"vehicle_type"`
}

type EmployeeResponse struct {
	ID         uuid.UUID   `json:"id"`
	Matricule  string      `json:"matricule"`
	FirstName  string      `json:"first_name"`
	LastName   string      `json:"last_name"`
	CIN        string      `json:"cin"`
	Available  bool        `json:"available"`
	RequestIDs []uuid.UUID `json:"request_ids"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type DriverResponse struct {
	EmployeeResponse
	LicenseNumber string `json:"license_number"`
}

type TransporterResponse struct {
	EmployeeResponse
	VehicleType string `json:"vehicle_type"`
}

// --- Interface ---

type TeamService interface {
	CreateDriver(ctx context.Context, req DriverPayload) (DriverResponse, error)
	UpdateDriver(ctx context.Context, id string, req DriverPayload) (DriverResponse, error)
	DeleteDriver(ctx context.Context, id string) error
	GetDriver(ctx context.Context, id string) (DriverResponse, error)
	GetDriverByMatricule(ctx context.Context, matricule string) (DriverResponse, error)
	GetDriverByCIN(ctx context.Context, cin string) (DriverResponse, error)
	ListDrivers(ctx context.Context, page pagination.Params) ([]DriverResponse, int64, error)
	ListAvailableDrivers(ctx context.Context) ([]DriverResponse, error)
	ToggleDriverAvailability(ctx context.Context, id string) (DriverResponse, error)
	AssignDriverToRequest(ctx context.Context, driverID, requestID string) (RequestResponse, error)
	UnassignDriverFromRequest(ctx context.Context, driverID, requestID string) (RequestResponse, error)
	GetDriversByRequest(ctx context.Context, requestID string) ([]DriverResponse, error)

	CreateTransporter(ctx context.Context, req TransporterPayload) (TransporterResponse, error)
	UpdateTransporter(ctx context.Context, id string, req TransporterPayload) (TransporterResponse, error)
	DeleteTransporter(ctx context.Context, id string) error
	GetTransporter(ctx context.Context, id string) (TransporterResponse, error)
	GetTransporterByMatricule(ctx context.Context, matricule string) (TransporterResponse, error)
	GetTransporterByCIN(ctx context.Context, cin string) (TransporterResponse, error)
	ListTransporters(ctx context.Context, page pagination.Params) ([]TransporterResponse, int64, error)
	ListAvailableTransporters(ctx context.Context) ([]TransporterResponse, error)
	ToggleTransporterAvailability(ctx context.Context, id string) (TransporterResponse, error)
	AssignTransporterToRequest(ctx context.Context, transporterID, requestID string) (RequestResponse, error)
	UnassignTransporterFromRequest(ctx context.Context, transporterID, requestID string) (RequestResponse, error)
	GetTransportersByRequest(ctx context.Context, requestID string) ([]TransporterResponse, error)
}

// --- Implementation ---

type teamService struct {
	drivers      *roster[model.Driver, *model.Driver]
	transporters *roster[model.Transporter, *model.Transporter]
	requestRepo  repository.RequestRepository
}

func NewTeamService(
	driverRepo repository.MemberRepository[model.Driver],
	transporterRepo repository.MemberRepository[model.Transporter],
	requestRepo repository.RequestRepository,
	txManager repository.TransactionManager,
	opts ...Option,
) TeamService {
	o := buildOptions(opts)
	return &teamService{
		drivers: &roster[model.Driver, *model.Driver]{
			entity:    "Driver",
			column:    repository.DriverColumn,
			slot:      func(r *model.Request) **uuid.UUID { return &r.DriverID },
			members:   driverRepo,
			requests:  requestRepo,
			txManager: txManager,
			metrics:   o.metrics,
		},
		transporters: &roster[model.Transporter, *model.Transporter]{
			entity:    "Transporter",
			column:    repository.TransporterColumn,
			slot:      func(r *model.Request) **uuid.UUID { return &r.TransporterID },
			members:   transporterRepo,
			requests:  requestRepo,
			txManager: txManager,
			metrics:   o.metrics,
		},
		requestRepo: requestRepo,
	}
}

func (s *teamService) CreateDriver(ctx context.Context, req DriverPayload) (DriverResponse, error) {
	d, err := s.drivers.create(ctx, req.EmployeePayload, func(d *model.Driver) {
		d.LicenseNumber = req.LicenseNumber
	})
	if err != nil {
		return DriverResponse{}, err
	}
	return toDriverResponse(d), nil
}

func (s *teamService) UpdateDriver(ctx context.Context, id string, req DriverPayload) (DriverResponse, error) {
	d, err := s.drivers.update(ctx, id, req.EmployeePayload, func(d *model.Driver) {
		d.LicenseNumber = req.LicenseNumber
	})
	if err != nil {
		return DriverResponse{}, err
	}
	return toDriverResponse(d), nil
}

func (s *teamService) DeleteDriver(ctx context.Context, id string) error {
	return s.drivers.delete(ctx, id)
}

func (s *teamService) GetDriver(ctx context.Context, id string) (DriverResponse, error) {
	d, err := s.drivers.get(ctx, id)
	if err != nil {
		return DriverResponse{}, err
	}
	return toDriverResponse(d), nil
}

func (s *teamService) GetDriverByMatricule(ctx context.Context, matricule string) (DriverResponse, error) {
	d, err := s.drivers.members.FindByMatricule(ctx, matricule)
	if err != nil {
		return DriverResponse{}, lookupErr(err, "Driver", "matricule", matricule)
	}
	return toDriverResponse(d), nil
}

func (s *teamService) GetDriverByCIN(ctx context.Context, cin string) (DriverResponse, error) {
	d, err := s.drivers.members.FindByCIN(ctx, cin)
	if err != nil {
		return DriverResponse{}, lookupErr(err, "Driver", "cin", cin)
	}
	return toDriverResponse(d), nil
}

func (s *teamService) ListDrivers(ctx context.Context, page pagination.Params) ([]DriverResponse, int64, error) {
	drivers, total, err := s.drivers.members.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch drivers: %w", err)
	}
	return toDriverResponses(drivers), total, nil
}

func (s *teamService) ListAvailableDrivers(ctx context.Context) ([]DriverResponse, error) {
	drivers, err := s.drivers.members.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available drivers: %w", err)
	}
	return toDriverResponses(drivers), nil
}

func (s *teamService) ToggleDriverAvailability(ctx context.Context, id string) (DriverResponse, error) {
	d, err := s.drivers.toggle(ctx, id)
	if err != nil {
		return DriverResponse{}, err
	}
	return toDriverResponse(d), nil
}

func (s *teamService) AssignDriverToRequest(ctx context.Context, driverID, requestID string) (RequestResponse, error) {
	return s.afterAssignment(ctx, requestID, s.drivers.assign(ctx, driverID, requestID))
}

func (s *teamService) UnassignDriverFromRequest(ctx context.Context, driverID, requestID string) (RequestResponse, error) {
	return s.afterAssignment(ctx, requestID, s.drivers.unassign(ctx, driverID, requestID))
}

func (s *teamService) GetDriversByRequest(ctx context.Context, requestID string) ([]DriverResponse, error) {
	drivers, err := s.drivers.forRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	result := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		result = append(result, toDriverResponse(d))
	}
	return result, nil
}

func (s *teamService) CreateTransporter(ctx context.Context, req TransporterPayload) (TransporterResponse, error) {
	t, err := s.transporters.create(ctx, req.EmployeePayload, func(t *model.Transporter) {
		t.VehicleType = req.VehicleType
	})
	if err != nil {
		return TransporterResponse{}, err
	}
	return toTransporterResponse(t), nil
}

func (s *teamService) UpdateTransporter(ctx context.Context, id string, req TransporterPayload) (TransporterResponse, error) {
	t, err := s.transporters.update(ctx, id, req.EmployeePayload, func(t *model.Transporter) {
		t.VehicleType = req.VehicleType
	})
	if err != nil {
		return TransporterResponse{}, err
	}
	return toTransporterResponse(t), nil
}

func (s *teamService) DeleteTransporter(ctx context.Context, id string) error {
	return s.transporters.delete(ctx, id)
}

func (s *teamService) GetTransporter(ctx context.Context, id string) (TransporterResponse, error) {
	t, err := s.transporters.get(ctx, id)
	if err != nil {
		return TransporterResponse{}, err
	}
	return toTransporterResponse(t), nil
}

func (s *teamService) GetTransporterByMatricule(ctx context.Context, matricule string) (TransporterResponse, error) {
	t, err := s.transporters.members.FindByMatricule(ctx, matricule)
	if err != nil {
		return TransporterResponse{}, lookupErr(err, "Transporter", "matricule", matricule)
	}
	return toTransporterResponse(t), nil
}

func (s *teamService) GetTransporterByCIN(ctx context.Context, cin string) (TransporterResponse, error) {
	t, err := s.transporters.members.FindByCIN(ctx, cin)
	if err != nil {
		return TransporterResponse{}, lookupErr(err, "Transporter", "cin", cin)
	}
	return toTransporterResponse(t), nil
}

func (s *teamService) ListTransporters(ctx context.Context, page pagination.Params) ([]TransporterResponse, int64, error) {
	transporters, total, err := s.transporters.members.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch transporters: %w", err)
	}
	return toTransporterResponses(transporters), total, nil
}

func (s *teamService) ListAvailableTransporters(ctx context.Context) ([]TransporterResponse, error) {
	transporters, err := s.transporters.members.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available transporters: %w", err)
	}
	return toTransporterResponses(transporters), nil
}

func (s *teamService) ToggleTransporterAvailability(ctx context.Context, id string) (TransporterResponse, error) {
	t, err := s.transporters.toggle(ctx, id)
	if err != nil {
		return TransporterResponse{}, err
	}
	return toTransporterResponse(t), nil
}

func (s *teamService) AssignTransporterToRequest(ctx context.Context, transporterID, requestID string) (RequestResponse, error) {
	return s.afterAssignment(ctx, requestID, s.transporters.assign(ctx, transporterID, requestID))
}

func (s *teamService) UnassignTransporterFromRequest(ctx context.Context, transporterID, requestID string) (RequestResponse, error) {
	return s.afterAssignment(ctx, requestID, s.transporters.unassign(ctx, transporterID, requestID))
}

func (s *teamService) GetTransportersByRequest(ctx context.Context, requestID string) ([]TransporterResponse, error) {
	transporters, err := s.transporters.forRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	result := make([]TransporterResponse, 0, len(transporters))
	for _, t := range transporters {
		result = append(result, toTransporterResponse(t))
	}
	return result, nil
}

func (s *teamService) afterAssignment(ctx context.Context, requestID string, err error) (RequestResponse, error) {
	if err != nil {
		return RequestResponse{}, err
	}
	id, err := parseID("Request", requestID)
	if err != nil {
		return RequestResponse{}, err
	}
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return RequestResponse{}, lookupErr(err, "Request", "id", id)
	}
	return toRequestResponse(*request), nil
}

// --- Roster ---

// roster implements the registry rules once for both member kinds.
// slot points at the request column holding this kind of member.
type roster[T any, PT interface {
	*T
	model.TeamMember
}] struct {
	entity    string
	column    repository.MemberColumn
	slot      func(r *model.Request) **uuid.UUID
	members   repository.MemberRepository[T]
	requests  repository.RequestRepository
	txManager repository.TransactionManager
	metrics   *metrics.Metrics
}

func (r *roster[T, PT]) label() string {
	return strings.ToLower(r.entity)
}

func (r *roster[T, PT]) get(ctx context.Context, id string) (PT, error) {
	memberID, err := parseID(r.entity, id)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, memberID)
}

func (r *roster[T, PT]) load(ctx context.Context, id uuid.UUID) (PT, error) {
	m, err := r.members.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, r.entity, "id", id)
	}
	return PT(m), nil
}

func (r *roster[T, PT]) lock(ctx context.Context, id uuid.UUID) (PT, error) {
	m, err := r.members.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, lookupErr(err, r.entity, "id", id)
	}
	return PT(m), nil
}

func (r *roster[T, PT]) create(ctx context.Context, payload EmployeePayload, fill func(PT)) (PT, error) {
	if err := validateEmployee(payload); err != nil {
		return nil, err
	}

	member := PT(new(T))
	err := r.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := r.ensureUnique(txCtx, nil, payload); err != nil {
			return err
		}
		applyEmployee(member, payload, true)
		fill(member)
		if err := r.members.Create(txCtx, (*T)(member)); err != nil {
			return fmt.Errorf("failed to create %s: %w", r.label(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"member_id": member.MemberID(), "role": r.label()}).Info("team member created")
	return r.load(ctx, member.MemberID())
}

func (r *roster[T, PT]) update(ctx context.Context, id string, payload EmployeePayload, fill func(PT)) (PT, error) {
	memberID, err := parseID(r.entity, id)
	if err != nil {
		return nil, err
	}
	if err := validateEmployee(payload); err != nil {
		return nil, err
	}

	err = r.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		member, err := r.lock(txCtx, memberID)
		if err != nil {
			return err
		}
		if err := r.ensureUnique(txCtx, member.Profile(), payload); err != nil {
			return err
		}
		applyEmployee(member, payload, member.IsAvailable())
		fill(member)
		if err := r.members.Update(txCtx, (*T)(member)); err != nil {
			return fmt.Errorf("failed to update %s: %w", r.label(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.load(ctx, memberID)
}

func (r *roster[T, PT]) delete(ctx context.Context, id string) error {
	memberID, err := parseID(r.entity, id)
	if err != nil {
		return err
	}

	return r.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := r.lock(txCtx, memberID); err != nil {
			return err
		}
		assigned, err := r.requests.CountByMember(txCtx, r.column, memberID)
		if err != nil {
			return fmt.Errorf("failed to count %s requests: %w", r.label(), err)
		}
		if assigned > 0 {
			return apperror.Invalidf("Cannot delete %s. %s is assigned to %d requests.", r.label(), r.entity, assigned)
		}
		if err := r.members.Delete(txCtx, memberID); err != nil {
			return fmt.Errorf("failed to delete %s: %w", r.label(), err)
		}
		return nil
	})
}

// toggle flips availability. The active-request guard only runs when the member is currently unavailable.
func (r *roster[T, PT]) toggle(ctx context.Context, id string) (PT, error) {
	memberID, err := parseID(r.entity, id)
	if err != nil {
		return nil, err
	}

	err = r.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		member, err := r.lock(txCtx, memberID)
		if err != nil {
			return err
		}
		if !member.IsAvailable() {
			active, err := r.requests.CountByMember(txCtx, r.column, memberID, model.RequestCompleted, model.RequestCancelled)
			if err != nil {
				return fmt.Errorf("failed to count active %s requests: %w", r.label(), err)
			}
			if active > 0 {
				return apperror.Invalidf("Cannot set %s to unavailable. %s has active requests.", r.label(), r.entity)
			}
		}
		member.SetAvailable(!member.IsAvailable())
		if err := r.members.Update(txCtx, (*T)(member)); err != nil {
			return fmt.Errorf("failed to update %s: %w", r.label(), err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.load(ctx, memberID)
}

func (r *roster[T, PT]) assign(ctx context.Context, memberID, requestID string) error {
	mid, err := parseID(r.entity, memberID)
	if err != nil {
		return err
	}
	rid, err := parseID("Request", requestID)
	if err != nil {
		return err
	}

	err = r.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		member, err := r.lock(txCtx, mid)
		if err != nil {
			return err
		}
		request, err := r.requests.FindByIDForUpdate(txCtx, rid)
		if err != nil {
			return lookupErr(err, "Request", "id", rid)
		}
		if !member.IsAvailable() {
			return apperror.Invalidf("%s is not available for assignment", r.entity)
		}
		slot := r.slot(request)
		if *slot != nil {
			return apperror.Invalidf("Request already has a %s assigned", r.label())
		}

		*slot = &mid
		if request.HasTeam() {
			request.Status = model.RequestAssigned
		}
		if err := r.requests.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to assign %s: %w", r.label(), err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.metrics.IncrementTeamAssignment(r.label(), "assign")
	logrus.WithFields(logrus.Fields{"request_id": rid, "member_id": mid, "role": r.label()}).Info("team member assigned")
	return nil
}

// unassign clears the member and always resets the request to PENDING, even if the other role stays filled.
func (r *roster[T, PT]) unassign(ctx context.Context, memberID, requestID string) error {
	mid, err := parseID(r.entity, memberID)
	if err != nil {
		return err
	}
	rid, err := parseID("Request", requestID)
	if err != nil {
		return err
	}

	err = r.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := r.lock(txCtx, mid); err != nil {
			return err
		}
		request, err := r.requests.FindByIDForUpdate(txCtx, rid)
		if err != nil {
			return lookupErr(err, "Request", "id", rid)
		}
		slot := r.slot(request)
		if *slot == nil || **slot != mid {
			return apperror.Invalidf("%s is not assigned to this request", r.entity)
		}
		if request.Status == model.RequestConfirmed || request.Status == model.RequestCompleted {
			return apperror.Invalidf("Cannot unassign %s from a confirmed or completed request", r.label())
		}

		*slot = nil
		request.Status = model.RequestPending
		if err := r.requests.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to unassign %s: %w", r.label(), err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.metrics.IncrementTeamAssignment(r.label(), "unassign")
	logrus.WithFields(logrus.Fields{"request_id": rid, "member_id": mid, "role": r.label()}).Info("team member unassigned")
	return nil
}

// forRequest returns the member holding this role on the request, as a list of zero or one.
func (r *roster[T, PT]) forRequest(ctx context.Context, requestID string) ([]PT, error) {
	rid, err := parseID("Request", requestID)
	if err != nil {
		return nil, err
	}
	request, err := r.requests.FindByID(ctx, rid)
	if err != nil {
		return nil, lookupErr(err, "Request", "id", rid)
	}

	slot := r.slot(request)
	if *slot == nil {
		return []PT{}, nil
	}
	member, err := r.load(ctx, **slot)
	if err != nil {
		return nil, err
	}
	return []PT{member}, nil
}

// ensureUnique rejects a CIN or matricule held by another member. current is nil on create;
// on update only changed values are checked.
func (r *roster[T, PT]) ensureUnique(ctx context.Context, current *model.Employee, payload EmployeePayload) error {
	if current == nil || current.CIN != payload.CIN {
		_, err := r.members.FindByCIN(ctx, payload.CIN)
		if err == nil {
			return apperror.Invalidf("CIN already exists: %s", payload.CIN)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check cin: %w", err)
		}
	}
	if current == nil || current.Matricule != payload.Matricule {
		_, err := r.members.FindByMatricule(ctx, payload.Matricule)
		if err == nil {
			return apperror.Invalidf("Matricule already exists: %s", payload.Matricule)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check matricule: %w", err)
		}
	}
	return nil
}

// --- Helpers ---

func validateEmployee(p EmployeePayload) error {
	if strings.TrimSpace(p.Matricule) == "" {
		return apperror.Invalid("Matricule is required")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return apperror.Invalid("First name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return apperror.Invalid("Last name is required")
	}
	if strings.TrimSpace(p.CIN) == "" {
		return apperror.Invalid("CIN is required")
	}
	return nil
}

func applyEmployee(m model.TeamMember, p EmployeePayload, fallbackAvailable bool) {
	profile := m.Profile()
	profile.Matricule = p.Matricule
	profile.FirstName = p.FirstName
	profile.LastName = p.LastName
	profile.CIN = p.CIN

	available := fallbackAvailable
	if p.Available != nil {
		available = *p.Available
	}
	m.SetAvailable(available)
}

func toEmployeeResponse(m model.TeamMember) EmployeeResponse {
	profile := m.Profile()
	return EmployeeResponse{
		ID:         m.MemberID(),
		Matricule:  profile.Matricule,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		CIN:        profile.CIN,
		Available:  m.IsAvailable(),
		RequestIDs: m.RequestIDs(),
	}
}

func toDriverResponse(d *model.Driver) DriverResponse {
	resp := DriverResponse{EmployeeResponse: toEmployeeResponse(d), LicenseNumber: d.LicenseNumber}
	resp.CreatedAt = d.CreatedAt
	resp.UpdatedAt = d.UpdatedAt
	return resp
}

func toDriverResponses(drivers []model.Driver) []DriverResponse {
	result := make([]DriverResponse, 0, len(drivers))
	for i := range drivers {
		result = append(result, toDriverResponse(&drivers[i]))
	}
	return result
}

func toTransporterResponse(t *model.Transporter) TransporterResponse {
	resp := TransporterResponse{EmployeeResponse: toEmployeeResponse(t), VehicleType: t.VehicleType}
	resp.CreatedAt = t.CreatedAt
	resp.UpdatedAt = t.UpdatedAt
	return resp
}

func toTransporterResponses(transporters []model.Transporter) []TransporterResponse {
	result := make([]TransporterResponse, 0, len(transporters))
	for i := range transporters {
		result = append(result, toTransporterResponse(&transporters[i]))
	}
	return result
}
