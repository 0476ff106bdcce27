package service

import (
	"context"
	"time"

	"cargofunds/internal/metrics"
	"cargofunds/internal/model"
	"cargofunds/internal/repository"
	"cargofunds/internal/testutil"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// serviceSuite wires every service against a fresh in-memory database.
type serviceSuite struct {
	suite.Suite

	ctx     context.Context
	db      *gorm.DB
	metrics *metrics.Metrics

	requestRepo     repository.RequestRepository
	driverRepo      repository.MemberRepository[model.Driver]
	transporterRepo repository.MemberRepository[model.Transporter]
	txnRepo         repository.TransactionRepository
	userRepo        repository.UserRepository
	txManager       repository.TransactionManager

	requests RequestService
	teams    TeamService
	funds    FundsService
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewDB(s.T())
	s.metrics = metrics.New(prometheus.NewRegistry())

	s.requestRepo = repository.NewRequestRepository(s.db)
	s.driverRepo = repository.NewDriverRepository(s.db)
	s.transporterRepo = repository.NewTransporterRepository(s.db)
	s.txnRepo = repository.NewTransactionRepository(s.db)
	s.userRepo = repository.NewUserRepository(s.db)
	s.txManager = repository.NewTransactionManager(s.db)

	opts := []Option{WithClock(func() time.Time { return fixedNow }), WithMetrics(s.metrics)}
	s.requests = NewRequestService(s.requestRepo, s.driverRepo, s.transporterRepo, s.userRepo, s.txManager, opts...)
	s.teams = NewTeamService(s.driverRepo, s.transporterRepo, s.requestRepo, s.txManager, opts...)
	s.funds = NewFundsService(s.txnRepo, s.requestRepo, s.txManager, opts...)

	s.Require().NoError(s.userRepo.Create(s.ctx, &model.User{
		Username: "alice",
		Password: "x",
		Role:     model.RoleManager,
		Active:   true,
	}))
}

func (s *serviceSuite) newRequest(number string) RequestResponse {
	resp, err := s.requests.CreateRequest(s.ctx, RequestPayload{
		RequestNumber: number,
		RequestCode:   "RC-" + number,
		Type:          "IMPORT",
		Amount:        decimal.NewFromInt(500),
		Culture:       "wheat",
	}, "alice")
	s.Require().NoError(err)
	return resp
}

func (s *serviceSuite) newDriver(matricule string) DriverResponse {
	resp, err := s.teams.CreateDriver(s.ctx, DriverPayload{
		EmployeePayload: EmployeePayload{Matricule: matricule, FirstName: "Sam", LastName: "Driver", CIN: "CIN-" + matricule},
		LicenseNumber:   "LIC-" + matricule,
	})
	s.Require().NoError(err)
	return resp
}

func (s *serviceSuite) newTransporter(matricule string) TransporterResponse {
	resp, err := s.teams.CreateTransporter(s.ctx, TransporterPayload{
		EmployeePayload: EmployeePayload{Matricule: matricule, FirstName: "Kim", LastName: "Hauler", CIN: "CIN-" + matricule},
		VehicleType:     "TRUCK",
	})
	s.Require().NoError(err)
	return resp
}

// confirmedRequest returns a request with a full team that has been confirmed.
func (s *serviceSuite) confirmedRequest(number string) RequestResponse {
	req := s.newRequest(number)
	d := s.newDriver("D-" + number)
	t := s.newTransporter("T-" + number)

	_, err := s.requests.AssignDriver(s.ctx, req.ID.String(), d.ID.String())
	s.Require().NoError(err)
	_, err = s.requests.AssignTransporter(s.ctx, req.ID.String(), t.ID.String())
	s.Require().NoError(err)
	resp, err := s.requests.ConfirmRequest(s.ctx, req.ID.String())
	s.Require().NoError(err)
	return resp
}

// setConfirmedNull clears the confirmed flag the way rows from older clients look.
func (s *serviceSuite) setConfirmedNull(id uuid.UUID) {
	s.Require().NoError(s.db.Model(&model.Request{}).Where("id = ?", id).Update("confirmed", nil).Error)
}

func ptr[T any](v T) *T { return &v }
