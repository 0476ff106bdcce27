package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargofunds/internal/model"
	"cargofunds/internal/testutil"
	"cargofunds/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RepositorySuite struct {
	suite.Suite

	ctx          context.Context
	db           *gorm.DB
	requests     RequestRepository
	drivers      MemberRepository[model.Driver]
	transactions TransactionRepository
	txManager    TransactionManager
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.db = testutil.NewDB(s.T())
	s.requests = NewRequestRepository(s.db)
	s.drivers = NewDriverRepository(s.db)
	s.transactions = NewTransactionRepository(s.db)
	s.txManager = NewTransactionManager(s.db)
}

func (s *RepositorySuite) request(number string, date time.Time) *model.Request {
	return s.requestIn(s.ctx, number, date)
}

func (s *RepositorySuite) requestIn(ctx context.Context, number string, date time.Time) *model.Request {
	confirmed := false
	r := &model.Request{
		RequestNumber: number,
		RequestCode:   "C",
		RequestDate:   date,
		Type:          "IMPORT",
		Amount:        decimal.NewFromInt(10),
		Status:        model.RequestPending,
		Confirmed:     &confirmed,
	}
	s.Require().NoError(s.requests.Create(ctx, r))
	return r
}

func (s *RepositorySuite) transaction(requestID uuid.UUID, ref, status string) *model.Transaction {
	t := &model.Transaction{
		RequestID:       requestID,
		Type:            model.TransactionEntry,
		Amount:          decimal.NewFromInt(5),
		TransactionDate: time.Now().UTC(),
		Status:          status,
		ReferenceNumber: ref,
	}
	s.Require().NoError(s.transactions.Create(s.ctx, t))
	return t
}

func (s *RepositorySuite) TestRunInTxRollsBackOnError() {
	boom := errors.New("boom")

	err := s.txManager.RunInTx(s.ctx, func(txCtx context.Context) error {
		s.True(InTx(txCtx))
		s.requestIn(txCtx, "REQ-1", time.Now().UTC())

		// A nested unit joins the outer one.
		return s.txManager.RunInTx(txCtx, func(inner context.Context) error {
			s.requestIn(inner, "REQ-2", time.Now().UTC())
			return boom
		})
	})
	s.ErrorIs(err, boom)

	_, total, err := s.requests.List(s.ctx, pagination.All)
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *RepositorySuite) TestRequestLookups() {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	a := s.request("REQ-A", day)
	s.request("REQ-B", day.AddDate(0, 0, 1))

	got, err := s.requests.FindByNumber(s.ctx, "REQ-A")
	s.Require().NoError(err)
	s.Equal(a.ID, got.ID)

	_, err = s.requests.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	inDay, err := s.requests.ListByDateRange(s.ctx, day, day.AddDate(0, 0, 1))
	s.Require().NoError(err)
	s.Require().Len(inDay, 1)
	s.Equal("REQ-A", inDay[0].RequestNumber)

	page, total, err := s.requests.List(s.ctx, pagination.New(1, 1))
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Require().Len(page, 1)
	s.Equal("REQ-B", page[0].RequestNumber)
}

func (s *RepositorySuite) TestNullConfirmedRoundTrips() {
	r := s.request("REQ-N", time.Now().UTC())
	r.Confirmed = nil
	s.Require().NoError(s.requests.Update(s.ctx, r))

	got, err := s.requests.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Nil(got.Confirmed)
	s.False(got.IsUnconfirmed())
	s.False(got.IsConfirmed())
}

func (s *RepositorySuite) TestCountByMemberExcludesStatuses() {
	driver := &model.Driver{Employee: model.Employee{Matricule: "M", FirstName: "A", LastName: "B", CIN: "C"}, Available: true}
	s.Require().NoError(s.drivers.Create(s.ctx, driver))

	for i, status := range []string{model.RequestPending, model.RequestCompleted, model.RequestCancelled} {
		r := s.request("REQ-"+status, time.Now().UTC().Add(time.Duration(i)*time.Minute))
		r.DriverID = &driver.ID
		r.Status = status
		s.Require().NoError(s.requests.Update(s.ctx, r))
	}

	all, err := s.requests.CountByMember(s.ctx, DriverColumn, driver.ID)
	s.Require().NoError(err)
	s.EqualValues(3, all)

	active, err := s.requests.CountByMember(s.ctx, DriverColumn, driver.ID, model.RequestCompleted, model.RequestCancelled)
	s.Require().NoError(err)
	s.EqualValues(1, active)

	loaded, err := s.drivers.FindByID(s.ctx, driver.ID)
	s.Require().NoError(err)
	s.Len(loaded.RequestIDs(), 3)

	byMember, err := s.requests.ListByMember(s.ctx, DriverColumn, driver.ID)
	s.Require().NoError(err)
	s.Len(byMember, 3)
}

func (s *RepositorySuite) TestMemberLookups() {
	driver := &model.Driver{Employee: model.Employee{Matricule: "M-1", FirstName: "A", LastName: "B", CIN: "C-1"}}
	s.Require().NoError(s.drivers.Create(s.ctx, driver))

	got, err := s.drivers.FindByCIN(s.ctx, "C-1")
	s.Require().NoError(err)
	s.Equal(driver.ID, got.ID)
	s.False(got.Available)

	available, err := s.drivers.ListAvailable(s.ctx)
	s.Require().NoError(err)
	s.Empty(available)

	_, err = s.drivers.FindByMatricule(s.ctx, "missing")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *RepositorySuite) TestTransitionStatusIsGuarded() {
	r := s.request("REQ-1", time.Now().UTC())
	t := s.transaction(r.ID, "TXN-00000001", model.TransactionPending)

	ok, err := s.transactions.TransitionStatus(s.ctx, t.ID, model.TransactionPending, map[string]interface{}{
		"status":       model.TransactionConfirmed,
		"confirmed_by": "bob",
	})
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.transactions.TransitionStatus(s.ctx, t.ID, model.TransactionPending, map[string]interface{}{
		"status": model.TransactionRejected,
	})
	s.Require().NoError(err)
	s.False(ok)

	got, err := s.transactions.FindByID(s.ctx, t.ID)
	s.Require().NoError(err)
	s.Equal(model.TransactionConfirmed, got.Status)
	s.Equal("bob", got.ConfirmedBy)
	s.Require().NotNil(got.Request)
	s.Equal("REQ-1", got.Request.RequestNumber)
}

func (s *RepositorySuite) TestTransactionLookups() {
	a := s.request("REQ-A", time.Now().UTC())
	b := s.request("REQ-B", time.Now().UTC())
	s.transaction(a.ID, "TXN-0000000A", model.TransactionPending)
	s.transaction(b.ID, "TXN-0000000B", model.TransactionRejected)

	exists, err := s.transactions.ExistsByReference(s.ctx, "TXN-0000000A")
	s.Require().NoError(err)
	s.True(exists)

	byNumber, err := s.transactions.ListByRequestNumber(s.ctx, "REQ-B")
	s.Require().NoError(err)
	s.Require().Len(byNumber, 1)
	s.Equal("TXN-0000000B", byNumber[0].ReferenceNumber)

	byStatus, err := s.transactions.ListByStatus(s.ctx, model.TransactionPending)
	s.Require().NoError(err)
	s.Len(byStatus, 1)

	dup := &model.Transaction{
		RequestID: a.ID, Type: model.TransactionExit, Amount: decimal.NewFromInt(1),
		TransactionDate: time.Now().UTC(), Status: model.TransactionPending, ReferenceNumber: "TXN-0000000A",
	}
	s.Error(s.transactions.Create(s.ctx, dup))
}
