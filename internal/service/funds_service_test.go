package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"cargofunds/internal/model"
	"cargofunds/pkg/apperror"
	"cargofunds/pkg/pagination"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FundsServiceSuite struct {
	serviceSuite
}

func TestFundsServiceSuite(t *testing.T) {
	suite.Run(t, new(FundsServiceSuite))
}

func (s *FundsServiceSuite) entry(requestID uuid.UUID, amount int64) TransactionResponse {
	resp, err := s.funds.RegisterFundEntry(s.ctx, TransactionPayload{RequestID: &requestID, Amount: decimal.NewFromInt(amount)})
	s.Require().NoError(err)
	return resp
}

func (s *FundsServiceSuite) exit(requestID uuid.UUID, amount int64) TransactionResponse {
	resp, err := s.funds.RegisterFundExit(s.ctx, TransactionPayload{RequestID: &requestID, Amount: decimal.NewFromInt(amount)})
	s.Require().NoError(err)
	return resp
}

func (s *FundsServiceSuite) TestCreateTransaction() {
	req := s.newRequest("REQ-1")

	resp, err := s.funds.CreateTransaction(s.ctx, TransactionPayload{
		RequestID:   &req.ID,
		Type:        model.TransactionExit,
		Amount:      decimal.RequireFromString("12.50"),
		Description: "fuel",
	})
	s.Require().NoError(err)

	s.Equal(model.TransactionPending, resp.Status)
	s.Equal(model.TransactionExit, resp.Type)
	s.Equal("REQ-1", resp.RequestNumber)
	s.Equal("fuel", resp.Description)
	s.True(resp.TransactionDate.Equal(fixedNow))
	s.Regexp(`^TXN-[0-9A-F]{8}$`, resp.ReferenceNumber)
	s.Empty(resp.ConfirmedBy)
	s.Nil(resp.ConfirmationDate)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.TransactionsCreated.WithLabelValues(model.TransactionExit)))
}

func (s *FundsServiceSuite) TestCreateValidation() {
	req := s.newRequest("REQ-1")
	missing := uuid.New()

	cases := []struct {
		name    string
		payload TransactionPayload
		check   func(error) bool
		msg     string
	}{
		{"no request", TransactionPayload{Type: "ENTRY", Amount: decimal.NewFromInt(1)}, apperror.IsInvalid, "Request ID is required"},
		{"no type", TransactionPayload{RequestID: &req.ID, Amount: decimal.NewFromInt(1)}, apperror.IsInvalid, "Transaction type is required"},
		{"bad type", TransactionPayload{RequestID: &req.ID, Type: "REFUND", Amount: decimal.NewFromInt(1)}, apperror.IsInvalid, "Transaction type must be either ENTRY or EXIT"},
		{"zero amount", TransactionPayload{RequestID: &req.ID, Type: "ENTRY"}, apperror.IsInvalid, "Transaction amount must be positive"},
		{"unknown request", TransactionPayload{RequestID: &missing, Type: "ENTRY", Amount: decimal.NewFromInt(1)}, apperror.IsNotFound, ""},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.funds.CreateTransaction(s.ctx, tc.payload)
			s.True(tc.check(err))
			if tc.msg != "" {
				s.EqualError(err, tc.msg)
			}
		})
	}
}

func (s *FundsServiceSuite) TestEntryAndExitHonourTriStateConfirmation() {
	unconfirmed := s.newRequest("REQ-FALSE")
	confirmed := s.confirmedRequest("REQ-TRUE")
	legacy := s.newRequest("REQ-NULL")
	s.setConfirmedNull(legacy.ID)

	_, err := s.funds.RegisterFundEntry(s.ctx, TransactionPayload{RequestID: &unconfirmed.ID, Amount: decimal.NewFromInt(5)})
	s.True(apperror.IsInvalid(err))
	s.EqualError(err, "Cannot register fund entry for unconfirmed request")

	_, err = s.funds.RegisterFundExit(s.ctx, TransactionPayload{RequestID: &unconfirmed.ID, Amount: decimal.NewFromInt(5)})
	s.EqualError(err, "Cannot register fund exit for unconfirmed request")

	for _, id := range []uuid.UUID{confirmed.ID, legacy.ID} {
		entry := s.entry(id, 5)
		s.Equal(model.TransactionEntry, entry.Type)
		exit := s.exit(id, 2)
		s.Equal(model.TransactionExit, exit.Type)
	}
}

func (s *FundsServiceSuite) TestEntryForcesType() {
	req := s.confirmedRequest("REQ-1")

	resp, err := s.funds.RegisterFundEntry(s.ctx, TransactionPayload{RequestID: &req.ID, Type: model.TransactionExit, Amount: decimal.NewFromInt(5)})
	s.Require().NoError(err)
	s.Equal(model.TransactionEntry, resp.Type)
}

func (s *FundsServiceSuite) TestConfirmPromotesRequest() {
	req := s.newRequest("REQ-1")
	txn, err := s.funds.CreateTransaction(s.ctx, TransactionPayload{RequestID: &req.ID, Type: model.TransactionEntry, Amount: decimal.NewFromInt(100)})
	s.Require().NoError(err)

	resp, err := s.funds.ConfirmTransaction(s.ctx, txn.ID.String(), "bob")
	s.Require().NoError(err)
	s.Equal(model.TransactionConfirmed, resp.Status)
	s.Equal("bob", resp.ConfirmedBy)
	s.Require().NotNil(resp.ConfirmationDate)
	s.True(resp.ConfirmationDate.Equal(fixedNow))

	promoted, err := s.requests.GetRequest(s.ctx, req.ID.String())
	s.Require().NoError(err)
	s.True(*promoted.Confirmed)
	s.Equal(model.RequestPending, promoted.Status)
	s.Require().NotNil(promoted.ConfirmationDate)
	s.True(promoted.ConfirmationDate.Equal(fixedNow))

	s.Equal(1.0, testutil.ToFloat64(s.metrics.TransactionsConfirmed))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.RequestsConfirmed))
}

func (s *FundsServiceSuite) TestConfirmLeavesRequestStatusAlone() {
	req := s.newRequest("REQ-1")
	_, err := s.requests.UpdateRequestStatus(s.ctx, req.ID.String(), model.RequestCompleted)
	s.Require().NoError(err)

	txn, err := s.funds.CreateTransaction(s.ctx, TransactionPayload{RequestID: &req.ID, Type: model.TransactionEntry, Amount: decimal.NewFromInt(40)})
	s.Require().NoError(err)
	_, err = s.funds.ConfirmTransaction(s.ctx, txn.ID.String(), "bob")
	s.Require().NoError(err)

	stored, err := s.requests.GetRequest(s.ctx, req.ID.String())
	s.Require().NoError(err)
	s.Equal(model.RequestCompleted, stored.Status)
	s.True(*stored.Confirmed)
	s.NotNil(stored.ConfirmationDate)
}

func (s *FundsServiceSuite) TestConfirmKeepsExistingRequestConfirmation() {
	req := s.confirmedRequest("REQ-1")
	txn := s.entry(req.ID, 10)

	_, err := s.funds.ConfirmTransaction(s.ctx, txn.ID.String(), "bob")
	s.Require().NoError(err)

	got, err := s.requests.GetRequest(s.ctx, req.ID.String())
	s.Require().NoError(err)
	s.True(got.ConfirmationDate.Equal(*req.ConfirmationDate))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.RequestsConfirmed))
}

func (s *FundsServiceSuite) TestRejectWithAndWithoutReason() {
	req := s.confirmedRequest("REQ-1")
	a := s.entry(req.ID, 10)
	b, err := s.funds.RegisterFundExit(s.ctx, TransactionPayload{RequestID: &req.ID, Amount: decimal.NewFromInt(3), Description: "toll"})
	s.Require().NoError(err)

	resp, err := s.funds.RejectTransaction(s.ctx, a.ID.String(), "carol", "duplicate")
	s.Require().NoError(err)
	s.Equal(model.TransactionRejected, resp.Status)
	s.Equal("carol", resp.ConfirmedBy)
	s.Equal("duplicate", resp.Description)
	s.NotNil(resp.ConfirmationDate)

	resp, err = s.funds.RejectTransaction(s.ctx, b.ID.String(), "carol", "")
	s.Require().NoError(err)
	s.Equal("toll", resp.Description)
	s.Equal(2.0, testutil.ToFloat64(s.metrics.TransactionsRejected))
}

func (s *FundsServiceSuite) TestTerminalStatesAreFrozen() {
	req := s.confirmedRequest("REQ-1")
	confirmed := s.entry(req.ID, 10)
	rejected := s.entry(req.ID, 20)
	_, err := s.funds.ConfirmTransaction(s.ctx, confirmed.ID.String(), "bob")
	s.Require().NoError(err)
	_, err = s.funds.RejectTransaction(s.ctx, rejected.ID.String(), "bob", "no")
	s.Require().NoError(err)

	update := UpdateTransactionPayload{Amount: decimal.NewFromInt(99), Description: "changed"}
	cases := []struct {
		name string
		call func() error
		msg  string
	}{
		{"confirm confirmed", func() error { _, err := s.funds.ConfirmTransaction(s.ctx, confirmed.ID.String(), "x"); return err }, "Transaction is already confirmed"},
		{"reject confirmed", func() error { _, err := s.funds.RejectTransaction(s.ctx, confirmed.ID.String(), "x", ""); return err }, "Cannot reject a confirmed transaction"},
		{"update confirmed", func() error { _, err := s.funds.UpdateTransaction(s.ctx, confirmed.ID.String(), update); return err }, "Cannot update a confirmed transaction"},
		{"delete confirmed", func() error { return s.funds.DeleteTransaction(s.ctx, confirmed.ID.String()) }, "Cannot delete a confirmed transaction"},
		{"confirm rejected", func() error { _, err := s.funds.ConfirmTransaction(s.ctx, rejected.ID.String(), "x"); return err }, "Cannot confirm a rejected transaction"},
		{"reject rejected", func() error { _, err := s.funds.RejectTransaction(s.ctx, rejected.ID.String(), "x", ""); return err }, "Transaction is already rejected"},
		{"update rejected", func() error { _, err := s.funds.UpdateTransaction(s.ctx, rejected.ID.String(), update); return err }, "Cannot update a rejected transaction"},
		{"delete rejected", func() error { return s.funds.DeleteTransaction(s.ctx, rejected.ID.String()) }, "Cannot delete a rejected transaction"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.True(apperror.IsInvalid(err))
			s.EqualError(err, tc.msg)
		})
	}

	got, err := s.funds.GetTransaction(s.ctx, confirmed.ID.String())
	s.Require().NoError(err)
	s.Equal(model.TransactionConfirmed, got.Status)
	s.Equal("bob", got.ConfirmedBy)
	s.True(decimal.NewFromInt(10).Equal(got.Amount))
}

func (s *FundsServiceSuite) TestLostTransitionReportsWinnerState() {
	req := s.confirmedRequest("REQ-1")
	txn := s.entry(req.ID, 10)

	// Another writer confirms between our read and our guarded update.
	s.Require().NoError(s.db.Model(&model.Transaction{}).Where("id = ?", txn.ID).
		Update("status", model.TransactionConfirmed).Error)

	svc := s.funds.(*fundsService)
	err := svc.transition(s.ctx, txn.ID, rejectable, map[string]interface{}{"status": model.TransactionRejected})
	s.True(apperror.IsInvalid(err))
	s.EqualError(err, "Cannot reject a confirmed transaction")

	got, err := s.funds.GetTransaction(s.ctx, txn.ID.String())
	s.Require().NoError(err)
	s.Equal(model.TransactionConfirmed, got.Status)
}

func (s *FundsServiceSuite) TestConcurrentConfirmAndRejectHaveOneWinner() {
	req := s.confirmedRequest("REQ-1")
	txn := s.entry(req.ID, 10)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = s.funds.ConfirmTransaction(s.ctx, txn.ID.String(), "bob")
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = s.funds.RejectTransaction(s.ctx, txn.ID.String(), "carol", "")
	}()
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			failures++
			s.True(apperror.IsInvalid(err))
		}
	}
	s.Equal(1, failures)
}

func (s *FundsServiceSuite) TestUpdateAndDeletePending() {
	req := s.confirmedRequest("REQ-1")
	txn := s.entry(req.ID, 10)

	resp, err := s.funds.UpdateTransaction(s.ctx, txn.ID.String(), UpdateTransactionPayload{Amount: decimal.NewFromInt(15), Description: "adjusted"})
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(15).Equal(resp.Amount))
	s.Equal("adjusted", resp.Description)
	s.Equal(txn.ReferenceNumber, resp.ReferenceNumber)
	s.Equal(model.TransactionEntry, resp.Type)

	_, err = s.funds.UpdateTransaction(s.ctx, txn.ID.String(), UpdateTransactionPayload{Amount: decimal.Zero})
	s.EqualError(err, "Transaction amount must be positive")

	s.Require().NoError(s.funds.DeleteTransaction(s.ctx, txn.ID.String()))
	_, err = s.funds.GetTransaction(s.ctx, txn.ID.String())
	s.True(apperror.IsNotFound(err))
	s.True(apperror.IsNotFound(s.funds.DeleteTransaction(s.ctx, txn.ID.String())))
}

func (s *FundsServiceSuite) TestReferenceGenerationRetriesOnCollision() {
	req := s.confirmedRequest("REQ-1")

	var mu sync.Mutex
	refs := []string{"TXN-AAAAAAAA", "TXN-AAAAAAAA", "TXN-BBBBBBBB"}
	next := func() string {
		mu.Lock()
		defer mu.Unlock()
		ref := refs[0]
		if len(refs) > 1 {
			refs = refs[1:]
		}
		return ref
	}
	funds := NewFundsService(s.txnRepo, s.requestRepo, s.txManager, WithReferenceGenerator(next))

	first, err := funds.RegisterFundEntry(s.ctx, TransactionPayload{RequestID: &req.ID, Amount: decimal.NewFromInt(1)})
	s.Require().NoError(err)
	s.Equal("TXN-AAAAAAAA", first.ReferenceNumber)

	second, err := funds.RegisterFundEntry(s.ctx, TransactionPayload{RequestID: &req.ID, Amount: decimal.NewFromInt(1)})
	s.Require().NoError(err)
	s.Equal("TXN-BBBBBBBB", second.ReferenceNumber)

	// Only BBBBBBBB is left and it is taken.
	_, err = funds.RegisterFundEntry(s.ctx, TransactionPayload{RequestID: &req.ID, Amount: decimal.NewFromInt(1)})
	s.Error(err)
	s.False(apperror.IsInvalid(err))

	got, err := s.funds.GetTransactionByReference(s.ctx, "TXN-BBBBBBBB")
	s.Require().NoError(err)
	s.Equal(second.ID, got.ID)
}

func (s *FundsServiceSuite) TestConcurrentCreatesGetUniqueReferences() {
	req := s.confirmedRequest("REQ-1")

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.funds.RegisterFundEntry(s.ctx, TransactionPayload{RequestID: &req.ID, Amount: decimal.NewFromInt(1)})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	txns, err := s.funds.ListTransactionsByRequest(s.ctx, req.ID.String())
	s.Require().NoError(err)
	s.Len(txns, n)

	seen := make(map[string]bool, n)
	for _, t := range txns {
		s.False(seen[t.ReferenceNumber], fmt.Sprintf("duplicate reference %s", t.ReferenceNumber))
		seen[t.ReferenceNumber] = true
	}
}

func (s *FundsServiceSuite) TestQueries() {
	a := s.confirmedRequest("REQ-A")
	b := s.confirmedRequest("REQ-B")
	e := s.entry(a.ID, 10)
	s.exit(a.ID, 4)
	s.entry(b.ID, 7)
	_, err := s.funds.ConfirmTransaction(s.ctx, e.ID.String(), "bob")
	s.Require().NoError(err)

	s.Run("by request", func() {
		got, err := s.funds.ListTransactionsByRequest(s.ctx, a.ID.String())
		s.Require().NoError(err)
		s.Len(got, 2)

		_, err = s.funds.ListTransactionsByRequest(s.ctx, uuid.NewString())
		s.True(apperror.IsNotFound(err))
	})
	s.Run("by request number", func() {
		got, err := s.funds.ListTransactionsByRequestNumber(s.ctx, "REQ-B")
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal("REQ-B", got[0].RequestNumber)

		got, err = s.funds.ListTransactionsByRequestNumber(s.ctx, "unknown")
		s.Require().NoError(err)
		s.Empty(got)
	})
	s.Run("by type", func() {
		got, err := s.funds.ListTransactionsByType(s.ctx, model.TransactionEntry)
		s.Require().NoError(err)
		s.Len(got, 2)

		_, err = s.funds.ListTransactionsByType(s.ctx, "entry")
		s.EqualError(err, "Transaction type must be either ENTRY or EXIT")
	})
	s.Run("by status", func() {
		got, err := s.funds.ListTransactionsByStatus(s.ctx, model.TransactionPending)
		s.Require().NoError(err)
		s.Len(got, 2)

		_, err = s.funds.ListTransactionsByStatus(s.ctx, "DONE")
		s.EqualError(err, "Transaction status must be one of: PENDING, CONFIRMED, REJECTED")
	})
	s.Run("by id and reference", func() {
		got, err := s.funds.GetTransaction(s.ctx, e.ID.String())
		s.Require().NoError(err)
		s.Equal(e.ReferenceNumber, got.ReferenceNumber)

		_, err = s.funds.GetTransactionByReference(s.ctx, "TXN-00000000")
		s.True(apperror.IsNotFound(err))
		_, err = s.funds.GetTransaction(s.ctx, "bad")
		s.True(apperror.IsInvalid(err))
	})
	s.Run("paged", func() {
		got, total, err := s.funds.ListTransactions(s.ctx, pagination.New(2, 2))
		s.Require().NoError(err)
		s.EqualValues(3, total)
		s.Len(got, 1)
	})
}

func (s *FundsServiceSuite) TestDateRange() {
	req := s.confirmedRequest("REQ-1")
	day := func(d, h int) time.Time { return time.Date(2024, 3, d, h, 0, 0, 0, time.UTC) }

	for _, at := range []time.Time{day(9, 23), day(10, 0), day(12, 23), day(13, 0)} {
		at := at
		funds := NewFundsService(s.txnRepo, s.requestRepo, s.txManager, WithClock(func() time.Time { return at }))
		_, err := funds.RegisterFundEntry(s.ctx, TransactionPayload{RequestID: &req.ID, Amount: decimal.NewFromInt(1)})
		s.Require().NoError(err)
	}

	from, to := day(10, 15), day(12, 1)
	got, err := s.funds.ListTransactionsByDateRange(s.ctx, &from, &to)
	s.Require().NoError(err)
	s.Len(got, 2)

	_, err = s.funds.ListTransactionsByDateRange(s.ctx, &to, &from)
	s.EqualError(err, "From date cannot be after to date")

	_, err = s.funds.ListTransactionsByDateRange(s.ctx, nil, &to)
	s.EqualError(err, "From date and to date must be provided")

	_, err = s.funds.GenerateReport(s.ctx, &to, &from)
	s.True(apperror.IsInvalid(err))
}

func (s *FundsServiceSuite) TestReportAggregatesConfirmedAmounts() {
	req := s.confirmedRequest("REQ-1")

	confirm := func(t TransactionResponse) {
		_, err := s.funds.ConfirmTransaction(s.ctx, t.ID.String(), "bob")
		s.Require().NoError(err)
	}
	confirm(s.entry(req.ID, 100))
	confirm(s.entry(req.ID, 50))
	confirm(s.exit(req.ID, 30))
	s.entry(req.ID, 20)
	rejected := s.exit(req.ID, 10)
	_, err := s.funds.RejectTransaction(s.ctx, rejected.ID.String(), "bob", "")
	s.Require().NoError(err)

	check := func(r TransactionReportResponse) {
		s.True(decimal.NewFromInt(150).Equal(r.TotalEntryAmount), r.TotalEntryAmount.String())
		s.True(decimal.NewFromInt(30).Equal(r.TotalExitAmount), r.TotalExitAmount.String())
		s.True(decimal.NewFromInt(120).Equal(r.Balance), r.Balance.String())
		s.Equal(5, r.TotalTransactions)
		s.Equal(3, r.ConfirmedTransactions)
		s.Equal(1, r.PendingTransactions)
		s.Equal(1, r.RejectedTransactions)
		s.Len(r.Transactions, 5)
	}

	byRequest, err := s.funds.GenerateRequestReport(s.ctx, req.ID.String())
	s.Require().NoError(err)
	check(byRequest)
	s.Nil(byRequest.FromDate)
	s.Nil(byRequest.ToDate)

	from, to := fixedNow, fixedNow
	byDate, err := s.funds.GenerateReport(s.ctx, &from, &to)
	s.Require().NoError(err)
	check(byDate)
	s.Equal("2024-03-15", *byDate.FromDate)
	s.Equal("2024-03-15", *byDate.ToDate)

	_, err = s.funds.GenerateRequestReport(s.ctx, uuid.NewString())
	s.True(apperror.IsNotFound(err))
}
