package service

import (
	"context"
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
)

// --- DTOs ---

type TransactionPayload struct {
	RequestID   *uuid.UUID      `json:"request_id"`
	Type        string          `json:"type"` // ENTRY or EXIT; forced by the entry/exit endpoints
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type UpdateTransactionPayload struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type RejectTransactionPayload struct {
	Reason string `json:"reason"`
}

type TransactionResponse struct {
	ID               uuid.UUID       `json:"id"`
	RequestID        uuid.UUID       `json:"request_id"`
	RequestNumber    string          `json:"request_number"`
	Type             string          `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	TransactionDate  time.Time       `json:"transaction_date"`
	Description      string          `json:"description"`
	Status           string          `json:"status"`
	ConfirmedBy      string          `json:"confirmed_by"`
	ConfirmationDate *time.Time      `json:"confirmation_date"`
	ReferenceNumber  string          `json:"reference_number"`
	CreatedAt        time.Time       `json:"created_at"`
}

type TransactionReportResponse struct {
	TotalEntryAmount      decimal.Decimal       `json:"total_entry_amount"`
	TotalExitAmount       decimal.Decimal       `json:"total_exit_amount"`
	Balance               decimal.Decimal       `json:"balance"`
	TotalTransactions     int                   `json:"total_transactions"`
	ConfirmedTransactions int                   `json:"confirmed_transactions"`
	PendingTransactions   int                   `json:"pending_transactions"`
	RejectedTransactions  int                   `json:"rejected_transactions"`
	FromDate              *string               `json:"from_date"`
	ToDate                *string               `json:"to_date"`
	Transactions          []TransactionResponse `json:"transactions"`
}

// --- Interface ---

type FundsService interface {
	CreateTransaction(ctx context.Context, req TransactionPayload) (TransactionResponse, error)
	UpdateTransaction(ctx context.Context, id string, req UpdateTransactionPayload) (TransactionResponse, error)
	DeleteTransaction(ctx context.Context, id string) error
	ConfirmTransaction(ctx context.Context, id string, confirmedBy string) (TransactionResponse, error)
	RejectTransaction(ctx context.Context, id string, rejectedBy string, reason string) (TransactionResponse, error)
	RegisterFundEntry(ctx context.Context, req TransactionPayload) (TransactionResponse, error)
	RegisterFundExit(ctx context.Context, req TransactionPayload) (TransactionResponse, error)

	GetTransaction(ctx context.Context, id string) (TransactionResponse, error)
	GetTransactionByReference(ctx context.Context, reference string) (TransactionResponse, error)
	ListTransactions(ctx context.Context, page pagination.Params) ([]TransactionResponse, int64, error)
	ListTransactionsByRequest(ctx context.Context, requestID string) ([]TransactionResponse, error)
	ListTransactionsByRequestNumber(ctx context.Context, number string) ([]TransactionResponse, error)
	ListTransactionsByType(ctx context.Context, txnType string) ([]TransactionResponse, error)
	ListTransactionsByStatus(ctx context.Context, status string) ([]TransactionResponse, error)
	ListTransactionsByDateRange(ctx context.Context, from, to *time.Time) ([]TransactionResponse, error)

	GenerateReport(ctx context.Context, from, to *time.Time) (TransactionReportResponse, error)
	GenerateRequestReport(ctx context.Context, requestID string) (TransactionReportResponse, error)
}

// --- Implementation ---

const maxReferenceAttempts = 5

type fundsService struct {
	txnRepo     repository.TransactionRepository
	requestRepo repository.RequestRepository
	txManager   repository.TransactionManager
	opts        options
}

func NewFundsService(
	txnRepo repository.TransactionRepository,
	requestRepo repository.RequestRepository,
	txManager repository.TransactionManager,
	opts ...Option,
) FundsService {
	return &fundsService{
		txnRepo:     txnRepo,
		requestRepo: requestRepo,
		txManager:   txManager,
		opts:        buildOptions(opts),
	}
}

func (s *fundsService) CreateTransaction(ctx context.Context, req TransactionPayload) (TransactionResponse, error) {
	return s.create(ctx, req, nil)
}

// RegisterFundEntry records an ENTRY. Only a request explicitly flagged unconfirmed is refused;
// a NULL flag passes.
func (s *fundsService) RegisterFundEntry(ctx context.Context, req TransactionPayload) (TransactionResponse, error) {
	req.Type = model.TransactionEntry
	return s.create(ctx, req, func(r *model.Request) error {
		if r.IsUnconfirmed() {
			return apperror.Invalid("Cannot register fund entry for unconfirmed request")
		}
		return nil
	})
}

func (s *fundsService) RegisterFundExit(ctx context.Context, req TransactionPayload) (TransactionResponse, error) {
	req.Type = model.TransactionExit
	return s.create(ctx, req, func(r *model.Request) error {
		if r.IsUnconfirmed() {
			return apperror.Invalid("Cannot register fund exit for unconfirmed request")
		}
		return nil
	})
}

func (s *fundsService) UpdateTransaction(ctx context.Context, id string, req UpdateTransactionPayload) (TransactionResponse, error) {
	txnID, err := parseID("Transaction", id)
	if err != nil {
		return TransactionResponse{}, err
	}
	if !req.Amount.IsPositive() {
		return TransactionResponse{}, apperror.Invalid("Transaction amount must be positive")
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		txn, err := s.txnRepo.FindByIDForUpdate(txCtx, txnID)
		if err != nil {
			return lookupErr(err, "Transaction", "id", txnID)
		}
		if err := ensurePending(txn.Status, "update"); err != nil {
			return err
		}
		txn.Amount = req.Amount
		txn.Description = req.Description
		if err := s.txnRepo.Update(txCtx, txn); err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return TransactionResponse{}, err
	}
	return s.reload(ctx, txnID)
}

func (s *fundsService) DeleteTransaction(ctx context.Context, id string) error {
	txnID, err := parseID("Transaction", id)
	if err != nil {
		return err
	}

	return s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		txn, err := s.txnRepo.FindByIDForUpdate(txCtx, txnID)
		if err != nil {
			return lookupErr(err, "Transaction", "id", txnID)
		}
		if err := ensurePending(txn.Status, "delete"); err != nil {
			return err
		}
		if err := s.txnRepo.Delete(txCtx, txn.ID); err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		return nil
	})
}

// ConfirmTransaction moves a PENDING transaction to CONFIRMED. The first confirmation on a request
// also confirms the request itself.
func (s *fundsService) ConfirmTransaction(ctx context.Context, id string, confirmedBy string) (TransactionResponse, error) {
	txnID, err := parseID("Transaction", id)
	if err != nil {
		return TransactionResponse{}, err
	}

	var txn *model.Transaction
	promoted := false
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		txn, err = s.txnRepo.FindByIDForUpdate(txCtx, txnID)
		if err != nil {
			return lookupErr(err, "Transaction", "id", txnID)
		}
		if err := confirmable(txn.Status); err != nil {
			return err
		}

		now := s.opts.now()
		err = s.transition(txCtx, txn.ID, confirmable, map[string]interface{}{
			"status":            model.TransactionConfirmed,
			"confirmed_by":      confirmedBy,
			"confirmation_date": now,
		})
		if err != nil {
			return err
		}

		request, err := s.requestRepo.FindByIDForUpdate(txCtx, txn.RequestID)
		if err != nil {
			return lookupErr(err, "Request", "id", txn.RequestID)
		}
		if !request.IsConfirmed() {
			request.SetConfirmation(now)
			if err := s.requestRepo.Update(txCtx, request); err != nil {
				return fmt.Errorf("failed to confirm request: %w", err)
			}
			promoted = true
		}
		return nil
	})
	if err != nil {
		return TransactionResponse{}, err
	}

	s.opts.metrics.IncrementTransactionConfirmed()
	if promoted {
		s.opts.metrics.IncrementRequestConfirmed()
	}
	logrus.WithFields(logrus.Fields{
		"transaction_id":    txn.ID,
		"reference_number":  txn.ReferenceNumber,
		"confirmed_by":      confirmedBy,
		"request_confirmed": promoted,
	}).Info("transaction confirmed")

	return s.reload(ctx, txnID)
}

func (s *fundsService) RejectTransaction(ctx context.Context, id string, rejectedBy string, reason string) (TransactionResponse, error) {
	txnID, err := parseID("Transaction", id)
	if err != nil {
		return TransactionResponse{}, err
	}

	var txn *model.Transaction
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		txn, err = s.txnRepo.FindByIDForUpdate(txCtx, txnID)
		if err != nil {
			return lookupErr(err, "Transaction", "id", txnID)
		}
		if err := rejectable(txn.Status); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":            model.TransactionRejected,
			"confirmed_by":      rejectedBy,
			"confirmation_date": s.opts.now(),
		}
		if reason != "" {
			updates["description"] = reason
		}
		return s.transition(txCtx, txn.ID, rejectable, updates)
	})
	if err != nil {
		return TransactionResponse{}, err
	}

	s.opts.metrics.IncrementTransactionRejected()
	logrus.WithFields(logrus.Fields{
		"transaction_id":   txn.ID,
		"reference_number": txn.ReferenceNumber,
		"rejected_by":      rejectedBy,
	}).Info("transaction rejected")

	return s.reload(ctx, txnID)
}

func (s *fundsService) GetTransaction(ctx context.Context, id string) (TransactionResponse, error) {
	txnID, err := parseID("Transaction", id)
	if err != nil {
		return TransactionResponse{}, err
	}
	return s.reload(ctx, txnID)
}

func (s *fundsService) GetTransactionByReference(ctx context.Context, reference string) (TransactionResponse, error) {
	txn, err := s.txnRepo.FindByReference(ctx, reference)
	if err != nil {
		return TransactionResponse{}, lookupErr(err, "Transaction", "referenceNumber", reference)
	}
	return toTransactionResponse(*txn), nil
}

func (s *fundsService) ListTransactions(ctx context.Context, page pagination.Params) ([]TransactionResponse, int64, error) {
	txns, total, err := s.txnRepo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return toTransactionResponses(txns), total, nil
}

func (s *fundsService) ListTransactionsByRequest(ctx context.Context, requestID string) ([]TransactionResponse, error) {
	txns, err := s.transactionsForRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(txns), nil
}

// ListTransactionsByRequestNumber returns an empty list for an unknown number.
func (s *fundsService) ListTransactionsByRequestNumber(ctx context.Context, number string) ([]TransactionResponse, error) {
	txns, err := s.txnRepo.ListByRequestNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions by request number: %w", err)
	}
	return toTransactionResponses(txns), nil
}

func (s *fundsService) ListTransactionsByType(ctx context.Context, txnType string) ([]TransactionResponse, error) {
	if !model.IsValidTransactionType(txnType) {
		return nil, invalidTypeErr()
	}
	txns, err := s.txnRepo.ListByType(ctx, txnType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions by type: %w", err)
	}
	return toTransactionResponses(txns), nil
}

func (s *fundsService) ListTransactionsByStatus(ctx context.Context, status string) ([]TransactionResponse, error) {
	if !model.IsValidTransactionStatus(status) {
		return nil, apperror.Invalid("Transaction status must be one of: PENDING, CONFIRMED, REJECTED")
	}
	txns, err := s.txnRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions by status: %w", err)
	}
	return toTransactionResponses(txns), nil
}

func (s *fundsService) ListTransactionsByDateRange(ctx context.Context, from, to *time.Time) ([]TransactionResponse, error) {
	txns, err := s.transactionsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(txns), nil
}

func (s *fundsService) GenerateReport(ctx context.Context, from, to *time.Time) (TransactionReportResponse, error) {
	txns, err := s.transactionsInRange(ctx, from, to)
	if err != nil {
		return TransactionReportResponse{}, err
	}
	fromDay, toDay := startOfDay(*from), startOfDay(*to)
	return toReportResponse(model.NewTransactionReport(txns, &fromDay, &toDay)), nil
}

func (s *fundsService) GenerateRequestReport(ctx context.Context, requestID string) (TransactionReportResponse, error) {
	txns, err := s.transactionsForRequest(ctx, requestID)
	if err != nil {
		return TransactionReportResponse{}, err
	}
	return toReportResponse(model.NewTransactionReport(txns, nil, nil)), nil
}

// --- Helpers ---

// create validates, runs gate against the owning request and stores a PENDING transaction.
func (s *fundsService) create(ctx context.Context, req TransactionPayload, gate func(*model.Request) error) (TransactionResponse, error) {
	if err := validateTransactionPayload(req); err != nil {
		return TransactionResponse{}, err
	}

	var txn model.Transaction
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		request, err := s.requestRepo.FindByID(txCtx, *req.RequestID)
		if err != nil {
			return lookupErr(err, "Request", "id", *req.RequestID)
		}
		if gate != nil {
			if err := gate(request); err != nil {
				return err
			}
		}

		reference, err := s.nextReference(txCtx)
		if err != nil {
			return err
		}

		txn = model.Transaction{
			RequestID:       request.ID,
			Type:            req.Type,
			Amount:          req.Amount,
			TransactionDate: s.opts.now(),
			Description:     req.Description,
			Status:          model.TransactionPending,
			ReferenceNumber: reference,
		}
		if err := s.txnRepo.Create(txCtx, &txn); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return TransactionResponse{}, err
	}

	s.opts.metrics.IncrementTransactionCreated(txn.Type)
	logrus.WithFields(logrus.Fields{
		"transaction_id":   txn.ID,
		"reference_number": txn.ReferenceNumber,
		"request_id":       txn.RequestID,
		"type":             txn.Type,
	}).Info("transaction created")

	return s.reload(ctx, txn.ID)
}

// transition applies updates only if the row is still PENDING. When a concurrent writer won,
// the row is re-read and check reports the state it found.
func (s *fundsService) transition(ctx context.Context, id uuid.UUID, check func(status string) error, updates map[string]interface{}) error {
	ok, err := s.txnRepo.TransitionStatus(ctx, id, model.TransactionPending, updates)
	if err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if ok {
		return nil
	}

	current, err := s.txnRepo.FindByID(ctx, id)
	if err != nil {
		return lookupErr(err, "Transaction", "id", id)
	}
	if err := check(current.Status); err != nil {
		return err
	}
	return fmt.Errorf("transaction %s changed concurrently", id)
}

func (s *fundsService) nextReference(ctx context.Context) (string, error) {
	for i := 0; i < maxReferenceAttempts; i++ {
		reference := s.opts.nextReference()
		exists, err := s.txnRepo.ExistsByReference(ctx, reference)
		if err != nil {
			return "", fmt.Errorf("failed to check reference number: %w", err)
		}
		if !exists {
			return reference, nil
		}
		logrus.WithField("reference_number", reference).Warn("reference number collision, retrying")
	}
	return "", fmt.Errorf("could not generate a unique reference number after %d attempts", maxReferenceAttempts)
}

func (s *fundsService) transactionsForRequest(ctx context.Context, requestID string) ([]model.Transaction, error) {
	rid, err := parseID("Request", requestID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requestRepo.FindByID(ctx, rid); err != nil {
		return nil, lookupErr(err, "Request", "id", rid)
	}
	txns, err := s.txnRepo.ListByRequestID(ctx, rid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions by request: %w", err)
	}
	return txns, nil
}

// transactionsInRange covers whole days: from at 00:00 through the end of to.
func (s *fundsService) transactionsInRange(ctx context.Context, from, to *time.Time) ([]model.Transaction, error) {
	if from == nil || to == nil {
		return nil, apperror.Invalid("From date and to date must be provided")
	}
	start, end := startOfDay(*from), startOfDay(*to)
	if start.After(end) {
		return nil, apperror.Invalid("From date cannot be after to date")
	}

	txns, err := s.txnRepo.ListByDateRange(ctx, start, end.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions by date range: %w", err)
	}
	return txns, nil
}

func (s *fundsService) reload(ctx context.Context, id uuid.UUID) (TransactionResponse, error) {
	txn, err := s.txnRepo.FindByID(ctx, id)
	if err != nil {
		return TransactionResponse{}, lookupErr(err, "Transaction", "id", id)
	}
	return toTransactionResponse(*txn), nil
}

func newReferenceNumber() string {
	return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
}

func validateTransactionPayload(req TransactionPayload) error {
	if req.RequestID == nil {
		return apperror.Invalid("Request ID is required")
	}
	if req.Type == "" {
		return apperror.Invalid("Transaction type is required")
	}
	if !model.IsValidTransactionType(req.Type) {
		return invalidTypeErr()
	}
	if !req.Amount.IsPositive() {
		return apperror.Invalid("Transaction amount must be positive")
	}
	return nil
}

func invalidTypeErr() error {
	return apperror.Invalid("Transaction type must be either ENTRY or EXIT")
}

func confirmable(status string) error {
	switch status {
	case model.TransactionConfirmed:
		return apperror.Invalid("Transaction is already confirmed")
	case model.TransactionRejected:
		return apperror.Invalid("Cannot confirm a rejected transaction")
	}
	return nil
}

func rejectable(status string) error {
	switch status {
	case model.TransactionConfirmed:
		return apperror.Invalid("Cannot reject a confirmed transaction")
	case model.TransactionRejected:
		return apperror.Invalid("Transaction is already rejected")
	}
	return nil
}

// ensurePending guards update and delete: both terminal states are frozen.
func ensurePending(status, action string) error {
	switch status {
	case model.TransactionConfirmed:
		return apperror.Invalidf("Cannot %s a confirmed transaction", action)
	case model.TransactionRejected:
		return apperror.Invalidf("Cannot %s a rejected transaction", action)
	}
	return nil
}

func toTransactionResponse(t model.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:               t.ID,
		RequestID:        t.RequestID,
		Type:             t.Type,
		Amount:           t.Amount,
		TransactionDate:  t.TransactionDate,
		Description:      t.Description,
		Status:           t.Status,
		ConfirmedBy:      t.ConfirmedBy,
		ConfirmationDate: t.ConfirmationDate,
		ReferenceNumber:  t.ReferenceNumber,
		CreatedAt:        t.CreatedAt,
	}
	if t.Request != nil {
		resp.RequestNumber = t.Request.RequestNumber
	}
	return resp
}

func toTransactionResponses(txns []model.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		result = append(result, toTransactionResponse(t))
	}
	return result
}

func toReportResponse(r model.TransactionReport) TransactionReportResponse {
	return TransactionReportResponse{
		TotalEntryAmount:      r.TotalEntryAmount,
		TotalExitAmount:       r.TotalExitAmount,
		Balance:               r.Balance,
		TotalTransactions:     r.TotalTransactions,
		ConfirmedTransactions: r.ConfirmedTransactions,
		PendingTransactions:   r.PendingTransactions,
		RejectedTransactions:  r.RejectedTransactions,
		FromDate:              formatDate(r.FromDate),
		ToDate:                formatDate(r.ToDate),
		Transactions:          toTransactionResponses(r.Transactions),
	}
}
