package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cargofunds/internal/metrics"
	"cargofunds/internal/middleware"
	"cargofunds/internal/model"
	"cargofunds/internal/repository"
	"cargofunds/internal/service"
	"cargofunds/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var routerSecret = []byte("router-secret")

type envelope struct {
	Status     string          `json:"status"`
	StatusCode int             `json:"status_code"`
	Data       json.RawMessage `json:"data"`
	Meta       *struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	} `json:"meta"`
	Error string `json:"error"`
}

type RouterSuite struct {
	suite.Suite

	router *gin.Engine
	users  service.UserService
	tokens map[string]string
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(s.T())
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	transporterRepo := repository.NewTransporterRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	txManager := repository.NewTransactionManager(db)

	s.users = service.NewUserService(userRepo, routerSecret, time.Hour)
	svc := Services{
		Users:    s.users,
		Requests: service.NewRequestService(requestRepo, driverRepo, transporterRepo, userRepo, txManager, service.WithMetrics(m)),
		Teams:    service.NewTeamService(driverRepo, transporterRepo, requestRepo, txManager, service.WithMetrics(m)),
		Funds:    service.NewFundsService(txnRepo, requestRepo, txManager, service.WithMetrics(m)),
	}
	s.router = NewRouter(RouterConfig{Gatherer: reg}, middleware.NewAuthenticator(routerSecret), svc)

	s.tokens = map[string]string{}
	for _, role := range []string{model.RoleAdmin, model.RoleFinance, model.RoleUser} {
		name := strings.ToLower(role)
		_, err := s.users.Register(context.Background(), service.RegisterRequest{Username: name, Password: "secret1", Role: role})
		s.Require().NoError(err)
		token, err := s.users.Login(context.Background(), service.LoginRequest{Username: name, Password: "secret1"})
		s.Require().NoError(err)
		s.tokens[role] = token.Token
	}
}

func (s *RouterSuite) do(method, path, role string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", "Bearer "+s.tokens[role])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *RouterSuite) decode(env envelope, into interface{}) {
	s.Require().NoError(json.Unmarshal(env.Data, into))
}

func (s *RouterSuite) createRequest(number string) service.RequestResponse {
	w, env := s.do(http.MethodPost, "/api/requests", model.RoleAdmin, gin.H{
		"request_number": number,
		"request_code":   "RC-1",
		"type":           "IMPORT",
		"amount":         "500",
	})
	s.Require().Equal(http.StatusCreated, w.Code, env.Error)
	var created service.RequestResponse
	s.decode(env, &created)
	return created
}

func (s *RouterSuite) createMember(path, matricule string) uuid.UUID {
	w, env := s.do(http.MethodPost, path, model.RoleAdmin, gin.H{
		"matricule":  matricule,
		"first_name": "Sam",
		"last_name":  "Lee",
		"cin":        "CIN-" + matricule,
	})
	s.Require().Equal(http.StatusCreated, w.Code, env.Error)
	var member service.EmployeeResponse
	s.decode(env, &member)
	return member.ID
}

func (s *RouterSuite) TestHealth() {
	w, _ := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"OK"}`, w.Body.String())
}

func (s *RouterSuite) TestAuthFlow() {
	w, _ := s.do(http.MethodPost, "/api/auth/register", "", gin.H{"username": "newbie", "password": "secret1"})
	s.Equal(http.StatusCreated, w.Code)

	w, env := s.do(http.MethodPost, "/api/auth/register", "", gin.H{"username": "newbie", "password": "secret1"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Username already exists: newbie", env.Error)

	w, env = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "newbie", "password": "wrong-password"})
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(service.ErrInvalidCredentials.Error(), env.Error)

	w, env = s.do(http.MethodPost, "/api/auth/login", "", gin.H{"username": "newbie"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request payload", env.Error)

	w, env = s.do(http.MethodGet, "/api/auth/me", model.RoleFinance, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var me service.UserResponse
	s.decode(env, &me)
	s.Equal("finance", me.Username)
	s.Equal(model.RoleFinance, me.Role)

	w, _ = s.do(http.MethodGet, "/api/auth/me", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *RouterSuite) TestRequestErrorsMapToStatus() {
	w, env := s.do(http.MethodGet, "/api/requests/"+uuid.NewString(), model.RoleUser, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(env.Error, "Request not found")

	w, env = s.do(http.MethodGet, "/api/requests/not-a-uuid", model.RoleUser, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request id: not-a-uuid", env.Error)

	w, _ = s.do(http.MethodPost, "/api/requests", model.RoleUser, gin.H{"request_number": "REQ-1"})
	s.Equal(http.StatusForbidden, w.Code)

	w, env = s.do(http.MethodPost, "/api/requests", model.RoleAdmin, gin.H{"request_number": "REQ-1"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Request code is required", env.Error)
}

func (s *RouterSuite) TestListRequestsIsPaged() {
	for _, number := range []string{"REQ-1", "REQ-2", "REQ-3"} {
		s.createRequest(number)
	}

	w, env := s.do(http.MethodGet, "/api/requests?page=2&limit=2", model.RoleUser, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NotNil(env.Meta)
	s.Equal(2, env.Meta.Page)
	s.Equal(2, env.Meta.Limit)
	s.EqualValues(3, env.Meta.Total)
	s.EqualValues(2, env.Meta.TotalPages)

	var page []service.RequestResponse
	s.decode(env, &page)
	s.Len(page, 1)
}

func (s *RouterSuite) TestFundsLifecycle() {
	req := s.createRequest("REQ-F")
	entry := gin.H{"request_id": req.ID, "amount": "150", "description": "deposit"}

	w, env := s.do(http.MethodPost, "/api/funds/entry", model.RoleFinance, entry)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Cannot register fund entry for unconfirmed request", env.Error)

	w, _ = s.do(http.MethodPost, "/api/funds/entry", model.RoleUser, entry)
	s.Equal(http.StatusForbidden, w.Code)

	driverID := s.createMember("/api/drivers", "D-1")
	transporterID := s.createMember("/api/transporters", "T-1")
	w, env = s.do(http.MethodPut, "/api/requests/"+req.ID.String()+"/assign-driver/"+driverID.String(), model.RoleAdmin, nil)
	s.Require().Equal(http.StatusOK, w.Code, env.Error)
	w, env = s.do(http.MethodPut, "/api/requests/"+req.ID.String()+"/assign-transporter/"+transporterID.String(), model.RoleAdmin, nil)
	s.Require().Equal(http.StatusOK, w.Code, env.Error)
	w, env = s.do(http.MethodPut, "/api/requests/"+req.ID.String()+"/confirm", model.RoleAdmin, nil)
	s.Require().Equal(http.StatusOK, w.Code, env.Error)

	w, env = s.do(http.MethodPost, "/api/funds/entry", model.RoleFinance, entry)
	s.Require().Equal(http.StatusCreated, w.Code, env.Error)
	var txn service.TransactionResponse
	s.decode(env, &txn)
	s.Equal(model.TransactionEntry, txn.Type)
	s.Equal(model.TransactionPending, txn.Status)
	s.Equal("REQ-F", txn.RequestNumber)

	w, env = s.do(http.MethodPut, "/api/funds/transactions/"+txn.ID.String()+"/confirm", model.RoleFinance, nil)
	s.Require().Equal(http.StatusOK, w.Code, env.Error)
	s.decode(env, &txn)
	s.Equal(model.TransactionConfirmed, txn.Status)
	s.Equal("finance", txn.ConfirmedBy)

	w, env = s.do(http.MethodPut, "/api/funds/transactions/"+txn.ID.String()+"/reject", model.RoleFinance, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Cannot reject a confirmed transaction", env.Error)

	w, env = s.do(http.MethodGet, "/api/funds/reports/request/"+req.ID.String(), model.RoleFinance, nil)
	s.Require().Equal(http.StatusOK, w.Code, env.Error)
	var report service.TransactionReportResponse
	s.decode(env, &report)
	s.True(report.Balance.Equal(decimal.NewFromInt(150)), report.Balance.String())
	s.Equal(1, report.ConfirmedTransactions)
	s.Nil(report.FromDate)

	w, env = s.do(http.MethodGet, "/api/funds/transactions/date-range?fromDate=2024-03-02&toDate=2024-03-01", model.RoleUser, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("From date cannot be after to date", env.Error)
}

func (s *RouterSuite) TestMetricsEndpoint() {
	s.createRequest("REQ-M")

	w, _ := s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "cargofunds_requests_created_total 1")
}
