package handler

import (
	"net/http"
	"time"

	"cargofunds/internal/middleware"
	"cargofunds/internal/model"
	"cargofunds/internal/service"
	"cargofunds/pkg/pagination"
	"cargofunds/pkg/response"

	"github.com/gin-gonic/gin"
)

type FundsHandler struct {
	fundsService service.FundsService
	auth         *middleware.Authenticator
}

func NewFundsHandler(fundsService service.FundsService, auth *middleware.Authenticator) *FundsHandler {
	return &FundsHandler{fundsService: fundsService, auth: auth}
}

func (h *FundsHandler) RegisterRoutes(router *gin.RouterGroup) {
	readers := h.auth.RequireRole()
	finance := h.auth.RequireRole(model.RoleAdmin, model.RoleFinance)
	reporters := h.auth.RequireRole(model.RoleAdmin, model.RoleFinance, model.RoleManager)

	funds := router.Group("/api/funds")
	{
		funds.POST("/entry", finance, h.RegisterFundEntry)
		funds.POST("/exit", finance, h.RegisterFundExit)

		funds.GET("/transactions", readers, h.ListTransactions)
		funds.GET("/transactions/:id", readers, h.GetTransaction)
		funds.GET("/transactions/reference/:reference", readers, h.GetTransactionByReference)
		funds.GET("/transactions/request/:requestId", readers, h.ListTransactionsByRequest)
		funds.GET("/transactions/request-number/:number", readers, h.ListTransactionsByRequestNumber)
		funds.GET("/transactions/type/:type", readers, h.ListTransactionsByType)
		funds.GET("/transactions/status/:status", readers, h.ListTransactionsByStatus)
		funds.GET("/transactions/date-range", readers, h.ListTransactionsByDateRange)
		funds.POST("/transactions", finance, h.CreateTransaction)
		funds.PUT("/transactions/:id", finance, h.UpdateTransaction)
		funds.DELETE("/transactions/:id", h.auth.RequireRole(model.RoleAdmin), h.DeleteTransaction)
		funds.PUT("/transactions/:id/confirm", finance, h.ConfirmTransaction)
		funds.PUT("/transactions/:id/reject", finance, h.RejectTransaction)

		funds.GET("/reports/date-range", reporters, h.GenerateReport)
		funds.GET("/reports/request/:requestId", reporters, h.GenerateRequestReport)
	}
}

// CreateTransaction records a PENDING transaction of either type
// @Summary      Create transaction
// @Tags         funds
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.TransactionPayload  true  "Transaction payload"
// @Success      201  {object}  response.Response{data=service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/transactions [post]
func (h *FundsHandler) CreateTransaction(c *gin.Context) {
	var req service.TransactionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.fundsService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// RegisterFundEntry
// @Summary      Register fund entry
// @Description  Records an ENTRY transaction. Refused when the request is explicitly unconfirmed.
// @Tags         funds
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.TransactionPayload  true  "Entry payload (type is ignored)"
// @Success      201  {object}  response.Response{data=service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/entry [post]
func (h *FundsHandler) RegisterFundEntry(c *gin.Context) {
	var req service.TransactionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.fundsService.RegisterFundEntry(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// @Summary      Register fund exit
// @Tags         funds
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.TransactionPayload  true  "Exit payload (type is ignored)"
// @Success      201  {object}  response.Response{data=service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/exit [post]
func (h *FundsHandler) RegisterFundExit(c *gin.Context) {
	var req service.TransactionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.fundsService.RegisterFundExit(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// @Summary      Update transaction
// @Tags         funds
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Transaction ID"
// @Param        payload  body  service.UpdateTransactionPayload  true  "Amount and description"
// @Success      200  {object}  response.Response{data=service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/transactions/{id} [put]
func (h *FundsHandler) UpdateTransaction(c *gin.Context) {
	var req service.UpdateTransactionPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.fundsService.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      Delete transaction
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Transaction ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/transactions/{id} [delete]
func (h *FundsHandler) DeleteTransaction(c *gin.Context) {
	if err := h.fundsService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Transaction deleted"}))
}

// ConfirmTransaction confirms a PENDING transaction as the caller
// @Summary      Confirm transaction
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Transaction ID"
// @Success      200  {object}  response.Response{data=service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/transactions/{id}/confirm [put]
func (h *FundsHandler) ConfirmTransaction(c *gin.Context) {
	result, err := h.fundsService.ConfirmTransaction(c.Request.Context(), c.Param("id"), middleware.CallerIdentity(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// RejectTransaction
// @Summary      Reject transaction
// @Tags         funds
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                            true   "Transaction ID"
// @Param        payload  body  service.RejectTransactionPayload  false  "Rejection reason"
// @Success      200  {object}  response.Response{data=service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/transactions/{id}/reject [put]
func (h *FundsHandler) RejectTransaction(c *gin.Context) {
	var req service.RejectTransactionPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badPayload(c, err)
			return
		}
	}

	result, err := h.fundsService.RejectTransaction(c.Request.Context(), c.Param("id"), middleware.CallerIdentity(c), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      Get transaction
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Transaction ID"
// @Success      200  {object}  response.Response{data=service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/transactions/{id} [get]
func (h *FundsHandler) GetTransaction(c *gin.Context) {
	result, err := h.fundsService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      Get transaction by reference number
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        reference  path  string  true  "Reference number"
// @Success      200  {object}  response.Response{data=service.TransactionResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/funds/transactions/reference/{reference} [get]
func (h *FundsHandler) GetTransactionByReference(c *gin.Context) {
	result, err := h.fundsService.GetTransactionByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      List transactions
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        page  query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response
// @Router       /api/funds/transactions [get]
func (h *FundsHandler) ListTransactions(c *gin.Context) {
	page := pagination.Parse(c)
	results, total, err := h.fundsService.ListTransactions(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, results, page.Page, page.Limit, total))
}

// @Summary      List transactions of a request
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path  string  true  "Request ID"
// @Success      200  {object}  response.Response{data=[]service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/funds/transactions/request/{requestId} [get]
func (h *FundsHandler) ListTransactionsByRequest(c *gin.Context) {
	results, err := h.fundsService.ListTransactionsByRequest(c.Request.Context(), c.Param("requestId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}

// @Summary      List transactions by request number
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        number  path  string  true  "Request number"
// @Success      200  {object}  response.Response{data=[]service.TransactionResponse}
// @Router       /api/funds/transactions/request-number/{number} [get]
func (h *FundsHandler) ListTransactionsByRequestNumber(c *gin.Context) {
	results, err := h.fundsService.ListTransactionsByRequestNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}

// @Summary      List transactions by type
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        type  path  string  true  "ENTRY or EXIT"
// @Success      200  {object}  response.Response{data=[]service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/funds/transactions/type/{type} [get]
func (h *FundsHandler) ListTransactionsByType(c *gin.Context) {
	results, err := h.fundsService.ListTransactionsByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}

// @Summary      List transactions by status
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        status  path  string  true  "PENDING, CONFIRMED or REJECTED"
// @Success      200  {object}  response.Response{data=[]service.TransactionResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/funds/transactions/status/{status} [get]
func (h *FundsHandler) ListTransactionsByStatus(c *gin.Context) {
	results, err := h.fundsService.ListTransactionsByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}

// ListTransactionsByDateRange
// @Summary      List transactions in a date range
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Param        fromDate  query  string  true  "From date (YYYY-MM-DD)"
// @Param        toDate    query  string  true  "To date (YYYY-MM-DD), inclusive"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/funds/transactions/date-range [get]
func (h *FundsHandler) ListTransactionsByDateRange(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		writeError(c, err)
		return
	}

	results, err := h.fundsService.ListTransactionsByDateRange(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}

// GenerateReport aggregates confirmed amounts over a date range
// @Summary      Transaction report by date range
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        fromDate  query  string  true  "From date (YYYY-MM-DD)"
// @Param        toDate    query  string  true  "To date (YYYY-MM-DD), inclusive"
// @Success      200  {object}  response.Response{data=service.TransactionReportResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/funds/reports/date-range [get]
func (h *FundsHandler) GenerateReport(c *gin.Context) {
	from, to, err := dateRange(c)
	if err != nil {
		writeError(c, err)
		return
	}

	report, err := h.fundsService.GenerateReport(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

// @Summary      Transaction report for a request
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path  string  true  "Request ID"
// @Success      200  {object}  response.Response{data=service.TransactionReportResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/funds/reports/request/{requestId} [get]
func (h *FundsHandler) GenerateRequestReport(c *gin.Context) {
	report, err := h.fundsService.GenerateRequestReport(c.Request.Context(), c.Param("requestId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}

func dateRange(c *gin.Context) (from, to *time.Time, err error) {
	if from, err = parseDate(c.Query("fromDate")); err != nil {
		return nil, nil, err
	}
	if to, err = parseDate(c.Query("toDate")); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
