package handler

import (
	"net/http"

	"cargofunds/internal/middleware"
	"cargofunds/internal/model"
	"cargofunds/internal/service"
	"cargofunds/pkg/pagination"
	"cargofunds/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
	auth           *middleware.Authenticator
}

func NewRequestHandler(requestService service.RequestService, auth *middleware.Authenticator) *RequestHandler {
	return &RequestHandler{requestService: requestService, auth: auth}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	readers := h.auth.RequireRole()
	writers := h.auth.RequireRole(model.RoleAdmin, model.RoleManager)

	requests := router.Group("/api/requests")
	{
		requests.GET("", readers, h.ListRequests)
		requests.GET("/:id", readers, h.GetRequest)
		requests.GET("/number/:number", readers, h.GetRequestByNumber)
		requests.GET("/status/:status", readers, h.ListRequestsByStatus)
		requests.GET("/type/:type", readers, h.ListRequestsByType)
		requests.GET("/date/:date", readers, h.ListRequestsByDate)
		requests.POST("", writers, h.CreateRequest)
		requests.PUT("/:id", writers, h.UpdateRequest)
		requests.DELETE("/:id", h.auth.RequireRole(model.RoleAdmin), h.DeleteRequest)
		requests.PUT("/:id/assign-driver/:driverId", writers, h.AssignDriver)
		requests.PUT("/:id/assign-transporter/:transporterId", writers, h.AssignTransporter)
		requests.PUT("/:id/confirm", writers, h.ConfirmRequest)
		requests.PUT("/:id/status/:status", writers, h.UpdateRequestStatus)
	}
}

// CreateRequest registers a new request on behalf of the caller
// @Summary      Create request
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.RequestPayload  true  "Request payload"
// @Success      201  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.RequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.requestService.CreateRequest(c.Request.Context(), req, middleware.CallerIdentity(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// UpdateRequest
// @Summary      Update request
// @Tags         requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                  true  "Request ID"
// @Param        payload  body  service.RequestPayload  true  "Request payload"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id} [put]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var req service.RequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}

	result, err := h.requestService.UpdateRequest(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      Delete request
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Request ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.requestService.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Request deleted"}))
}

// @Summary      Get request
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Request ID"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	result, err := h.requestService.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      Get request by number
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        number  path  string  true  "Request number"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/requests/number/{number} [get]
func (h *RequestHandler) GetRequestByNumber(c *gin.Context) {
	result, err := h.requestService.GetRequestByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// ListRequests returns paginated requests, newest request date first
// @Summary      List requests
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response
// @Router       /api/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	page := pagination.Parse(c)
	results, total, err := h.requestService.ListRequests(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, results, page.Page, page.Limit, total))
}

// @Summary      List requests by status
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        status  path  string  true  "Request status"
// @Success      200  {object}  response.Response{data=[]service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/requests/status/{status} [get]
func (h *RequestHandler) ListRequestsByStatus(c *gin.Context) {
	results, err := h.requestService.ListRequestsByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}

// @Summary      List requests by type
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        type  path  string  true  "Request type"
// @Success      200  {object}  response.Response{data=[]service.RequestResponse}
// @Router       /api/requests/type/{type} [get]
func (h *RequestHandler) ListRequestsByType(c *gin.Context) {
	results, err := h.requestService.ListRequestsByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}

// ListRequestsByDate
// @Summary      List requests for a calendar day
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        date  path  string  true  "Date (YYYY-MM-DD)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/requests/date/{date} [get]
func (h *RequestHandler) ListRequestsByDate(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	results, err := h.requestService.ListRequestsByDate(c.Request.Context(), *date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, results))
}

// @Summary      Set request driver
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Request ID"
// @Param        driverId  path  string  true  "Driver ID"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id}/assign-driver/{driverId} [put]
func (h *RequestHandler) AssignDriver(c *gin.Context) {
	result, err := h.requestService.AssignDriver(c.Request.Context(), c.Param("id"), c.Param("driverId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      Set request transporter
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Request ID"
// @Param        transporterId  path  string  true  "Transporter ID"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id}/assign-transporter/{transporterId} [put]
func (h *RequestHandler) AssignTransporter(c *gin.Context) {
	result, err := h.requestService.AssignTransporter(c.Request.Context(), c.Param("id"), c.Param("transporterId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// ConfirmRequest confirms a request that has both a driver and a transporter
// @Summary      Confirm request
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Request ID"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id}/confirm [put]
func (h *RequestHandler) ConfirmRequest(c *gin.Context) {
	result, err := h.requestService.ConfirmRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// @Summary      Update request status
// @Tags         requests
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Request ID"
// @Param        status  path  string  true  "New status"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id}/status/{status} [put]
func (h *RequestHandler) UpdateRequestStatus(c *gin.Context) {
	result, err := h.requestService.UpdateRequestStatus(c.Request.Context(), c.Param("id"), c.Param("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
