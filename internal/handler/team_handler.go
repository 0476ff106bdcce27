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

type TeamHandler struct {
	teamService service.TeamService
	auth        *middleware.Authenticator
}

func NewTeamHandler(teamService service.TeamService, auth *middleware.Authenticator) *TeamHandler {
	return &TeamHandler{teamService: teamService, auth: auth}
}

func (h *TeamHandler) RegisterRoutes(router *gin.RouterGroup) {
	readers := h.auth.RequireRole()
	writers := h.auth.RequireRole(model.RoleAdmin, model.RoleManager)
	admins := h.auth.RequireRole(model.RoleAdmin)

	drivers := router.Group("/api/drivers")
	{
		drivers.GET("", readers, h.ListDrivers)
		drivers.GET("/available", readers, h.ListAvailableDrivers)
		drivers.GET("/matricule/:matricule", readers, h.GetDriverByMatricule)
		drivers.GET("/cin/:cin", readers, h.GetDriverByCIN)
		drivers.GET("/:id", readers, h.GetDriver)
		drivers.POST("", writers, h.CreateDriver)
		drivers.PUT("/:id", writers, h.UpdateDriver)
		drivers.PUT("/:id/toggle-availability", writers, h.ToggleDriverAvailability)
		drivers.DELETE("/:id", admins, h.DeleteDriver)
	}

	transporters := router.Group("/api/transporters")
	{
		transporters.GET("", readers, h.ListTransporters)
		transporters.GET("/available", readers, h.ListAvailableTransporters)
		transporters.GET("/matricule/:matricule", readers, h.GetTransporterByMatricule)
		transporters.GET("/cin/:cin", readers, h.GetTransporterByCIN)
		transporters.GET("/:id", readers, h.GetTransporter)
		transporters.POST("", writers, h.CreateTransporter)
		transporters.PUT("/:id", writers, h.UpdateTransporter)
		transporters.PUT("/:id/toggle-availability", writers, h.ToggleTransporterAvailability)
		transporters.DELETE("/:id", admins, h.DeleteTransporter)
	}

	teams := router.Group("/api/teams/requests/:requestId")
	{
		teams.GET("/drivers", readers, h.GetDriversByRequest)
		teams.GET("/transporters", readers, h.GetTransportersByRequest)
		teams.PUT("/assign-driver/:memberId", writers, h.AssignDriverToRequest)
		teams.DELETE("/unassign-driver/:memberId", writers, h.UnassignDriverFromRequest)
		teams.PUT("/assign-transporter/:memberId", writers, h.AssignTransporterToRequest)
		teams.DELETE("/unassign-transporter/:memberId", writers, h.UnassignTransporterFromRequest)
	}
}

// reply writes result with status, or the mapped error.
func reply(c *gin.Context, status int, result interface{}, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, response.Success(status, result))
}

// --- Drivers ---

// CreateDriver
// @Summary      Create driver
// @Tags         drivers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.DriverPayload  true  "Driver payload"
// @Success      201  {object}  response.Response{data=service.DriverResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/drivers [post]
func (h *TeamHandler) CreateDriver(c *gin.Context) {
	var req service.DriverPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	result, err := h.teamService.CreateDriver(c.Request.Context(), req)
	reply(c, http.StatusCreated, result, err)
}

// @Summary      Update driver
// @Tags         drivers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Driver ID"
// @Param        payload  body  service.DriverPayload  true  "Driver payload"
// @Success      200  {object}  response.Response{data=service.DriverResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/drivers/{id} [put]
func (h *TeamHandler) UpdateDriver(c *gin.Context) {
	var req service.DriverPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	result, err := h.teamService.UpdateDriver(c.Request.Context(), c.Param("id"), req)
	reply(c, http.StatusOK, result, err)
}

// @Summary      Delete driver
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Driver ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/drivers/{id} [delete]
func (h *TeamHandler) DeleteDriver(c *gin.Context) {
	err := h.teamService.DeleteDriver(c.Request.Context(), c.Param("id"))
	reply(c, http.StatusOK, gin.H{"message": "Driver deleted"}, err)
}

// @Summary      Get driver
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Driver ID"
// @Success      200  {object}  response.Response{data=service.DriverResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/drivers/{id} [get]
func (h *TeamHandler) GetDriver(c *gin.Context) {
	result, err := h.teamService.GetDriver(c.Request.Context(), c.Param("id"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      Get driver by matricule
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Param        matricule  path  string  true  "Matricule"
// @Success      200  {object}  response.Response{data=service.DriverResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/drivers/matricule/{matricule} [get]
func (h *TeamHandler) GetDriverByMatricule(c *gin.Context) {
	result, err := h.teamService.GetDriverByMatricule(c.Request.Context(), c.Param("matricule"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      Get driver by CIN
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Param        cin  path  string  true  "CIN"
// @Success      200  {object}  response.Response{data=service.DriverResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/drivers/cin/{cin} [get]
func (h *TeamHandler) GetDriverByCIN(c *gin.Context) {
	result, err := h.teamService.GetDriverByCIN(c.Request.Context(), c.Param("cin"))
	reply(c, http.StatusOK, result, err)
}

// ListDrivers returns paginated drivers
// @Summary      List drivers
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response
// @Router       /api/drivers [get]
func (h *TeamHandler) ListDrivers(c *gin.Context) {
	page := pagination.Parse(c)
	results, total, err := h.teamService.ListDrivers(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, results, page.Page, page.Limit, total))
}

// @Summary      List available drivers
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.DriverResponse}
// @Router       /api/drivers/available [get]
func (h *TeamHandler) ListAvailableDrivers(c *gin.Context) {
	results, err := h.teamService.ListAvailableDrivers(c.Request.Context())
	reply(c, http.StatusOK, results, err)
}

// ToggleDriverAvailability flips the driver's availability flag
// @Summary      Toggle driver availability
// @Tags         drivers
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Driver ID"
// @Success      200  {object}  response.Response{data=service.DriverResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/drivers/{id}/toggle-availability [put]
func (h *TeamHandler) ToggleDriverAvailability(c *gin.Context) {
	result, err := h.teamService.ToggleDriverAvailability(c.Request.Context(), c.Param("id"))
	reply(c, http.StatusOK, result, err)
}

// --- Transporters ---

// @Summary      Create transporter
// @Tags         transporters
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.TransporterPayload  true  "Transporter payload"
// @Success      201  {object}  response.Response{data=service.TransporterResponse}
// @Failure      400  {object}  response.Response
// @Router       /api/transporters [post]
func (h *TeamHandler) CreateTransporter(c *gin.Context) {
	var req service.TransporterPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	result, err := h.teamService.CreateTransporter(c.Request.Context(), req)
	reply(c, http.StatusCreated, result, err)
}

// @Summary      Update transporter
// @Tags         transporters
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Transporter ID"
// @Param        payload  body  service.TransporterPayload  true  "Transporter payload"
// @Success      200  {object}  response.Response{data=service.TransporterResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/transporters/{id} [put]
func (h *TeamHandler) UpdateTransporter(c *gin.Context) {
	var req service.TransporterPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		badPayload(c, err)
		return
	}
	result, err := h.teamService.UpdateTransporter(c.Request.Context(), c.Param("id"), req)
	reply(c, http.StatusOK, result, err)
}

// @Summary      Delete transporter
// @Tags         transporters
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Transporter ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/transporters/{id} [delete]
func (h *TeamHandler) DeleteTransporter(c *gin.Context) {
	err := h.teamService.DeleteTransporter(c.Request.Context(), c.Param("id"))
	reply(c, http.StatusOK, gin.H{"message": "Transporter deleted"}, err)
}

// @Summary      Get transporter
// @Tags         transporters
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Transporter ID"
// @Success      200  {object}  response.Response{data=service.TransporterResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/transporters/{id} [get]
func (h *TeamHandler) GetTransporter(c *gin.Context) {
	result, err := h.teamService.GetTransporter(c.Request.Context(), c.Param("id"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      Get transporter by matricule
// @Tags         transporters
// @Security     BearerAuth
// @Produce      json
// @Param        matricule  path  string  true  "Matricule"
// @Success      200  {object}  response.Response{data=service.TransporterResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/transporters/matricule/{matricule} [get]
func (h *TeamHandler) GetTransporterByMatricule(c *gin.Context) {
	result, err := h.teamService.GetTransporterByMatricule(c.Request.Context(), c.Param("matricule"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      Get transporter by CIN
// @Tags         transporters
// @Security     BearerAuth
// @Produce      json
// @Param        cin  path  string  true  "CIN"
// @Success      200  {object}  response.Response{data=service.TransporterResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/transporters/cin/{cin} [get]
func (h *TeamHandler) GetTransporterByCIN(c *gin.Context) {
	result, err := h.teamService.GetTransporterByCIN(c.Request.Context(), c.Param("cin"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      List transporters
// @Tags         transporters
// @Security     BearerAuth
// @Produce      json
// @Param        page  query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response
// @Router       /api/transporters [get]
func (h *TeamHandler) ListTransporters(c *gin.Context) {
	page := pagination.Parse(c)
	results, total, err := h.teamService.ListTransporters(c.Request.Context(), page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, results, page.Page, page.Limit, total))
}

// @Summary      List available transporters
// @Tags         transporters
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]service.TransporterResponse}
// @Router       /api/transporters/available [get]
func (h *TeamHandler) ListAvailableTransporters(c *gin.Context) {
	results, err := h.teamService.ListAvailableTransporters(c.Request.Context())
	reply(c, http.StatusOK, results, err)
}

// @Summary      Toggle transporter availability
// @Tags         transporters
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Transporter ID"
// @Success      200  {object}  response.Response{data=service.TransporterResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/transporters/{id}/toggle-availability [put]
func (h *TeamHandler) ToggleTransporterAvailability(c *gin.Context) {
	result, err := h.teamService.ToggleTransporterAvailability(c.Request.Context(), c.Param("id"))
	reply(c, http.StatusOK, result, err)
}

// --- Assignments ---

// AssignDriverToRequest
// @Summary      Assign driver to request
// @Description  Fails if the driver is unavailable or the request already has a driver
// @Tags         teams
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path  string  true  "Request ID"
// @Param        memberId   path  string  true  "Driver ID"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/teams/requests/{requestId}/assign-driver/{memberId} [put]
func (h *TeamHandler) AssignDriverToRequest(c *gin.Context) {
	result, err := h.teamService.AssignDriverToRequest(c.Request.Context(), c.Param("memberId"), c.Param("requestId"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      Unassign driver from request
// @Tags         teams
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path  string  true  "Request ID"
// @Param        memberId  path  string  true  "Driver ID"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/teams/requests/{requestId}/unassign-driver/{memberId} [delete]
func (h *TeamHandler) UnassignDriverFromRequest(c *gin.Context) {
	result, err := h.teamService.UnassignDriverFromRequest(c.Request.Context(), c.Param("memberId"), c.Param("requestId"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      Drivers assigned to a request
// @Tags         teams
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path  string  true  "Request ID"
// @Success      200  {object}  response.Response{data=[]service.DriverResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/teams/requests/{requestId}/drivers [get]
func (h *TeamHandler) GetDriversByRequest(c *gin.Context) {
	results, err := h.teamService.GetDriversByRequest(c.Request.Context(), c.Param("requestId"))
	reply(c, http.StatusOK, results, err)
}

// @Summary      Assign transporter to request
// @Tags         teams
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path  string  true  "Request ID"
// @Param        memberId  path  string  true  "Transporter ID"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/teams/requests/{requestId}/assign-transporter/{memberId} [put]
func (h *TeamHandler) AssignTransporterToRequest(c *gin.Context) {
	result, err := h.teamService.AssignTransporterToRequest(c.Request.Context(), c.Param("memberId"), c.Param("requestId"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      Unassign transporter from request
// @Tags         teams
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path  string  true  "Request ID"
// @Param        memberId  path  string  true  "Transporter ID"
// @Success      200  {object}  response.Response{data=service.RequestResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/teams/requests/{requestId}/unassign-transporter/{memberId} [delete]
func (h *TeamHandler) UnassignTransporterFromRequest(c *gin.Context) {
	result, err := h.teamService.UnassignTransporterFromRequest(c.Request.Context(), c.Param("memberId"), c.Param("requestId"))
	reply(c, http.StatusOK, result, err)
}

// @Summary      Transporters assigned to a request
// @Tags         teams
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path  string  true  "Request ID"
// @Success      200  {object}  response.Response{data=[]service.TransporterResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/teams/requests/{requestId}/transporters [get]
func (h *TeamHandler) GetTransportersByRequest(c *gin.Context) {
	results, err := h.teamService.GetTransportersByRequest(c.Request.Context(), c.Param("requestId"))
	reply(c, http.StatusOK, results, err)
}
