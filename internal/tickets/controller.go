package tickets

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tixly/internal/shared/middleware"
	"tixly/internal/shared/utils/response"
)

type Controller interface {
	CreateTicketType(c *gin.Context)
	GetEventTicketTypes(c *gin.Context)
	UpdateTicketType(c *gin.Context)
	DeleteTicketType(c *gin.Context)
	GetTicket(c *gin.Context)
	UpdateTicketStatus(c *gin.Context)
	UserTickets(c *gin.Context)
	VendorSoldTickets(c *gin.Context)
	VendorTicketStats(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateTicketType(c *gin.Context) {
	var req CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	// The event-scoped route carries the event in the path.
	if raw := c.Param("eventId"); raw != "" {
		req.EventID = raw
	}

	tier, err := ctrl.service.CreateTicketType(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ticket type created successfully", tier)
}

func (ctrl *controller) GetEventTicketTypes(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID", err)
		return
	}

	tiers, err := ctrl.service.GetTicketTypes(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket types retrieved successfully", tiers)
}

func (ctrl *controller) UpdateTicketType(c *gin.Context) {
	tierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket type ID", err)
		return
	}

	var req UpdateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	tier, err := ctrl.service.UpdateTicketType(c.Request.Context(), middleware.ActorFrom(c), tierID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket type updated successfully", tier)
}

func (ctrl *controller) DeleteTicketType(c *gin.Context) {
	tierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket type ID", err)
		return
	}

	if err := ctrl.service.DeleteTicketType(c.Request.Context(), middleware.ActorFrom(c), tierID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket type deleted successfully", nil)
}

func (ctrl *controller) GetTicket(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID", err)
		return
	}

	detail, err := ctrl.service.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket retrieved successfully", detail)
}

func (ctrl *controller) UpdateTicketStatus(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID", err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	detail, err := ctrl.service.UpdateTicketStatus(c.Request.Context(), middleware.ActorFrom(c), ticketID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket status updated successfully", detail)
}

func (ctrl *controller) UserTickets(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID", err)
		return
	}

	var query TicketListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	details, total, err := ctrl.service.UserTickets(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User tickets retrieved successfully", response.Paginated{
		Items:      details,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) VendorSoldTickets(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	var query TicketListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	details, total, err := ctrl.service.VendorSoldTickets(c.Request.Context(), middleware.ActorFrom(c), vendorID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sold tickets retrieved successfully", response.Paginated{
		Items:      details,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) VendorTicketStats(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	stats, err := ctrl.service.VendorTicketStats(c.Request.Context(), middleware.ActorFrom(c), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket stats retrieved successfully", stats)
}
