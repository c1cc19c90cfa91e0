package events

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tixly/internal/shared/middleware"
	"tixly/internal/shared/utils/response"
)

type Controller interface {
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	ListEvents(c *gin.Context)
	SearchEvents(c *gin.Context)
	UpdateEvent(c *gin.Context)
	UpdateEventStatus(c *gin.Context)
	DeleteEvent(c *gin.Context)
	VendorEvents(c *gin.Context)
	VendorStats(c *gin.Context)
	VendorEarnings(c *gin.Context)
	SalesAnalysis(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	detail, err := ctrl.service.CreateEvent(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Event created successfully", detail)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID", err)
		return
	}

	detail, err := ctrl.service.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event retrieved successfully", detail)
}

func (ctrl *controller) ListEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	events, total, err := ctrl.service.ListEvents(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Events retrieved successfully", response.Paginated{
		Items:      events,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) SearchEvents(c *gin.Context) {
	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	events, total, err := ctrl.service.SearchEvents(c.Request.Context(), c.Query("q"), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Events retrieved successfully", response.Paginated{
		Items:      events,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID", err)
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	event, err := ctrl.service.UpdateEvent(c.Request.Context(), middleware.ActorFrom(c), eventID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event updated successfully", event)
}

func (ctrl *controller) UpdateEventStatus(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID", err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	event, err := ctrl.service.UpdateEventStatus(c.Request.Context(), middleware.ActorFrom(c), eventID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event status updated successfully", event)
}

func (ctrl *controller) DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID", err)
		return
	}

	if err := ctrl.service.DeleteEvent(c.Request.Context(), middleware.ActorFrom(c), eventID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event deleted successfully", nil)
}

// vendorIDFrom resolves the target vendor from the path parameter, falling
// back to the vendor_id query parameter for the static dashboard routes.
func vendorIDFrom(c *gin.Context) (uuid.UUID, error) {
	raw := c.Param("vendorId")
	if raw == "" {
		raw = c.Query("vendor_id")
	}
	return uuid.Parse(raw)
}

func (ctrl *controller) VendorEvents(c *gin.Context) {
	vendorID, err := vendorIDFrom(c)
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	var query EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	events, total, err := ctrl.service.VendorEvents(c.Request.Context(), middleware.ActorFrom(c), vendorID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor events retrieved successfully", response.Paginated{
		Items:      events,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) VendorStats(c *gin.Context) {
	vendorID, err := vendorIDFrom(c)
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	stats, err := ctrl.service.VendorStats(c.Request.Context(), middleware.ActorFrom(c), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor stats retrieved successfully", stats)
}

func (ctrl *controller) VendorEarnings(c *gin.Context) {
	vendorID, err := vendorIDFrom(c)
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	earnings, err := ctrl.service.VendorEarnings(c.Request.Context(), middleware.ActorFrom(c), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor earnings retrieved successfully", earnings)
}

func (ctrl *controller) SalesAnalysis(c *gin.Context) {
	vendorID, err := vendorIDFrom(c)
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	sales, err := ctrl.service.SalesAnalysis(c.Request.Context(), middleware.ActorFrom(c), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales analysis retrieved successfully", sales)
}
