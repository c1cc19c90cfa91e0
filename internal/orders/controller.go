package orders

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tixly/internal/shared/utils/response"
)

type Controller interface {
	CreateOrder(c *gin.Context)
	GetOrder(c *gin.Context)
	ListOrders(c *gin.Context)
	UpdateOrderStatus(c *gin.Context)
	UserOrders(c *gin.Context)
	EventOrders(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	detail, err := ctrl.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", detail)
}

func (ctrl *controller) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID", err)
		return
	}

	detail, err := ctrl.service.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", detail)
}

func (ctrl *controller) ListOrders(c *gin.Context) {
	var query OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	orders, total, err := ctrl.service.ListOrders(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", response.Paginated{
		Items:      orders,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID", err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	order, err := ctrl.service.UpdateOrderStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

func (ctrl *controller) UserOrders(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID", err)
		return
	}

	var query OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	orders, total, err := ctrl.service.UserOrders(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User orders retrieved successfully", response.Paginated{
		Items:      orders,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) EventOrders(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID", err)
		return
	}

	var query OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	orders, total, err := ctrl.service.EventOrders(c.Request.Context(), eventID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event orders retrieved successfully", response.Paginated{
		Items:      orders,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}
