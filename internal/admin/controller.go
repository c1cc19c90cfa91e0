package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tixly/internal/events"
	"tixly/internal/payments"
	"tixly/internal/shared/middleware"
	"tixly/internal/shared/utils/pagination"
	"tixly/internal/shared/utils/response"
	"tixly/internal/users"
	"tixly/internal/vendors"
	"tixly/internal/withdrawals"
)

type Controller interface {
	Dashboard(c *gin.Context)
	Analytics(c *gin.Context)
	ListUsers(c *gin.Context)
	ModerateUser(c *gin.Context)
	ListVendors(c *gin.Context)
	ModerateVendor(c *gin.Context)
	ListEvents(c *gin.Context)
	ModerateEvent(c *gin.Context)
	ListTickets(c *gin.Context)
	ListPayments(c *gin.Context)
	FinanceRecords(c *gin.Context)
	ListWithdrawals(c *gin.Context)
	ModerateWithdrawal(c *gin.Context)
	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
	Statistics(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (ctrl *controller) Dashboard(c *gin.Context) {
	stats, err := ctrl.service.DashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

func (ctrl *controller) Analytics(c *gin.Context) {
	analytics, err := ctrl.service.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics retrieved successfully", analytics)
}

func (ctrl *controller) ListUsers(c *gin.Context) {
	var query users.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	items, total, err := ctrl.service.ListUsers(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", response.Paginated{
		Items:      items,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) ModerateUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	user, err := ctrl.service.ModerateUser(c.Request.Context(), userID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User status updated successfully", user)
}

func (ctrl *controller) ListVendors(c *gin.Context) {
	var query vendors.VendorListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	items, total, err := ctrl.service.ListVendors(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendors retrieved successfully", response.Paginated{
		Items:      items,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) ModerateVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	vendor, err := ctrl.service.ModerateVendor(c.Request.Context(), middleware.ActorFrom(c), vendorID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor status updated successfully", vendor)
}

func (ctrl *controller) ListEvents(c *gin.Context) {
	var query events.EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	items, total, err := ctrl.service.ListEvents(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Events retrieved successfully", response.Paginated{
		Items:      items,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) ModerateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event ID", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	event, err := ctrl.service.ModerateEvent(c.Request.Context(), middleware.ActorFrom(c), eventID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Event status updated successfully", event)
}

func (ctrl *controller) ListTickets(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	params.Normalize()

	items, total, err := ctrl.service.ListTickets(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tickets retrieved successfully", response.Paginated{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	})
}

func (ctrl *controller) ListPayments(c *gin.Context) {
	var query payments.PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	items, total, err := ctrl.service.ListPayments(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", response.Paginated{
		Items:      items,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) FinanceRecords(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	params.Normalize()

	items, total, err := ctrl.service.FinanceRecords(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Finance records retrieved successfully", response.Paginated{
		Items:      items,
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: params.TotalPages(total),
	})
}

func (ctrl *controller) ListWithdrawals(c *gin.Context) {
	var query withdrawals.WithdrawalListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	items, total, err := ctrl.service.ListWithdrawals(c.Request.Context(), middleware.ActorFrom(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Withdrawals retrieved successfully", response.Paginated{
		Items:      items,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) ModerateWithdrawal(c *gin.Context) {
	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid withdrawal ID", err)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	withdrawal, err := ctrl.service.ModerateWithdrawal(c.Request.Context(), middleware.ActorFrom(c), withdrawalID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Withdrawal status updated successfully", withdrawal)
}

func (ctrl *controller) GetSettings(c *gin.Context) {
	settings, err := ctrl.service.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

func (ctrl *controller) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	settings, err := ctrl.service.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}

func (ctrl *controller) Statistics(c *gin.Context) {
	stats, err := ctrl.service.Statistics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "System statistics retrieved successfully", stats)
}
