package withdrawals

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tixly/internal/shared/middleware"
	"tixly/internal/shared/utils/response"
)

type Controller interface {
	CreateWithdrawal(c *gin.Context)
	GetWithdrawal(c *gin.Context)
	ListWithdrawals(c *gin.Context)
	VendorWithdrawals(c *gin.Context)
	VendorStats(c *gin.Context)
	UpdateWithdrawalStatus(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateWithdrawal(c *gin.Context) {
	var req CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	withdrawal, err := ctrl.service.CreateWithdrawal(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Withdrawal request created successfully", withdrawal)
}

func (ctrl *controller) GetWithdrawal(c *gin.Context) {
	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid withdrawal ID", err)
		return
	}

	withdrawal, err := ctrl.service.GetWithdrawal(c.Request.Context(), withdrawalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Withdrawal retrieved successfully", withdrawal)
}

func (ctrl *controller) ListWithdrawals(c *gin.Context) {
	var query WithdrawalListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	withdrawals, total, err := ctrl.service.ListWithdrawals(c.Request.Context(), middleware.ActorFrom(c), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Withdrawals retrieved successfully", response.Paginated{
		Items:      withdrawals,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) VendorWithdrawals(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	var query WithdrawalListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	withdrawals, total, err := ctrl.service.VendorWithdrawals(c.Request.Context(), middleware.ActorFrom(c), vendorID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor withdrawals retrieved successfully", response.Paginated{
		Items:      withdrawals,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) VendorStats(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	stats, err := ctrl.service.VendorStats(c.Request.Context(), middleware.ActorFrom(c), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Withdrawal stats retrieved successfully", stats)
}

func (ctrl *controller) UpdateWithdrawalStatus(c *gin.Context) {
	withdrawalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid withdrawal ID", err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	withdrawal, err := ctrl.service.UpdateWithdrawalStatus(c.Request.Context(), middleware.ActorFrom(c), withdrawalID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Withdrawal status updated successfully", withdrawal)
}
