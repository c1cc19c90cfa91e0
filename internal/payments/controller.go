package payments

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tixly/internal/shared/middleware"
	"tixly/internal/shared/utils/response"
)

type Controller interface {
	CreatePayment(c *gin.Context)
	GetPayment(c *gin.Context)
	ListPayments(c *gin.Context)
	UpdatePaymentStatus(c *gin.Context)
	Stats(c *gin.Context)
	VendorEarnings(c *gin.Context)
	VendorStats(c *gin.Context)
	UserPayments(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	payment, err := ctrl.service.CreatePayment(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}

func (ctrl *controller) GetPayment(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID", err)
		return
	}

	payment, err := ctrl.service.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment retrieved successfully", payment)
}

func (ctrl *controller) ListPayments(c *gin.Context) {
	var query PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	payments, total, err := ctrl.service.ListPayments(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved successfully", response.Paginated{
		Items:      payments,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) UpdatePaymentStatus(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid payment ID", err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	payment, err := ctrl.service.UpdatePaymentStatus(c.Request.Context(), paymentID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment status updated successfully", payment)
}

func (ctrl *controller) Stats(c *gin.Context) {
	stats, err := ctrl.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment stats retrieved successfully", stats)
}

func (ctrl *controller) VendorEarnings(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("vendorId"))
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

	response.OK(c, "Vendor payment stats retrieved successfully", stats)
}

func (ctrl *controller) UserPayments(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID", err)
		return
	}

	var query PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	payments, total, err := ctrl.service.UserPayments(c.Request.Context(), userID, query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User payments retrieved successfully", response.Paginated{
		Items:      payments,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}
