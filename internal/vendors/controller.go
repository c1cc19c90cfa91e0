package vendors

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tixly/internal/shared/middleware"
	"tixly/internal/shared/utils/response"
)

type Controller interface {
	CreateVendor(c *gin.Context)
	GetVendor(c *gin.Context)
	ListVendors(c *gin.Context)
	SearchVendors(c *gin.Context)
	UpdateVendor(c *gin.Context)
	ApproveVendor(c *gin.Context)
	SuspendVendor(c *gin.Context)
	UpdateVendorStatus(c *gin.Context)
	Stats(c *gin.Context)
	WithEvents(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateVendor(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	vendor, err := ctrl.service.CreateVendor(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vendor created successfully", vendor)
}

func (ctrl *controller) GetVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	vendor, err := ctrl.service.GetVendor(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor retrieved successfully", vendor)
}

func (ctrl *controller) ListVendors(c *gin.Context) {
	var query VendorListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	vendors, total, err := ctrl.service.ListVendors(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendors retrieved successfully", response.Paginated{
		Items:      vendors,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) SearchVendors(c *gin.Context) {
	var query VendorListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}
	query.Normalize()

	vendors, total, err := ctrl.service.SearchVendors(c.Request.Context(), c.Query("q"), query)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendors retrieved successfully", response.Paginated{
		Items:      vendors,
		Page:       query.Page,
		Limit:      query.Limit,
		Total:      total,
		TotalPages: query.TotalPages(total),
	})
}

func (ctrl *controller) UpdateVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	var req UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	vendor, err := ctrl.service.UpdateVendor(c.Request.Context(), middleware.ActorFrom(c), vendorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor updated successfully", vendor)
}

func (ctrl *controller) ApproveVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	vendor, err := ctrl.service.ApproveVendor(c.Request.Context(), middleware.ActorFrom(c), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor approved successfully", vendor)
}

func (ctrl *controller) SuspendVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	vendor, err := ctrl.service.SuspendVendor(c.Request.Context(), middleware.ActorFrom(c), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor suspended successfully", vendor)
}

func (ctrl *controller) UpdateVendorStatus(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	vendor, err := ctrl.service.UpdateVendorStatus(c.Request.Context(), middleware.ActorFrom(c), vendorID, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor status updated successfully", vendor)
}

func (ctrl *controller) Stats(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	stats, err := ctrl.service.Stats(c.Request.Context(), middleware.ActorFrom(c), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor stats retrieved successfully", stats)
}

func (ctrl *controller) WithEvents(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID", err)
		return
	}

	combined, err := ctrl.service.WithEvents(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor with events retrieved successfully", combined)
}
