package vendors

import (
	"context"

	"github.com/google/uuid"

	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
	"tixly/internal/shared/jsontypes"
)

type Service interface {
	CreateVendor(ctx context.Context, req CreateVendorRequest) (*Vendor, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*Vendor, error)
	ListVendors(ctx context.Context, query VendorListQuery) ([]Vendor, int64, error)
	SearchVendors(ctx context.Context, term string, query VendorListQuery) ([]Vendor, int64, error)
	UpdateVendor(ctx context.Context, actor auth.Actor, id uuid.UUID, req UpdateVendorRequest) (*Vendor, error)
	ApproveVendor(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Vendor, error)
	SuspendVendor(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Vendor, error)
	UpdateVendorStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*Vendor, error)
	Stats(ctx context.Context, actor auth.Actor, id uuid.UUID) (*VendorStats, error)
	WithEvents(ctx context.Context, id uuid.UUID) (*VendorWithEvents, error)
}

type service struct {
	repo  Repository
	authz auth.Authorizer
}

func NewService(repo Repository, authz auth.Authorizer) Service {
	return &service{repo: repo, authz: authz}
}

func (s *service) CreateVendor(ctx context.Context, req CreateVendorRequest) (*Vendor, error) {
	vendor := &Vendor{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		CompanyName:  req.CompanyName,
		BusinessType: req.BusinessType,
		EventTypes:   req.EventTypes,
		Experience:   req.Experience,
		Description:  req.Description,
		Status:       StatusPending,
	}
	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, apperror.FromGorm(err, "vendor")
	}
	return vendor, nil
}

func (s *service) GetVendor(ctx context.Context, id uuid.UUID) (*Vendor, error) {
	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "vendor")
	}
	return vendor, nil
}

func (s *service) ListVendors(ctx context.Context, query VendorListQuery) ([]Vendor, int64, error) {
	query.Normalize()
	vendors, total, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "vendors")
	}
	return vendors, total, nil
}

func (s *service) SearchVendors(ctx context.Context, term string, query VendorListQuery) ([]Vendor, int64, error) {
	query.Normalize()
	vendors, total, err := s.repo.Search(ctx, term, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "vendors")
	}
	return vendors, total, nil
}

func (s *service) UpdateVendor(ctx context.Context, actor auth.Actor, id uuid.UUID, req UpdateVendorRequest) (*Vendor, error) {
	if !s.authz.CanMutateEvent(actor, id) {
		return nil, apperror.Authorization("vendor access required")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.CompanyName != nil {
		updates["company_name"] = *req.CompanyName
	}
	if req.BusinessType != nil {
		updates["business_type"] = *req.BusinessType
	}
	if req.EventTypes != nil {
		updates["event_types"] = jsontypes.StringList(req.EventTypes)
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return s.GetVendor(ctx, id)
	}

	vendor, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, apperror.FromGorm(err, "vendor")
	}
	return vendor, nil
}

func (s *service) ApproveVendor(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Vendor, error) {
	return s.UpdateVendorStatus(ctx, actor, id, string(StatusApproved))
}

func (s *service) SuspendVendor(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Vendor, error) {
	return s.UpdateVendorStatus(ctx, actor, id, string(StatusSuspended))
}

func (s *service) UpdateVendorStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*Vendor, error) {
	if !s.authz.IsAdmin(actor) {
		return nil, apperror.Authorization("admin access required")
	}

	target := Status(status)
	if !target.IsValid() {
		return nil, apperror.Validation("invalid vendor status: %s", status)
	}

	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "vendor")
	}

	if !vendor.Status.CanTransitionTo(target) {
		return nil, apperror.Conflict("cannot change vendor status from %s to %s", vendor.Status, target)
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, apperror.FromGorm(err, "vendor")
	}

	vendor.Status = target
	return vendor, nil
}

func (s *service) Stats(ctx context.Context, actor auth.Actor, id uuid.UUID) (*VendorStats, error) {
	if !s.authz.CanMutateEvent(actor, id) {
		return nil, apperror.Authorization("vendor access required")
	}
	stats, err := s.repo.Stats(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "vendor stats")
	}
	return stats, nil
}

func (s *service) WithEvents(ctx context.Context, id uuid.UUID) (*VendorWithEvents, error) {
	combined, err := s.repo.WithEvents(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "vendor")
	}
	return combined, nil
}
