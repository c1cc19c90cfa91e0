package tickets

import (
	"context"

	"github.com/google/uuid"

	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
	"tixly/internal/shared/jsontypes"
	"tixly/pkg/logger"
)

type Service interface {
	CreateTicketType(ctx context.Context, actor auth.Actor, req CreateTicketTypeRequest) (*TicketType, error)
	GetTicketTypes(ctx context.Context, eventID uuid.UUID) ([]TicketType, error)
	UpdateTicketType(ctx context.Context, actor auth.Actor, id uuid.UUID, req UpdateTicketTypeRequest) (*TicketType, error)
	DeleteTicketType(ctx context.Context, actor auth.Actor, id uuid.UUID) error
	GetTicket(ctx context.Context, id uuid.UUID) (*TicketDetail, error)
	UpdateTicketStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*TicketDetail, error)
	UserTickets(ctx context.Context, userID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error)
	VendorSoldTickets(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error)
	VendorTicketStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorTicketStats, error)
}

type service struct {
	repo  Repository
	authz auth.Authorizer
	log   *logger.Logger
}

func NewService(repo Repository, authz auth.Authorizer) Service {
	return &service{
		repo:  repo,
		authz: authz,
		log:   logger.GetDefault(),
	}
}

func (s *service) CreateTicketType(ctx context.Context, actor auth.Actor, req CreateTicketTypeRequest) (*TicketType, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperror.Validation("invalid event id")
	}

	if err := s.authorizeEvent(ctx, actor, eventID); err != nil {
		return nil, err
	}

	tier := &TicketType{
		EventID:  eventID,
		Type:     req.Type,
		Price:    req.Price,
		Quantity: req.Quantity,
		Features: req.Features,
	}
	if err := s.repo.CreateType(ctx, tier); err != nil {
		return nil, apperror.FromGorm(err, "ticket type")
	}
	return tier, nil
}

func (s *service) GetTicketTypes(ctx context.Context, eventID uuid.UUID) ([]TicketType, error) {
	tiers, err := s.repo.GetTypesByEvent(ctx, eventID)
	if err != nil {
		return nil, apperror.FromGorm(err, "ticket types")
	}
	if tiers == nil {
		tiers = []TicketType{}
	}
	return tiers, nil
}

func (s *service) UpdateTicketType(ctx context.Context, actor auth.Actor, id uuid.UUID, req UpdateTicketTypeRequest) (*TicketType, error) {
	tier, err := s.repo.GetTypeByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "ticket type")
	}

	if err := s.authorizeEvent(ctx, actor, tier.EventID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, apperror.Validation("price must be greater than zero")
		}
		updates["price"] = *req.Price
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, apperror.Validation("quantity must be greater than zero")
		}
		updates["quantity"] = *req.Quantity
	}
	if req.Features != nil {
		updates["features"] = jsontypes.StringList(req.Features)
	}
	if len(updates) == 0 {
		return tier, nil
	}

	updated, err := s.repo.UpdateType(ctx, id, updates)
	if err != nil {
		return nil, apperror.FromGorm(err, "ticket type")
	}
	return updated, nil
}

func (s *service) DeleteTicketType(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	tier, err := s.repo.GetTypeByID(ctx, id)
	if err != nil {
		return apperror.FromGorm(err, "ticket type")
	}

	if err := s.authorizeEvent(ctx, actor, tier.EventID); err != nil {
		return err
	}

	if err := s.repo.DeleteType(ctx, id); err != nil {
		return apperror.FromGorm(err, "ticket type")
	}
	return nil
}

func (s *service) GetTicket(ctx context.Context, id uuid.UUID) (*TicketDetail, error) {
	detail, err := s.repo.GetTicketByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "ticket")
	}
	return detail, nil
}

func (s *service) UpdateTicketStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*TicketDetail, error) {
	target := Status(status)
	if !target.IsValid() {
		return nil, apperror.Validation("invalid ticket status: %s", status)
	}

	ticket, err := s.repo.GetTicketRecord(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "ticket")
	}

	if err := s.authorizeEvent(ctx, actor, ticket.EventID); err != nil {
		return nil, err
	}

	if !ticket.Status.CanTransitionTo(target) {
		return nil, apperror.Conflict("cannot change ticket status from %s to %s", ticket.Status, target)
	}

	if err := s.repo.UpdateTicketStatus(ctx, id, target); err != nil {
		return nil, apperror.FromGorm(err, "ticket")
	}
	return s.GetTicket(ctx, id)
}

func (s *service) UserTickets(ctx context.Context, userID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error) {
	query.Normalize()
	details, total, err := s.repo.GetUserTickets(ctx, userID, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "tickets")
	}
	return details, total, nil
}

func (s *service) VendorSoldTickets(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query TicketListQuery) ([]TicketDetail, int64, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, 0, apperror.Authorization("vendor access required")
	}
	query.Normalize()
	details, total, err := s.repo.GetVendorSoldTickets(ctx, vendorID, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "tickets")
	}
	return details, total, nil
}

func (s *service) VendorTicketStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorTicketStats, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, apperror.Authorization("vendor access required")
	}
	stats, err := s.repo.VendorTicketStats(ctx, vendorID)
	if err != nil {
		return nil, apperror.FromGorm(err, "ticket stats")
	}
	return stats, nil
}

// authorizeEvent checks that the actor may manage tickets of the event.
func (s *service) authorizeEvent(ctx context.Context, actor auth.Actor, eventID uuid.UUID) error {
	owner, err := s.repo.EventOwner(ctx, eventID)
	if err != nil {
		return apperror.FromGorm(err, "event")
	}
	if !s.authz.CanMutateEvent(actor, owner) {
		return apperror.Authorization("you do not manage this event")
	}
	return nil
}
