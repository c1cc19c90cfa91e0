package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
	"tixly/internal/shared/constants"
	"tixly/internal/tickets"
	"tixly/pkg/cache"
	"tixly/pkg/logger"
)

// Service interface defines the contract for event business logic
type Service interface {
	CreateEvent(ctx context.Context, actor auth.Actor, req CreateEventRequest) (*EventDetail, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventDetail, error)
	ListEvents(ctx context.Context, query EventListQuery) ([]Event, int64, error)
	SearchEvents(ctx context.Context, term string, query EventListQuery) ([]Event, int64, error)
	UpdateEvent(ctx context.Context, actor auth.Actor, id uuid.UUID, req UpdateEventRequest) (*Event, error)
	UpdateEventStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*Event, error)
	DeleteEvent(ctx context.Context, actor auth.Actor, id uuid.UUID) error

	VendorEvents(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query EventListQuery) ([]Event, int64, error)
	VendorStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorEventStats, error)
	VendorEarnings(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorEarnings, error)
	SalesAnalysis(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) ([]TicketSales, error)
}

type service struct {
	repo  Repository
	cache cache.Service // nil when the cache is disabled
	authz auth.Authorizer
	log   *logger.Logger
}

// NewService creates a new event service instance
func NewService(repo Repository, cacheService cache.Service, authz auth.Authorizer) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		authz: authz,
		log:   logger.GetDefault(),
	}
}

func (s *service) CreateEvent(ctx context.Context, actor auth.Actor, req CreateEventRequest) (*EventDetail, error) {
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, apperror.Validation("invalid vendor id")
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, apperror.Validation("event_date must be YYYY-MM-DD")
	}

	tiers := make([]tickets.TicketType, 0, len(req.TicketTypes))
	for _, input := range req.TicketTypes {
		if input.Type == "" {
			return nil, apperror.Validation("ticket type name is required")
		}
		if input.Price <= 0 {
			return nil, apperror.Validation("ticket type price must be greater than zero")
		}
		if input.Quantity <= 0 {
			return nil, apperror.Validation("ticket type quantity must be greater than zero")
		}
		tiers = append(tiers, tickets.TicketType{
			Type:     input.Type,
			Price:    input.Price,
			Quantity: input.Quantity,
			Features: input.Features,
		})
	}

	event := &Event{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		EventDate:   eventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Price:       req.Price,
		Capacity:    req.Capacity,
		VendorID:    vendorID,
		ImageURL:    req.ImageURL,
		Status:      StatusPending,
	}

	if err := s.repo.Create(ctx, event, tiers); err != nil {
		return nil, apperror.FromGorm(err, "event")
	}

	s.log.LogEventCreated(ctx, event.ID.String(), vendorID.String())
	s.invalidateEventCaches(ctx)

	detail, err := s.repo.GetDetail(ctx, event.ID)
	if err != nil {
		return nil, apperror.FromGorm(err, "event")
	}
	return detail, nil
}

func (s *service) GetEvent(ctx context.Context, id uuid.UUID) (*EventDetail, error) {
	if s.cache != nil {
		var detail EventDetail
		err := s.cache.GetOrSet(ctx, constants.BuildEventDetailKey(id.String()), constants.TTL_EVENT_DETAIL,
			func() (interface{}, error) {
				return s.repo.GetDetail(ctx, id)
			}, &detail)
		if err != nil {
			return nil, apperror.FromGorm(err, "event")
		}
		return &detail, nil
	}

	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "event")
	}
	return detail, nil
}

func (s *service) ListEvents(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	query.Normalize()

	if s.cache != nil {
		key := constants.BuildEventListKey(query.Page, query.Limit, query.Category, query.Location, query.Status, query.VendorID)

		type listPage struct {
			Events []Event `json:"events"`
			Total  int64   `json:"total"`
		}
		var page listPage
		err := s.cache.GetOrSet(ctx, key, constants.TTL_EVENT_LIST,
			func() (interface{}, error) {
				events, total, err := s.repo.GetAll(ctx, query)
				if err != nil {
					return nil, err
				}
				return listPage{Events: events, Total: total}, nil
			}, &page)
		if err != nil {
			return nil, 0, apperror.Query(err)
		}
		return page.Events, page.Total, nil
	}

	events, total, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, 0, apperror.Query(err)
	}
	return events, total, nil
}

func (s *service) SearchEvents(ctx context.Context, term string, query EventListQuery) ([]Event, int64, error) {
	if term == "" {
		return nil, 0, apperror.Validation("search query is required")
	}
	query.Normalize()

	if s.cache != nil {
		key := constants.BuildEventSearchKey(term, query.Page, query.Limit)

		type searchPage struct {
			Events []Event `json:"events"`
			Total  int64   `json:"total"`
		}
		var page searchPage
		err := s.cache.GetOrSet(ctx, key, constants.TTL_EVENT_SEARCH,
			func() (interface{}, error) {
				events, total, err := s.repo.Search(ctx, term, query)
				if err != nil {
					return nil, err
				}
				return searchPage{Events: events, Total: total}, nil
			}, &page)
		if err != nil {
			return nil, 0, apperror.Query(err)
		}
		return page.Events, page.Total, nil
	}

	events, total, err := s.repo.Search(ctx, term, query)
	if err != nil {
		return nil, 0, apperror.Query(err)
	}
	return events, total, nil
}

func (s *service) UpdateEvent(ctx context.Context, actor auth.Actor, id uuid.UUID, req UpdateEventRequest) (*Event, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "event")
	}

	if !s.authz.CanMutateEvent(actor, existing.VendorID) {
		return nil, apperror.Authorization("not allowed to modify this event")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.EventDate != nil {
		eventDate, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return nil, apperror.Validation("event_date must be YYYY-MM-DD")
		}
		updates["event_date"] = eventDate
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperror.Validation("price cannot be negative")
		}
		updates["price"] = *req.Price
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, apperror.Validation("capacity cannot be negative")
		}
		updates["capacity"] = *req.Capacity
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) == 0 {
		return nil, apperror.Validation("no fields to update")
	}

	event, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, apperror.FromGorm(err, "event")
	}

	s.invalidateEventCaches(ctx)
	return event, nil
}

func (s *service) UpdateEventStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*Event, error) {
	if !s.authz.IsAdmin(actor) {
		return nil, apperror.Authorization("admin access required")
	}

	target := Status(status)
	if !target.IsValid() || !target.AdminAssignable() {
		return nil, apperror.Validation("invalid event status: %s", status)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "event")
	}

	if existing.Status != target && !existing.Status.CanTransitionTo(target) {
		return nil, apperror.Conflict("cannot move event from %s to %s", existing.Status, target)
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, apperror.FromGorm(err, "event")
	}

	s.invalidateEventCaches(ctx)
	existing.Status = target
	return existing, nil
}

func (s *service) DeleteEvent(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperror.FromGorm(err, "event")
	}

	if !s.authz.CanMutateEvent(actor, existing.VendorID) {
		return apperror.Authorization("not allowed to delete this event")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.FromGorm(err, "event")
	}

	s.invalidateEventCaches(ctx)
	return nil
}

func (s *service) VendorEvents(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query EventListQuery) ([]Event, int64, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, 0, apperror.Authorization("not allowed to view this vendor's events")
	}

	events, total, err := s.repo.GetByVendor(ctx, vendorID, query)
	if err != nil {
		return nil, 0, apperror.Query(err)
	}
	return events, total, nil
}

func (s *service) VendorStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorEventStats, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, apperror.Authorization("not allowed to view this vendor's stats")
	}

	stats, err := s.repo.VendorStats(ctx, vendorID)
	if err != nil {
		return nil, apperror.Query(err)
	}
	return stats, nil
}

func (s *service) VendorEarnings(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorEarnings, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, apperror.Authorization("not allowed to view this vendor's earnings")
	}

	earnings, err := s.repo.VendorEarnings(ctx, vendorID)
	if err != nil {
		return nil, apperror.Query(err)
	}
	return earnings, nil
}

func (s *service) SalesAnalysis(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) ([]TicketSales, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, apperror.Authorization("not allowed to view this vendor's sales")
	}

	sales, err := s.repo.SalesAnalysis(ctx, vendorID)
	if err != nil {
		return nil, apperror.Query(err)
	}
	return sales, nil
}

func (s *service) invalidateEventCaches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_EVENTS_ALL); err != nil {
		s.log.Warn("event cache invalidation failed", "error", err)
	}
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ADMIN_ALL); err != nil {
		s.log.Warn("admin cache invalidation failed", "error", err)
	}
}
