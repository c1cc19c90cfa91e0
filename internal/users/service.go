package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tixly/internal/shared/apperror"
)

type Service interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context, query UserListQuery) ([]User, int64, error)
	SearchUsers(ctx context.Context, term string, query UserListQuery) ([]User, int64, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error)
	UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	AddFavorite(ctx context.Context, userID uuid.UUID, req FavoriteRequest) (*Favorite, error)
	RemoveFavorite(ctx context.Context, userID, eventID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]FavoriteEvent, error)
	OrderHistory(ctx context.Context, userID uuid.UUID) ([]UserOrderSummary, error)
	Stats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hashed),
		Address:  req.Address,
		Status:   StatusActive,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.FromGorm(err, "user")
	}
	return user, nil
}

func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "user")
	}
	return user, nil
}

func (s *service) ListUsers(ctx context.Context, query UserListQuery) ([]User, int64, error) {
	query.Normalize()
	users, total, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "users")
	}
	return users, total, nil
}

func (s *service) SearchUsers(ctx context.Context, term string, query UserListQuery) ([]User, int64, error) {
	query.Normalize()
	users, total, err := s.repo.Search(ctx, term, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "users")
	}
	return users, total, nil
}

func (s *service) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*User, error) {
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
	if len(updates) == 0 {
		return s.GetUser(ctx, id)
	}

	user, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, apperror.FromGorm(err, "user")
	}
	return user, nil
}

func (s *service) UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*User, error) {
	target := Status(status)
	if !target.IsValid() {
		return nil, apperror.Validation("invalid user status: %s", status)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "user")
	}

	if !user.Status.CanTransitionTo(target) {
		return nil, apperror.Conflict("cannot change user status from %s to %s", user.Status, target)
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, apperror.FromGorm(err, "user")
	}

	user.Status = target
	return user, nil
}

func (s *service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperror.FromGorm(err, "user")
	}
	return nil
}

func (s *service) AddFavorite(ctx context.Context, userID uuid.UUID, req FavoriteRequest) (*Favorite, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperror.Validation("invalid event id")
	}

	favorite := &Favorite{UserID: userID, EventID: eventID}
	if err := s.repo.AddFavorite(ctx, favorite); err != nil {
		return nil, apperror.FromGorm(err, "favorite")
	}
	return favorite, nil
}

func (s *service) RemoveFavorite(ctx context.Context, userID, eventID uuid.UUID) error {
	if err := s.repo.RemoveFavorite(ctx, userID, eventID); err != nil {
		return apperror.FromGorm(err, "favorite")
	}
	return nil
}

func (s *service) ListFavorites(ctx context.Context, userID uuid.UUID) ([]FavoriteEvent, error) {
	favorites, err := s.repo.GetFavorites(ctx, userID)
	if err != nil {
		return nil, apperror.FromGorm(err, "favorites")
	}
	return favorites, nil
}

func (s *service) OrderHistory(ctx context.Context, userID uuid.UUID) ([]UserOrderSummary, error) {
	history, err := s.repo.OrderHistory(ctx, userID)
	if err != nil {
		return nil, apperror.FromGorm(err, "orders")
	}
	return history, nil
}

func (s *service) Stats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return nil, apperror.FromGorm(err, "user stats")
	}
	return stats, nil
}
