package withdrawals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tixly/internal/notifications"
	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
	"tixly/pkg/logger"
)

type Service interface {
	CreateWithdrawal(ctx context.Context, actor auth.Actor, req CreateWithdrawalRequest) (*Withdrawal, error)
	GetWithdrawal(ctx context.Context, id uuid.UUID) (*Withdrawal, error)
	ListWithdrawals(ctx context.Context, actor auth.Actor, query WithdrawalListQuery) ([]Withdrawal, int64, error)
	VendorWithdrawals(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query WithdrawalListQuery) ([]Withdrawal, int64, error)
	VendorStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorWithdrawalStats, error)
	UpdateWithdrawalStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*Withdrawal, error)
}

type service struct {
	repo     Repository
	authz    auth.Authorizer
	producer notifications.Producer
	log      *logger.Logger
}

func NewService(repo Repository, authz auth.Authorizer, producer notifications.Producer) Service {
	return &service{
		repo:     repo,
		authz:    authz,
		producer: producer,
		log:      logger.GetDefault(),
	}
}

func (s *service) CreateWithdrawal(ctx context.Context, actor auth.Actor, req CreateWithdrawalRequest) (*Withdrawal, error) {
	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		return nil, apperror.Validation("invalid vendor id")
	}
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be greater than zero")
	}
	if len(req.BankDetails) == 0 {
		return nil, apperror.Validation("bank details are required")
	}
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, apperror.Authorization("vendor access required")
	}

	withdrawal := &Withdrawal{
		VendorID:    vendorID,
		Amount:      req.Amount,
		BankDetails: req.BankDetails,
		Status:      StatusPending,
	}
	if err := s.repo.Create(ctx, withdrawal); err != nil {
		return nil, apperror.FromGorm(err, "withdrawal")
	}
	return withdrawal, nil
}

func (s *service) GetWithdrawal(ctx context.Context, id uuid.UUID) (*Withdrawal, error) {
	withdrawal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "withdrawal")
	}
	return withdrawal, nil
}

func (s *service) ListWithdrawals(ctx context.Context, actor auth.Actor, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	if !s.authz.IsAdmin(actor) {
		return nil, 0, apperror.Authorization("admin access required")
	}
	query.Normalize()
	withdrawals, total, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "withdrawals")
	}
	return withdrawals, total, nil
}

func (s *service) VendorWithdrawals(ctx context.Context, actor auth.Actor, vendorID uuid.UUID, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, 0, apperror.Authorization("vendor access required")
	}
	query.Normalize()
	withdrawals, total, err := s.repo.GetByVendor(ctx, vendorID, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "withdrawals")
	}
	return withdrawals, total, nil
}

func (s *service) VendorStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorWithdrawalStats, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, apperror.Authorization("vendor access required")
	}
	stats, err := s.repo.VendorStats(ctx, vendorID)
	if err != nil {
		return nil, apperror.FromGorm(err, "withdrawal stats")
	}
	return stats, nil
}

// UpdateWithdrawalStatus moves a withdrawal through its lifecycle. Admin
// only. Reaching a terminal status stamps the acting admin and the time.
func (s *service) UpdateWithdrawalStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*Withdrawal, error) {
	if !s.authz.IsAdmin(actor) {
		return nil, apperror.Authorization("admin access required")
	}

	target := Status(status)
	if !target.IsValid() {
		return nil, apperror.Validation("invalid withdrawal status: %s", status)
	}

	withdrawal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "withdrawal")
	}

	if !withdrawal.Status.CanTransitionTo(target) {
		return nil, apperror.Conflict("cannot change withdrawal status from %s to %s", withdrawal.Status, target)
	}

	updates := map[string]interface{}{"status": target}
	if target.IsTerminal() {
		now := time.Now().UTC()
		updates["processed_at"] = now
		withdrawal.ProcessedAt = &now
		if actor.HasUser() {
			processedBy := actor.UserID
			updates["processed_by"] = processedBy
			withdrawal.ProcessedBy = &processedBy
		}
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, apperror.FromGorm(err, "withdrawal")
	}
	withdrawal.Status = target

	if target.IsTerminal() {
		processedBy := ""
		if withdrawal.ProcessedBy != nil {
			processedBy = withdrawal.ProcessedBy.String()
		}
		s.log.LogWithdrawalProcessed(ctx, withdrawal.ID.String(), string(target), processedBy)
		s.publishProcessed(withdrawal)
	}

	return withdrawal, nil
}

// publishProcessed notifies downstream consumers without blocking the
// request. Delivery failures are logged and swallowed.
func (s *service) publishProcessed(withdrawal *Withdrawal) {
	if s.producer == nil {
		return
	}
	payload := notifications.WithdrawalProcessedPayload{
		WithdrawalID: withdrawal.ID,
		VendorID:     withdrawal.VendorID,
		Status:       string(withdrawal.Status),
		Amount:       withdrawal.Amount,
	}
	if withdrawal.ProcessedBy != nil {
		payload.ProcessedBy = *withdrawal.ProcessedBy
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.producer.PublishWithdrawalProcessed(ctx, payload); err != nil {
			s.log.WithError(err).Warn("failed to publish withdrawal processed message")
		}
	}()
}
