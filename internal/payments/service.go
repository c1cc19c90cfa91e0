package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
)

type Service interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, query PaymentListQuery) ([]Payment, int64, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*Payment, error)
	Stats(ctx context.Context) (*PaymentStats, error)
	VendorEarnings(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorEarnings, error)
	VendorStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*PaymentStats, error)
	UserPayments(ctx context.Context, userID uuid.UUID, query PaymentListQuery) ([]Payment, int64, error)
}

type service struct {
	repo  Repository
	authz auth.Authorizer
}

func NewService(repo Repository, authz auth.Authorizer) Service {
	return &service{repo: repo, authz: authz}
}

func (s *service) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, apperror.Validation("invalid event id")
	}
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be greater than zero")
	}

	var userID *uuid.UUID
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, apperror.Validation("invalid user id")
		}
		userID = &parsed
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID, err = generateTransactionID()
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("failed to generate transaction id: %w", err))
		}
	}

	method := req.PaymentMethod
	if method == "" {
		method = "cash_on_delivery"
	}

	payment := &Payment{
		UserID:        userID,
		EventID:       eventID,
		Amount:        req.Amount,
		PaymentMethod: method,
		TransactionID: transactionID,
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, apperror.FromGorm(err, "payment")
	}
	return payment, nil
}

func (s *service) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "payment")
	}
	return payment, nil
}

func (s *service) ListPayments(ctx context.Context, query PaymentListQuery) ([]Payment, int64, error) {
	query.Normalize()
	payments, total, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "payments")
	}
	return payments, total, nil
}

func (s *service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*Payment, error) {
	target := Status(status)
	if !target.IsValid() {
		return nil, apperror.Validation("invalid payment status: %s", status)
	}

	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.FromGorm(err, "payment")
	}

	if !payment.Status.CanTransitionTo(target) {
		return nil, apperror.Conflict("cannot change payment status from %s to %s", payment.Status, target)
	}

	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return nil, apperror.FromGorm(err, "payment")
	}

	payment.Status = target
	return payment, nil
}

func (s *service) Stats(ctx context.Context) (*PaymentStats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apperror.FromGorm(err, "payment stats")
	}
	return stats, nil
}

func (s *service) VendorEarnings(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*VendorEarnings, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, apperror.Authorization("vendor access required")
	}
	earnings, err := s.repo.VendorEarnings(ctx, vendorID)
	if err != nil {
		return nil, apperror.FromGorm(err, "vendor earnings")
	}
	return earnings, nil
}

func (s *service) VendorStats(ctx context.Context, actor auth.Actor, vendorID uuid.UUID) (*PaymentStats, error) {
	if !s.authz.CanMutateEvent(actor, vendorID) {
		return nil, apperror.Authorization("vendor access required")
	}
	stats, err := s.repo.VendorStats(ctx, vendorID)
	if err != nil {
		return nil, apperror.FromGorm(err, "vendor payment stats")
	}
	return stats, nil
}

func (s *service) UserPayments(ctx context.Context, userID uuid.UUID, query PaymentListQuery) ([]Payment, int64, error) {
	query.Normalize()
	payments, total, err := s.repo.GetUserPayments(ctx, userID, query)
	if err != nil {
		return nil, 0, apperror.FromGorm(err, "payments")
	}
	return payments, total, nil
}

// generateTransactionID builds TXN_<unix>_<8 hex chars>.
func generateTransactionID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("TXN_%d_%s", time.Now().Unix(), hex.EncodeToString(buf)), nil
}
