package payments

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	payments map[uuid.UUID]*Payment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{payments: make(map[uuid.UUID]*Payment)}
}

func (f *fakeRepository) Create(ctx context.Context, payment *Payment) error {
	payment.ID = uuid.New()
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *payment
	return &copied, nil
}

func (f *fakeRepository) GetAll(ctx context.Context, query PaymentListQuery) ([]Payment, int64, error) {
	payments := []Payment{}
	for _, p := range f.payments {
		if query.Status != "" && string(p.Status) != query.Status {
			continue
		}
		payments = append(payments, *p)
	}
	return payments, int64(len(payments)), nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	payment, ok := f.payments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	payment.Status = status
	return nil
}

func (f *fakeRepository) Stats(ctx context.Context) (*PaymentStats, error) {
	stats := &PaymentStats{ByStatus: make(map[string]int64)}
	for _, p := range f.payments {
		stats.TotalPayments++
		stats.ByStatus[string(p.Status)]++
		if p.Status == StatusCompleted {
			stats.CompletedTotal += p.Amount
		}
	}
	return stats, nil
}

func (f *fakeRepository) VendorEarnings(ctx context.Context, vendorID uuid.UUID) (*VendorEarnings, error) {
	return &VendorEarnings{VendorID: vendorID}, nil
}

func (f *fakeRepository) VendorStats(ctx context.Context, vendorID uuid.UUID) (*PaymentStats, error) {
	return &PaymentStats{ByStatus: make(map[string]int64)}, nil
}

func (f *fakeRepository) GetUserPayments(ctx context.Context, userID uuid.UUID, query PaymentListQuery) ([]Payment, int64, error) {
	payments := []Payment{}
	for _, p := range f.payments {
		if p.UserID != nil && *p.UserID == userID {
			payments = append(payments, *p)
		}
	}
	return payments, int64(len(payments)), nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, auth.NewAuthorizer()), repo
}

func TestCreatePaymentGeneratesTransactionID(t *testing.T) {
	svc, _ := newTestService()

	payment, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		EventID: uuid.New().String(),
		Amount:  250,
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^TXN_\d+_[0-9a-f]{8}$`), payment.TransactionID)
	assert.Equal(t, StatusPending, payment.Status)
	assert.Equal(t, "cash_on_delivery", payment.PaymentMethod)
}

func TestCreatePaymentKeepsSuppliedTransactionID(t *testing.T) {
	svc, _ := newTestService()

	payment, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		EventID:       uuid.New().String(),
		Amount:        90,
		TransactionID: "TXN_external_ref",
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "TXN_external_ref", payment.TransactionID)
	assert.Equal(t, "card", payment.PaymentMethod)
}

func TestCreatePaymentValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		EventID: uuid.New().String(),
		Amount:  0,
	})
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.CreatePayment(context.Background(), CreatePaymentRequest{
		EventID: "nope",
		Amount:  10,
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdatePaymentStatusTransitions(t *testing.T) {
	svc, _ := newTestService()

	payment, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		EventID: uuid.New().String(),
		Amount:  60,
	})
	require.NoError(t, err)

	_, err = svc.UpdatePaymentStatus(context.Background(), payment.ID, "refunded")
	assert.True(t, apperror.IsValidation(err))

	updated, err := svc.UpdatePaymentStatus(context.Background(), payment.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)

	_, err = svc.UpdatePaymentStatus(context.Background(), payment.ID, "failed")
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	_, err = svc.UpdatePaymentStatus(context.Background(), uuid.New(), "completed")
	assert.True(t, apperror.IsNotFound(err))
}

func TestVendorReadsRequireVendorAccess(t *testing.T) {
	svc, _ := newTestService()
	vendorID := uuid.New()

	_, err := svc.VendorEarnings(context.Background(), auth.Actor{VendorID: uuid.New()}, vendorID)
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	_, err = svc.VendorEarnings(context.Background(), auth.Actor{VendorID: vendorID}, vendorID)
	assert.NoError(t, err)

	_, err = svc.VendorStats(context.Background(), auth.Actor{Admin: true}, vendorID)
	assert.NoError(t, err)
}

func TestStatsAggregation(t *testing.T) {
	svc, repo := newTestService()

	for _, amount := range []float64{100, 200} {
		payment, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
			EventID: uuid.New().String(),
			Amount:  amount,
		})
		require.NoError(t, err)
		_, err = svc.UpdatePaymentStatus(context.Background(), payment.ID, "completed")
		require.NoError(t, err)
	}
	_, err := svc.CreatePayment(context.Background(), CreatePaymentRequest{
		EventID: uuid.New().String(),
		Amount:  50,
	})
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalPayments)
	assert.EqualValues(t, 2, stats.ByStatus["completed"])
	assert.Equal(t, 300.0, stats.CompletedTotal)
	assert.Len(t, repo.payments, 3)
}
