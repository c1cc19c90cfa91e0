package withdrawals

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tixly/internal/notifications"
	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	withdrawals map[uuid.UUID]*Withdrawal
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{withdrawals: make(map[uuid.UUID]*Withdrawal)}
}

func (f *fakeRepository) Create(ctx context.Context, withdrawal *Withdrawal) error {
	withdrawal.ID = uuid.New()
	f.withdrawals[withdrawal.ID] = withdrawal
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id uuid.UUID) (*Withdrawal, error) {
	withdrawal, ok := f.withdrawals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *withdrawal
	return &copied, nil
}

func (f *fakeRepository) GetAll(ctx context.Context, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	withdrawals := []Withdrawal{}
	for _, w := range f.withdrawals {
		withdrawals = append(withdrawals, *w)
	}
	return withdrawals, int64(len(withdrawals)), nil
}

func (f *fakeRepository) GetByVendor(ctx context.Context, vendorID uuid.UUID, query WithdrawalListQuery) ([]Withdrawal, int64, error) {
	withdrawals := []Withdrawal{}
	for _, w := range f.withdrawals {
		if w.VendorID == vendorID {
			withdrawals = append(withdrawals, *w)
		}
	}
	return withdrawals, int64(len(withdrawals)), nil
}

func (f *fakeRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	withdrawal, ok := f.withdrawals[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if status, ok := updates["status"].(Status); ok {
		withdrawal.Status = status
	}
	if processedAt, ok := updates["processed_at"].(time.Time); ok {
		withdrawal.ProcessedAt = &processedAt
	}
	if processedBy, ok := updates["processed_by"].(uuid.UUID); ok {
		withdrawal.ProcessedBy = &processedBy
	}
	return nil
}

func (f *fakeRepository) VendorStats(ctx context.Context, vendorID uuid.UUID) (*VendorWithdrawalStats, error) {
	stats := &VendorWithdrawalStats{ByStatus: make(map[string]int64)}
	for _, w := range f.withdrawals {
		if w.VendorID == vendorID {
			stats.ByStatus[string(w.Status)]++
			stats.TotalRequested += w.Amount
		}
	}
	return stats, nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, auth.NewAuthorizer(), notifications.NewNoopProducer()), repo
}

func validCreateRequest(vendorID uuid.UUID) CreateWithdrawalRequest {
	return CreateWithdrawalRequest{
		VendorID: vendorID.String(),
		Amount:   1500,
		BankDetails: map[string]interface{}{
			"account_name":   "Riverside Events Ltd",
			"account_number": "00123456789",
			"bank":           "First National",
		},
	}
}

func TestCreateWithdrawal(t *testing.T) {
	svc, repo := newTestService()
	vendorID := uuid.New()

	withdrawal, err := svc.CreateWithdrawal(context.Background(), auth.Actor{VendorID: vendorID}, validCreateRequest(vendorID))
	require.NoError(t, err)
	assert.Equal(t, StatusPending, withdrawal.Status)
	assert.Nil(t, withdrawal.ProcessedBy)
	assert.Nil(t, withdrawal.ProcessedAt)
	assert.Len(t, repo.withdrawals, 1)
}

func TestCreateWithdrawalValidation(t *testing.T) {
	svc, _ := newTestService()
	vendorID := uuid.New()

	req := validCreateRequest(vendorID)
	req.Amount = 0
	_, err := svc.CreateWithdrawal(context.Background(), auth.Actor{VendorID: vendorID}, req)
	assert.True(t, apperror.IsValidation(err))

	req = validCreateRequest(vendorID)
	req.BankDetails = nil
	_, err = svc.CreateWithdrawal(context.Background(), auth.Actor{VendorID: vendorID}, req)
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.CreateWithdrawal(context.Background(), auth.Actor{VendorID: uuid.New()}, validCreateRequest(vendorID))
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))
}

func TestUpdateWithdrawalStatusStampsProcessor(t *testing.T) {
	svc, repo := newTestService()
	vendorID := uuid.New()
	adminID := uuid.New()
	admin := auth.Actor{UserID: adminID, Admin: true}

	withdrawal, err := svc.CreateWithdrawal(context.Background(), auth.Actor{VendorID: vendorID}, validCreateRequest(vendorID))
	require.NoError(t, err)

	// approval is not terminal, nothing stamped yet
	approved, err := svc.UpdateWithdrawalStatus(context.Background(), admin, withdrawal.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)
	assert.Nil(t, repo.withdrawals[withdrawal.ID].ProcessedBy)
	assert.Nil(t, repo.withdrawals[withdrawal.ID].ProcessedAt)

	completed, err := svc.UpdateWithdrawalStatus(context.Background(), admin, withdrawal.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)
	require.NotNil(t, completed.ProcessedBy)
	assert.Equal(t, adminID, *completed.ProcessedBy)
	assert.NotNil(t, completed.ProcessedAt)
	assert.Equal(t, adminID, *repo.withdrawals[withdrawal.ID].ProcessedBy)
}

func TestUpdateWithdrawalStatusRejectedIsTerminal(t *testing.T) {
	svc, _ := newTestService()
	vendorID := uuid.New()
	admin := auth.Actor{UserID: uuid.New(), Admin: true}

	withdrawal, err := svc.CreateWithdrawal(context.Background(), auth.Actor{VendorID: vendorID}, validCreateRequest(vendorID))
	require.NoError(t, err)

	rejected, err := svc.UpdateWithdrawalStatus(context.Background(), admin, withdrawal.ID, "rejected")
	require.NoError(t, err)
	assert.NotNil(t, rejected.ProcessedAt)

	_, err = svc.UpdateWithdrawalStatus(context.Background(), admin, withdrawal.ID, "approved")
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestUpdateWithdrawalStatusGuards(t *testing.T) {
	svc, _ := newTestService()
	vendorID := uuid.New()
	admin := auth.Actor{UserID: uuid.New(), Admin: true}

	withdrawal, err := svc.CreateWithdrawal(context.Background(), auth.Actor{VendorID: vendorID}, validCreateRequest(vendorID))
	require.NoError(t, err)

	_, err = svc.UpdateWithdrawalStatus(context.Background(), auth.Actor{VendorID: vendorID}, withdrawal.ID, "approved")
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	_, err = svc.UpdateWithdrawalStatus(context.Background(), admin, withdrawal.ID, "paid")
	assert.True(t, apperror.IsValidation(err))

	_, err = svc.UpdateWithdrawalStatus(context.Background(), admin, uuid.New(), "approved")
	assert.True(t, apperror.IsNotFound(err))
}

func TestVendorScopedReads(t *testing.T) {
	svc, _ := newTestService()
	vendorID := uuid.New()

	_, _, err := svc.VendorWithdrawals(context.Background(), auth.Actor{VendorID: uuid.New()}, vendorID, WithdrawalListQuery{})
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	_, _, err = svc.VendorWithdrawals(context.Background(), auth.Actor{VendorID: vendorID}, vendorID, WithdrawalListQuery{})
	assert.NoError(t, err)

	_, err = svc.VendorStats(context.Background(), auth.Actor{Admin: true}, vendorID)
	assert.NoError(t, err)

	_, _, err = svc.ListWithdrawals(context.Background(), auth.Actor{VendorID: vendorID}, WithdrawalListQuery{})
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))
}
