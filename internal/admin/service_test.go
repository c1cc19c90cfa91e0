package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tixly/internal/events"
	"tixly/internal/payments"
	"tixly/internal/shared/apperror"
	"tixly/internal/shared/auth"
	"tixly/internal/shared/utils/pagination"
	"tixly/internal/users"
	"tixly/internal/vendors"
	"tixly/internal/withdrawals"
)

type fakeRepository struct {
	settings *SystemSetting
	saved    int
}

func (f *fakeRepository) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	return &DashboardStats{TotalUsers: 3, RecentOrders: []RecentOrder{}, RecentEvents: []RecentEvent{}}, nil
}

func (f *fakeRepository) Analytics(ctx context.Context) (*Analytics, error) {
	return &Analytics{}, nil
}

func (f *fakeRepository) FinanceRecords(ctx context.Context, params pagination.Params) ([]FinanceRecord, int64, error) {
	return []FinanceRecord{{Kind: "payment"}, {Kind: "withdrawal"}}, 2, nil
}

func (f *fakeRepository) ListTickets(ctx context.Context, params pagination.Params) ([]TicketRow, int64, error) {
	return []TicketRow{}, 0, nil
}

func (f *fakeRepository) GetSettings(ctx context.Context) (*SystemSetting, error) {
	if f.settings == nil {
		f.settings = &SystemSetting{
			ID:                        uuid.New(),
			PlatformName:              "Tixly",
			SupportEmail:              "support@tixly.io",
			DefaultCurrency:           "USD",
			CommissionRate:            5,
			MaxTicketsPerOrder:        10,
			RequireVendorVerification: true,
		}
	}
	copied := *f.settings
	return &copied, nil
}

func (f *fakeRepository) SaveSettings(ctx context.Context, settings *SystemSetting) error {
	copied := *settings
	f.settings = &copied
	f.saved++
	return nil
}

func (f *fakeRepository) Statistics(ctx context.Context) (*SystemStatistics, error) {
	return &SystemStatistics{Users: 3, Orders: 7}, nil
}

// moderationLog records which delegate was called with what status.
type moderationLog struct {
	entity string
	id     uuid.UUID
	status string
}

type fakeDelegates struct {
	calls []moderationLog
}

func (f *fakeDelegates) ListUsers(ctx context.Context, query users.UserListQuery) ([]users.User, int64, error) {
	return []users.User{}, 0, nil
}

func (f *fakeDelegates) UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*users.User, error) {
	f.calls = append(f.calls, moderationLog{"user", id, status})
	return &users.User{ID: id, Status: users.Status(status)}, nil
}

func (f *fakeDelegates) ListVendors(ctx context.Context, query vendors.VendorListQuery) ([]vendors.Vendor, int64, error) {
	return []vendors.Vendor{}, 0, nil
}

func (f *fakeDelegates) UpdateVendorStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*vendors.Vendor, error) {
	if !actor.Admin {
		return nil, apperror.Authorization("admin access required")
	}
	f.calls = append(f.calls, moderationLog{"vendor", id, status})
	return &vendors.Vendor{ID: id, Status: vendors.Status(status)}, nil
}

func (f *fakeDelegates) ListEvents(ctx context.Context, query events.EventListQuery) ([]events.Event, int64, error) {
	return []events.Event{}, 0, nil
}

func (f *fakeDelegates) UpdateEventStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*events.Event, error) {
	f.calls = append(f.calls, moderationLog{"event", id, status})
	return &events.Event{ID: id, Status: events.Status(status)}, nil
}

func (f *fakeDelegates) ListPayments(ctx context.Context, query payments.PaymentListQuery) ([]payments.Payment, int64, error) {
	return []payments.Payment{{TransactionID: "TXN_1_abcd1234"}}, 1, nil
}

func (f *fakeDelegates) ListWithdrawals(ctx context.Context, actor auth.Actor, query withdrawals.WithdrawalListQuery) ([]withdrawals.Withdrawal, int64, error) {
	return []withdrawals.Withdrawal{}, 0, nil
}

func (f *fakeDelegates) UpdateWithdrawalStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status string) (*withdrawals.Withdrawal, error) {
	f.calls = append(f.calls, moderationLog{"withdrawal", id, status})
	return &withdrawals.Withdrawal{ID: id, Status: withdrawals.Status(status)}, nil
}

func newTestService() (Service, *fakeRepository, *fakeDelegates) {
	repo := &fakeRepository{}
	delegates := &fakeDelegates{}
	svc := NewService(repo, delegates, delegates, delegates, delegates, delegates, nil)
	return svc, repo, delegates
}

func TestGetSettingsReturnsDefaults(t *testing.T) {
	svc, _, _ := newTestService()

	settings, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tixly", settings.PlatformName)
	assert.Equal(t, 5.0, settings.CommissionRate)
	assert.Equal(t, 10, settings.MaxTicketsPerOrder)
	assert.True(t, settings.RequireVendorVerification)
}

func TestUpdateSettingsAppliesOnlyProvidedFields(t *testing.T) {
	svc, repo, _ := newTestService()

	rate := 7.5
	maintenance := true
	updated, err := svc.UpdateSettings(context.Background(), UpdateSettingsRequest{
		CommissionRate:  &rate,
		MaintenanceMode: &maintenance,
	})
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.CommissionRate)
	assert.True(t, updated.MaintenanceMode)
	assert.Equal(t, "Tixly", updated.PlatformName)
	assert.Equal(t, 1, repo.saved)
}

func TestUpdateSettingsValidation(t *testing.T) {
	svc, repo, _ := newTestService()

	rate := 120.0
	_, err := svc.UpdateSettings(context.Background(), UpdateSettingsRequest{CommissionRate: &rate})
	assert.True(t, apperror.IsValidation(err))

	max := 0
	_, err = svc.UpdateSettings(context.Background(), UpdateSettingsRequest{MaxTicketsPerOrder: &max})
	assert.True(t, apperror.IsValidation(err))

	assert.Equal(t, 0, repo.saved)
}

func TestModerationDelegatesToDomainServices(t *testing.T) {
	svc, _, delegates := newTestService()
	admin := auth.Actor{UserID: uuid.New(), Admin: true}

	userID := uuid.New()
	user, err := svc.ModerateUser(context.Background(), userID, "suspended")
	require.NoError(t, err)
	assert.Equal(t, users.Status("suspended"), user.Status)

	vendorID := uuid.New()
	_, err = svc.ModerateVendor(context.Background(), admin, vendorID, "approved")
	require.NoError(t, err)

	_, err = svc.ModerateVendor(context.Background(), auth.Actor{UserID: uuid.New()}, vendorID, "approved")
	assert.Equal(t, apperror.KindAuthorization, apperror.KindOf(err))

	eventID := uuid.New()
	_, err = svc.ModerateEvent(context.Background(), admin, eventID, "active")
	require.NoError(t, err)

	withdrawalID := uuid.New()
	_, err = svc.ModerateWithdrawal(context.Background(), admin, withdrawalID, "approved")
	require.NoError(t, err)

	require.Len(t, delegates.calls, 4)
	assert.Equal(t, moderationLog{"user", userID, "suspended"}, delegates.calls[0])
	assert.Equal(t, moderationLog{"vendor", vendorID, "approved"}, delegates.calls[1])
	assert.Equal(t, moderationLog{"event", eventID, "active"}, delegates.calls[2])
	assert.Equal(t, moderationLog{"withdrawal", withdrawalID, "approved"}, delegates.calls[3])
}

func TestFinanceRecordsCombineKinds(t *testing.T) {
	svc, _, _ := newTestService()

	records, total, err := svc.FinanceRecords(context.Background(), pagination.Params{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, records, 2)
	assert.Equal(t, "payment", records[0].Kind)
	assert.Equal(t, "withdrawal", records[1].Kind)
}
