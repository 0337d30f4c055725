package admin

import (
	"context"
	"errors"
	"testing"

	"buildconnect/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

/* ==================== MOCKS ==================== */

type MockUserCounter struct{ mock.Mock }

func (m *MockUserCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockBookingReader struct{ mock.Mock }

func (m *MockBookingReader) ListSettled(ctx context.Context, vendorID string) ([]domain.Booking, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingReader) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockVendorCounter struct{ mock.Mock }

func (m *MockVendorCounter) Count(ctx context.Context, status domain.ApprovalStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockModerator struct{ mock.Mock }

func (m *MockModerator) ListAllWithUsers(ctx context.Context) ([]domain.VendorWithUser, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.VendorWithUser), args.Error(1)
}

func (m *MockModerator) SetApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) (*domain.VendorProfile, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VendorProfile), args.Error(1)
}

/* ==================== TESTS ==================== */

func price(v float64) *float64 { return &v }

func TestVendorEarnings(t *testing.T) {
	ctx := context.Background()

	t.Run("single paid booking", func(t *testing.T) {
		bookings := new(MockBookingReader)
		svc := NewService(nil, bookings, nil, nil)
		bookings.On("ListSettled", ctx, "v1").Return([]domain.Booking{{EstimatedPrice: 499}}, nil)

		got, err := svc.VendorEarnings(ctx, "v1")
		require.NoError(t, err)
		assert.Equal(t, &EarningsResponse{
			TotalBookings:      1,
			TotalEarnings:      499,
			PlatformCommission: 74.85,
			NetEarnings:        424.15,
			CommissionRate:     0.15,
		}, got)
	})

	t.Run("final price wins over estimate", func(t *testing.T) {
		bookings := new(MockBookingReader)
		svc := NewService(nil, bookings, nil, nil)
		bookings.On("ListSettled", ctx, "v1").Return([]domain.Booking{
			{EstimatedPrice: 100, FinalPrice: price(120)},
			{EstimatedPrice: 80},
		}, nil)

		got, err := svc.VendorEarnings(ctx, "v1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.TotalBookings)
		assert.Equal(t, 200.0, got.TotalEarnings)
		assert.Equal(t, 30.0, got.PlatformCommission)
		assert.Equal(t, 170.0, got.NetEarnings)
	})

	t.Run("no bookings", func(t *testing.T) {
		bookings := new(MockBookingReader)
		svc := NewService(nil, bookings, nil, nil)
		bookings.On("ListSettled", ctx, "v2").Return([]domain.Booking{}, nil)

		got, err := svc.VendorEarnings(ctx, "v2")
		require.NoError(t, err)
		assert.Zero(t, got.TotalEarnings)
		assert.Zero(t, got.NetEarnings)
		assert.Equal(t, CommissionRate, got.CommissionRate)
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserCounter)
	bookings := new(MockBookingReader)
	vendors := new(MockVendorCounter)
	svc := NewService(users, bookings, vendors, nil)

	users.On("Count", ctx).Return(int64(4), nil)
	bookings.On("Count", ctx).Return(int64(3), nil)
	vendors.On("Count", ctx, domain.ApprovalStatus("")).Return(int64(2), nil)
	vendors.On("Count", ctx, domain.ApprovalPending).Return(int64(1), nil)
	bookings.On("ListSettled", ctx, "").Return([]domain.Booking{{EstimatedPrice: 499}, {EstimatedPrice: 1, FinalPrice: price(1.01)}}, nil)

	got, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &StatsResponse{
		TotalUsers:      4,
		TotalBookings:   3,
		TotalVendors:    2,
		PendingVendors:  1,
		TotalRevenue:    500.01,
		PlatformRevenue: 75,
	}, got)
	users.AssertExpectations(t)
	vendors.AssertExpectations(t)
}

func TestStats_StoreErrorStops(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserCounter)
	bookings := new(MockBookingReader)
	svc := NewService(users, bookings, new(MockVendorCounter), nil)

	boom := errors.New("store down")
	users.On("Count", ctx).Return(int64(0), boom)

	_, err := svc.Stats(ctx)
	assert.ErrorIs(t, err, boom)
	bookings.AssertNotCalled(t, "Count", mock.Anything)
}

func TestApproveAndReject(t *testing.T) {
	ctx := context.Background()
	mod := new(MockModerator)
	svc := NewService(nil, nil, nil, mod)

	mod.On("SetApprovalStatus", ctx, "p1", domain.ApprovalApproved).
		Return(&domain.VendorProfile{ID: "p1", ApprovalStatus: domain.ApprovalApproved}, nil)
	mod.On("SetApprovalStatus", ctx, "p1", domain.ApprovalRejected).
		Return(&domain.VendorProfile{ID: "p1", ApprovalStatus: domain.ApprovalRejected}, nil)

	p, err := svc.ApproveVendor(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalApproved, p.ApprovalStatus)

	p, err = svc.RejectVendor(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.ApprovalRejected, p.ApprovalStatus)
	mod.AssertExpectations(t)
}
