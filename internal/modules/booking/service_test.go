package booking

import (
	"context"
	"testing"

	"buildconnect/internal/database/dbtest"
	"buildconnect/internal/domain"
	"buildconnect/internal/pkg/apperr"
	"buildconnect/internal/pkg/validator"
	"buildconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type approvedSet map[string]bool

func (a approvedSet) IsApprovedVendor(_ context.Context, userID string) (bool, error) {
	return a[userID], nil
}

const (
	customerID = "customer-1"
	otherID    = "customer-2"
	vendorID   = "vendor-1"
	pendingID  = "vendor-pending"
	adminID    = "admin-1"
)

func setup(t *testing.T) *Service {
	t.Helper()
	db := dbtest.Open(t)
	return NewService(
		repository.NewBookingRepository(db),
		approvedSet{vendorID: true},
		zap.NewNop(),
	)
}

func ptr[T any](v T) *T { return &v }

func createBooking(t *testing.T, svc *Service) *domain.Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), customerID, CreateBookingRequest{
		ServiceName:     "Plumber",
		ServiceCategory: "plumbing",
		BookingDate:     "2026-11-02",
		TimeSlot:        "10:00-12:00",
		Location:        "12 Main St",
		Pincode:         "560001",
		EstimatedPrice:  ptr(499.0),
	})
	require.NoError(t, err)
	return b
}

func update(t *testing.T, svc *Service, id string, req UpdateBookingRequest, requester string, role domain.UserRole) (*domain.Booking, error) {
	t.Helper()
	return svc.Update(context.Background(), id, req, requester, role)
}

func TestCreate_Defaults(t *testing.T) {
	svc := setup(t)
	b := createBooking(t, svc)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)
	assert.Equal(t, domain.PricingFixed, b.PricingType)
	assert.Equal(t, 499.0, b.EstimatedPrice)
	assert.Nil(t, b.VendorID)
	assert.Nil(t, b.FinalPrice)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestGet_Ownership(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()
	b := createBooking(t, svc)

	got, err := svc.Get(ctx, b.ID, customerID, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = svc.Get(ctx, b.ID, otherID, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	_, err = svc.Get(ctx, b.ID, vendorID, domain.RoleVendor)
	assert.ErrorIs(t, err, ErrForbidden, "unassigned vendor")

	_, err = svc.Get(ctx, b.ID, adminID, domain.RoleAdmin)
	assert.NoError(t, err)

	_, err = svc.Get(ctx, "missing", adminID, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_ScopedByRole(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()
	b := createBooking(t, svc)
	createBooking(t, svc)

	_, err := update(t, svc, b.ID, UpdateBookingRequest{VendorID: ptr(vendorID)}, adminID, domain.RoleAdmin)
	require.NoError(t, err)

	mine, err := svc.List(ctx, customerID, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.List(ctx, otherID, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Empty(t, theirs)

	assigned, err := svc.List(ctx, vendorID, domain.RoleVendor)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, b.ID, assigned[0].ID)

	all, err := svc.List(ctx, adminID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdate_AssigningVendorMovesPendingToAssigned(t *testing.T) {
	svc := setup(t)
	b := createBooking(t, svc)

	got, err := update(t, svc, b.ID, UpdateBookingRequest{VendorID: ptr(vendorID)}, adminID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingAssigned, got.Status)
	assert.True(t, got.IsAssignedTo(vendorID))
}

func TestUpdate_AdminCompletesInOneStep(t *testing.T) {
	svc := setup(t)
	b := createBooking(t, svc)

	got, err := update(t, svc, b.ID, UpdateBookingRequest{
		VendorID:      ptr(vendorID),
		Status:        ptr(domain.BookingCompleted),
		PaymentStatus: ptr(domain.PaymentPaid),
	}, adminID, domain.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, got.Status)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, 499.0, got.EstimatedPrice)

	stored, err := svc.Get(context.Background(), b.ID, customerID, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, stored.Status)
}

func TestUpdate_VendorLifecycle(t *testing.T) {
	svc := setup(t)
	b := createBooking(t, svc)
	_, err := update(t, svc, b.ID, UpdateBookingRequest{VendorID: ptr(vendorID)}, adminID, domain.RoleAdmin)
	require.NoError(t, err)

	for _, next := range []domain.BookingStatus{domain.BookingConfirmed, domain.BookingInProgress, domain.BookingCompleted} {
		got, err := update(t, svc, b.ID, UpdateBookingRequest{Status: ptr(next)}, vendorID, domain.RoleVendor)
		require.NoError(t, err, "to %s", next)
		assert.Equal(t, next, got.Status)
	}

	got, err := update(t, svc, b.ID, UpdateBookingRequest{FinalPrice: ptr(550.0), PaymentStatus: ptr(domain.PaymentPaid)}, vendorID, domain.RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, 550.0, got.Charge())

	_, err = update(t, svc, b.ID, UpdateBookingRequest{Status: ptr(domain.BookingCancelled)}, adminID, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidTransition, "completed is terminal")
}

func TestUpdate_RejectsDisallowedEdges(t *testing.T) {
	svc := setup(t)
	b := createBooking(t, svc)

	_, err := update(t, svc, b.ID, UpdateBookingRequest{Status: ptr(domain.BookingCompleted)}, customerID, domain.RoleCustomer)
	require.ErrorIs(t, err, ErrInvalidTransition)
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "pending", ae.Details["from"])
	assert.Equal(t, "completed", ae.Details["to"])

	_, err = update(t, svc, b.ID, UpdateBookingRequest{Status: ptr(domain.BookingConfirmed)}, adminID, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrVendorRequired)

	got, err := update(t, svc, b.ID, UpdateBookingRequest{Status: ptr(domain.BookingCancelled)}, customerID, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)

	_, err = update(t, svc, b.ID, UpdateBookingRequest{VendorID: ptr(vendorID)}, adminID, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrBookingClosed)
}

func TestUpdate_FieldPermissions(t *testing.T) {
	svc := setup(t)
	b := createBooking(t, svc)

	cases := []struct {
		name      string
		req       UpdateBookingRequest
		requester string
		role      domain.UserRole
		want      error
	}{
		{"customer assigns vendor", UpdateBookingRequest{VendorID: ptr(vendorID)}, customerID, domain.RoleCustomer, ErrFieldNotAllowed},
		{"customer sets final price", UpdateBookingRequest{FinalPrice: ptr(1.0)}, customerID, domain.RoleCustomer, ErrFieldNotAllowed},
		{"customer marks paid", UpdateBookingRequest{PaymentStatus: ptr(domain.PaymentPaid)}, customerID, domain.RoleCustomer, ErrFieldNotAllowed},
		{"stranger", UpdateBookingRequest{PaymentMethod: ptr("cash")}, otherID, domain.RoleCustomer, ErrForbidden},
		{"unapproved vendor", UpdateBookingRequest{VendorID: ptr(pendingID)}, adminID, domain.RoleAdmin, ErrVendorNotApproved},
		{"empty body", UpdateBookingRequest{}, adminID, domain.RoleAdmin, ErrNothingToUpdate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := update(t, svc, b.ID, tc.req, tc.requester, tc.role)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	got, err := update(t, svc, b.ID, UpdateBookingRequest{PaymentMethod: ptr("upi")}, customerID, domain.RoleCustomer)
	require.NoError(t, err)
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, "upi", *got.PaymentMethod)

	_, err = update(t, svc, "missing", UpdateBookingRequest{PaymentMethod: ptr("upi")}, adminID, domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdate_OnlyAdminRevertsPayment(t *testing.T) {
	svc := setup(t)
	b := createBooking(t, svc)
	_, err := update(t, svc, b.ID, UpdateBookingRequest{VendorID: ptr(vendorID), PaymentStatus: ptr(domain.PaymentPaid)}, adminID, domain.RoleAdmin)
	require.NoError(t, err)

	_, err = update(t, svc, b.ID, UpdateBookingRequest{PaymentStatus: ptr(domain.PaymentUnpaid)}, vendorID, domain.RoleVendor)
	assert.ErrorIs(t, err, ErrFieldNotAllowed)

	got, err := update(t, svc, b.ID, UpdateBookingRequest{PaymentStatus: ptr(domain.PaymentUnpaid)}, adminID, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentUnpaid, got.PaymentStatus)
}

func TestUpdate_EmptyBodyHasOwnCode(t *testing.T) {
	svc := setup(t)
	b := createBooking(t, svc)

	_, err := update(t, svc, b.ID, UpdateBookingRequest{}, adminID, domain.RoleAdmin)
	require.ErrorIs(t, err, ErrNothingToUpdate)
	assert.NotErrorIs(t, err, validator.ErrValidation)

	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "NOTHING_TO_UPDATE", ae.Code)
	assert.Equal(t, apperr.KindValidation, ae.Kind)
}
