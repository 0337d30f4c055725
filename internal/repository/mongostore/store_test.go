package mongostore

import (
	"errors"
	"testing"

	"buildconnect/internal/domain"
	"buildconnect/internal/pkg/apperr"
	"buildconnect/internal/repository"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(mongo.ErrNoDocuments), repository.ErrNotFound)

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, translate(dup), repository.ErrDuplicate)

	err := translate(errors.New("connection reset"))
	assert.Equal(t, apperr.KindTransient, apperr.KindOf(err))
}

func TestVendorDocToDomain_FillsEmptyCollections(t *testing.T) {
	p := vendorDoc{ID: "v1", UserID: "u1", ApprovalStatus: "pending"}.toDomain()

	assert.Equal(t, []string{}, p.Services)
	assert.Equal(t, domain.Availability{}, p.Availability)
	assert.Equal(t, domain.ApprovalPending, p.ApprovalStatus)
}

func TestBookingDocRoundTrip(t *testing.T) {
	vendor := "vendor-1"
	price := 450.0
	in := &domain.Booking{
		ID:             "b1",
		CustomerID:     "c1",
		VendorID:       &vendor,
		Status:         domain.BookingInProgress,
		PricingType:    domain.PricingHourly,
		EstimatedPrice: 499,
		FinalPrice:     &price,
		PaymentStatus:  domain.PaymentUnpaid,
	}

	out := toBookingDoc(in).toDomain()
	assert.Equal(t, *in, out)
}
