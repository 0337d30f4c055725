package booking

import (
	"testing"

	"buildconnect/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	const (
		pending    = domain.BookingPending
		assigned   = domain.BookingAssigned
		confirmed  = domain.BookingConfirmed
		inProgress = domain.BookingInProgress
		completed  = domain.BookingCompleted
		cancelled  = domain.BookingCancelled
	)

	tests := []struct {
		from, to domain.BookingStatus
		party    party
		want     bool
	}{
		// admin
		{pending, assigned, partyAdmin, true},
		{pending, completed, partyAdmin, true},
		{confirmed, inProgress, partyAdmin, true},
		{inProgress, cancelled, partyAdmin, true},
		{confirmed, pending, partyAdmin, false},
		{completed, cancelled, partyAdmin, false},
		{cancelled, pending, partyAdmin, false},

		// assigned vendor
		{pending, confirmed, partyVendor, true},
		{assigned, confirmed, partyVendor, true},
		{confirmed, inProgress, partyVendor, true},
		{inProgress, completed, partyVendor, true},
		{pending, cancelled, partyVendor, true},
		{assigned, cancelled, partyVendor, true},
		{confirmed, cancelled, partyVendor, false},
		{pending, completed, partyVendor, false},
		{confirmed, completed, partyVendor, false},
		{completed, inProgress, partyVendor, false},

		// customer
		{pending, cancelled, partyCustomer, true},
		{assigned, cancelled, partyCustomer, true},
		{confirmed, cancelled, partyCustomer, true},
		{inProgress, cancelled, partyCustomer, false},
		{pending, confirmed, partyCustomer, false},
		{pending, completed, partyCustomer, false},

		// unknown target
		{pending, domain.BookingStatus("archived"), partyAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.party.String()+"_"+string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to, tt.party))
		})
	}
}

func TestTerminalStatusesHaveNoEdges(t *testing.T) {
	all := []domain.BookingStatus{
		domain.BookingPending, domain.BookingAssigned, domain.BookingConfirmed,
		domain.BookingInProgress, domain.BookingCompleted, domain.BookingCancelled,
	}
	for _, from := range []domain.BookingStatus{domain.BookingCompleted, domain.BookingCancelled} {
		for _, to := range all {
			for _, p := range []party{partyCustomer, partyVendor, partyAdmin} {
				assert.False(t, canTransition(from, to, p), "%s -> %s by %s", from, to, p)
			}
		}
	}
}
