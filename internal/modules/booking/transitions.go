package booking

import "buildconnect/internal/domain"

// party is the capacity in which a caller acts on one booking.
type party int

const (
	partyCustomer party = iota
	partyVendor
	partyAdmin
)

func (p party) String() string {
	switch p {
	case partyAdmin:
		return "admin"
	case partyVendor:
		return "vendor"
	default:
		return "customer"
	}
}

type edge struct {
	from, to domain.BookingStatus
}

// progress orders the non-cancelled statuses along the intended flow.
var progress = map[domain.BookingStatus]int{
	domain.BookingPending:    0,
	domain.BookingAssigned:   1,
	domain.BookingConfirmed:  2,
	domain.BookingInProgress: 3,
	domain.BookingCompleted:  4,
}

// vendorEdges: accept, start, finish and reject for the assigned vendor.
var vendorEdges = map[edge]bool{
	{domain.BookingPending, domain.BookingConfirmed}:    true,
	{domain.BookingAssigned, domain.BookingConfirmed}:   true,
	{domain.BookingConfirmed, domain.BookingInProgress}: true,
	{domain.BookingInProgress, domain.BookingCompleted}: true,
	{domain.BookingPending, domain.BookingCancelled}:    true,
	{domain.BookingAssigned, domain.BookingCancelled}:   true,
}

var customerEdges = map[edge]bool{
	{domain.BookingPending, domain.BookingCancelled}:   true,
	{domain.BookingAssigned, domain.BookingCancelled}:  true,
	{domain.BookingConfirmed, domain.BookingCancelled}: true,
}

// canTransition reports whether p may move a booking from one status to
// another. Terminal statuses have no outgoing edges. Admins may skip ahead
// along the flow and cancel anything still open.
func canTransition(from, to domain.BookingStatus, p party) bool {
	if from.Terminal() || from == to || !to.Valid() {
		return false
	}

	switch p {
	case partyAdmin:
		if to == domain.BookingCancelled {
			return true
		}
		fromRank, ok1 := progress[from]
		toRank, ok2 := progress[to]
		return ok1 && ok2 && toRank > fromRank
	case partyVendor:
		return vendorEdges[edge{from, to}]
	default:
		return customerEdges[edge{from, to}]
	}
}

// needsVendor lists statuses that only make sense once a vendor is assigned.
func needsVendor(s domain.BookingStatus) bool {
	switch s {
	case domain.BookingAssigned, domain.BookingConfirmed, domain.BookingInProgress, domain.BookingCompleted:
		return true
	}
	return false
}
