package app

import (
	"context"

	"buildconnect/internal/modules/admin"
	"buildconnect/internal/modules/auth"
	"buildconnect/internal/modules/booking"
	"buildconnect/internal/modules/catalog"
	"buildconnect/internal/modules/review"
	"buildconnect/internal/modules/vendors"
	"buildconnect/internal/repository"
	"buildconnect/internal/repository/mongostore"

	"gorm.io/gorm"
)

type UserStore interface {
	auth.UserRepository
	vendors.UserRepository
	admin.UserCounter
}

type VendorStore interface {
	vendors.ProfileRepository
	admin.VendorCounter
}

type BookingStore interface {
	booking.BookingRepository
	admin.BookingReader
}

type ReviewStore interface {
	review.ReviewRepository
	vendors.ReviewReader
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores is the persistence backend every service runs on. The SQL and
// document adapters both satisfy it.
type Stores struct {
	Users      UserStore
	Vendors    VendorStore
	Bookings   BookingStore
	Reviews    ReviewStore
	Categories catalog.CategoryRepository
	Tx         Transactor
	Ping       func(ctx context.Context) error
}

// SQLStores builds the gorm-backed stores. The schema must already be migrated.
func SQLStores(db *gorm.DB) Stores {
	users := repository.NewUserRepository(db)
	return Stores{
		Users:      users,
		Vendors:    repository.NewVendorRepository(db),
		Bookings:   repository.NewBookingRepository(db),
		Reviews:    repository.NewReviewRepository(db),
		Categories: repository.NewCategoryRepository(db),
		Tx:         repository.NewTransactor(db),
		Ping:       users.Ping,
	}
}

func MongoStores(s *mongostore.Store) Stores {
	return Stores{
		Users:      s.Users,
		Vendors:    s.Vendors,
		Bookings:   s.Bookings,
		Reviews:    s.Reviews,
		Categories: s.Categories,
		Tx:         s,
		Ping:       s.Ping,
	}
}
