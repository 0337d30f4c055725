// Package mongostore implements the marketplace repositories on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"buildconnect/internal/pkg/apperr"
	"buildconnect/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection      = "users"
	vendorsCollection    = "vendor_profiles"
	bookingsCollection   = "bookings"
	reviewsCollection    = "reviews"
	categoriesCollection = "service_categories"
)

// Store groups the collection-backed repositories of one database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Users      *UserRepo
	Vendors    *VendorRepo
	Bookings   *BookingRepo
	Reviews    *ReviewRepo
	Categories *CategoryRepo
}

// New wires the repositories and makes sure the indexes exist.
func New(ctx context.Context, client *mongo.Client, dbName string) (*Store, error) {
	db := client.Database(dbName)
	s := &Store{
		client:     client,
		db:         db,
		Users:      &UserRepo{coll: db.Collection(usersCollection)},
		Vendors:    &VendorRepo{coll: db.Collection(vendorsCollection)},
		Bookings:   &BookingRepo{coll: db.Collection(bookingsCollection)},
		Reviews:    &ReviewRepo{coll: db.Collection(reviewsCollection)},
		Categories: &CategoryRepo{coll: db.Collection(categoriesCollection)},
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	unique := func(key string) mongo.IndexModel {
		return mongo.IndexModel{Keys: bson.D{{Key: key, Value: 1}}, Options: options.Index().SetUnique(true)}
	}
	plain := func(key string) mongo.IndexModel {
		return mongo.IndexModel{Keys: bson.D{{Key: key, Value: 1}}}
	}

	indexes := map[string][]mongo.IndexModel{
		usersCollection:      {unique("email")},
		vendorsCollection:    {unique("user_id"), plain("approval_status")},
		bookingsCollection:   {plain("customer_id"), plain("vendor_id"), plain("status")},
		reviewsCollection:    {unique("booking_id"), plain("vendor_id")},
		categoriesCollection: {unique("slug")},
	}
	for name, models := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// Ping checks that the primary answers.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, nil); err != nil {
		return apperr.Transient(err)
	}
	return nil
}

// WithinTx runs fn in a session transaction. Transactions need a replica
// set; a standalone server rejects them.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return apperr.Transient(err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	default:
		return apperr.Transient(err)
	}
}

func decodeAll[D any, T any](ctx context.Context, cur *mongo.Cursor, conv func(D) T) ([]T, error) {
	defer cur.Close(ctx)

	out := []T{}
	for cur.Next(ctx) {
		var d D
		if err := cur.Decode(&d); err != nil {
			return nil, apperr.Transient(err)
		}
		out = append(out, conv(d))
	}
	if err := cur.Err(); err != nil {
		return nil, apperr.Transient(err)
	}
	return out, nil
}
