package mongostore

import (
	"context"
	"time"

	"buildconnect/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewRepo struct {
	coll *mongo.Collection
}

type reviewDoc struct {
	ID         string    `bson:"_id"`
	BookingID  string    `bson:"booking_id"`
	CustomerID string    `bson:"customer_id"`
	VendorID   string    `bson:"vendor_id"`
	Rating     int       `bson:"rating"`
	Comment    string    `bson:"comment"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d reviewDoc) toDomain() domain.Review {
	return domain.Review{
		ID:         d.ID,
		BookingID:  d.BookingID,
		CustomerID: d.CustomerID,
		VendorID:   d.VendorID,
		Rating:     d.Rating,
		Comment:    d.Comment,
		CreatedAt:  d.CreatedAt,
	}
}

func (r *ReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	_, err := r.coll.InsertOne(ctx, reviewDoc{
		ID:         rv.ID,
		BookingID:  rv.BookingID,
		CustomerID: rv.CustomerID,
		VendorID:   rv.VendorID,
		Rating:     rv.Rating,
		Comment:    rv.Comment,
		CreatedAt:  rv.CreatedAt,
	})
	return translate(err)
}

func (r *ReviewRepo) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"booking_id": bookingID}, options.Count().SetLimit(1))
	if err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (r *ReviewRepo) ListByVendor(ctx context.Context, vendorID string) ([]domain.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"vendor_id": vendorID}, opts)
	if err != nil {
		return nil, translate(err)
	}
	return decodeAll(ctx, cur, reviewDoc.toDomain)
}
