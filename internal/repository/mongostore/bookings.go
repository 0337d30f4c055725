package mongostore

import (
	"context"
	"time"

	"buildconnect/internal/domain"
	"buildconnect/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo struct {
	coll *mongo.Collection
}

type bookingDoc struct {
	ID              string    `bson:"_id"`
	CustomerID      string    `bson:"customer_id"`
	VendorID        *string   `bson:"vendor_id"`
	ServiceName     string    `bson:"service_name"`
	ServiceCategory string    `bson:"service_category"`
	BookingDate     string    `bson:"booking_date"`
	TimeSlot        string    `bson:"time_slot"`
	Location        string    `bson:"location"`
	Pincode         string    `bson:"pincode"`
	Description     string    `bson:"description"`
	Status          string    `bson:"status"`
	PricingType     string    `bson:"pricing_type"`
	EstimatedPrice  float64   `bson:"estimated_price"`
	FinalPrice      *float64  `bson:"final_price"`
	PaymentStatus   string    `bson:"payment_status"`
	PaymentMethod   *string   `bson:"payment_method"`
	CreatedAt       time.Time `bson:"created_at"`
}

func (d bookingDoc) toDomain() domain.Booking {
	return domain.Booking{
		ID:              d.ID,
		CustomerID:      d.CustomerID,
		VendorID:        d.VendorID,
		ServiceName:     d.ServiceName,
		ServiceCategory: d.ServiceCategory,
		BookingDate:     d.BookingDate,
		TimeSlot:        d.TimeSlot,
		Location:        d.Location,
		Pincode:         d.Pincode,
		Description:     d.Description,
		Status:          domain.BookingStatus(d.Status),
		PricingType:     domain.PricingType(d.PricingType),
		EstimatedPrice:  d.EstimatedPrice,
		FinalPrice:      d.FinalPrice,
		PaymentStatus:   domain.PaymentStatus(d.PaymentStatus),
		PaymentMethod:   d.PaymentMethod,
		CreatedAt:       d.CreatedAt,
	}
}

func toBookingDoc(b *domain.Booking) bookingDoc {
	return bookingDoc{
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		VendorID:        b.VendorID,
		ServiceName:     b.ServiceName,
		ServiceCategory: b.ServiceCategory,
		BookingDate:     b.BookingDate,
		TimeSlot:        b.TimeSlot,
		Location:        b.Location,
		Pincode:         b.Pincode,
		Description:     b.Description,
		Status:          string(b.Status),
		PricingType:     string(b.PricingType),
		EstimatedPrice:  b.EstimatedPrice,
		FinalPrice:      b.FinalPrice,
		PaymentStatus:   string(b.PaymentStatus),
		PaymentMethod:   b.PaymentMethod,
		CreatedAt:       b.CreatedAt,
	}
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	_, err := r.coll.InsertOne(ctx, toBookingDoc(b))
	return translate(err)
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var d bookingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return nil, translate(err)
	}
	b := d.toDomain()
	return &b, nil
}

func (r *BookingRepo) List(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	filter := bson.M{}
	if f.CustomerID != "" {
		filter["customer_id"] = f.CustomerID
	}
	if f.VendorID != "" {
		filter["vendor_id"] = f.VendorID
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}))
}

func (r *BookingRepo) ListSettled(ctx context.Context, vendorID string) ([]domain.Booking, error) {
	filter := bson.M{
		"status":         string(domain.BookingCompleted),
		"payment_status": string(domain.PaymentPaid),
	}
	if vendorID != "" {
		filter["vendor_id"] = vendorID
	}
	return r.find(ctx, filter, options.Find())
}

func (r *BookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Booking, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	return decodeAll(ctx, cur, bookingDoc.toDomain)
}

func (r *BookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": b.ID}, bson.M{"$set": bson.M{
		"status":         string(b.Status),
		"vendor_id":      b.VendorID,
		"final_price":    b.FinalPrice,
		"payment_status": string(b.PaymentStatus),
		"payment_method": b.PaymentMethod,
	}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BookingRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	return n, translate(err)
}
