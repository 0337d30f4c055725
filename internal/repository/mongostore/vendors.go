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

type VendorRepo struct {
	coll *mongo.Collection
}

type vendorDoc struct {
	ID              string            `bson:"_id"`
	UserID          string            `bson:"user_id"`
	Services        []string          `bson:"services"`
	ExperienceYears int               `bson:"experience_years"`
	Bio             string            `bson:"bio"`
	Availability    map[string]string `bson:"availability"`
	HourlyRate      *float64          `bson:"hourly_rate"`
	FixedRate       *float64          `bson:"fixed_rate"`
	ApprovalStatus  string            `bson:"approval_status"`
	Rating          float64           `bson:"rating"`
	TotalReviews    int               `bson:"total_reviews"`
	CreatedAt       time.Time         `bson:"created_at"`
}

func (d vendorDoc) toDomain() domain.VendorProfile {
	services := d.Services
	if services == nil {
		services = []string{}
	}
	availability := domain.Availability(d.Availability)
	if availability == nil {
		availability = domain.Availability{}
	}
	return domain.VendorProfile{
		ID:              d.ID,
		UserID:          d.UserID,
		Services:        services,
		ExperienceYears: d.ExperienceYears,
		Bio:             d.Bio,
		Availability:    availability,
		HourlyRate:      d.HourlyRate,
		FixedRate:       d.FixedRate,
		ApprovalStatus:  domain.ApprovalStatus(d.ApprovalStatus),
		Rating:          d.Rating,
		TotalReviews:    d.TotalReviews,
		CreatedAt:       d.CreatedAt,
	}
}

func (r *VendorRepo) Create(ctx context.Context, p *domain.VendorProfile) error {
	doc := vendorDoc{
		ID:              p.ID,
		UserID:          p.UserID,
		Services:        p.Services,
		ExperienceYears: p.ExperienceYears,
		Bio:             p.Bio,
		Availability:    p.Availability,
		HourlyRate:      p.HourlyRate,
		FixedRate:       p.FixedRate,
		ApprovalStatus:  string(p.ApprovalStatus),
		Rating:          p.Rating,
		TotalReviews:    p.TotalReviews,
		CreatedAt:       p.CreatedAt,
	}
	_, err := r.coll.InsertOne(ctx, doc)
	return translate(err)
}

func (r *VendorRepo) GetByID(ctx context.Context, id string) (*domain.VendorProfile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *VendorRepo) GetByUserID(ctx context.Context, userID string) (*domain.VendorProfile, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *VendorRepo) findOne(ctx context.Context, filter bson.M) (*domain.VendorProfile, error) {
	var d vendorDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		return nil, translate(err)
	}
	p := d.toDomain()
	return &p, nil
}

func (r *VendorRepo) List(ctx context.Context, f repository.VendorFilter) ([]domain.VendorProfile, error) {
	filter := bson.M{}
	if f.ApprovalStatus != "" {
		filter["approval_status"] = string(f.ApprovalStatus)
	}
	if f.Service != "" {
		// Matches any array element equal to f.Service.
		filter["services"] = f.Service
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	return decodeAll(ctx, cur, vendorDoc.toDomain)
}

func (r *VendorRepo) SetApprovalStatus(ctx context.Context, id string, status domain.ApprovalStatus) error {
	return r.update(ctx, bson.M{"_id": id}, bson.M{"approval_status": string(status)})
}

func (r *VendorRepo) UpdateRating(ctx context.Context, userID string, rating float64, total int) error {
	return r.update(ctx, bson.M{"user_id": userID}, bson.M{"rating": rating, "total_reviews": total})
}

func (r *VendorRepo) update(ctx context.Context, filter, set bson.M) error {
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VendorRepo) Count(ctx context.Context, status domain.ApprovalStatus) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["approval_status"] = string(status)
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	return n, translate(err)
}
