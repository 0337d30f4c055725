package mongostore

import (
	"context"

	"buildconnect/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepo struct {
	coll *mongo.Collection
}

type categoryDoc struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	Slug        string   `bson:"slug"`
	Description string   `bson:"description"`
	Icon        string   `bson:"icon"`
	Services    []string `bson:"services"`
}

func (d categoryDoc) toDomain() domain.ServiceCategory {
	services := d.Services
	if services == nil {
		services = []string{}
	}
	return domain.ServiceCategory{
		ID:          d.ID,
		Name:        d.Name,
		Slug:        d.Slug,
		Description: d.Description,
		Icon:        d.Icon,
		Services:    services,
	}
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.ServiceCategory, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, translate(err)
	}
	return decodeAll(ctx, cur, categoryDoc.toDomain)
}

// Upsert keys on slug; the id is only written on first insert.
func (r *CategoryRepo) Upsert(ctx context.Context, c *domain.ServiceCategory) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"slug": c.Slug},
		bson.M{
			"$set": bson.M{
				"name":        c.Name,
				"description": c.Description,
				"icon":        c.Icon,
				"services":    c.Services,
			},
			"$setOnInsert": bson.M{"_id": c.ID},
		},
		options.Update().SetUpsert(true),
	)
	return translate(err)
}
