package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nutriplan/internal/model"
)

// CatalogRepo stores the published questionnaire template. The engine reads
// its catalog from code; this document is the operational record written by
// the seeder and served to tooling.
type CatalogRepo interface {
	Publish(ctx context.Context, template *model.CatalogTemplate) error
	GetLatest(ctx context.Context) (*model.CatalogTemplate, error)
}

type catalogRepo struct {
	collection *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		collection: db.Collection("catalog_templates"),
	}
}

func (r *catalogRepo) Publish(ctx context.Context, template *model.CatalogTemplate) error {
	template.PublishedAt = time.Now()

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"version": template.Version},
		template,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (r *catalogRepo) GetLatest(ctx context.Context) (*model.CatalogTemplate, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "publishedAt", Value: -1}})

	var template model.CatalogTemplate
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&template)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &template, nil
}
