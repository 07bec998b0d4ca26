package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog_api/internal/models"
)

type ProductRepository interface {
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error)
}

type productRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(coll *mongo.Collection) ProductRepository {
	return &productRepository{coll: coll}
}

func (r *productRepository) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]bson.M, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *productRepository) Insert(ctx context.Context, product *models.Product) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}
