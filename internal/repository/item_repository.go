package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ItemRepository works in raw bson.M documents because items are
// open-shaped: partial updates may add fields the service never declared.
type ItemRepository interface {
	FindAll(ctx context.Context) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type itemRepository struct {
	coll *mongo.Collection
}

func NewItemRepository(coll *mongo.Collection) ItemRepository {
	return &itemRepository{coll: coll}
}

func (r *itemRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *itemRepository) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *itemRepository) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// UpdateByID applies a $set of exactly the given fields and reports the
// matched count; zero means no document has that id.
func (r *itemRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *itemRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
