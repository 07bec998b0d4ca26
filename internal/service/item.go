package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"catalog_api/internal/repository"
)

type ItemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) List(ctx context.Context) ([]bson.M, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []bson.M{}
	}
	return items, nil
}

func (s *ItemService) Get(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Create stores the body as-is once name and description pass the
// presence check; fields beyond those two are kept verbatim.
func (s *ItemService) Create(ctx context.Context, body map[string]any) (primitive.ObjectID, error) {
	if !truthy(body["name"]) || !truthy(body["description"]) {
		return primitive.NilObjectID, &ValidationError{Message: "Name and description are required"}
	}
	return s.itemRepo.Insert(ctx, bson.M(body))
}

// Replace handles PUT. Despite the verb it merges exactly the provided
// fields into the document; fields absent from the body are left alone.
func (s *ItemService) Replace(ctx context.Context, id primitive.ObjectID, body map[string]any) error {
	if !truthy(body["name"]) || !truthy(body["description"]) {
		return &ValidationError{Message: "Name and description are required"}
	}
	return s.applyUpdate(ctx, id, body)
}

// Update handles PATCH: any non-empty field set is merged verbatim.
func (s *ItemService) Update(ctx context.Context, id primitive.ObjectID, body map[string]any) error {
	if len(body) == 0 {
		return &ValidationError{Message: "Update body cannot be empty"}
	}
	return s.applyUpdate(ctx, id, body)
}

func (s *ItemService) applyUpdate(ctx context.Context, id primitive.ObjectID, body map[string]any) error {
	matched, err := s.itemRepo.UpdateByID(ctx, id, bson.M(body))
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ItemService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.itemRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
