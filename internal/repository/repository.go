package repository

import "catalog_api/internal/storage"

type Repositories struct {
	Product ProductRepository
	Item    ItemRepository
}

func NewRepositories(db *storage.MongoDB) *Repositories {
	return &Repositories{
		Product: NewProductRepository(db.Collection("products")),
		Item:    NewItemRepository(db.Collection("items")),
	}
}
