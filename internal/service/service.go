package service

import (
	"catalog_api/internal/repository"
)

type Services struct {
	Product *ProductService
	Item    *ItemService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Product: NewProductService(repos.Product),
		Item:    NewItemService(repos.Item),
	}
}
