package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog_api/internal/models"
	"catalog_api/internal/repository"
)

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductListOptions holds the raw query parameters of the listing route.
type ProductListOptions struct {
	Category string
	MinPrice string
	Sort     string
	Fields   string
}

// List fetches all products matching the options. Category and minPrice
// combine as independent predicates; an unparsable minPrice is ignored,
// as is any sort value other than "price".
func (s *ProductService) List(ctx context.Context, opts ProductListOptions) ([]bson.M, error) {
	filter := bson.M{}
	if opts.Category != "" {
		filter["category"] = opts.Category
	}
	if opts.MinPrice != "" {
		if min, err := strconv.ParseFloat(opts.MinPrice, 64); err == nil {
			filter["price"] = bson.M{"$gte": min}
		}
	}

	findOpts := options.Find()
	if opts.Fields != "" {
		projection := bson.M{}
		for _, field := range strings.Split(opts.Fields, ",") {
			if field = strings.TrimSpace(field); field != "" {
				projection[field] = 1
			}
		}
		findOpts.SetProjection(projection)
	}
	if opts.Sort == "price" {
		findOpts.SetSort(bson.D{{Key: "price", Value: 1}})
	}

	products, err := s.productRepo.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []bson.M{}
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

// CreateProductInput is the create request body. Price stays untyped so a
// numeric string like "10" can be coerced before storing.
type CreateProductInput struct {
	Name     string `json:"name"`
	Price    any    `json:"price"`
	Category string `json:"category"`
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (primitive.ObjectID, error) {
	if input.Name == "" || !truthy(input.Price) || input.Category == "" {
		return primitive.NilObjectID, &ValidationError{Message: "Name, price and category are required"}
	}

	price, ok := coerceNumber(input.Price)
	if !ok {
		return primitive.NilObjectID, &ValidationError{Message: "Price must be a number"}
	}

	product := &models.Product{
		Name:     input.Name,
		Price:    price,
		Category: input.Category,
	}
	return s.productRepo.Insert(ctx, product)
}
