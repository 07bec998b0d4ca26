package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the document written to the products collection. The store
// assigns the ID at insertion; documents read back may carry extra fields
// from earlier writes, so reads decode into bson.M rather than this struct.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Category string             `bson:"category" json:"category"`
}
