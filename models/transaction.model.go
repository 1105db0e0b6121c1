package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

// Transaction is one product transaction as delivered by the remote feed and
// stored in the transactions collection. ID is the feed's identifier; the
// store does not enforce its uniqueness.
type Transaction struct {
	ObjectID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ID          int64              `json:"id" bson:"id"`
	Title       string             `json:"title" bson:"title"`
	Price       float64            `json:"price" bson:"price"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Sold        bool               `json:"sold" bson:"sold"`
	DateOfSale  *time.Time         `json:"dateOfSale,omitempty" bson:"dateOfSale,omitempty"`
}

// Validate checks the fields required to persist a transaction.
func (t Transaction) Validate() error {
	switch {
	case t.ID <= 0:
		return fmt.Errorf("%w: id is required", ErrInvalidTransaction)
	case t.Title == "":
		return fmt.Errorf("%w: title is required", ErrInvalidTransaction)
	case t.Category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidTransaction)
	case t.Price < 0:
		return fmt.Errorf("%w: price %v is negative", ErrInvalidTransaction, t.Price)
	}
	return nil
}
