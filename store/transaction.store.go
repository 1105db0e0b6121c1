// Package store persists transactions in a MongoDB collection.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/UmangSachdeva/SalesReport/helpers"
	"github.com/UmangSachdeva/SalesReport/models"
)

type TransactionStore struct {
	collection *mongo.Collection
}

func NewTransactionStore(collection *mongo.Collection) *TransactionStore {
	return &TransactionStore{collection: collection}
}

// Insert validates and stores one transaction, returning the new document id.
// Duplicate feed ids are accepted.
func (s *TransactionStore) Insert(ctx context.Context, t models.Transaction) (primitive.ObjectID, error) {
	if err := t.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	t.ObjectID = primitive.NilObjectID
	result, err := s.collection.InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert transaction %d: %w", t.ID, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert transaction %d: unexpected id type %T", t.ID, result.InsertedID)
	}
	return id, nil
}

// FindAll returns every stored transaction in insertion order.
func (s *TransactionStore) FindAll(ctx context.Context) ([]models.Transaction, error) {
	opts := helpers.NewMongoFind().SortBy("_id", 1).BuildFindOptions()

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer cursor.Close(ctx)

	transactions := []models.Transaction{}
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return transactions, nil
}
