package helpers

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoFind struct {
	sort bson.D
}

// NewMongoFind starts a find-options builder.
func NewMongoFind() *mongoFind {
	return &mongoFind{}
}

// SortBy appends a sort key; order is 1 for ascending, -1 for descending.
func (mf *mongoFind) SortBy(field string, order int) *mongoFind {
	mf.sort = append(mf.sort, bson.E{Key: field, Value: order})
	return mf
}

func (mf *mongoFind) BuildFindOptions() *options.FindOptions {
	opts := options.Find()
	if len(mf.sort) > 0 {
		opts.SetSort(mf.sort)
	}
	return opts
}
