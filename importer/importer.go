// Package importer copies the remote feed into the transaction store.
package importer

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/UmangSachdeva/SalesReport/models"
)

//go:generate mockgen -destination=mocks/mock_importer.go -source=importer.go Fetcher,Inserter

type Fetcher interface {
	FetchTransactions(ctx context.Context) []models.Transaction
}

type Inserter interface {
	Insert(ctx context.Context, t models.Transaction) (primitive.ObjectID, error)
}

// Result is the outcome of importing the feed record at Index.
type Result struct {
	Index      int
	ID         int64
	InsertedID primitive.ObjectID
	Err        error
}

func (r Result) OK() bool {
	return r.Err == nil
}

type Importer struct {
	fetcher  Fetcher
	inserter Inserter
	log      zerolog.Logger
}

func New(fetcher Fetcher, inserter Inserter, log zerolog.Logger) *Importer {
	return &Importer{fetcher: fetcher, inserter: inserter, log: log}
}

// ImportAll fetches the feed and inserts each record independently. A failed
// insert is recorded and the batch moves on; nothing is rolled back and
// running it twice stores every record twice.
func (im *Importer) ImportAll(ctx context.Context) []Result {
	transactions := im.fetcher.FetchTransactions(ctx)
	results := make([]Result, 0, len(transactions))

	for i, t := range transactions {
		id, err := im.inserter.Insert(ctx, t)
		results = append(results, Result{Index: i, ID: t.ID, InsertedID: id, Err: err})

		if err != nil {
			im.log.Error().Err(err).Int("index", i).Int64("id", t.ID).Msg("Transaction import failed")
			continue
		}
		im.log.Debug().Int("index", i).Int64("id", t.ID).Str("object_id", id.Hex()).Str("title", t.Title).Msg("Transaction imported")
	}

	failed := Failed(results)
	im.log.Info().
		Int("fetched", len(transactions)).
		Int("imported", len(results)-failed).
		Int("failed", failed).
		Msg("Import finished")

	return results
}

// Failed counts the unsuccessful results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
