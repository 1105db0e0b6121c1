package importer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/UmangSachdeva/SalesReport/importer"
	mock_importer "github.com/UmangSachdeva/SalesReport/importer/mocks"
	"github.com/UmangSachdeva/SalesReport/models"
)

func TestImporter_ImportAll(t *testing.T) {
	feed := []models.Transaction{
		{ID: 1, Title: "Backpack", Price: 109.95, Category: "men's clothing"},
		{ID: 2, Title: "", Price: 22.3, Category: "men's clothing"},
		{ID: 3, Title: "Jacket", Price: 55.99, Category: "men's clothing"},
	}
	insertErr := errors.New("store unavailable")

	tests := []struct {
		name       string
		feed       []models.Transaction
		insertErrs []error
		wantFailed int
	}{
		{
			name:       "all records imported",
			feed:       feed,
			insertErrs: []error{nil, nil, nil},
			wantFailed: 0,
		},
		{
			name:       "failure in the middle does not stop the batch",
			feed:       feed,
			insertErrs: []error{nil, insertErr, nil},
			wantFailed: 1,
		},
		{
			name:       "every insert fails",
			feed:       feed,
			insertErrs: []error{insertErr, insertErr, insertErr},
			wantFailed: 3,
		},
		{
			name:       "empty feed",
			feed:       []models.Transaction{},
			wantFailed: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fetcher := mock_importer.NewMockFetcher(ctrl)
			inserter := mock_importer.NewMockInserter(ctrl)

			fetcher.EXPECT().FetchTransactions(gomock.Any()).Return(tt.feed).Times(1)

			ids := make([]primitive.ObjectID, len(tt.feed))
			var calls []*gomock.Call
			for i, rec := range tt.feed {
				ids[i] = primitive.NewObjectID()
				id := ids[i]
				if tt.insertErrs[i] != nil {
					id = primitive.NilObjectID
				}
				calls = append(calls, inserter.EXPECT().Insert(gomock.Any(), rec).Return(id, tt.insertErrs[i]))
			}
			if len(calls) > 0 {
				gomock.InOrder(calls...)
			}

			var logs bytes.Buffer
			results := importer.New(fetcher, inserter, zerolog.New(&logs)).ImportAll(context.Background())

			require.Len(t, results, len(tt.feed))
			assert.Equal(t, tt.wantFailed, importer.Failed(results))
			for i, r := range results {
				assert.Equal(t, i, r.Index)
				assert.Equal(t, tt.feed[i].ID, r.ID)
				if tt.insertErrs[i] != nil {
					assert.False(t, r.OK())
					assert.ErrorIs(t, r.Err, tt.insertErrs[i])
					assert.True(t, r.InsertedID.IsZero())
				} else {
					assert.True(t, r.OK())
					assert.Equal(t, ids[i], r.InsertedID)
				}
			}
			assert.Contains(t, logs.String(), "Import finished")
		})
	}
}

func TestImporter_ImportAllTwiceDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := models.Transaction{ID: 7, Title: "Ring", Price: 9.99, Category: "jewelery"}
	fetcher := mock_importer.NewMockFetcher(ctrl)
	inserter := mock_importer.NewMockInserter(ctrl)

	fetcher.EXPECT().FetchTransactions(gomock.Any()).Return([]models.Transaction{rec}).Times(2)
	inserter.EXPECT().Insert(gomock.Any(), rec).
		DoAndReturn(func(_ context.Context, _ models.Transaction) (primitive.ObjectID, error) {
			return primitive.NewObjectID(), nil
		}).
		Times(2)

	im := importer.New(fetcher, inserter, zerolog.Nop())
	first := im.ImportAll(context.Background())
	second := im.ImportAll(context.Background())

	assert.Equal(t, 0, importer.Failed(first))
	assert.Equal(t, 0, importer.Failed(second))
	assert.NotEqual(t, first[0].InsertedID, second[0].InsertedID)
}
