// FilePath: internal/repository/mongodb/mongodb.readings.go
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/uwnav/hub/internal/database"
	"github.com/uwnav/hub/internal/models"
	"github.com/uwnav/hub/internal/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ReadingRepository is the MongoDB implementation of
// repository.ReadingRepository. It is stateless beyond the injected
// connection handle and safe for concurrent use.
type ReadingRepository struct {
	baseRepo
}

// NewReadingRepository creates a new MongoDB-backed reading repository. Every
// store call is bounded by opTimeout; a non-positive value disables the bound.
func NewReadingRepository(db database.DB, opTimeout time.Duration) *ReadingRepository {
	return &ReadingRepository{baseRepo{db: db, opTimeout: opTimeout}}
}

func (r *ReadingRepository) InsertDHT(ctx context.Context, reading *models.DHTReading) (string, error) {
	return r.insertOne(ctx, CollectionDHT, reading)
}

func (r *ReadingRepository) InsertNavigation(ctx context.Context, reading *models.NavigationReading) (string, error) {
	return r.insertOne(ctx, CollectionNavigation, reading)
}

func (r *ReadingRepository) InsertMapping(ctx context.Context, reading *models.MappingReading) (string, error) {
	return r.insertOne(ctx, CollectionMapping, reading)
}

func (r *ReadingRepository) InsertGeneral(ctx context.Context, reading *models.GeneralReading) (string, error) {
	return r.insertOne(ctx, CollectionGeneral, reading)
}

func (r *ReadingRepository) InsertBatchRecord(ctx context.Context, record *models.BatchRecord) (string, error) {
	return r.insertOne(ctx, CollectionBatch, record)
}

// findOptions builds the shared sort/limit options: most recent first, ties
// left in the order the store returns them.
func findOptions(filter repository.ListFilter) *options.FindOptionsBuilder {
	return options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(filter.Limit)
}

func (r *ReadingRepository) ListDHT(ctx context.Context, filter repository.ListFilter) ([]models.DHTReading, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	query := bson.M{}
	if filter.SensorID != "" {
		query["sensor_id"] = filter.SensorID
	}

	cursor, err := r.db.Collection(CollectionDHT).Find(ctx, query, findOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", CollectionDHT, err)
	}
	defer cursor.Close(ctx)

	readings := []models.DHTReading{}
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", CollectionDHT, err)
	}
	return readings, nil
}

func (r *ReadingRepository) ListNavigation(ctx context.Context, filter repository.ListFilter) ([]models.NavigationReading, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	query := bson.M{}
	if filter.DeviceID != "" {
		query["device_id"] = filter.DeviceID
	}

	cursor, err := r.db.Collection(CollectionNavigation).Find(ctx, query, findOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", CollectionNavigation, err)
	}
	defer cursor.Close(ctx)

	readings := []models.NavigationReading{}
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", CollectionNavigation, err)
	}
	return readings, nil
}

func (r *ReadingRepository) ListMapping(ctx context.Context, filter repository.ListFilter) ([]models.MappingReading, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	query := bson.M{}
	if filter.SensorID != "" {
		query["sensor_id"] = filter.SensorID
	}

	cursor, err := r.db.Collection(CollectionMapping).Find(ctx, query, findOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", CollectionMapping, err)
	}
	defer cursor.Close(ctx)

	readings := []models.MappingReading{}
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", CollectionMapping, err)
	}
	return readings, nil
}

// CollectionCounts returns the current document count of every collection.
// Each count is bounded separately so one slow collection cannot consume the
// whole budget.
func (r *ReadingRepository) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(Collections))
	for _, name := range Collections {
		n, err := r.countCollection(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

func (r *ReadingRepository) countCollection(ctx context.Context, name string) (int64, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()
	return r.db.Collection(name).CountDocuments(ctx, bson.D{})
}

// Ping verifies the store connection for the health endpoint
func (r *ReadingRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()
	return r.db.Ping(ctx)
}
