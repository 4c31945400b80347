// FilePath: internal/repository/mongodb/mongodb.baserepo.go
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/uwnav/hub/internal/database"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Collection names, one per record family. Creation and indexing happen in
// the database bootstrap tooling, not here.
const (
	CollectionDHT        = "dht_sensor_data"
	CollectionNavigation = "navigation_data"
	CollectionMapping    = "mapping_data"
	CollectionGeneral    = "general_sensor_data"
	CollectionBatch      = "batch_data"
)

// Collections lists every collection in a stable order, used by the stats
// query.
var Collections = []string{
	CollectionDHT,
	CollectionNavigation,
	CollectionMapping,
	CollectionGeneral,
	CollectionBatch,
}

// baseRepo holds the shared connection handle and the insert plumbing common
// to all families.
type baseRepo struct {
	db        database.DB
	opTimeout time.Duration
}

// opContext bounds a single store call. The request context still cancels
// the call early when the client disconnects.
func (b *baseRepo) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.opTimeout)
}

// insertOne appends a single document and returns the hex form of the
// store-assigned ObjectID.
func (b *baseRepo) insertOne(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := b.opContext(ctx)
	defer cancel()

	res, err := b.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}
