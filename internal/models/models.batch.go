// FilePath: internal/models/models.batch.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Batch item discriminators. Each value selects the record family a batch
// item is ingested as; anything else is reported as a per-item failure.
const (
	BatchTypeDHT        = "dht"
	BatchTypeNavigation = "navigation"
	BatchTypeMapping    = "mapping"
	BatchTypeGeneral    = "general"
)

// Batch item result states.
const (
	BatchItemSuccess = "success"
	BatchItemError   = "error"
)

// BatchItemResult is the per-item outcome of a batch ingestion. Results keep
// the order of the submitted items.
type BatchItemResult struct {
	Index      int    `json:"index" bson:"index"`
	SensorType string `json:"sensor_type,omitempty" bson:"sensor_type,omitempty"`
	Status     string `json:"status" bson:"status"`
	ID         string `json:"id,omitempty" bson:"id,omitempty"`
	Collection string `json:"collection,omitempty" bson:"collection,omitempty"`
	Error      string `json:"error,omitempty" bson:"error,omitempty"`
}

// BatchRecord is the envelope persisted for every accepted batch. The items
// themselves fan out to their family collections; the envelope keeps an
// audit trail of what arrived together and how each item fared.
type BatchRecord struct {
	ID             bson.ObjectID     `json:"id,omitempty" bson:"_id,omitempty"`
	BatchTimestamp time.Time         `json:"batch_timestamp" bson:"batch_timestamp"`
	BatchSize      int               `json:"batch_size" bson:"batch_size"`
	Results        []BatchItemResult `json:"results" bson:"results"`
}
