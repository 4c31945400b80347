// FilePath: internal/models/api.models.responses.go
package models

import "time"

// IngestResponse is returned by every single-record ingestion endpoint.
// Timestamp is the receipt time actually persisted with the document.
type IngestResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// BatchResponse is returned by the batch ingestion endpoint. Results has the
// same length and order as the submitted batch.
type BatchResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Processed int               `json:"processed"`
	Failed    int               `json:"failed"`
	Results   []BatchItemResult `json:"results"`
}

// QueryResponse wraps the result of a read-back endpoint.
type QueryResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Data   any    `json:"data"`
}

// StatsResponse reports per-collection document counts.
type StatsResponse struct {
	Status      string           `json:"status"`
	Database    string           `json:"database"`
	Collections map[string]int64 `json:"collections"`
}

// ListQuery is decoded from the query string of the /data endpoints.
type ListQuery struct {
	Limit    int64  `schema:"limit"`
	SensorID string `schema:"sensor_id"`
	DeviceID string `schema:"device_id"`
}
