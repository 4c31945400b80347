// FilePath: internal/hubservice/hubservice_test.go
package hubservice

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uwnav/hub/internal/errors"
	"github.com/uwnav/hub/internal/models"
	"github.com/uwnav/hub/internal/repository"
	"github.com/uwnav/hub/internal/repository/mongodb"
)

// fakeReadingRepo is an in-memory repository.ReadingRepository. It records
// every insert and the filters passed to the list calls.
type fakeReadingRepo struct {
	nextID int

	dht        []models.DHTReading
	navigation []models.NavigationReading
	mapping    []models.MappingReading
	general    []models.GeneralReading
	batches    []models.BatchRecord

	lastFilter repository.ListFilter

	insertErr error
	listErr   error
	countErr  error
	pingErr   error
}

func (f *fakeReadingRepo) assignID() string {
	f.nextID++
	return fmt.Sprintf("fake-id-%d", f.nextID)
}

func (f *fakeReadingRepo) InsertDHT(_ context.Context, reading *models.DHTReading) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.dht = append(f.dht, *reading)
	return f.assignID(), nil
}

func (f *fakeReadingRepo) InsertNavigation(_ context.Context, reading *models.NavigationReading) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.navigation = append(f.navigation, *reading)
	return f.assignID(), nil
}

func (f *fakeReadingRepo) InsertMapping(_ context.Context, reading *models.MappingReading) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.mapping = append(f.mapping, *reading)
	return f.assignID(), nil
}

func (f *fakeReadingRepo) InsertGeneral(_ context.Context, reading *models.GeneralReading) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.general = append(f.general, *reading)
	return f.assignID(), nil
}

func (f *fakeReadingRepo) InsertBatchRecord(_ context.Context, record *models.BatchRecord) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.batches = append(f.batches, *record)
	return f.assignID(), nil
}

func (f *fakeReadingRepo) ListDHT(_ context.Context, filter repository.ListFilter) ([]models.DHTReading, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []models.DHTReading{}, nil
}

func (f *fakeReadingRepo) ListNavigation(_ context.Context, filter repository.ListFilter) ([]models.NavigationReading, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []models.NavigationReading{}, nil
}

func (f *fakeReadingRepo) ListMapping(_ context.Context, filter repository.ListFilter) ([]models.MappingReading, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []models.MappingReading{}, nil
}

func (f *fakeReadingRepo) CollectionCounts(_ context.Context) (map[string]int64, error) {
	if f.countErr != nil {
		return nil, f.countErr
	}
	counts := map[string]int64{
		mongodb.CollectionDHT:        int64(len(f.dht)),
		mongodb.CollectionNavigation: int64(len(f.navigation)),
		mongodb.CollectionMapping:    int64(len(f.mapping)),
		mongodb.CollectionGeneral:    int64(len(f.general)),
		mongodb.CollectionBatch:      int64(len(f.batches)),
	}
	return counts, nil
}

func (f *fakeReadingRepo) Ping(_ context.Context) error {
	return f.pingErr
}

func newTestService(repo *fakeReadingRepo) *HubService {
	return New(repo, nil)
}

func float64Ptr(v float64) *float64 {
	return &v
}

func TestIngestDHTStampsTimestampAfterValidation(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	before := time.Now().UTC()
	result, err := svc.IngestDHT(context.Background(), &models.DHTReading{
		SensorID:    "dht_001",
		Temperature: float64Ptr(20.5),
		Humidity:    float64Ptr(75.0),
	})
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.Equal(t, "fake-id-1", result.ID)
	assert.False(t, result.Timestamp.Before(before))
	assert.False(t, result.Timestamp.After(after))

	require.Len(t, repo.dht, 1)
	assert.Equal(t, result.Timestamp, repo.dht[0].Timestamp.Time)
}

func TestIngestDHTKeepsClientTimestamp(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	ts := time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)
	result, err := svc.IngestDHT(context.Background(), &models.DHTReading{
		SensorID:    "dht_001",
		Temperature: float64Ptr(18.5),
		Humidity:    float64Ptr(85.3),
		Timestamp:   models.Timestamp{Time: ts},
	})

	require.NoError(t, err)
	assert.Equal(t, ts, result.Timestamp)
}

func TestIngestDHTValidationFailureWritesNothing(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	_, err := svc.IngestDHT(context.Background(), &models.DHTReading{
		SensorID:    "dht_001",
		Temperature: float64Ptr(20.5),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "humidity")

	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"field": "humidity"}, apiErr.Details)

	assert.Empty(t, repo.dht)
}

func TestIngestDHTStoreFailureIsGeneric(t *testing.T) {
	repo := &fakeReadingRepo{insertErr: fmt.Errorf("connection reset by mongod at 10.0.0.7")}
	svc := newTestService(repo)

	_, err := svc.IngestDHT(context.Background(), &models.DHTReading{
		SensorID:    "dht_001",
		Temperature: float64Ptr(20.5),
		Humidity:    float64Ptr(75.0),
	})

	require.Error(t, err)
	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeDatabase, apiErr.Type)
	// The caller-facing message must not leak store internals.
	assert.NotContains(t, apiErr.Message, "mongod")
}

func TestIngestNavigationRequiresPose(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	_, err := svc.IngestNavigation(context.Background(), &models.NavigationReading{
		DeviceID: "auv_001",
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
	assert.Empty(t, repo.navigation)
}

func batchItems(t *testing.T, payloads ...string) []json.RawMessage {
	t.Helper()
	items := make([]json.RawMessage, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, json.RawMessage(p))
	}
	return items
}

func TestIngestBatchIsolatesItemFailures(t *testing.T) {
	// The malformed item sits in the middle; its neighbours must land.
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	results := svc.IngestBatch(context.Background(), batchItems(t,
		`{"sensor_type":"dht","sensor_id":"dht_001","temperature":19.2,"humidity":82.1}`,
		`{"sensor_type":"dht","sensor_id":"dht_002","temperature":19.2}`,
		`{"sensor_type":"general","sensor_id":"pressure_001","data":{"pressure":3.12}}`,
	))

	require.Len(t, results, 3)
	assert.Equal(t, models.BatchItemSuccess, results[0].Status)
	assert.Equal(t, models.BatchItemError, results[1].Status)
	assert.Contains(t, results[1].Error, "humidity")
	assert.Equal(t, models.BatchItemSuccess, results[2].Status)

	assert.Len(t, repo.dht, 1)
	assert.Len(t, repo.general, 1)
	// One envelope per batch, regardless of item failures.
	require.Len(t, repo.batches, 1)
	assert.Equal(t, 3, repo.batches[0].BatchSize)
}

func TestIngestBatchUnknownDiscriminator(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	results := svc.IngestBatch(context.Background(), batchItems(t,
		`{"sensor_type":"imu","sensor_id":"imu_001"}`,
		`{"sensor_id":"no_type_001"}`,
	))

	require.Len(t, results, 2)
	assert.Equal(t, models.BatchItemError, results[0].Status)
	assert.Contains(t, results[0].Error, `unknown sensor_type "imu"`)
	assert.Equal(t, models.BatchItemError, results[1].Status)
	assert.Contains(t, results[1].Error, "sensor_type")
}

func TestIngestBatchKeepsInputOrder(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	results := svc.IngestBatch(context.Background(), batchItems(t,
		`{"sensor_type":"navigation","device_id":"auv_001","position":{"x":1,"y":2,"z":3},"orientation":{"roll":0,"pitch":0,"yaw":0}}`,
		`{"sensor_type":"mapping","sensor_id":"sonar_001","scan_data":[{"distance":25.8,"angle":0,"intensity":0.92,"quality":"high"}]}`,
	))

	require.Len(t, results, 2)
	for i, res := range results {
		assert.Equal(t, i, res.Index)
	}
	assert.Equal(t, "navigation_data", results[0].Collection)
	assert.Equal(t, "mapping_data", results[1].Collection)
}

func TestListDHTReadingsClampsLimit(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	_, err := svc.ListDHTReadings(context.Background(), models.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultQueryLimit), repo.lastFilter.Limit)

	_, err = svc.ListDHTReadings(context.Background(), models.ListQuery{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(MaxQueryLimit), repo.lastFilter.Limit)

	_, err = svc.ListDHTReadings(context.Background(), models.ListQuery{Limit: 5, SensorID: "dht_001"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), repo.lastFilter.Limit)
	assert.Equal(t, "dht_001", repo.lastFilter.SensorID)
}

func TestListNavigationFiltersByDeviceID(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	_, err := svc.ListNavigationReadings(context.Background(), models.ListQuery{DeviceID: "auv_001"})
	require.NoError(t, err)
	assert.Equal(t, "auv_001", repo.lastFilter.DeviceID)
}

func TestCollectionStatsCountsEveryCollection(t *testing.T) {
	repo := &fakeReadingRepo{}
	svc := newTestService(repo)

	_, err := svc.IngestDHT(context.Background(), &models.DHTReading{
		SensorID:    "dht_001",
		Temperature: float64Ptr(20.5),
		Humidity:    float64Ptr(75.0),
	})
	require.NoError(t, err)

	counts, err := svc.CollectionStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[mongodb.CollectionDHT])
	assert.Equal(t, int64(0), counts[mongodb.CollectionNavigation])
	assert.Len(t, counts, 5)
}

func TestHealthCheck(t *testing.T) {
	svc := newTestService(&fakeReadingRepo{})
	assert.NoError(t, svc.HealthCheck(context.Background()))

	down := newTestService(&fakeReadingRepo{pingErr: fmt.Errorf("no reachable servers")})
	err := down.HealthCheck(context.Background())
	require.Error(t, err)
	apiErr, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeUnavailable, apiErr.Type)
}
