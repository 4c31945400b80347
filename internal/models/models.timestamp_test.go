// FilePath: internal/models/models.timestamp_test.go
package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestTimestampUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    time.Time
		wantErr bool
	}{
		{
			name:    "RFC 3339 with offset normalizes to UTC",
			payload: `"2026-08-24T14:00:00+02:00"`,
			want:    time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "RFC 3339 zulu",
			payload: `"2026-08-24T12:00:00Z"`,
			want:    time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "offset-free with fraction is read as UTC",
			payload: `"2026-08-24T12:00:00.123456"`,
			want:    time.Date(2026, 8, 24, 12, 0, 0, 123456000, time.UTC),
		},
		{
			name:    "offset-free without fraction",
			payload: `"2026-08-24T12:00:00"`,
			want:    time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty string means unset",
			payload: `""`,
			want:    time.Time{},
		},
		{
			name:    "null means unset",
			payload: `null`,
			want:    time.Time{},
		},
		{
			name:    "date only is rejected",
			payload: `"2026-08-24"`,
			wantErr: true,
		},
		{
			name:    "number is rejected",
			payload: `1756036800`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.payload), &ts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, ts.Equal(tt.want), "got %v, want %v", ts.Time, tt.want)
		})
	}
}

func TestTimestampMarshalJSON(t *testing.T) {
	ts := Timestamp{Time: time.Date(2026, 8, 24, 12, 0, 0, 123456000, time.UTC)}
	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-24T12:00:00.123456Z"`, string(out))
}

func TestTimestampBSONDatetime(t *testing.T) {
	type doc struct {
		TS Timestamp `bson:"ts"`
	}
	in := doc{TS: Timestamp{Time: time.Date(2026, 8, 24, 12, 0, 0, 123000000, time.UTC)}}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	// A native datetime on the wire, readable by any driver.
	var plain struct {
		TS time.Time `bson:"ts"`
	}
	require.NoError(t, bson.Unmarshal(raw, &plain))
	assert.True(t, plain.TS.Equal(in.TS.Time))

	var out doc
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.True(t, out.TS.Equal(in.TS.Time))
}
