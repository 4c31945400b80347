// FilePath: internal/models/models.timestamp.go
package models

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// naiveLayout matches offset-free ISO-8601 timestamps. The parser accepts
// fractional seconds after the seconds field without the layout naming them.
const naiveLayout = "2006-01-02T15:04:05"

// Timestamp is a sample time on the wire. Clients send either RFC 3339 or an
// offset-free ISO-8601 string; the latter is interpreted as UTC. It marshals
// as RFC 3339 JSON and as a BSON datetime (millisecond precision).
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string")
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed.UTC()
		return nil
	}
	parsed, err := time.ParseInLocation(naiveLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", s)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalBSONValue() (byte, []byte, error) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(t.Time.UnixMilli()))
	return byte(bson.TypeDateTime), buf, nil
}

func (t *Timestamp) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ != byte(bson.TypeDateTime) || len(data) != 8 {
		return fmt.Errorf("timestamp must be a BSON datetime")
	}
	ms := int64(binary.LittleEndian.Uint64(data))
	t.Time = time.UnixMilli(ms).UTC()
	return nil
}
