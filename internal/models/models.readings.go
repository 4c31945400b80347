// FilePath: internal/models/models.readings.go
package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GeoLocation is the geographic position of a sensor at sample time.
// When the object is present, all three coordinates must be present.
type GeoLocation struct {
	Lat   *float64 `json:"lat" bson:"lat" validate:"required"`
	Lon   *float64 `json:"lon" bson:"lon" validate:"required"`
	Depth *float64 `json:"depth" bson:"depth" validate:"required"`
}

// Position is a cartesian position in the vehicle's reference frame.
type Position struct {
	X *float64 `json:"x" bson:"x" validate:"required"`
	Y *float64 `json:"y" bson:"y" validate:"required"`
	Z *float64 `json:"z" bson:"z" validate:"required"`
}

// Orientation holds roll/pitch/yaw in degrees.
type Orientation struct {
	Roll  *float64 `json:"roll" bson:"roll" validate:"required"`
	Pitch *float64 `json:"pitch" bson:"pitch" validate:"required"`
	Yaw   *float64 `json:"yaw" bson:"yaw" validate:"required"`
}

// Velocity holds the linear velocity components.
type Velocity struct {
	VX *float64 `json:"vx" bson:"vx" validate:"required"`
	VY *float64 `json:"vy" bson:"vy" validate:"required"`
	VZ *float64 `json:"vz" bson:"vz" validate:"required"`
}

// DHTReading represents a single temperature/humidity sample.
// Numeric fields are pointers so that a legitimate zero value survives
// the required check.
type DHTReading struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SensorID    string        `json:"sensor_id" bson:"sensor_id" validate:"required"`
	Temperature *float64      `json:"temperature" bson:"temperature" validate:"required"`
	Humidity    *float64      `json:"humidity" bson:"humidity" validate:"required"`
	Timestamp   Timestamp     `json:"timestamp" bson:"timestamp"`
	Location    *GeoLocation  `json:"location,omitempty" bson:"location,omitempty"`
}

// NavigationReading is one pose snapshot from the navigation stack.
type NavigationReading struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	DeviceID    string        `json:"device_id" bson:"device_id" validate:"required"`
	Position    *Position     `json:"position" bson:"position" validate:"required"`
	Orientation *Orientation  `json:"orientation" bson:"orientation" validate:"required"`
	Velocity    *Velocity     `json:"velocity,omitempty" bson:"velocity,omitempty"`
	Timestamp   Timestamp     `json:"timestamp" bson:"timestamp"`
}

// ScanPoint is one sonar/LiDAR return within a scan sweep.
type ScanPoint struct {
	Distance  *float64 `json:"distance" bson:"distance" validate:"required"`
	Angle     *float64 `json:"angle" bson:"angle" validate:"required"`
	Intensity *float64 `json:"intensity" bson:"intensity" validate:"required"`
	Quality   string   `json:"quality" bson:"quality" validate:"required"`
}

// MappingReading is one full scan sweep, stored as a single document.
type MappingReading struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SensorID  string        `json:"sensor_id" bson:"sensor_id" validate:"required"`
	ScanData  []ScanPoint   `json:"scan_data" bson:"scan_data" validate:"required,dive"`
	Position  *Position     `json:"position,omitempty" bson:"position,omitempty"`
	Timestamp Timestamp     `json:"timestamp" bson:"timestamp"`
}

// GeneralReading is the schema-flexible catch-all family. The data and
// metadata payloads are open key-value mappings; only their presence and
// shape are validated, never their contents.
type GeneralReading struct {
	ID         bson.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	SensorType string         `json:"sensor_type" bson:"sensor_type" validate:"required"`
	SensorID   string         `json:"sensor_id" bson:"sensor_id" validate:"required"`
	Data       map[string]any `json:"data" bson:"data" validate:"required"`
	Metadata   map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Timestamp  Timestamp      `json:"timestamp" bson:"timestamp"`
}
