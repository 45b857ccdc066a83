package entity

import (
	"time"

	"github.com/google/uuid"
)

// SensorType identifies what a household sensor measures.
type SensorType string

const (
	SensorTypeMotion      SensorType = "motion"
	SensorTypeDoor        SensorType = "door"
	SensorTypeTrash       SensorType = "trash"
	SensorTypeAppliance   SensorType = "appliance"
	SensorTypeTemperature SensorType = "temperature"
	SensorTypeHumidity    SensorType = "humidity"
)

// Valid reports whether the type is one of the known sensor types.
func (t SensorType) Valid() bool {
	switch t {
	case SensorTypeMotion, SensorTypeDoor, SensorTypeTrash,
		SensorTypeAppliance, SensorTypeTemperature, SensorTypeHumidity:
		return true
	}

	return false
}

// SensorReading is the most recent value reported by a sensor.
// The value is opaque to the data layer; its meaning depends on the sensor type.
type SensorReading struct {
	Value      string    `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Sensor represents a physical device installed somewhere in the household.
type Sensor struct {
	ID          uuid.UUID      `json:"id"`
	HouseholdID uuid.UUID      `json:"household_id"`
	Type        SensorType     `json:"type"`
	Location    string         `json:"location"` // Human-readable placement, e.g. "kitchen".
	IsActive    bool           `json:"is_active"`
	LastReading *SensorReading `json:"last_reading,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
