package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStringField(t *testing.T) {
	fields := map[string]any{"title": "Notice", "empty": "", "number": 3}

	assert.Equal(t, "Notice", StringField(fields, "title", "No Title"))
	assert.Equal(t, "No Title", StringField(fields, "empty", "No Title"))
	assert.Equal(t, "No Title", StringField(fields, "missing", "No Title"))
	assert.Equal(t, "No Title", StringField(fields, "number", "No Title"))
}

func TestIntFieldToleratesStoreWidths(t *testing.T) {
	// Firestore hands back int64, JSON decoding float64; both must read cleanly.
	fields := map[string]any{"a": 85, "b": int64(85), "c": float64(85), "d": "85"}

	assert.Equal(t, 85, IntField(fields, "a", 0))
	assert.Equal(t, 85, IntField(fields, "b", 0))
	assert.Equal(t, 85, IntField(fields, "c", 0))
	assert.Equal(t, 0, IntField(fields, "d", 0))
	assert.Equal(t, 0, IntField(fields, "missing", 0))
}

func TestLastUpdated(t *testing.T) {
	ts := time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "2025-05-01 10:30", LastUpdated(map[string]any{"timestamp": ts}, "timestamp"))
	assert.Equal(t, "N/A", LastUpdated(map[string]any{}, "timestamp"))
	assert.Equal(t, "N/A", LastUpdated(map[string]any{"timestamp": time.Time{}}, "timestamp"))
}
