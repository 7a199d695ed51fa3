package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTime = time.Unix(1700000000, 0).UTC()

func TestStats_UnmarshalJSON(t *testing.T) {
	var s Stats
	require.NoError(t, json.Unmarshal([]byte(`{"time": 1700000000, "temperature": 0, "humidity": 40.2}`), &s))
	assert.True(t, sampleTime.Equal(s.Time.Time))
	assert.Equal(t, float32(0), s.Temperature)
	assert.Equal(t, float32(40.2), s.Humidity)
}

func TestStats2_UnmarshalJSON(t *testing.T) {
	var s Stats2
	require.NoError(t, json.Unmarshal([]byte(`{"time": 1700000000, "temperature": 19.25, "co2": 0}`), &s))
	assert.True(t, sampleTime.Equal(s.Time.Time))
	assert.Equal(t, float32(19.25), s.Temperature)
	assert.Equal(t, uint16(0), s.CO2)
}

func TestTabs_UnmarshalJSON(t *testing.T) {
	var tb Tabs
	require.NoError(t, json.Unmarshal([]byte(`{"time": 1700000000, "tabs": 7, "window": 2}`), &tb))
	assert.True(t, sampleTime.Equal(tb.Time.Time))
	assert.Equal(t, uint16(7), tb.Tabs)
}

func TestUnmarshalJSON_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		dst     any
		missing string
	}{
		{name: "stats empty", in: `{}`, dst: &Stats{}, missing: "time, temperature, humidity"},
		{name: "stats null", in: `null`, dst: &Stats{}, missing: "time, temperature, humidity"},
		{name: "stats no time", in: `{"temperature": 21.5, "humidity": 40}`, dst: &Stats{}, missing: "time"},
		{name: "stats null time", in: `{"time": null, "temperature": 21.5, "humidity": 40}`, dst: &Stats{}, missing: "time"},
		{name: "stats no temperature", in: `{"time": 1700000000, "humidity": 40}`, dst: &Stats{}, missing: "temperature"},
		{name: "stats no humidity", in: `{"time": 1700000000, "temperature": 21.5}`, dst: &Stats{}, missing: "humidity"},
		{name: "stats2 null", in: `null`, dst: &Stats2{}, missing: "time, temperature, co2"},
		{name: "stats2 no co2", in: `{"time": 1700000000, "temperature": 21.5}`, dst: &Stats2{}, missing: "co2"},
		{name: "tabs empty", in: `{}`, dst: &Tabs{}, missing: "time, tabs"},
		{name: "tabs no tabs", in: `{"time": 1700000000}`, dst: &Tabs{}, missing: "tabs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.in), tt.dst)
			require.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestUnmarshalJSON_NotAnObject(t *testing.T) {
	for _, in := range []string{`[]`, `"stats"`, `42`} {
		var s Stats
		assert.Error(t, json.Unmarshal([]byte(in), &s), in)
	}
}
