package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/roomstats/internal/timex"
)

// ErrMissingField is returned when a reading lacks a required field or the
// whole payload is null.
var ErrMissingField = errors.New("missing required field")

// Every field of a reading is required. The wire structs use pointers so an
// absent or null field can be told apart from a zero value.
type (
	statsWire struct {
		Time        *timex.Timestamp `json:"time"`
		Temperature *float32         `json:"temperature"`
		Humidity    *float32         `json:"humidity"`
	}
	stats2Wire struct {
		Time        *timex.Timestamp `json:"time"`
		Temperature *float32         `json:"temperature"`
		CO2         *uint16          `json:"co2"`
	}
	tabsWire struct {
		Time *timex.Timestamp `json:"time"`
		Tabs *uint16          `json:"tabs"`
	}
)

type field struct {
	name    string
	present bool
}

func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

func (s *Stats) UnmarshalJSON(b []byte) error {
	var w statsWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := requireFields(
		field{"time", w.Time != nil},
		field{"temperature", w.Temperature != nil},
		field{"humidity", w.Humidity != nil},
	); err != nil {
		return err
	}
	*s = Stats{Time: *w.Time, Temperature: *w.Temperature, Humidity: *w.Humidity}
	return nil
}

func (s *Stats2) UnmarshalJSON(b []byte) error {
	var w stats2Wire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := requireFields(
		field{"time", w.Time != nil},
		field{"temperature", w.Temperature != nil},
		field{"co2", w.CO2 != nil},
	); err != nil {
		return err
	}
	*s = Stats2{Time: *w.Time, Temperature: *w.Temperature, CO2: *w.CO2}
	return nil
}

func (t *Tabs) UnmarshalJSON(b []byte) error {
	var w tabsWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if err := requireFields(
		field{"time", w.Time != nil},
		field{"tabs", w.Tabs != nil},
	); err != nil {
		return err
	}
	*t = Tabs{Time: *w.Time, Tabs: *w.Tabs}
	return nil
}
