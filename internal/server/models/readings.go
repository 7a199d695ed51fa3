// Package models defines the payloads accepted by the ingestion endpoints.
package models

import "github.com/dmitrijs2005/roomstats/internal/timex"

// Stats is a temperature and humidity sample.
type Stats struct {
	Time        timex.Timestamp `json:"time"`
	Temperature float32         `json:"temperature"`
	Humidity    float32         `json:"humidity"`
}

// Stats2 is a temperature and CO2 sample from the second sensor generation.
type Stats2 struct {
	Time        timex.Timestamp `json:"time"`
	Temperature float32         `json:"temperature"`
	CO2         uint16          `json:"co2"`
}

// Tabs is the number of open browser tabs at a point in time.
type Tabs struct {
	Time timex.Timestamp `json:"time"`
	Tabs uint16          `json:"tabs"`
}
