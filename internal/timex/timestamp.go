package timex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Accepted range of Unix seconds: 0001-01-01T00:00:00Z to 9999-12-31T23:59:59Z,
// the years RFC 3339 can represent.
const (
	minUnixSeconds = -62135596800
	maxUnixSeconds = 253402300799
)

// Timestamp is a point in time sent by sensors. On the wire it is either a
// JSON number of Unix seconds (fractions allowed) or an RFC 3339 string.
type Timestamp struct {
	time.Time
}

// MarshalJSON always emits Unix seconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Unix())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("timestamp: empty value")
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		t.Time = parsed
		return nil
	}

	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if math.IsNaN(secs) || secs < minUnixSeconds || secs > maxUnixSeconds {
		return fmt.Errorf("timestamp: %v out of range", secs)
	}
	whole, frac := math.Modf(secs)
	t.Time = time.Unix(int64(whole), int64(frac*1e9)).UTC()
	return nil
}
