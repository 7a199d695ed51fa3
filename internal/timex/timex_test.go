package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"5s"`, want: 5 * time.Second},
		{name: "nanoseconds", in: `1000`, want: 1000 * time.Nanosecond},
		{name: "bad string", in: `"five"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "unix seconds", in: `1700000000`, want: time.Unix(1700000000, 0)},
		{name: "fractional seconds", in: `1700000000.5`, want: time.Unix(1700000000, 500_000_000)},
		{name: "rfc3339", in: `"2023-11-14T22:13:20Z"`, want: time.Unix(1700000000, 0)},
		{name: "rfc3339 with offset", in: `"2023-11-15T00:13:20+02:00"`, want: time.Unix(1700000000, 0)},
		{name: "earliest", in: `-62135596800`, want: time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "latest", in: `253402300799`, want: time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)},
		{name: "before year 1", in: `-62135596801`, wantErr: true},
		{name: "after year 9999", in: `253402300800`, wantErr: true},
		{name: "huge", in: `1e300`, wantErr: true},
		{name: "huge negative", in: `-1e300`, wantErr: true},
		{name: "null", in: `null`, wantErr: true},
		{name: "garbage string", in: `"yesterday"`, wantErr: true},
		{name: "object", in: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.in), &ts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(ts.Time), "got %v want %v", ts.Time, tt.want)
		})
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Timestamp{Time: time.Unix(1700000000, 0)})
	require.NoError(t, err)
	assert.Equal(t, "1700000000", string(b))
}
