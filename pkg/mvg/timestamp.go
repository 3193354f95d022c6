package mvg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DecodeInstant converts epoch milliseconds into the process' local time zone.
func DecodeInstant(epochMillis int64) time.Time {
	return time.UnixMilli(epochMillis).In(time.Local)
}

// MinutesUntil returns the whole minutes from now to t, truncated toward zero.
// Negative values mean t is already in the past.
func MinutesUntil(t, now time.Time) int {
	return MinutesBetween(now, t)
}

// MinutesBetween returns the whole minutes from a to b, truncated toward zero.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}

// Timestamp is a wire instant. Most endpoints send epoch milliseconds; route
// stops send RFC 3339 strings. Both decode into local time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("timestamp must not be null")
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		t.Time = parsed.In(time.Local)
		return nil
	}

	millis, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid epoch milliseconds %s: %w", data, err)
	}
	t.Time = DecodeInstant(millis)
	return nil
}

// instant unwraps an optional wire timestamp without inventing a value.
func instant(ts *Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
