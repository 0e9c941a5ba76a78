package model

import (
	"encoding/json"
	"time"
)

const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp renders record dates as "YYYY-MM-DD HH:MM:SS" in UTC.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

func (d Timestamp) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}

	return json.Marshal(d.Time.UTC().Format(TimestampLayout))
}
