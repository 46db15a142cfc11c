package output

import (
	"time"

	"github.com/dustin/go-humanize"
)

// FormatBytes renders a raw byte slice's size for human-facing CLI output,
// e.g. the xversion blob length.
func FormatBytes(data []byte) string {
	return humanize.Bytes(uint64(len(data)))
}

// FormatSince renders how long ago a telemetry timestamp was recorded, used
// by the interactive session's "history" helper.
func FormatSince(t time.Time) string {
	return humanize.Time(t)
}
