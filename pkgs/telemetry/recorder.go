package telemetry

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// Record is one logged call to the command station, written as a single
// CBOR value per call so a log file can be streamed and replayed without
// loading it fully into memory.
type Record struct {
	SessionID string         `cbor:"session_id"`
	Sequence  uint64         `cbor:"sequence"`
	Method    string         `cbor:"method"`
	Request   map[string]any `cbor:"request,omitempty"`
	Reply     any            `cbor:"reply,omitempty"`
	Err       string         `cbor:"err,omitempty"`
	Recorded  time.Time      `cbor:"recorded"`
}

// Recorder appends one CBOR Record per call to a session's log file. Record
// calls are serialized by an internal mutex, so concurrent callers cannot
// interleave or duplicate sequence numbers.
type Recorder struct {
	mu        sync.Mutex
	enc       *cbor.Encoder
	closer    io.Closer
	sessionID string
	seq       uint64
}

// NewRecorder opens (or creates) path for append and assigns a fresh session
// id to every record it writes from here on.
func NewRecorder(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	return &Recorder{
		enc:       cbor.NewEncoder(f),
		closer:    f,
		sessionID: uuid.NewString(),
	}, nil
}

// Record appends one call outcome to the log. Encoding errors are swallowed
// by design: a telemetry write must never fail the command it describes.
func (r *Recorder) Record(method string, request map[string]any, reply any, callErr error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	rec := Record{
		SessionID: r.sessionID,
		Sequence:  r.seq,
		Method:    method,
		Request:   request,
		Reply:     reply,
		Recorded:  time.Now(),
	}
	if callErr != nil {
		rec.Err = callErr.Error()
	}

	_ = r.enc.Encode(rec)
}

func (r *Recorder) SessionID() string {
	return r.sessionID
}

func (r *Recorder) Close() error {
	return r.closer.Close()
}

// ReadAll decodes every Record appended to path, in the order they were
// written, for offline inspection (e.g. the interactive session's "history"
// command). It opens the file read-only and does not interfere with a
// concurrently open Recorder appending to the same path.
func ReadAll(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := cbor.NewDecoder(f)
	var records []Record
	for {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
