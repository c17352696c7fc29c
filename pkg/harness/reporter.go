package harness

import (
	"sync"
	"time"

	"github.com/golang/glog"
)

// now is the clock used to stamp report entries.
var now = time.Now

// Entry is a timestamped key/value published by a hook or case.
type Entry struct {
	Timestamp time.Time
	// Source is the ID of the case or group that published the entry.
	Source string
	Key    string
	Value  string
}

// Reporter receives report entries.
type Reporter interface {
	Publish(entry Entry)
}

// LogReporter writes entries to glog and keeps them for later inspection.
// It is safe for concurrent use.
type LogReporter struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLogReporter creates an empty LogReporter.
func NewLogReporter() *LogReporter {
	return &LogReporter{}
}

// Publish implements Reporter.
func (r *LogReporter) Publish(entry Entry) {
	glog.Infof("ReportEntry [timestamp = %s, %s = '%s'] from %s",
		entry.Timestamp.Format("2006-01-02T15:04:05.000"), entry.Key,
		truncate(entry.Value, maxEntryLen), entry.Source)

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()
}

// Entries returns a copy of everything published so far.
func (r *LogReporter) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// publish stamps and forwards a single entry.
func publish(r Reporter, source, key, value string) {
	if r == nil {
		return
	}
	r.Publish(Entry{
		Timestamp: now(),
		Source:    source,
		Key:       key,
		Value:     value,
	})
}

// PublishValue publishes value under the conventional "value" key.
func PublishValue(r Reporter, info Info, value string) {
	publish(r, info.ID, "value", value)
}
