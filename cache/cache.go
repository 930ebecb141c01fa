// Package cache persists the latest known field values of form records
// so edits survive offline periods. Records are keyed by group and
// record id; the dirty flag marks snapshots the server has not yet
// confirmed.
package cache

// Record is one cached snapshot of a form record.
type Record struct {
	GroupID  int64
	RecordID int64
	Fields   map[string]string
	Dirty    bool
}

// Store is the cache contract: point reads and last-write-wins upserts,
// one record at a time. A missing record is (nil, nil), not an error.
type Store interface {
	Get(groupID, recordID int64) (*Record, error)
	Set(record *Record) error
}
