package form

import "github.com/travisc5/liferay-screens/ddl"

// UpdateEvent moves the outcome of one update attempt from the remote
// call boundary back into the notification path. Synced means the
// server confirmed the snapshot; a nil Err with Synced false is an
// offline skip.
type UpdateEvent struct {
	ScreenletID int
	AttemptID   string
	GroupID     int64
	Record      *ddl.Record
	Fields      map[string]string
	Synced      bool
	Err         error
}

// Listener receives exactly one notification per update attempt.
type Listener interface {
	OnRecordUpdated(record *ddl.Record)
	OnUpdateFailed(err error)
}
