// Package remote reaches the content-management backend. The session
// and credentials are always passed in explicitly; there is no ambient
// process-wide session.
package remote

import "context"

// ServiceContext is the scope payload attached to every write call.
type ServiceContext struct {
	UserID       int64 `json:"userId"`
	ScopeGroupID int64 `json:"scopeGroupId"`
}

// RecordService is the remote write contract for form records.
//
// flags is reserved and always 0; merge is reserved and always true.
// A successful call returns the backend's updated record representation.
type RecordService interface {
	UpdateRecord(
		ctx context.Context,
		recordID int64,
		flags int,
		fields map[string]string,
		merge bool,
		svcCtx ServiceContext,
	) (map[string]any, error)
}
