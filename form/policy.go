package form

// OfflinePolicy decides whether an update attempts the network before
// being persisted locally.
type OfflinePolicy int

const (
	// RemoteOnly always attempts the remote call.
	RemoteOnly OfflinePolicy = iota
	// RemoteFirst attempts the remote call when the connectivity probe
	// reports online, otherwise skips straight to the cache.
	RemoteFirst
	// CacheFirst writes to the cache without attempting the network.
	CacheFirst
	// CacheOnly never touches the network.
	CacheOnly
)

func (p OfflinePolicy) String() string {
	switch p {
	case RemoteOnly:
		return "remote-only"
	case RemoteFirst:
		return "remote-first"
	case CacheFirst:
		return "cache-first"
	case CacheOnly:
		return "cache-only"
	default:
		return "unknown"
	}
}

// ParseOfflinePolicy parses the string form used by configuration.
func ParseOfflinePolicy(raw string) (OfflinePolicy, bool) {
	switch raw {
	case "remote-only":
		return RemoteOnly, true
	case "remote-first":
		return RemoteFirst, true
	case "cache-first":
		return CacheFirst, true
	case "cache-only":
		return CacheOnly, true
	}
	return RemoteFirst, false
}
