package form

import (
	"github.com/travisc5/liferay-screens/cache"
	"github.com/travisc5/liferay-screens/ddl"
)

// LoadCached primes record with the cached snapshot for groupID, if
// one exists. It reports whether a snapshot was found and whether it is
// still waiting to be synchronized.
func LoadCached(store cache.Store, groupID int64, record *ddl.Record) (found, dirty bool, err error) {
	cached, err := store.Get(groupID, record.RecordID)
	if err != nil || cached == nil {
		return false, false, err
	}
	record.UpdateValues(cached.Fields)
	return true, cached.Dirty, nil
}
