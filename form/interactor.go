// Package form orchestrates record updates: validate, attempt the
// remote write when policy permits, always persist the attempt to the
// offline cache, and notify a listener of the outcome.
package form

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/travisc5/liferay-screens/cache"
	"github.com/travisc5/liferay-screens/ddl"
	"github.com/travisc5/liferay-screens/log"
	"github.com/travisc5/liferay-screens/remote"
)

// ErrContractViolation marks invalid caller input. It is returned
// synchronously and produces no cache write and no listener call.
var ErrContractViolation = errors.New("contract violation")

// Config wires one Interactor. Connected is the connectivity probe
// consulted by RemoteFirst; nil means always online.
type Config struct {
	ScreenletID int
	Policy      OfflinePolicy
	Service     remote.RecordService
	Store       cache.Store
	Listener    Listener
	Connected   func() bool
}

// Interactor performs write-through record updates. UpdateRecord
// returns as soon as the attempt is dispatched; the outcome arrives on
// the event channel and is routed back by attempt id. Events addressed
// to another screenlet, or to an attempt already resolved, are dropped.
type Interactor struct {
	screenletID int
	policy      OfflinePolicy
	service     remote.RecordService
	store       cache.Store
	listener    Listener
	connected   func() bool

	events chan UpdateEvent
	quit   chan struct{}

	mu      sync.Mutex
	pending map[string]struct{}
}

func NewInteractor(cfg Config) *Interactor {
	it := &Interactor{
		screenletID: cfg.ScreenletID,
		policy:      cfg.Policy,
		service:     cfg.Service,
		store:       cfg.Store,
		listener:    cfg.Listener,
		connected:   cfg.Connected,
		events:      make(chan UpdateEvent, 8),
		quit:        make(chan struct{}),
		pending:     make(map[string]struct{}),
	}
	if it.connected == nil {
		it.connected = func() bool { return true }
	}
	go it.run()
	return it
}

// Close stops event routing. In-flight remote attempts are not
// cancelled; their events are dropped on arrival.
func (it *Interactor) Close() {
	close(it.quit)
}

// UpdateRecord dispatches one update attempt for (groupID, record).
// Caller-contract violations fail synchronously; everything else is
// reported through the listener. Repeated calls dispatch independent
// attempts, last cache write wins.
func (it *Interactor) UpdateRecord(groupID int64, record *ddl.Record) error {
	if err := validate(groupID, record); err != nil {
		return err
	}

	attemptID := uuid.NewString()
	it.mu.Lock()
	it.pending[attemptID] = struct{}{}
	it.mu.Unlock()

	fields := record.Data()

	if it.attemptRemote() {
		go it.online(attemptID, groupID, record, fields)
		return nil
	}

	log.Debugf("form.update_record: offline skip (policy %s)", it.policy)
	it.OnEvent(UpdateEvent{
		ScreenletID: it.screenletID,
		AttemptID:   attemptID,
		GroupID:     groupID,
		Record:      record,
		Fields:      fields,
	})
	return nil
}

// OnEvent feeds one completion event into the interactor's routing.
func (it *Interactor) OnEvent(event UpdateEvent) {
	select {
	case it.events <- event:
	case <-it.quit:
	}
}

func (it *Interactor) attemptRemote() bool {
	switch it.policy {
	case RemoteOnly:
		return true
	case RemoteFirst:
		return it.connected()
	default:
		return false
	}
}

func (it *Interactor) online(attemptID string, groupID int64, record *ddl.Record, fields map[string]string) {
	svcCtx := remote.ServiceContext{
		UserID:       record.CreatorUserID,
		ScopeGroupID: groupID,
	}

	_, err := it.service.UpdateRecord(
		context.Background(), record.RecordID, 0, fields, true, svcCtx)
	if err != nil {
		log.Warnf("form.update_record.remote: %s", err)
	}

	it.OnEvent(UpdateEvent{
		ScreenletID: it.screenletID,
		AttemptID:   attemptID,
		GroupID:     groupID,
		Record:      record,
		Fields:      fields,
		Synced:      err == nil,
		Err:         err,
	})
}

func (it *Interactor) run() {
	for {
		select {
		case event := <-it.events:
			it.handle(event)
		case <-it.quit:
			return
		}
	}
}

func (it *Interactor) handle(event UpdateEvent) {
	if event.ScreenletID != it.screenletID {
		return
	}

	it.mu.Lock()
	_, ok := it.pending[event.AttemptID]
	delete(it.pending, event.AttemptID)
	it.mu.Unlock()
	if !ok {
		// unknown or already resolved attempt
		return
	}

	err := it.store.Set(&cache.Record{
		GroupID:  event.GroupID,
		RecordID: event.Record.RecordID,
		Fields:   event.Fields,
		Dirty:    !event.Synced,
	})
	if err != nil {
		log.Errorf("form.cache.set: %s", err)
	}

	if event.Err != nil {
		it.listener.OnUpdateFailed(event.Err)
		return
	}
	it.listener.OnRecordUpdated(event.Record)
}

func validate(groupID int64, record *ddl.Record) error {
	switch {
	case groupID <= 0:
		return errors.Wrap(ErrContractViolation, "groupId cannot be zero or negative")
	case record == nil:
		return errors.Wrap(ErrContractViolation, "record cannot be empty")
	case record.FieldCount() == 0:
		return errors.Wrap(ErrContractViolation, "record fields cannot be empty")
	case record.RecordID <= 0:
		return errors.Wrap(ErrContractViolation, "recordId cannot be zero or negative")
	}
	return nil
}
