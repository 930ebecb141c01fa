// Command ddlform loads a form definition, applies name=value edits
// from the command line and synchronizes the record against the
// backend through the offline cache.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/travisc5/liferay-screens/cache"
	"github.com/travisc5/liferay-screens/config"
	"github.com/travisc5/liferay-screens/ddl"
	"github.com/travisc5/liferay-screens/form"
	"github.com/travisc5/liferay-screens/log"
	"github.com/travisc5/liferay-screens/remote"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	definition, err := os.ReadFile(cfg.Definition)
	if err != nil {
		log.Fatal("main.definition:", err)
	}

	fields, err := ddl.Parse(string(definition), ddl.ParseLocale(cfg.Locale))
	if err != nil {
		log.Fatal("main.parse:", err)
	}

	record := ddl.NewRecord(fields)
	record.RecordID = cfg.RecordID
	record.CreatorUserID = cfg.UserID

	store, err := cache.OpenSQLite(cfg.CachePath)
	if err != nil {
		log.Fatal("main.cache.open:", err)
	}
	defer store.Close()

	found, dirty, err := form.LoadCached(store, cfg.GroupID, record)
	if err != nil {
		log.Fatal("main.cache.load:", err)
	}
	if found {
		log.Infof("loaded cached record %d (dirty=%v)", record.RecordID, dirty)
	}

	for _, arg := range flag.Args() {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			log.Fatalf("main.args: expected name=value, got %q", arg)
		}
		f := record.Field(name)
		if f == nil {
			log.Fatalf("main.args: no field named %q", name)
		}
		f.SetWireValue(value)
	}

	for _, f := range record.Fields() {
		log.Infof("%s (%s/%s): %q", f.Name(), f.DataType(), f.EditorType(), f.DisplayValue())
	}

	if err := record.Validate(); err != nil {
		log.Fatal("main.validate:", err)
	}

	session := remote.Session{
		Server:   cfg.Server,
		Username: cfg.Username,
		Password: cfg.Password,
		UserID:   cfg.UserID,
	}

	done := make(chan error, 1)
	interactor := form.NewInteractor(form.Config{
		ScreenletID: 1,
		Policy:      cfg.Policy,
		Service:     remote.NewHTTPRecordService(session),
		Store:       store,
		Listener:    listenerFunc(done),
	})
	defer interactor.Close()

	err = interactor.UpdateRecord(cfg.GroupID, record)
	if err != nil {
		log.Fatal("main.update_record:", err)
	}

	if err := <-done; err != nil {
		log.Fatal("main.update_record.failed:", err)
	}
	log.Infof("record %d updated", record.RecordID)
}

type listenerFunc chan error

func (l listenerFunc) OnRecordUpdated(record *ddl.Record) { l <- nil }
func (l listenerFunc) OnUpdateFailed(err error)           { l <- err }
