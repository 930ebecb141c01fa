package config

import (
	"errors"
	"flag"

	"github.com/travisc5/liferay-screens/form"
)

type Config struct {
	Server     string
	Username   string
	Password   string
	UserID     int64
	GroupID    int64
	RecordID   int64
	Definition string
	CachePath  string
	Policy     form.OfflinePolicy
	Locale     string
	Debug      bool
}

func ParseFlags() (cfg Config, err error) {
	flag.StringVar(&cfg.Server, "server", "", "backend server base URL")
	flag.StringVar(&cfg.Username, "username", "", "basic-auth user name")
	flag.StringVar(&cfg.Password, "password", "", "basic-auth password")
	flag.Int64Var(&cfg.UserID, "user-id", 0, "acting user id")
	flag.Int64Var(&cfg.GroupID, "group-id", 0, "scope group id")
	flag.Int64Var(&cfg.RecordID, "record-id", 0, "record id to update")
	flag.StringVar(&cfg.Definition, "definition", "", "path to the form definition XML")
	flag.StringVar(&cfg.CachePath, "cache", "screens-cache.sqlite", "path to the offline cache file (default screens-cache.sqlite)")
	var policy string
	flag.StringVar(&policy, "offline-policy", "remote-first", "remote-only|remote-first|cache-first|cache-only")
	flag.StringVar(&cfg.Locale, "locale", "en_US", "locale for labels (default en_US)")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	var ok bool
	cfg.Policy, ok = form.ParseOfflinePolicy(policy)
	if !ok {
		return cfg, errors.New("invalid -offline-policy " + policy)
	}

	if cfg.Server == "" {
		err = errors.New("missing parameter -server")
	}

	return
}
