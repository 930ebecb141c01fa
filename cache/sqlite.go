package cache

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// SQLiteStore implements Store on a local SQLite file. Field snapshots
// are stored as a JSON column; the (group_id, record_id) primary key
// gives single-record upsert atomicity.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the cache database at path and brings
// its schema up to date.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "cache.open")
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cache.open.pragma")
	}

	// db tuning options
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cache.migrate")
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Get(groupID, recordID int64) (*Record, error) {
	var fieldsJSON string
	record := Record{GroupID: groupID, RecordID: recordID}

	err := s.db.QueryRow(`
		SELECT fields, dirty FROM record_cache
		WHERE group_id = ? AND record_id = ?`,
		groupID,
		recordID,
	).Scan(&fieldsJSON, &record.Dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "cache.get")
	}

	err = json.Unmarshal([]byte(fieldsJSON), &record.Fields)
	if err != nil {
		return nil, errors.Wrap(err, "cache.get.parse_fields")
	}
	return &record, nil
}

func (s *SQLiteStore) Set(record *Record) error {
	fieldsJSON, err := json.Marshal(record.Fields)
	if err != nil {
		return errors.Wrap(err, "cache.set.encode_fields")
	}

	_, err = s.db.Exec(`
		INSERT INTO record_cache (group_id, record_id, fields, dirty, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (group_id, record_id) DO UPDATE
		SET fields = excluded.fields,
			dirty = excluded.dirty,
			updated_at = excluded.updated_at`,
		record.GroupID,
		record.RecordID,
		string(fieldsJSON),
		record.Dirty,
		time.Now(),
	)
	return errors.Wrap(err, "cache.set")
}
