package ddl

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Record is one editable instance of a form: the parsed fields plus the
// backend identities needed to synchronize it.
type Record struct {
	RecordID      int64
	RecordSetID   int64
	StructureID   int64
	CreatorUserID int64

	fields []Field
}

func NewRecord(fields []Field) *Record {
	return &Record{fields: fields}
}

func (r *Record) Fields() []Field { return r.fields }
func (r *Record) FieldCount() int { return len(r.fields) }

// Field returns the field with the given name, or nil.
func (r *Record) Field(name string) Field {
	for _, f := range r.fields {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Data renders the current values as a name to wire-string snapshot.
func (r *Record) Data() map[string]string {
	data := make(map[string]string, len(r.fields))
	for _, f := range r.fields {
		data[f.Name()] = f.WireValue()
	}
	return data
}

// UpdateValues re-primes current values from a snapshot, typically one
// read back from the offline cache. Names missing from values are left
// untouched.
func (r *Record) UpdateValues(values map[string]string) {
	for _, f := range r.fields {
		if raw, ok := values[f.Name()]; ok {
			f.SetWireValue(raw)
		}
	}
}

// ClearValues resets every field to its empty value.
func (r *Record) ClearValues() {
	for _, f := range r.fields {
		f.SetWireValue("")
	}
}

// Validate collects every invalid field into one error, nil when the
// record is submittable.
func (r *Record) Validate() error {
	var result *multierror.Error
	for _, f := range r.fields {
		if !f.Valid() {
			result = multierror.Append(result, errors.Errorf("field %q is required", f.Name()))
		}
	}
	return result.ErrorOrNil()
}
