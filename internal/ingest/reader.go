// Package ingest decodes the tabular data sources into typed records.
//
// Reading is a two-stage affair: a RecordReader turns a raw CSV stream into
// fixed-arity field tuples after the caller has discarded the header line,
// and the typed readers (RelationReader, OwnershipReader) map those tuples
// onto record structs. The readers are forward-only and single pass.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RelationRecord is one row of the company relations source.
type RelationRecord struct {
	CompanyID string // Subject company ID
	Name      string // Company name
	Parent    string // Parent company ID (empty means top-level)
}

// OwnershipRecord is one row of the land ownership source.
type OwnershipRecord struct {
	LandID    string // Land parcel ID
	CompanyID string // Owning company ID
}

// Field arities of the two record shapes.
const (
	relationArity  = 3
	ownershipArity = 2
)

// RecordReader reads fixed-arity records from a CSV stream.
// It does not interpret field content; a row with the wrong number of
// fields fails with a *MalformedRecordError.
type RecordReader struct {
	csv   *csv.Reader
	arity int
	line  int
}

// NewRecordReader creates a RecordReader expecting arity fields per row.
func NewRecordReader(r io.Reader, arity int) *RecordReader {
	cr := csv.NewReader(r)
	// Arity is checked here so the error carries the line number;
	// the csv package's own check is disabled.
	cr.FieldsPerRecord = -1
	return &RecordReader{csv: cr, arity: arity}
}

// DiscardHeader consumes the leading header line without arity checking.
// It must be called once before the first Next.
func (r *RecordReader) DiscardHeader() error {
	_, err := r.csv.Read()
	if err == io.EOF {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	r.line++
	return nil
}

// Next returns the fields of the next row, or io.EOF when the stream is
// exhausted.
func (r *RecordReader) Next() ([]string, error) {
	fields, err := r.csv.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}
	r.line++
	if len(fields) != r.arity {
		return nil, &MalformedRecordError{Line: r.line, Want: r.arity, Got: len(fields)}
	}
	return fields, nil
}

// RelationReader decodes company relation records.
type RelationReader struct {
	rr *RecordReader
}

// NewRelationReader wraps a raw relations CSV stream. The caller is expected
// to call DiscardHeader before reading records.
func NewRelationReader(r io.Reader) *RelationReader {
	return &RelationReader{rr: NewRecordReader(r, relationArity)}
}

// DiscardHeader consumes the header line of the relations source.
func (r *RelationReader) DiscardHeader() error {
	return r.rr.DiscardHeader()
}

// Next returns the next relation record, or io.EOF at end of stream.
func (r *RelationReader) Next() (RelationRecord, error) {
	fields, err := r.rr.Next()
	if err != nil {
		return RelationRecord{}, err
	}
	return RelationRecord{
		CompanyID: fields[0],
		Name:      fields[1],
		Parent:    fields[2],
	}, nil
}

// OwnershipReader decodes land ownership records.
type OwnershipReader struct {
	rr *RecordReader
}

// NewOwnershipReader wraps a raw ownership CSV stream. The caller is expected
// to call DiscardHeader before reading records.
func NewOwnershipReader(r io.Reader) *OwnershipReader {
	return &OwnershipReader{rr: NewRecordReader(r, ownershipArity)}
}

// DiscardHeader consumes the header line of the ownership source.
func (r *OwnershipReader) DiscardHeader() error {
	return r.rr.DiscardHeader()
}

// Next returns the next ownership record, or io.EOF at end of stream.
func (r *OwnershipReader) Next() (OwnershipRecord, error) {
	fields, err := r.rr.Next()
	if err != nil {
		return OwnershipRecord{}, err
	}
	return OwnershipRecord{
		LandID:    fields[0],
		CompanyID: fields[1],
	}, nil
}
