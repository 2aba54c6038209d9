// Package models defines the document schema and result shapes shared by
// the Index Store, Indexer, and Query Engine.
package models

import "fmt"

// RecordKind distinguishes the origin of a Document.
type RecordKind string

const (
	// RecordFile is a document derived from a filesystem entry.
	RecordFile RecordKind = "file"
	// RecordBookmark is a document derived from a browser bookmark.
	RecordBookmark RecordKind = "bookmark"
	// RecordHistory is a document derived from browser history.
	RecordHistory RecordKind = "history"
)

// Document is a single logical record, addressable by a unique Key.
//
// Field semantics follow the schema table: Key and Category are stored,
// exact-match (never tokenized); DisplayName is stored and tokenized;
// Body is tokenized but not stored; Size and MTime are stored, exact; URL is stored, exact, and
// empty for file records.
type Document struct {
	Key         string     `json:"key"`
	DisplayName string     `json:"display_name"`
	Body        string     `json:"body"`
	Category    string     `json:"category"`
	Size        uint64     `json:"size"`
	MTime       int64      `json:"mtime"`
	URL         string     `json:"url"`
	RecordKind  RecordKind `json:"record_kind"`
}

// FieldValue is a sum-typed container for a single Document field so that
// generic field-value inspection (see Document.Fields) doesn't need a
// type switch at every call site.
// Exactly one of the accessor kinds is valid for a given Kind; calling the
// wrong accessor panics, the same way a wrong-variant enum match would.
type FieldValue struct {
	kind fieldKind
	text string
	u64  uint64
	i64  int64
}

type fieldKind int

const (
	kindText fieldKind = iota
	kindU64
	kindI64
)

// TextValue builds a Text-kind FieldValue.
func TextValue(s string) FieldValue { return FieldValue{kind: kindText, text: s} }

// U64Value builds a U64-kind FieldValue.
func U64Value(n uint64) FieldValue { return FieldValue{kind: kindU64, u64: n} }

// I64Value builds an I64-kind FieldValue.
func I64Value(n int64) FieldValue { return FieldValue{kind: kindI64, i64: n} }

// Text returns the contained string, panicking if this value is not Text.
func (v FieldValue) Text() string {
	if v.kind != kindText {
		panic(fmt.Sprintf("models: FieldValue is not Text (kind=%d)", v.kind))
	}
	return v.text
}

// U64 returns the contained unsigned integer, panicking if this value is not U64.
func (v FieldValue) U64() uint64 {
	if v.kind != kindU64 {
		panic(fmt.Sprintf("models: FieldValue is not U64 (kind=%d)", v.kind))
	}
	return v.u64
}

// I64 returns the contained signed integer, panicking if this value is not I64.
func (v FieldValue) I64() int64 {
	if v.kind != kindI64 {
		panic(fmt.Sprintf("models: FieldValue is not I64 (kind=%d)", v.kind))
	}
	return v.i64
}

// Fields projects a Document's stored fields into the sum-typed
// representation, keyed by field name, for generic inspection.
func (d *Document) Fields() map[string]FieldValue {
	return map[string]FieldValue{
		"key":          TextValue(d.Key),
		"display_name": TextValue(d.DisplayName),
		"category":     TextValue(d.Category),
		"size":         U64Value(d.Size),
		"mtime":        I64Value(d.MTime),
		"url":          TextValue(d.URL),
		"record_kind":  TextValue(string(d.RecordKind)),
	}
}
