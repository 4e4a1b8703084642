package coinfolio

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the single persisted structure holding all record collections.
// Each collection is an ordered sequence in insertion order.
//
// The on-disk shape is the compatibility contract: field names and the
// holdings/loans/sales keys must match pre-existing documents exactly.
// The stakes key is a later addition; documents without it load fine.
type Document struct {
	Holdings []Holding `json:"holdings"`
	Loans    []Loan    `json:"loans"`
	Sales    []Sale    `json:"sales"`
	Stakes   []Stake   `json:"stakes"`
}

// NewDocument returns an empty document with all collections initialized.
func NewDocument() *Document {
	return &Document{
		Holdings: []Holding{},
		Loans:    []Loan{},
		Sales:    []Sale{},
		Stakes:   []Stake{},
	}
}

// DecodeDocument reads a JSON document from r. Collections missing from the
// stream (legacy documents) come back empty, not nil and not as an error.
func DecodeDocument(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	if doc.Holdings == nil {
		doc.Holdings = []Holding{}
	}
	if doc.Loans == nil {
		doc.Loans = []Loan{}
	}
	if doc.Sales == nil {
		doc.Sales = []Sale{}
	}
	if doc.Stakes == nil {
		doc.Stakes = []Stake{}
	}
	return doc, nil
}

// EncodeDocument writes the document to w, indented the way the original
// files were written so that diffs against pre-existing data stay readable.
func EncodeDocument(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
