package coinfolio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists the record collections as a single JSON document on disk.
//
// There is deliberately no in-memory copy: every call reads the whole
// document, mutates it, and rewrites it, so every read reflects the
// persisted state at call time. There is no locking either; two processes
// writing the same file can lose an update. A single-user tool accepts
// both trade-offs.
type Store struct {
	path string
}

// DefaultPath returns the default document location, a data directory next
// to the installed executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("data", "portfolio.json")
	}
	return filepath.Join(filepath.Dir(exe), "data", "portfolio.json")
}

// OpenStore opens the document at path, creating an empty one (and any
// missing parent directories) when none exists. Opening an existing
// document never truncates it.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}
	// 0700 keeps the record book private to its owner.
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(NewDocument()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking document %q: %w", path, err)
	}
	return s, nil
}

// Path returns the document location this store reads and writes.
func (s *Store) Path() string { return s.path }

// read loads the full document from disk.
func (s *Store) read() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading document %q: %w", s.path, err)
	}
	doc, err := DecodeDocument(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", s.path, err)
	}
	return doc, nil
}

// write replaces the document on disk with doc.
func (s *Store) write(doc *Document) error {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("writing document %q: %w", s.path, err)
	}
	return nil
}

// removeByID filters out every record whose id matches. It reports whether
// the sequence shrank.
func removeByID[T Record](records []T, id string) ([]T, bool) {
	kept := make([]T, 0, len(records))
	for _, r := range records {
		if r.GetID() != id {
			kept = append(kept, r)
		}
	}
	return kept, len(kept) < len(records)
}

// Holdings

// GetHoldings returns all holdings in insertion order.
func (s *Store) GetHoldings() ([]Holding, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Holdings, nil
}

// AddHolding appends a holding to the document and returns it unchanged.
func (s *Store) AddHolding(h Holding) (Holding, error) {
	doc, err := s.read()
	if err != nil {
		return Holding{}, err
	}
	doc.Holdings = append(doc.Holdings, h)
	if err := s.write(doc); err != nil {
		return Holding{}, err
	}
	return h, nil
}

// RemoveHolding deletes the holding with the given id. Removing an unknown
// id is not an error; it reports false and leaves the document untouched.
func (s *Store) RemoveHolding(id string) (bool, error) {
	doc, err := s.read()
	if err != nil {
		return false, err
	}
	kept, removed := removeByID(doc.Holdings, id)
	if !removed {
		return false, nil
	}
	doc.Holdings = kept
	return true, s.write(doc)
}

// Loans

// GetLoans returns all loans in insertion order.
func (s *Store) GetLoans() ([]Loan, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Loans, nil
}

// AddLoan appends a loan to the document and returns it unchanged.
func (s *Store) AddLoan(l Loan) (Loan, error) {
	doc, err := s.read()
	if err != nil {
		return Loan{}, err
	}
	doc.Loans = append(doc.Loans, l)
	if err := s.write(doc); err != nil {
		return Loan{}, err
	}
	return l, nil
}

// RemoveLoan deletes the loan with the given id.
func (s *Store) RemoveLoan(id string) (bool, error) {
	doc, err := s.read()
	if err != nil {
		return false, err
	}
	kept, removed := removeByID(doc.Loans, id)
	if !removed {
		return false, nil
	}
	doc.Loans = kept
	return true, s.write(doc)
}

// Sales

// GetSales returns all sales in insertion order.
func (s *Store) GetSales() ([]Sale, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Sales, nil
}

// AddSale appends a sale to the document and returns it unchanged.
func (s *Store) AddSale(sa Sale) (Sale, error) {
	doc, err := s.read()
	if err != nil {
		return Sale{}, err
	}
	doc.Sales = append(doc.Sales, sa)
	if err := s.write(doc); err != nil {
		return Sale{}, err
	}
	return sa, nil
}

// RemoveSale deletes the sale with the given id.
func (s *Store) RemoveSale(id string) (bool, error) {
	doc, err := s.read()
	if err != nil {
		return false, err
	}
	kept, removed := removeByID(doc.Sales, id)
	if !removed {
		return false, nil
	}
	doc.Sales = kept
	return true, s.write(doc)
}

// Stakes

// GetStakes returns all stakes in insertion order.
func (s *Store) GetStakes() ([]Stake, error) {
	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Stakes, nil
}

// AddStake appends a stake to the document and returns it unchanged.
func (s *Store) AddStake(st Stake) (Stake, error) {
	doc, err := s.read()
	if err != nil {
		return Stake{}, err
	}
	doc.Stakes = append(doc.Stakes, st)
	if err := s.write(doc); err != nil {
		return Stake{}, err
	}
	return st, nil
}

// RemoveStake deletes the stake with the given id.
func (s *Store) RemoveStake(id string) (bool, error) {
	doc, err := s.read()
	if err != nil {
		return false, err
	}
	kept, removed := removeByID(doc.Stakes, id)
	if !removed {
		return false, nil
	}
	doc.Stakes = kept
	return true, s.write(doc)
}
