package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/gautamprafful007/PDF-Comparator/internal/comparator"
	"github.com/gautamprafful007/PDF-Comparator/internal/compressor"
	"github.com/gautamprafful007/PDF-Comparator/internal/encryptor"
)

const keyPrefix = "report:"

// ErrNotFound is returned when no report exists for the requested ID.
var ErrNotFound = errors.New("report not found")

// Result is one stored comparison: the two file names, the full record
// sequence and its summary.
type Result struct {
	ID        string                  `json:"id"`
	OldName   string                  `json:"old_name"`
	NewName   string                  `json:"new_name"`
	CreatedAt int64                   `json:"created_at"` // Unix timestamp
	Records   []comparator.DiffRecord `json:"differences"`
	Summary   comparator.Summary      `json:"summary"`
}

// Meta is the listing view of a stored report.
type Meta struct {
	ID            string `json:"id"`
	OldName       string `json:"old_name"`
	NewName       string `json:"new_name"`
	CreatedAt     int64  `json:"created_at"`
	TotalElements int    `json:"total_elements"`
}

// NewResult assembles a Result with a fresh ID and timestamp.
func NewResult(oldName, newName string, records []comparator.DiffRecord, summary comparator.Summary) Result {
	return Result{
		ID:        uuid.New().String(),
		OldName:   oldName,
		NewName:   newName,
		CreatedAt: time.Now().Unix(),
		Records:   records,
		Summary:   summary,
	}
}

// Store persists comparison results in BadgerDB. Payloads are JSON,
// lz4-compressed, and encrypted at rest when a key is configured.
type Store struct {
	db  *badger.DB
	enc encryptor.Encryptor
	key string
}

// OpenStore opens (or creates) a BadgerDB at the given path. A non-empty
// encryptionKey enables at-rest encryption of report payloads.
func OpenStore(dbPath, encryptionKey string) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open BadgerDB: %v", err)
	}
	s := &Store{db: db, key: encryptionKey}
	if encryptionKey != "" {
		s.enc = encryptor.NewEncryptor()
	}
	return s, nil
}

// Close closes the BadgerDB.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a comparison result.
func (s *Store) Put(res Result) error {
	payload, err := s.encode(res)
	if err != nil {
		return err
	}
	key := []byte(keyPrefix + res.ID)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, payload)
	})
}

// Get retrieves a comparison result by ID.
func (s *Store) Get(id string) (Result, error) {
	var res Result
	key := []byte(keyPrefix + id)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, err := s.decode(val)
			if err != nil {
				return err
			}
			res = decoded
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Result{}, ErrNotFound
	}
	return res, err
}

// Delete removes a stored report. Deleting a missing report is not an error.
func (s *Store) Delete(id string) error {
	key := []byte(keyPrefix + id)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// List returns the metadata of every stored report.
func (s *Store) List() ([]Meta, error) {
	var metas []Meta
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				res, err := s.decode(val)
				if err != nil {
					return err
				}
				metas = append(metas, Meta{
					ID:            res.ID,
					OldName:       res.OldName,
					NewName:       res.NewName,
					CreatedAt:     res.CreatedAt,
					TotalElements: res.Summary.TotalElements,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return metas, err
}

func (s *Store) encode(res Result) ([]byte, error) {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	payload, err := compressor.Compress(raw)
	if err != nil {
		return nil, err
	}
	if s.enc != nil {
		return s.enc.Encrypt(payload, s.key)
	}
	return payload, nil
}

func (s *Store) decode(payload []byte) (Result, error) {
	var err error
	if s.enc != nil {
		if payload, err = s.enc.Decrypt(payload, s.key); err != nil {
			return Result{}, err
		}
	}
	raw, err := compressor.Decompress(payload)
	if err != nil {
		return Result{}, err
	}
	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return res, nil
}
