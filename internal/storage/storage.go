// Package storage caches analysed positions in a Badger database keyed by
// their exported FEN.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/output"
)

// Key prefixes
const (
	prefixPosition = "pos:"
	prefixPerft    = "perft:"
)

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// Open opens (creating if needed) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Storage, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open analysis cache")
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func positionKey(fen string) []byte {
	return []byte(prefixPosition + fen)
}

func perftKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%s%d:%s", prefixPerft, depth, fen))
}

// Put stores an analysis under its FEN, replacing any earlier entry.
func (s *Storage) Put(a output.Analysis) error {
	if a.FEN == "" {
		return errors.Wrap(errors.ErrInvalidFEN, "analysis without fen")
	}

	data, err := json.Marshal(a)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(positionKey(a.FEN), data)
	})
}

// Get loads the analysis stored for fen. The boolean is false when no
// entry exists.
func (s *Storage) Get(fen string) (output.Analysis, bool, error) {
	var a output.Analysis
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(positionKey(fen))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &a)
		})
	})

	return a, found, err
}

// PutPerft records the node count of fen at depth.
func (s *Storage) PutPerft(fen string, depth int, nodes uint64) error {
	data, err := json.Marshal(nodes)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(fen, depth), data)
	})
}

// GetPerft loads a recorded node count.
func (s *Storage) GetPerft(fen string, depth int) (uint64, bool, error) {
	var nodes uint64
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &nodes)
		})
	})

	return nodes, found, err
}

// Delete removes the analysis and every perft count stored for fen.
func (s *Storage) Delete(fen string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete(positionKey(fen)); err != nil {
			return err
		}

		var perftKeys [][]byte
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(prefixPerft)})
		for it.Rewind(); it.Valid(); it.Next() {
			key := it.Item().KeyCopy(nil)
			if strings.HasSuffix(string(key), ":"+fen) {
				perftKeys = append(perftKeys, key)
			}
		}
		it.Close()

		for _, key := range perftKeys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Positions lists the FENs of every stored analysis in key order.
func (s *Storage) Positions() ([]string, error) {
	var fens []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixPosition)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			fens = append(fens, strings.TrimPrefix(string(it.Item().Key()), prefixPosition))
		}
		return nil
	})

	return fens, err
}
