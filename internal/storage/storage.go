package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/knighttour/internal/board"
)

// Storage keys
const (
	keyStats      = "stats"
	tourKeyPrefix = "tour:"
)

// TourRecord stores one solved tour.
type TourRecord struct {
	Start    string        `json:"start"`
	Path     []string      `json:"path"`
	Nodes    int           `json:"nodes"`
	Elapsed  time.Duration `json:"elapsed"`
	SolvedAt time.Time     `json:"solved_at"`
}

// NewTourRecord builds a record from a search result.
func NewTourRecord(start board.Square, path []board.Square, nodes int, elapsed time.Duration) *TourRecord {
	rec := &TourRecord{
		Start:    start.String(),
		Path:     make([]string, len(path)),
		Nodes:    nodes,
		Elapsed:  elapsed,
		SolvedAt: time.Now(),
	}
	for i, sq := range path {
		rec.Path[i] = sq.String()
	}
	return rec
}

// Squares converts the stored path back to board squares.
func (r *TourRecord) Squares() ([]board.Square, error) {
	path := make([]board.Square, len(r.Path))
	for i, s := range r.Path {
		sq, err := board.ParseSquare(s)
		if err != nil {
			return nil, err
		}
		path[i] = sq
	}
	return path, nil
}

// SearchStats stores cumulative search statistics.
type SearchStats struct {
	SearchesRun int     `json:"searches_run"`
	TotalNodes  int64   `json:"total_nodes"`
	BestNPS     float64 `json:"best_nps"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the default platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the database in the given directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func tourKey(start board.Square) []byte {
	return []byte(tourKeyPrefix + start.String())
}

// SaveTour stores a solved tour keyed by its starting square.
func (s *Storage) SaveTour(rec *TourRecord) error {
	start, err := board.ParseSquare(rec.Start)
	if err != nil {
		return err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(tourKey(start), data)
	})
}

// LoadTour returns the cached tour for a starting square, or nil if none
// has been stored.
func (s *Storage) LoadTour(start board.Square) (*TourRecord, error) {
	var rec *TourRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(tourKey(start))
		if err == badger.ErrKeyNotFound {
			return nil // No cached tour
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			rec = &TourRecord{}
			return json.Unmarshal(val, rec)
		})
	})

	return rec, err
}

// LoadStats loads search statistics, returning empty stats if none exist.
func (s *Storage) LoadStats() (*SearchStats, error) {
	stats := &SearchStats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// SaveStats saves search statistics.
func (s *Storage) SaveStats(stats *SearchStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// RecordSearch folds one completed search into the cumulative statistics.
func (s *Storage) RecordSearch(nodes int, elapsed time.Duration) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.SearchesRun++
	stats.TotalNodes += int64(nodes)

	if secs := elapsed.Seconds(); secs > 0 {
		nps := float64(nodes) / secs
		if nps > stats.BestNPS {
			stats.BestNPS = nps
		}
	}

	return s.SaveStats(stats)
}
