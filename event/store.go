package event

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Store is an in-memory event table set with slice-by-collision access.
// Row indices are stable and serve as provenance references.
type Store struct {
	Collisions []Collision `json:"collisions"`
	Tracks     []Track     `json:"tracks"`
	V0s        []V0        `json:"v0s"`

	// Optional column sets; either empty or aligned with V0s.
	Scores []MLScore `json:"scores,omitempty"`
	MC     []MCTruth `json:"mc,omitempty"`

	trackIdx map[int64][]int
	v0Idx    map[int64][]int
}

// NewStore indexes the given tables for per-collision slicing.
func NewStore(collisions []Collision, tracks []Track, v0s []V0) *Store {
	s := &Store{Collisions: collisions, Tracks: tracks, V0s: v0s}
	s.reindex()
	return s
}

func (s *Store) reindex() {
	s.trackIdx = make(map[int64][]int, len(s.Collisions))
	s.v0Idx = make(map[int64][]int, len(s.Collisions))
	for i, t := range s.Tracks {
		s.trackIdx[t.CollisionID] = append(s.trackIdx[t.CollisionID], i)
	}
	for i, v := range s.V0s {
		s.v0Idx[v.CollisionID] = append(s.v0Idx[v.CollisionID], i)
	}
}

// Validate checks the optional column sets against the V0 table.
func (s *Store) Validate() error {
	if len(s.Scores) != 0 && len(s.Scores) != len(s.V0s) {
		return fmt.Errorf("event: score column has %d rows, V0 table has %d", len(s.Scores), len(s.V0s))
	}
	if len(s.MC) != 0 && len(s.MC) != len(s.V0s) {
		return fmt.Errorf("event: MC column has %d rows, V0 table has %d", len(s.MC), len(s.V0s))
	}
	return nil
}

// HasScores reports whether the confidence-scorer columns are present.
// Column presence is a property of the table, not of individual rows.
func (s *Store) HasScores() bool { return len(s.Scores) > 0 }

// HasMC reports whether Monte-Carlo provenance columns are present.
func (s *Store) HasMC() bool { return len(s.MC) > 0 }

// TracksOf returns the row indices of the tracks in the given collision.
func (s *Store) TracksOf(collID int64) []int { return s.trackIdx[collID] }

// V0sOf returns the row indices of the V0s in the given collision.
func (s *Store) V0sOf(collID int64) []int { return s.v0Idx[collID] }

// ReadFile loads a store from a JSON file and indexes it.
func ReadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("event: read %s: %w", path, err)
	}
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("event: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.reindex()
	return &s, nil
}

func pt(px, py float64) float64 {
	return math.Hypot(px, py)
}

func eta(px, py, pz float64) float64 {
	p := math.Sqrt(px*px + py*py + pz*pz)
	return math.Atanh(pz / p)
}
