package pid

import (
	"fmt"
	"log/slog"

	"github.com/lfstrange/sigmakit/event"
	"github.com/lfstrange/sigmakit/species"
)

// Toggle is the tri-state per-species configuration. Auto resolves to On only
// if a declared consumer requests the species; after initialization every
// toggle is binary.
type Toggle int

const (
	Auto Toggle = -1
	Off  Toggle = 0
	On   Toggle = 1
)

// Consumer declares which identification outputs a downstream task needs.
// Registration replaces output-name string matching: a consumer states its
// required species explicitly.
type Consumer interface {
	RequiredSpecies() []species.ID
}

// Config holds the per-species toggles.
type Config struct {
	Toggles [species.N]Toggle
	Log     *slog.Logger
}

// DefaultConfig leaves every species in Auto.
func DefaultConfig() Config {
	var cfg Config
	for i := range cfg.Toggles {
		cfg.Toggles[i] = Auto
	}
	return cfg
}

// Record is one identification result for one track under one hypothesis.
type Record struct {
	// ExpSignalDiff is the measured signal minus the expected signal.
	ExpSignalDiff float64
	// Separation is the signed z-score of the measurement.
	Separation float64
}

// Table is the append-only identification output for one species.
type Table struct {
	Species species.ID
	Records []Record
}

// Task produces per-track identification records for every enabled species.
// One task instance is single-threaded and owned by one batch.
type Task struct {
	resp    *Response
	enabled [species.N]bool
	tables  [species.N]*Table
	log     *slog.Logger
}

// NewTask resolves the toggles against the declared consumers. Disabled
// species produce no table at all, never an empty default.
func NewTask(resp *Response, cfg Config, consumers ...Consumer) (*Task, error) {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	t := &Task{resp: resp, log: log}

	requested := [species.N]bool{}
	for _, c := range consumers {
		for _, sp := range c.RequiredSpecies() {
			if int(sp) >= species.N {
				return nil, fmt.Errorf("pid: consumer requests unknown species %d", sp)
			}
			requested[sp] = true
		}
	}

	for _, sp := range species.All() {
		switch cfg.Toggles[sp] {
		case On:
			t.enabled[sp] = true
			log.Info("identification table enabled", "species", sp.String())
		case Off:
			if requested[sp] {
				log.Warn("identification table forced off but requested", "species", sp.String())
			}
		case Auto:
			if requested[sp] {
				t.enabled[sp] = true
				log.Info("identification table auto-enabled", "species", sp.String())
			}
		default:
			return nil, fmt.Errorf("pid: species %s: invalid toggle %d", sp, cfg.Toggles[sp])
		}
		if t.enabled[sp] {
			t.tables[sp] = &Table{Species: sp}
		}
	}
	return t, nil
}

// Enabled reports whether records are produced for the species.
func (t *Task) Enabled(sp species.ID) bool { return t.enabled[sp] }

// Identify evaluates one track under one hypothesis.
func (t *Task) Identify(trk *event.Track, sp species.ID) Record {
	mom := trk.TPCInnerParam
	exp := t.resp.ExpectedSignal(sp, mom)
	return Record{
		ExpSignalDiff: trk.TPCSignal - exp,
		Separation:    (trk.TPCSignal - exp) / t.resp.ExpectedSigma(sp, mom),
	}
}

// Process appends one record per track to every enabled species table, in
// the fixed species order. Disabled species are skipped entirely.
func (t *Task) Process(tracks []event.Track) {
	for _, sp := range species.All() {
		if !t.enabled[sp] {
			continue
		}
		tab := t.tables[sp]
		for i := range tracks {
			tab.Records = append(tab.Records, t.Identify(&tracks[i], sp))
		}
	}
}

// Table returns the output table for the species, or false if the species is
// disabled.
func (t *Task) Table(sp species.ID) (*Table, bool) {
	tab := t.tables[sp]
	return tab, tab != nil
}
