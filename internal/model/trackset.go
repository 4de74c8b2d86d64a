package model

import "strconv"

// TrackSet is an ordered, read-only collection of tracks keyed by canonical id.
//
// Insertion order is preserved: it decides the numbering of the records in
// the pack registry and the order of every generated file. Accessors return
// copies, so a TrackSet cannot be changed once built.
type TrackSet struct {
	order []string
	byID  map[string]TrackRecord
}

// NewTrackSet creates a TrackSet from records in the given order.
// Returns an error if a record has an invalid or duplicate id.
func NewTrackSet(records ...TrackRecord) (*TrackSet, error) {
	ts := &TrackSet{
		order: make([]string, 0, len(records)),
		byID:  make(map[string]TrackRecord, len(records)),
	}
	for _, r := range records {
		if !IsCanonicalID(r.ID) {
			return nil, NewError(ErrInvalidName, "build tracks", r.ID, r.AudioPath, nil)
		}
		if ts.Has(r.ID) {
			return nil, NewError(ErrInvalidInput, "build tracks", r.ID, r.AudioPath, errDuplicateID)
		}
		ts.order = append(ts.order, r.ID)
		ts.byID[r.ID] = r
	}
	return ts, nil
}

// Len returns the number of tracks.
func (ts *TrackSet) Len() int {
	if ts == nil {
		return 0
	}
	return len(ts.order)
}

// Has reports whether a track with the given id exists.
func (ts *TrackSet) Has(id string) bool {
	if ts == nil {
		return false
	}
	_, ok := ts.byID[id]
	return ok
}

// Get returns the track with the given id.
func (ts *TrackSet) Get(id string) (TrackRecord, bool) {
	if ts == nil {
		return TrackRecord{}, false
	}
	r, ok := ts.byID[id]
	return r, ok
}

// IDs returns the track ids in insertion order.
func (ts *TrackSet) IDs() []string {
	if ts == nil {
		return nil
	}
	return append([]string(nil), ts.order...)
}

// Records returns the tracks in insertion order.
func (ts *TrackSet) Records() []TrackRecord {
	records := make([]TrackRecord, 0, ts.Len())
	ts.Each(func(_ int, r TrackRecord) {
		records = append(records, r)
	})
	return records
}

// Each calls fn for every track in insertion order with its 1-based position.
func (ts *TrackSet) Each(fn func(number int, track TrackRecord)) {
	if ts == nil {
		return
	}
	for i, id := range ts.order {
		fn(i+1, ts.byID[id])
	}
}

// RecordKey returns the pack registry key for the n-th track (1-based).
func RecordKey(n int) string {
	return "track" + strconv.Itoa(n)
}
