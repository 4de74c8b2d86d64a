package catalog

import (
	"fmt"

	"github.com/handiism/musica-packotron/internal/model"
)

// Entry is one track as the user edits it, before any validation.
//
// Empty strings mean "not set": an empty Description falls back to the
// audio file name, an empty Lore or SpecialName leaves the feature off.
type Entry struct {
	AudioPath   string
	TexturePath string
	Description string
	Lore        string
	SpecialName string
	IsShiny     bool
}

// Label returns the text shown for the entry in track lists.
func (e Entry) Label() string {
	if e.Description != "" {
		return e.Description
	}
	return model.NewTrackRecord("", e.AudioPath, "").Description
}

// Draft is an editable, ordered list of track entries.
//
// Interactive front-ends grow a Draft one user action at a time (add,
// edit, remove) and hand Input() to a Builder once the user submits.
//
// Example:
//
//	var d Draft
//	d.Add(Entry{AudioPath: "songA.ogg", TexturePath: "texA.png"})
//	d.Add(Entry{AudioPath: "songB.ogg", TexturePath: "texB.png", Lore: "Ancient tune"})
//	tracks, err := NewBuilder(nil).Build(d.Input())
type Draft struct {
	entries []Entry
}

// Add appends entries and returns the index of the last one.
func (d *Draft) Add(entries ...Entry) int {
	d.entries = append(d.entries, entries...)
	return len(d.entries) - 1
}

// Update replaces the entry at index i.
func (d *Draft) Update(i int, e Entry) error {
	if err := d.check(i); err != nil {
		return err
	}
	d.entries[i] = e
	return nil
}

// Remove deletes the entry at index i, keeping the order of the rest.
func (d *Draft) Remove(i int) error {
	if err := d.check(i); err != nil {
		return err
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	return nil
}

// Len returns the number of entries.
func (d *Draft) Len() int {
	return len(d.entries)
}

// Entry returns the entry at index i.
func (d *Draft) Entry(i int) (Entry, bool) {
	if d.check(i) != nil {
		return Entry{}, false
	}
	return d.entries[i], true
}

// Entries returns a copy of all entries in order.
func (d *Draft) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// Input converts the draft into Builder input.
func (d *Draft) Input() Input {
	in := Input{
		AudioPaths:   make([]string, 0, len(d.entries)),
		TexturePaths: make([]string, 0, len(d.entries)),
		Overrides:    make([]model.TrackOverride, 0, len(d.entries)),
	}
	for _, e := range d.entries {
		in.AudioPaths = append(in.AudioPaths, e.AudioPath)
		in.TexturePaths = append(in.TexturePaths, e.TexturePath)
		in.Overrides = append(in.Overrides, e.override())
	}
	return in
}

func (e Entry) override() model.TrackOverride {
	var o model.TrackOverride
	if e.Description != "" {
		desc := e.Description
		o.Description = &desc
	}
	if e.Lore != "" {
		lore := e.Lore
		o.Lore = &lore
	}
	if e.SpecialName != "" {
		name := e.SpecialName
		o.SpecialName = &name
	}
	if e.IsShiny {
		shiny := true
		o.IsShiny = &shiny
	}
	return o
}

func (d *Draft) check(i int) error {
	if i < 0 || i >= len(d.entries) {
		return fmt.Errorf("track %d out of range (have %d)", i, len(d.entries))
	}
	return nil
}
