package tui

import "github.com/idilsaglam/todo-cli/internal/model"

const noSelection = -1

// List is the ordered records plus a single selection.
// selected is a valid index, or noSelection exactly when records is empty.
type List struct {
	records  []model.Record
	selected int
}

// NewList takes ownership of records and selects the first one.
func NewList(records []model.Record) *List {
	l := &List{records: records, selected: noSelection}
	if len(records) > 0 {
		l.selected = 0
	}
	return l
}

func (l *List) Len() int { return len(l.records) }

// Selected reports the selected index, if any.
func (l *List) Selected() (int, bool) {
	return l.selected, l.selected != noSelection
}

// Records returns a copy in display order.
func (l *List) Records() []model.Record {
	out := make([]model.Record, len(l.records))
	copy(out, l.records)
	return out
}

func (l *List) SelectNext() {
	if l.selected != noSelection && l.selected < len(l.records)-1 {
		l.selected++
	}
}

func (l *List) SelectPrevious() {
	if l.selected > 0 {
		l.selected--
	}
}

func (l *List) SelectFirst() {
	if len(l.records) > 0 {
		l.selected = 0
	}
}

func (l *List) SelectLast() {
	if len(l.records) > 0 {
		l.selected = len(l.records) - 1
	}
}

// RemoveSelected deletes the selected record. The selection stays on the
// same index, falls back to the new last record, or becomes absent.
func (l *List) RemoveSelected() (model.Record, bool) {
	if l.selected == noSelection {
		return model.Record{}, false
	}
	return l.Remove(l.selected)
}

// Remove deletes the record at i and keeps the selection on the same record
// when that record survives.
func (l *List) Remove(i int) (model.Record, bool) {
	if i < 0 || i >= len(l.records) {
		return model.Record{}, false
	}
	removed := l.records[i]
	l.records = append(l.records[:i], l.records[i+1:]...)
	if i < l.selected {
		l.selected--
	}
	if l.selected >= len(l.records) {
		l.selected = len(l.records) - 1
	}
	return removed, true
}

// InsertAfterSelected places r after the selection (index 0 on an empty
// list) and selects it. It returns the new index.
func (l *List) InsertAfterSelected(r model.Record) int {
	at := l.selected + 1
	l.records = append(l.records, model.Record{})
	copy(l.records[at+1:], l.records[at:])
	l.records[at] = r
	l.selected = at
	return at
}

// MutateSelectedDescription rewrites the selected description with fn.
func (l *List) MutateSelectedDescription(fn func(string) string) {
	if l.selected == noSelection {
		return
	}
	l.records[l.selected].Description = fn(l.records[l.selected].Description)
}
