package status

import (
	"fmt"
	"sort"
)

// Entry is one row of the registry.
type Entry struct {
	Code        Code   `json:"code"`
	Name        string `json:"name"`
	Class       Class  `json:"class"`
	Description string `json:"description"`
}

type table struct {
	entries []Entry
	byCode  map[int]Entry
	byName  map[string]Entry
}

var registry = newTable(
	informational,
	success,
	redirection,
	clientError,
	serverError,
)

// newTable merges the per-class rows into one table ordered by code. The
// hundreds digit alone decides each entry's class, so the rows never state
// it. Duplicate codes or names are programming errors in the static rows
// and panic at init.
func newTable(classes ...[]Entry) *table {
	t := &table{
		byCode: make(map[int]Entry),
		byName: make(map[string]Entry),
	}
	for _, rows := range classes {
		for _, e := range rows {
			e.Class = ClassOf(int(e.Code))
			if !e.Class.Valid() {
				panic(fmt.Sprintf("status: code %d outside [100, 599]", int(e.Code)))
			}
			if _, dup := t.byCode[int(e.Code)]; dup {
				panic(fmt.Sprintf("status: duplicate code %d", int(e.Code)))
			}
			if _, dup := t.byName[e.Name]; dup {
				panic(fmt.Sprintf("status: duplicate name %q", e.Name))
			}
			t.byCode[int(e.Code)] = e
			t.byName[e.Name] = e
			t.entries = append(t.entries, e)
		}
	}
	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].Code < t.entries[j].Code })
	return t
}
