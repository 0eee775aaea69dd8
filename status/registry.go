package status

import "errors"

// ErrNotFound is returned when the requested code or name is not in the
// registry.
var ErrNotFound = errors.New("status: entry not found")

// ByCode returns the entry registered under the given numeric code. The
// match is exact: there is no range coercion and no nearest-match behaviour,
// so unregistered codes such as 419 fail even though 4xx neighbours exist.
func ByCode(code int) (Entry, error) {
	e, ok := registry.byCode[code]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// ByName returns the entry registered under the given symbolic name. The
// match is exact and case sensitive.
func ByName(name string) (Entry, error) {
	e, ok := registry.byName[name]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// ByClass returns the members of the given class in ascending code order.
// The slice is a fresh copy on every call; callers may mutate it freely.
func ByClass(c Class) []Entry {
	out := []Entry{}
	for _, e := range registry.entries {
		if e.Class == c {
			out = append(out, e)
		}
	}
	return out
}

// All returns every registered entry in ascending code order. The slice is a
// fresh copy on every call.
func All() []Entry {
	return append([]Entry(nil), registry.entries...)
}
