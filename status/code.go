package status

import "strconv"

// Code is an HTTP status code. The registered values are declared as typed
// constants in the per-class files; the zero value is not a valid code.
type Code int

// Class returns the class tag for the code's hundreds digit.
func (c Code) Class() Class { return ClassOf(int(c)) }

// Valid reports whether the code is one of the registered values.
func (c Code) Valid() bool {
	_, ok := registry.byCode[int(c)]
	return ok
}

// Name returns the registry name for the code, such as "NOT_FOUND".
// It returns the empty string for unregistered values.
func (c Code) Name() string {
	if e, ok := registry.byCode[int(c)]; ok {
		return e.Name
	}
	return ""
}

// String returns the registry name when the code is registered, and the
// decimal digits otherwise.
func (c Code) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return strconv.Itoa(int(c))
}
