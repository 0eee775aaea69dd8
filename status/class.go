package status

// Class tags a status code by its hundreds digit. The numeric value of a
// Class is the digit itself, so the class of a code is always code/100.
type Class int

const (
	Informational Class = 1 // 1xx: request received, processing continues
	Success       Class = 2 // 2xx: request received, understood, accepted
	Redirection   Class = 3 // 3xx: further action needed to complete the request
	ClientError   Class = 4 // 4xx: the request is at fault
	ServerError   Class = 5 // 5xx: the server failed to fulfil a valid request
)

// Classes lists the five class tags in ascending order.
var Classes = []Class{Informational, Success, Redirection, ClientError, ServerError}

// ClassOf computes the class tag for an arbitrary integer code. Values
// outside [100, 599] map to the zero Class. The computation works for any
// three-digit code, registered or not, which lets callers classify codes
// the registry does not list (for example treating an unrecognised 4xx as a
// generic client error).
func ClassOf(code int) Class {
	if code < 100 || code > 599 {
		return 0
	}
	return Class(code / 100)
}

// Valid reports whether the tag is one of the five classes.
func (c Class) Valid() bool { return c >= Informational && c <= ServerError }

func (c Class) String() string {
	switch c {
	case Informational:
		return "Informational"
	case Success:
		return "Success"
	case Redirection:
		return "Redirection"
	case ClientError:
		return "ClientError"
	case ServerError:
		return "ServerError"
	}
	return "Unknown"
}

// Entries returns the class members in ascending code order.
func (c Class) Entries() []Entry { return ByClass(c) }
