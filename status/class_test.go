package status

import "testing"

func TestClassOf(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Class
	}{
		{name: "informational low edge", code: 100, want: Informational},
		{name: "informational high edge", code: 199, want: Informational},
		{name: "success", code: 226, want: Success},
		{name: "redirection", code: 308, want: Redirection},
		{name: "client error", code: 404, want: ClientError},
		{name: "unregistered 4xx still classifies", code: 444, want: ClientError},
		{name: "server error high edge", code: 599, want: ServerError},
		{name: "below range", code: 99, want: 0},
		{name: "above range", code: 600, want: 0},
		{name: "zero", code: 0, want: 0},
		{name: "negative", code: -200, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassOf(tt.code); got != tt.want {
				t.Fatalf("ClassOf(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassString(t *testing.T) {
	tests := []struct {
		class Class
		want  string
	}{
		{Informational, "Informational"},
		{Success, "Success"},
		{Redirection, "Redirection"},
		{ClientError, "ClientError"},
		{ServerError, "ServerError"},
		{Class(0), "Unknown"},
		{Class(7), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.class.String(); got != tt.want {
			t.Errorf("Class(%d).String() = %q, want %q", int(tt.class), got, tt.want)
		}
	}
}

func TestClassValid(t *testing.T) {
	for _, c := range Classes {
		if !c.Valid() {
			t.Errorf("class %v should be valid", c)
		}
	}
	for _, c := range []Class{0, 6, -1} {
		if c.Valid() {
			t.Errorf("class %d should be invalid", int(c))
		}
	}
}

func TestClassEntriesMatchesByClass(t *testing.T) {
	for _, c := range Classes {
		viaMethod := c.Entries()
		viaFunc := ByClass(c)
		if len(viaMethod) != len(viaFunc) {
			t.Fatalf("class %v: Entries()=%d, ByClass=%d", c, len(viaMethod), len(viaFunc))
		}
		for i := range viaMethod {
			if viaMethod[i] != viaFunc[i] {
				t.Fatalf("class %v entry %d differs: %+v vs %+v", c, i, viaMethod[i], viaFunc[i])
			}
		}
	}
}
