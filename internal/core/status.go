package core

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies the outcome of a single artifact fetch.
type Kind string

const (
	KindOK        Kind = "ok"
	KindHTTPError Kind = "http_error"
	KindError     Kind = "error"
	KindSkipped   Kind = "skipped"
)

// Status is the recorded outcome for one artifact. Failures are carried
// as values, never raised; callers decide whether to log or skip.
type Status struct {
	Kind   Kind
	Code   int    // HTTP status for KindHTTPError
	Reason string // error kind or skip reason
}

// OK returns a successful status.
func OK() Status {
	return Status{Kind: KindOK}
}

// HTTPFailure returns a status for a known HTTP error response.
func HTTPFailure(code int) Status {
	return Status{Kind: KindHTTPError, Code: code}
}

// Failure returns a status for a transport or parse failure of the given kind.
func Failure(reason string) Status {
	return Status{Kind: KindError, Reason: reason}
}

// Skipped returns a status for an attempt whose precondition was not met.
func Skipped(reason string) Status {
	return Status{Kind: KindSkipped, Reason: reason}
}

// IsOK reports whether the artifact was fetched successfully.
func (s Status) IsOK() bool {
	return s.Kind == KindOK
}

// String renders the status in its wire form: "ok", "http_error:404",
// "error:Timeout", "skipped:no_meta".
func (s Status) String() string {
	switch s.Kind {
	case KindHTTPError:
		return fmt.Sprintf("%s:%d", KindHTTPError, s.Code)
	case KindError, KindSkipped:
		if s.Reason != "" {
			return fmt.Sprintf("%s:%s", s.Kind, s.Reason)
		}
		return string(s.Kind)
	default:
		return string(s.Kind)
	}
}

// ParseStatus parses the wire form produced by String.
func ParseStatus(raw string) (Status, error) {
	kind, rest, _ := strings.Cut(raw, ":")
	switch Kind(kind) {
	case KindOK:
		return OK(), nil
	case KindHTTPError:
		code, err := strconv.Atoi(rest)
		if err != nil {
			return Status{}, fmt.Errorf("invalid http_error status %q", raw)
		}
		return HTTPFailure(code), nil
	case KindError:
		return Failure(rest), nil
	case KindSkipped:
		return Skipped(rest), nil
	case "":
		return Status{}, nil
	default:
		return Status{}, fmt.Errorf("unknown status kind %q", kind)
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
