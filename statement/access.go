package statement

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AccessKind tells whether a statement reads or writes a tensor.
type AccessKind int

const (
	Read AccessKind = iota
	Write
	// ReadWrite marks a tensor that is both read and written by one
	// statement instance, such as the accumulator of a GEMM.
	ReadWrite
)

// String returns the name of the access kind.
func (k AccessKind) String() string {
	switch k {
	case Read:
		return "read"
	case Write:
		return "write"
	case ReadWrite:
		return "readwrite"
	default:
		panic("invalid access kind")
	}
}

// ParseAccessKind converts "read", "write" or "readwrite" into an AccessKind.
func ParseAccessKind(s string) (AccessKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "read", "r":
		return Read, nil
	case "write", "w":
		return Write, nil
	case "readwrite", "rw":
		return ReadWrite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccessKind, s)
	}
}

// UnmarshalYAML decodes an access kind from its name.
func (k *AccessKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	kind, err := ParseAccessKind(s)
	if err != nil {
		return err
	}
	*k = kind

	return nil
}
