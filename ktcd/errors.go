package ktcd

import "fmt"

// ClassificationError reports a key missing from a regulatory table.
type ClassificationError struct {
	Table string
	Key   string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unknown %s key %q", e.Table, e.Key)
}
