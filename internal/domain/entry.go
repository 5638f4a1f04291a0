package domain

import "fmt"

// EntryRecord is the ownership and permission metadata of one
// directory entry, as listed by "ls -l"
type EntryRecord struct {
	// Mode is the 10-character symbolic mode, e.g. "-rw-r--r--"
	Mode string

	// Owner is the resolved user name
	Owner string

	// Group is the resolved group name
	Group string

	// Name is the entry's base name
	Name string
}

// String renders the record as a single fingerprint line
func (r EntryRecord) String() string {
	return fmt.Sprintf("%s %s %s %s", r.Mode, r.Owner, r.Group, r.Name)
}
