package domain

import "strconv"

// MinSciper is the smallest registration number accepted
const MinSciper = 100000

// Sciper is a student registration number
type Sciper int64

// String returns the decimal form used on disk and on the wire
func (s Sciper) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// Validate checks the registration number is in range
func (s Sciper) Validate() error {
	if s < MinSciper {
		return NewError(KindInvalidIdentifier, "Invalid SCIPER!", nil)
	}
	return nil
}
