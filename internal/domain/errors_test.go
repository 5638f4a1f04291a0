package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := NewError(KindMissingState, "First check your mail!", nil)
	wrapped := fmt.Errorf("share: %w", err)

	assert.True(t, errors.Is(wrapped, ErrMissingState))
	assert.False(t, errors.Is(wrapped, ErrConnectionFailed))
	assert.Equal(t, "share: First check your mail!", wrapped.Error())
	assert.Equal(t, KindMissingState, KindOf(wrapped))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewError(KindConnectionFailed, "Failed to connect to the server.", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "Failed to connect to the server.", err.Error())
}

func TestError_MessageFallback(t *testing.T) {
	assert.Equal(t, "boom", NewError(KindUnknown, "", errors.New("boom")).Error())
	assert.Equal(t, "file conflict", (&Error{Kind: KindFileConflict}).Error())
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestSciper_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sciper  Sciper
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"just below minimum", 99999, true},
		{"minimum", 100000, false},
		{"typical", 123456, false},
		{"large", 9999999, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sciper.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
			assert.EqualError(t, err, "Invalid SCIPER!")
		})
	}
}

func TestSciper_String(t *testing.T) {
	assert.Equal(t, "123456", Sciper(123456).String())
}

func TestEntryRecord_String(t *testing.T) {
	r := EntryRecord{Mode: "-rw-r--r--", Owner: "elliot", Group: "fsociety", Name: "notes.txt"}
	assert.Equal(t, "-rw-r--r-- elliot fsociety notes.txt", r.String())
}
