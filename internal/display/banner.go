package display

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// TypeDelay is the pause between characters on an interactive terminal
const TypeDelay = 60 * time.Millisecond

// Typewriter prints text one character at a time
type Typewriter struct {
	out   io.Writer
	delay time.Duration
}

// NewTypewriter creates a Typewriter on out. The delay only applies when
// out is a terminal, so piped and captured output is not slowed down.
func NewTypewriter(out io.Writer) *Typewriter {
	var delay time.Duration
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		delay = TypeDelay
	}
	return &Typewriter{out: out, delay: delay}
}

// Type writes s rune by rune
func (t *Typewriter) Type(s string) {
	for _, r := range s {
		fmt.Fprintf(t.out, "%c", r)
		if t.delay > 0 {
			time.Sleep(t.delay)
		}
	}
}
