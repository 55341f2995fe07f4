package plotpy

import (
	"fmt"
	"strings"
)

// buffer is append-only script text. Entities and plots each own one and
// only ever read it whole.
type buffer struct {
	sb strings.Builder
}

func (b *buffer) write(s string) {
	b.sb.WriteString(s)
}

func (b *buffer) writef(format string, args ...any) {
	fmt.Fprintf(&b.sb, format, args...)
}

func (b *buffer) String() string {
	return b.sb.String()
}
