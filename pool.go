package glob

import (
	"sync"
	"unicode/utf8"
)

// maxPooledRunes caps the buffers returned to the pool so one huge input
// does not pin its memory for the life of the process.
const maxPooledRunes = 4096

var runePool = sync.Pool{
	New: func() any {
		b := make([]rune, 0, 64)
		return &b
	},
}

// decoded holds a string's code points in a buffer borrowed from runePool.
type decoded struct {
	runes []rune
	buf   *[]rune
}

// decode splits s into code points. Invalid UTF-8 bytes decode to
// utf8.RuneError, one per byte, as a range loop does. The caller must call
// release once the runes are no longer referenced.
func decode(s string) decoded {
	buf := runePool.Get().(*[]rune)
	runes := (*buf)[:0]
	if n := utf8.RuneCountInString(s); cap(runes) < n {
		runes = make([]rune, 0, n)
	}
	for _, r := range s {
		runes = append(runes, r)
	}
	return decoded{runes: runes, buf: buf}
}

func (d decoded) release() {
	if cap(d.runes) > maxPooledRunes {
		return
	}
	*d.buf = d.runes[:0]
	runePool.Put(d.buf)
}
