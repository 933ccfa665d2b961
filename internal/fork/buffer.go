package fork

import (
	"bytes"
	"sync"
)

// buffer is a bytes.Buffer safe for a writing process and a reading test.
type buffer struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (b *buffer) Write(p []byte) (n int, err error) {
	b.m.Lock()
	defer b.m.Unlock()
	return b.buf.Write(p)
}

// Bytes возвращает копию накопленного вывода
func (b *buffer) Bytes() []byte {
	b.m.Lock()
	defer b.m.Unlock()
	return bytes.Clone(b.buf.Bytes())
}
