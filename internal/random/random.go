// Package random генерирует случайные данные для тестов и утилит:
// показания датчиков трекера, строки, свободные порты.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand"
)

// rnd seeded from crypto/rand once per binary run
var rnd = func() *mathrand.Rand {
	buf := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		panic(err)
	}
	return mathrand.New(mathrand.NewSource(int64(binary.LittleEndian.Uint64(buf))))
}()

const letters = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ASCIIString returns string of letters and digits with length in [minLen, maxLen).
// The first character is never a digit.
func ASCIIString(minLen, maxLen int) string {
	n := minLen
	if maxLen > minLen {
		n += rnd.Intn(maxLen - minLen)
	}

	s := make([]byte, n)
	for i := range s {
		from := 0
		if i == 0 {
			from = 10
		}
		s[i] = letters[from+rnd.Intn(len(letters)-from)]
	}
	return string(s)
}

// Between returns random integer in [from, to).
func Between(from, to int) int {
	if to <= from {
		return from
	}
	return from + rnd.Intn(to-from)
}
