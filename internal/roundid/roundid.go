// Package roundid generates sortable round identifiers: a UUIDv7 rendered as
// 26 characters of Crockford base32, the same shape as a TypeID suffix.
package roundid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in a round ID
const Length = 26

// RandSource supplies random bits. *math/rand/v2.Rand satisfies it, which
// lets tests produce reproducible IDs.
type RandSource interface {
	Uint64() uint64
}

// Generator creates round IDs
type Generator struct {
	src RandSource
	now func() time.Time
}

// NewGenerator creates a generator. A nil src uses crypto/rand.
func NewGenerator(src RandSource) *Generator {
	return &Generator{src: src, now: time.Now}
}

// Next returns a new round ID
func (g *Generator) Next() string {
	return encode(g.uuid())
}

func (g *Generator) uuid() [16]byte {
	var u [16]byte

	// 48-bit unix millisecond timestamp
	ms := uint64(g.now().UnixMilli())
	binary.BigEndian.PutUint16(u[0:2], uint16(ms>>32))
	binary.BigEndian.PutUint32(u[2:6], uint32(ms))

	if g.src != nil {
		binary.BigEndian.PutUint16(u[6:8], uint16(g.src.Uint64()))
		binary.BigEndian.PutUint64(u[8:16], g.src.Uint64())
	} else if _, err := rand.Read(u[6:]); err != nil {
		panic("roundid: reading random bytes: " + err.Error())
	}

	u[6] = (u[6] & 0x0f) | 0x70 // version 7
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant
	return u
}

// encode renders 128 bits as 26 base32 digits, least significant digit last.
// The leading digit carries only the top 3 bits, so it is always 0-7.
func encode(u [16]byte) string {
	hi := binary.BigEndian.Uint64(u[0:8])
	lo := binary.BigEndian.Uint64(u[8:16])

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

// Validate checks that id is a well-formed round ID
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("round ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("round ID first character must be 0-7, got %c", id[0])
	}
	for i, ch := range id {
		if !strings.ContainsRune(alphabet, ch) {
			return fmt.Errorf("invalid character %c at position %d", ch, i)
		}
	}
	return nil
}
