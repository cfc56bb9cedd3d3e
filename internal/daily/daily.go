package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/guessgame/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Index returns a deterministic value in [0, n) for a date using keyed BLAKE2b(salt, YYYY-MM-DD) % n.
func Index(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h, err := blake2b.New256(key(salt))
	if err != nil {
		// key() never exceeds blake2b.Size.
		panic(err)
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Target returns the day's target inside r.
func Target(date time.Time, salt string, r game.Range) int {
	return r.Min + Index(date, salt, r.Size())
}

// key fits salts longer than 64 bytes into a BLAKE2b key.
func key(salt string) []byte {
	if len(salt) <= blake2b.Size {
		return []byte(salt)
	}
	sum := blake2b.Sum512([]byte(salt))
	return sum[:]
}
