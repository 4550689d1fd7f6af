// Package id generates identifiers for accounts and pairs.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Monotonic keeps ids created in the same millisecond in creation order.
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a ULID string. Ids sort in creation order, so a collection
// sorted by id lists entities in the order they were added.
func New() string {
	mu.Lock()
	defer mu.Unlock()

	v, err := ulid.New(ulid.Timestamp(time.Now().UTC()), entropy)
	if err != nil {
		panic(err)
	}
	return v.String()
}

// Is reports whether s is a well-formed ULID.
func Is(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}

// Created returns the creation time encoded in a ULID, or the zero time
// when s is not one.
func Created(s string) time.Time {
	v, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(v.Time()).UTC()
}
