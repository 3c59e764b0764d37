package marketdata

import (
	"encoding/binary"
	"errors"
	"time"
)

const entryHeaderSize = 8

var errShortEntry = errors.New("cache entry shorter than header")

// entry is a cached upstream payload and the instant it was fetched.
type entry struct {
	Payload   []byte
	FetchedAt time.Time
}

// encode lays the entry out as an 8-byte big-endian unix-nano timestamp
// followed by the payload bytes verbatim.
func (e entry) encode() []byte {
	buf := make([]byte, entryHeaderSize+len(e.Payload))
	binary.BigEndian.PutUint64(buf[:entryHeaderSize], uint64(e.FetchedAt.UnixNano()))
	copy(buf[entryHeaderSize:], e.Payload)
	return buf
}

func decodeEntry(data []byte) (entry, error) {
	if len(data) < entryHeaderSize {
		return entry{}, errShortEntry
	}

	nanos := int64(binary.BigEndian.Uint64(data[:entryHeaderSize]))
	return entry{
		Payload:   data[entryHeaderSize:],
		FetchedAt: time.Unix(0, nanos),
	}, nil
}

// validAt reports whether the entry is still fresh at now.
func (e entry) validAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.FetchedAt) < ttl
}
