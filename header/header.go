package header

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/avelhart/go-savebank/thumb"
)

// SaveHeader is the fixed-layout metadata block prefixed to every save file.
// The game-state payload that follows it is opaque to this package.
type SaveHeader struct {
	Name      string // player-visible label, at most NameLen-1 bytes
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	PlayTime  uint32 // cumulative play time in seconds
	Thumbnail *thumb.Image
}

const (
	// Magic is the 4-byte tag opening every save file.
	Magic = "ADL:"

	// Version is the only save format version this codec reads or writes.
	Version = 1

	// NameLen is the width of the on-disk name field. The last byte is
	// reserved and always written as zero, so the visible name is at most
	// NameLen-1 bytes.
	NameLen = 16
)

// FixedSize is the byte length of a header without its thumbnail block.
// magic (4) + version (1) + name (NameLen) + date/time (6) + play time (4)
const FixedSize = 4 + 1 + NameLen + 6 + 4

var (
	ErrFormatMismatch  = errors.New("header: magic tag mismatch")
	ErrVersionMismatch = errors.New("header: unsupported save version")
	ErrTruncated       = errors.New("header: save header truncated")
)

// Encode writes the header to w in its on-disk form: magic, version, the
// null-padded name field, date and time, the big-endian play-time counter,
// and the thumbnail block when one is set. The output round-trips through
// Decode.
func (h *SaveHeader) Encode(w io.Writer) error {
	buf := &bytes.Buffer{}

	buf.WriteString(Magic)
	buf.WriteByte(Version)

	name := make([]byte, NameLen)
	copy(name[:NameLen-1], h.Name)
	buf.Write(name)

	if err := binary.Write(buf, binary.BigEndian, uint16(h.Year-1900)); err != nil {
		return err
	}
	buf.WriteByte(byte(h.Month - 1))
	buf.WriteByte(byte(h.Day))
	buf.WriteByte(byte(h.Hour))
	buf.WriteByte(byte(h.Minute))

	if err := binary.Write(buf, binary.BigEndian, h.PlayTime); err != nil {
		return err
	}

	if h.Thumbnail != nil {
		if err := thumb.Encode(buf, h.Thumbnail); err != nil {
			return err
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Decode reads a full header from r, including the optional thumbnail.
//
// Failure kinds are distinguishable: ErrFormatMismatch for a foreign magic
// tag, ErrVersionMismatch for an unsupported version byte, ErrTruncated when
// the stream ends before the mandatory fields are complete. A missing or
// malformed thumbnail is not an error; the header comes back with Thumbnail
// unset. The caller owns r and closes it.
func Decode(r io.Reader) (*SaveHeader, error) {
	h, err := decodePrefix(r)
	if err != nil {
		return nil, err
	}

	tail := make([]byte, 10)
	if _, err := io.ReadFull(r, tail); err != nil {
		return nil, ErrTruncated
	}

	br := bytes.NewReader(tail)

	var year uint16
	if err := binary.Read(br, binary.BigEndian, &year); err != nil {
		return nil, ErrTruncated
	}
	h.Year = int(year) + 1900

	month, _ := br.ReadByte()
	day, _ := br.ReadByte()
	hour, _ := br.ReadByte()
	minute, _ := br.ReadByte()
	h.Month = int(month) + 1
	h.Day = int(day)
	h.Hour = int(hour)
	h.Minute = int(minute)

	if err := binary.Read(br, binary.BigEndian, &h.PlayTime); err != nil {
		return nil, ErrTruncated
	}

	// Best effort: older saves carry no thumbnail at all.
	h.Thumbnail = thumb.DecodeIfPresent(r)

	return h, nil
}

// DecodeName reads only the magic, version and name fields. This is the
// cheap decode used when cataloging a whole directory of saves, where the
// date, play time and thumbnail are not needed.
func DecodeName(r io.Reader) (string, error) {
	h, err := decodePrefix(r)
	if err != nil {
		return "", err
	}
	return h.Name, nil
}

func decodePrefix(r io.Reader) (*SaveHeader, error) {
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, ErrTruncated
	}
	if string(magic) != Magic {
		return nil, ErrFormatMismatch
	}

	version := make([]byte, 1)
	if _, err := io.ReadFull(r, version); err != nil {
		return nil, ErrTruncated
	}
	if version[0] != Version {
		return nil, ErrVersionMismatch
	}

	name := make([]byte, NameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, ErrTruncated
	}

	// The final name byte is reserved and ignored on read.
	return &SaveHeader{Name: string(bytes.TrimRight(name[:NameLen-1], "\x00"))}, nil
}
