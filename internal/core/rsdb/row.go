package rsdb

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	IDSize       = 4
	UsernameSize = 32
	EmailSize    = 255
	RowSize      = IDSize + UsernameSize + EmailSize
)

// ErrInvalidText is returned by UnmarshalRowStrict when a text field does
// not contain valid UTF-8 before its zero terminator.
var ErrInvalidText = errors.New("invalid text encoding")

// Row is the single fixed width record stored by the engine. Text fields
// shorter than their field width are zero padded on disk.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Marshal serializes the row into buf. The encoded form is always exactly
// RowSize bytes, buf is reused when it has enough capacity.
func (r *Row) Marshal(buf []byte) []byte {
	if cap(buf) >= RowSize {
		buf = buf[:RowSize]
	} else {
		buf = make([]byte, RowSize)
	}

	buf[0] = byte(r.ID >> 0)
	buf[1] = byte(r.ID >> 8)
	buf[2] = byte(r.ID >> 16)
	buf[3] = byte(r.ID >> 24)

	marshalText(buf[IDSize:IDSize+UsernameSize], r.Username)
	marshalText(buf[IDSize+UsernameSize:RowSize], r.Email)

	return buf[:RowSize]
}

// UnmarshalRow decodes buf into aRow. Decoding is total, bytes that are not
// valid UTF-8 are replaced with the Unicode replacement character instead of
// failing. Callers that need validation should use UnmarshalRowStrict.
func UnmarshalRow(buf []byte, aRow *Row) {
	aRow.ID = unmarshalID(buf)
	aRow.Username = strings.ToValidUTF8(string(textBytes(buf[IDSize:IDSize+UsernameSize])), string(utf8.RuneError))
	aRow.Email = strings.ToValidUTF8(string(textBytes(buf[IDSize+UsernameSize:RowSize])), string(utf8.RuneError))
}

// UnmarshalRowStrict decodes buf into aRow, failing with ErrInvalidText
// when a text field is not valid UTF-8.
func UnmarshalRowStrict(buf []byte, aRow *Row) error {
	aRow.ID = unmarshalID(buf)

	username := textBytes(buf[IDSize : IDSize+UsernameSize])
	if !utf8.Valid(username) {
		return fmt.Errorf("username: %w", ErrInvalidText)
	}
	aRow.Username = string(username)

	email := textBytes(buf[IDSize+UsernameSize : RowSize])
	if !utf8.Valid(email) {
		return fmt.Errorf("email: %w", ErrInvalidText)
	}
	aRow.Email = string(email)

	return nil
}

func unmarshalID(buf []byte) uint32 {
	return 0 |
		(uint32(buf[0]) << 0) |
		(uint32(buf[1]) << 8) |
		(uint32(buf[2]) << 16) |
		(uint32(buf[3]) << 24)
}

// marshalText left justifies value in dst and zero pads the remainder. The
// zero byte doubles as the terminator on decode.
func marshalText(dst []byte, value string) {
	n := copy(dst, value)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// textBytes returns the bytes of field up to the first zero byte, or the
// whole field if it contains none.
func textBytes(field []byte) []byte {
	if i := bytes.IndexByte(field, 0); i != -1 {
		return field[:i]
	}
	return field
}
