package corpusio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// OutputEncoding names the character encoding of written CSV files.
type OutputEncoding string

const (
	UTF8  OutputEncoding = "utf-8"
	UTF16 OutputEncoding = "utf-16"
	UTF32 OutputEncoding = "utf-32"
)

// ParseOutputEncoding accepts the encoding names case-insensitively.
func ParseOutputEncoding(name string) (OutputEncoding, error) {
	switch e := OutputEncoding(strings.ToLower(strings.TrimSpace(name))); e {
	case "", UTF8:
		return UTF8, nil
	case UTF16, UTF32:
		return e, nil
	default:
		return "", fmt.Errorf("unknown output encoding %q", name)
	}
}

func (e OutputEncoding) encoding() encoding.Encoding {
	switch e {
	case UTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF32:
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM)
	default:
		return unicode.UTF8
	}
}

// WriteCSV writes the header and rows in the given encoding.
func WriteCSV(w io.Writer, enc OutputEncoding, header []string, rows [][]string) error {
	ew := enc.encoding().NewEncoder().Writer(w)
	cw := csv.NewWriter(ew)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	if c, ok := ew.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
