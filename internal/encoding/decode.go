package encoding

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// DetectCharset returns the most likely charset of the given bytes,
// defaulting to utf-8 when detection fails.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// DecodeText returns the given bytes as a UTF-8 string. Valid UTF-8 input
// is passed through untouched; anything else is transcoded from its
// detected legacy charset. Transcoding failures fall back to the raw
// bytes rather than erroring, so a conversion never aborts on a stray
// legacy-encoded description.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	detected := DetectCharset(data)
	reader, err := charset.NewReaderLabel(detected, bytes.NewReader(data))
	if err != nil {
		return string(data)
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
