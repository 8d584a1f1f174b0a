package codepage

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// codePageToEncoding covers the code pages golang.org/x/text ships a decoder
// for. Pages absent here (737, 857, 861, 10000 — legacy OEM/Mac pages with no
// x/text counterpart) fall back to the spec's single-byte Latin-1 identity
// mapping in Decode, below.
var codePageToEncoding = map[int]encoding.Encoding{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	860:  charmap.CodePage860,
	863:  charmap.CodePage863,
	865:  charmap.CodePage865,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	932:  japanese.ShiftJIS,
	936:  simplifiedchinese.GBK,
	949:  korean.EUCKR,
	950:  traditionalchinese.Big5,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1257: charmap.Windows1257,
}

// Decoder returns the golang.org/x/text encoding for a resolved numeric code
// page. ok is false when no x/text decoder covers that page.
func Decoder(codePage int) (encoding.Encoding, bool) {
	enc, ok := codePageToEncoding[codePage]
	return enc, ok
}

// Decode converts raw character-field bytes to UTF-8 using the code page
// resolved from languageDriver. When the driver byte is unmapped, or maps to
// a code page golang.org/x/text doesn't cover, it falls back to a Latin-1
// identity mapping (one byte -> one rune), so decoding never fails on
// non-UTF-8 bytes (spec.md §4.5).
func Decode(raw []byte, languageDriver byte) string {
	if cp, ok := Resolve(languageDriver); ok {
		if enc, ok := Decoder(cp); ok {
			if decoded, err := enc.NewDecoder().Bytes(raw); err == nil {
				return string(decoded)
			}
		}
	}
	return latin1(raw)
}

// latin1 treats each byte as its own Unicode code point (ISO-8859-1), which
// never fails to decode, for code pages x/text doesn't cover.
func latin1(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes)
}
