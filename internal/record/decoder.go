// Package record decodes a raw fixed-width DBF record into a typed
// pkg/types.Record, honoring the deletion marker and per-field type rules of
// spec.md §4.5.
package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xbasekit/sxdbf/internal/codepage"
	"github.com/xbasekit/sxdbf/pkg/types"
)

// Decode decodes one record from raw, which must already be exactly one
// record's worth of bytes carved from a decrypted payload. Decode takes no
// record index; callers (pkg/dbf) select the record and return
// RecordIndexOutOfRange themselves.
func Decode(raw []byte, fields []types.FieldDescriptor, languageDriver byte) types.Record {
	if raw[0] == 0x2A {
		return types.Record{Deleted: true}
	}

	rec := types.Record{Fields: make(map[string]types.FieldValue, len(fields))}
	for _, f := range fields {
		end := f.OffsetInRecord + int(f.Length)
		if end > len(raw) {
			rec.Fields[f.Name] = types.FieldValue{Kind: types.KindNone}
			rec.Issues = append(rec.Issues, f.Name)
			continue
		}
		raw := raw[f.OffsetInRecord:end]
		val, issue := decodeField(raw, f, languageDriver)
		rec.Fields[f.Name] = val
		if issue {
			rec.Issues = append(rec.Issues, f.Name)
		}
	}
	return rec
}

func decodeField(raw []byte, f types.FieldDescriptor, languageDriver byte) (types.FieldValue, bool) {
	switch f.Type {
	case 'C':
		return types.FieldValue{Kind: types.KindText, Text: trimText(raw, languageDriver)}, false
	case 'N':
		return decodeNumeric(raw, f)
	case 'F':
		return decodeFloat(raw)
	case 'L':
		return decodeLogical(raw)
	case 'D':
		return decodeDate(raw)
	case 'M':
		return types.FieldValue{Kind: types.KindMemoPointer, Text: trimText(raw, languageDriver)}, false
	default:
		return types.FieldValue{Kind: types.KindText, Text: trimText(raw, languageDriver)}, false
	}
}

func trimText(raw []byte, languageDriver byte) string {
	trimmed := strings.TrimRight(string(raw), " \x00")
	if trimmed == "" {
		return ""
	}
	// Re-trim after code-page decoding too, in case the raw bytes contained
	// trailing spaces encoded as something other than ASCII 0x20.
	return strings.TrimRight(codepage.Decode([]byte(trimmed), languageDriver), " ")
}

func decodeNumeric(raw []byte, f types.FieldDescriptor) (types.FieldValue, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return types.FieldValue{Kind: types.KindNone}, false
	}
	if f.DecimalPlaces > 0 {
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return types.FieldValue{Kind: types.KindNone}, true
		}
		return types.FieldValue{Kind: types.KindDecimal, Decimal: s}, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return types.FieldValue{Kind: types.KindNone}, true
	}
	return types.FieldValue{Kind: types.KindInteger, Int: n}, false
}

func decodeFloat(raw []byte) (types.FieldValue, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return types.FieldValue{Kind: types.KindNone}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return types.FieldValue{Kind: types.KindNone}, true
	}
	return types.FieldValue{Kind: types.KindFloat, Float: f}, false
}

func decodeLogical(raw []byte) (types.FieldValue, bool) {
	if len(raw) == 0 {
		return types.FieldValue{Kind: types.KindNone}, false
	}
	switch raw[0] {
	case 'T', 't', 'Y', 'y':
		return types.FieldValue{Kind: types.KindLogical, Bool: true}, false
	case 'F', 'f', 'N', 'n':
		return types.FieldValue{Kind: types.KindLogical, Bool: false}, false
	case '?', ' ':
		return types.FieldValue{Kind: types.KindNone}, false
	default:
		return types.FieldValue{Kind: types.KindNone}, true
	}
}

func decodeDate(raw []byte) (types.FieldValue, bool) {
	s := strings.TrimSpace(string(raw))
	if len(s) != 8 {
		if s == "" {
			return types.FieldValue{Kind: types.KindNone}, false
		}
		return types.FieldValue{Kind: types.KindNone}, true
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return types.FieldValue{Kind: types.KindNone}, true
		}
	}
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:8])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return types.FieldValue{Kind: types.KindNone}, true
	}
	return types.FieldValue{Kind: types.KindDate, Year: year, Month: month, Day: day}, false
}

// FormatIssue renders a human-readable note for a field that failed to parse
// as its declared type (a name listed in Record.Issues).
func FormatIssue(fieldName string) string {
	return fmt.Sprintf("field %q did not parse as its declared type", fieldName)
}
