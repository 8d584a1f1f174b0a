package format

import (
	"fmt"

	"github.com/xbasekit/sxdbf/internal/buf"
	"github.com/xbasekit/sxdbf/pkg/types"
)

// ParseHeader validates and extracts the base header plus field descriptors
// from a DBF buffer. It fails with a MalformedHeader-kind *types.Error for
// any of the conditions spec.md §4.3 lists: a too-short buffer, an implausible
// headerLength/recordLength, a buffer shorter than the declared header, a
// missing field terminator, or a field-length/recordLength mismatch.
func ParseHeader(b []byte) (types.Header, []types.FieldDescriptor, error) {
	if len(b) < BaseHeaderSize {
		return types.Header{}, nil, types.NewError(types.ErrKindMalformedHeader,
			fmt.Sprintf("buffer has %d bytes, need at least %d", len(b), BaseHeaderSize), ErrTooShort)
	}

	headerLength := buf.U16LE(b[offHeaderLength:])
	if headerLength < BaseHeaderSize+1 {
		return types.Header{}, nil, types.NewError(types.ErrKindMalformedHeader,
			fmt.Sprintf("headerLength %d is too small", headerLength), ErrHeaderLengthTooSmall)
	}

	recordLength := buf.U16LE(b[offRecordLength:])
	if recordLength == 0 {
		return types.Header{}, nil, types.NewError(types.ErrKindMalformedHeader,
			"recordLength is 0", ErrRecordLengthZero)
	}

	if len(b) < int(headerLength) {
		return types.Header{}, nil, types.NewError(types.ErrKindMalformedHeader,
			fmt.Sprintf("buffer has %d bytes, need at least headerLength %d", len(b), headerLength),
			ErrBufferShorterThanHeader)
	}

	statusByte := b[offStatusByte]
	yearByte := b[offLastUpdateYear]
	year := int(yearByte) + 2000
	if yearByte >= 80 {
		year = int(yearByte) + 1900
	}
	month := int(b[offLastUpdateMon])
	day := int(b[offLastUpdateDay])
	recordCount := buf.U32LE(b[offRecordCount:])
	languageDriver := b[offLanguageDriver]

	fields, err := parseFieldDescriptors(b, int(headerLength))
	if err != nil {
		return types.Header{}, nil, err
	}

	sum := 1
	for _, f := range fields {
		sum += int(f.Length)
	}
	if sum != int(recordLength) {
		return types.Header{}, nil, types.NewError(types.ErrKindMalformedHeader,
			fmt.Sprintf("sum of field lengths + 1 = %d, recordLength = %d", sum, recordLength),
			ErrFieldLengthMismatch)
	}

	hasEOF := false
	upperBound, ok := payloadUpperBound(headerLength, recordCount, recordLength)
	if ok && upperBound < len(b) && b[upperBound] == EOFMarker {
		hasEOF = true
	}

	h := types.Header{
		StatusByte:     statusByte,
		Year:           year,
		Month:          month,
		Day:            day,
		RecordCount:    recordCount,
		HeaderLength:   headerLength,
		RecordLength:   recordLength,
		LanguageDriver: languageDriver,
		HasEOFMarker:   hasEOF,
	}
	return h, fields, nil
}

// parseFieldDescriptors reads the field descriptor array, stopping at the
// first 0x0D terminator byte or at headerLength-1, whichever comes first.
func parseFieldDescriptors(b []byte, headerLength int) ([]types.FieldDescriptor, error) {
	var fields []types.FieldDescriptor
	offsetInRecord := 1
	pos := BaseHeaderSize
	terminated := false

	for pos < headerLength-1 {
		if b[pos] == FieldTerminator {
			terminated = true
			break
		}
		descEnd := pos + FieldDescriptorSize
		if descEnd > len(b) || descEnd > headerLength {
			return nil, types.NewError(types.ErrKindMalformedHeader,
				"field descriptor array runs past the buffer/header bounds", ErrMissingTerminator)
		}
		desc := b[pos:descEnd]
		name := trimFieldName(desc[fieldOffName : fieldOffName+fieldNameLen])
		typ := desc[fieldOffType]
		length := desc[fieldOffLength]
		decimals := desc[fieldOffDecimalPlaces]

		fields = append(fields, types.FieldDescriptor{
			Name:           name,
			Type:           normalizeFieldType(typ),
			Length:         length,
			DecimalPlaces:  decimals,
			OffsetInRecord: offsetInRecord,
		})
		offsetInRecord += int(length)
		pos = descEnd
	}

	if !terminated {
		if pos >= len(b) || b[pos] != FieldTerminator {
			return nil, types.NewError(types.ErrKindMalformedHeader,
				"field descriptor array did not terminate with 0x0D", ErrMissingTerminator)
		}
	}

	return fields, nil
}

// normalizeFieldType passes through the documented xBase field type letters
// and maps anything else to 'C', per spec.md §4.3.
func normalizeFieldType(t byte) byte {
	switch t {
	case 'C', 'N', 'F', 'L', 'D', 'M':
		return t
	default:
		return 'C'
	}
}

func trimFieldName(raw []byte) string {
	end := len(raw)
	for i, c := range raw {
		if c == 0 {
			end = i
			break
		}
	}
	name := raw[:end]
	// trim trailing spaces too, in case of space-padded (non-NUL) names
	for len(name) > 0 && name[len(name)-1] == ' ' {
		name = name[:len(name)-1]
	}
	return string(name)
}

// payloadUpperBound computes headerLength + recordCount*recordLength without
// overflowing int; ok is false if the multiplication itself overflows.
func payloadUpperBound(headerLength uint16, recordCount uint32, recordLength uint16) (int, bool) {
	product, ok := buf.MulOverflowSafe(int(recordCount), int(recordLength))
	if !ok {
		return 0, false
	}
	sum, ok := buf.AddOverflowSafe(int(headerLength), product)
	if !ok {
		return 0, false
	}
	return sum, true
}

// ToggleStatusByte writes newValue at offset 0 of buffer, mutating in place.
func ToggleStatusByte(buffer []byte, newValue byte) {
	buffer[offStatusByte] = newValue
}

// SetRecordCount writes a new record count into the header's little-endian
// u32 field, mutating in place. Not required by the spec's read/rewrite
// pipeline (record counts never change), but kept for symmetry with
// ParseHeader.
func SetRecordCount(buffer []byte, count uint32) {
	buf.PutU32LE(buffer[offRecordCount:offRecordCount+4], count)
}

// SetLastUpdate writes the (year, month, day) triple back into the header,
// reversing ParseHeader's century convention: byte1 stores year-1900 when
// year >= 1980, else year-2000 (spec.md §3's rule, applied symmetrically).
func SetLastUpdate(buffer []byte, year, month, day int) {
	var yearByte int
	if year >= 1980 {
		yearByte = year - 1900
	} else {
		yearByte = year - 2000
	}
	buffer[offLastUpdateYear] = byte(yearByte)
	buffer[offLastUpdateMon] = byte(month)
	buffer[offLastUpdateDay] = byte(day)
}
