// Package format houses low-level decoders for the xBase DBF file format.
// The goal is to keep parsing focused, allocation-light where possible, and
// independent from the public API so pkg/dbf can orchestrate the data in a
// more ergonomic form.
package format

const (
	// BaseHeaderSize is the fixed portion of the header before the field
	// descriptor array begins.
	BaseHeaderSize = 32

	// FieldDescriptorSize is the size in bytes of one field descriptor entry.
	FieldDescriptorSize = 32

	// FieldTerminator marks the end of the field descriptor array.
	FieldTerminator byte = 0x0D

	// EOFMarker is the optional trailing byte some writers append after the
	// record payload.
	EOFMarker byte = 0x1A

	// StatusPlain and StatusEncrypted are the two statusByte values the
	// pipeline toggles between. Other values are preserved but not
	// interpreted as "encrypted" (spec.md §3).
	StatusPlain     byte = 0x03
	StatusEncrypted byte = 0x06

	// DeletionLive and DeletionDeleted are the two record-level deletion
	// marker values (spec.md §4.5).
	DeletionLive    byte = 0x20 // ' '
	DeletionDeleted byte = 0x2A // '*'

	// Base header field offsets.
	offStatusByte     = 0
	offLastUpdateYear = 1
	offLastUpdateMon  = 2
	offLastUpdateDay  = 3
	offRecordCount    = 4
	offHeaderLength   = 8
	offRecordLength   = 10
	offLanguageDriver = 29

	// Field descriptor offsets, relative to the start of one descriptor.
	fieldOffName          = 0
	fieldNameLen          = 11
	fieldOffType          = 11
	fieldOffLength        = 16
	fieldOffDecimalPlaces = 17
)
