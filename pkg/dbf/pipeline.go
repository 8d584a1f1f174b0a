// Package dbf implements the DbfPipeline orchestrator: parse header, carve
// the record payload, transform it through the SX cipher, patch the payload
// back, and retag the encryption status byte — optionally decoding records
// when a decrypt succeeds.
package dbf

import (
	"fmt"

	"github.com/xbasekit/sxdbf/internal/checksum"
	"github.com/xbasekit/sxdbf/internal/cipher"
	"github.com/xbasekit/sxdbf/internal/format"
	"github.com/xbasekit/sxdbf/internal/record"
	"github.com/xbasekit/sxdbf/pkg/types"
)

// Mode selects which direction Transform runs.
type Mode int

const (
	Decrypt Mode = iota
	Encrypt
)

// Result bundles everything Transform produces: the rewritten buffer, the
// parsed header/fields, the optionally decoded records, and a human-readable
// status line plus audit fingerprints for log correlation.
type Result struct {
	Bytes   []byte
	Header  types.Header
	Fields  []types.FieldDescriptor
	Records []types.Record // nil unless mode == Decrypt and the payload was actually decrypted

	Status string

	// PayloadChecksumBefore/After are xxhash fingerprints of the record
	// payload before and after the transform, for audit logs that must not
	// print key material or full buffers.
	PayloadChecksumBefore uint64
	PayloadChecksumAfter  uint64
	// KeyFingerprint is a one-way digest of the key used, safe to log.
	KeyFingerprint uint64
}

// Transform runs the pipeline against fileBytes without mutating it: clone,
// parse, branch on statusByte and mode, cipher the payload, patch it back,
// and (on a successful decrypt) decode every record.
func Transform(fileBytes []byte, key types.Key8, mode Mode) (Result, error) {
	clone := make([]byte, len(fileBytes))
	copy(clone, fileBytes)

	h, fields, err := format.ParseHeader(clone)
	if err != nil {
		return Result{}, err
	}

	payload, err := format.PayloadSlice(clone, h)
	if err != nil {
		return Result{}, err
	}
	checksumBefore := checksum.Payload(payload)
	keyFingerprint := checksum.KeyFingerprint(key)

	var (
		newBuffer      []byte
		status         string
		decryptedNow   bool
		checksumAfter  = checksumBefore
		newPayload     []byte
		statusByteNext = h.StatusByte
	)

	switch {
	case mode == Decrypt && h.StatusByte == format.StatusEncrypted:
		newPayload = cipher.Decrypt(key, payload)
		statusByteNext = format.StatusPlain
		decryptedNow = true
		status = "decrypted"

	case mode == Decrypt && h.StatusByte == format.StatusPlain:
		newBuffer = clone
		status = "already plain"

	case mode == Encrypt:
		// Always cipher under Encrypt, whether the file started plain or was
		// already marked encrypted (spec.md §4.6 step 3).
		newPayload = cipher.Encrypt(key, payload)
		statusByteNext = format.StatusEncrypted
		status = "encrypted"

	default:
		newBuffer = clone
		status = fmt.Sprintf("no-op: statusByte 0x%02x under mode %v", h.StatusByte, mode)
	}

	if newBuffer == nil {
		replaced, err := format.ReplacePayload(clone, newPayload, h)
		if err != nil {
			return Result{}, err
		}
		format.ToggleStatusByte(replaced, statusByteNext)
		newBuffer = replaced
		checksumAfter = checksum.Payload(newPayload)
	}

	h.StatusByte = statusByteNext

	result := Result{
		Bytes:                 newBuffer,
		Header:                h,
		Fields:                fields,
		Status:                status,
		PayloadChecksumBefore: checksumBefore,
		PayloadChecksumAfter:  checksumAfter,
		KeyFingerprint:        keyFingerprint,
	}

	if decryptedNow {
		decodedPayload, err := format.PayloadSlice(newBuffer, h)
		if err != nil {
			return Result{}, err
		}
		records, err := DecodeAll(decodedPayload, h, fields)
		if err != nil {
			return Result{}, err
		}
		result.Records = records
	}

	return result, nil
}

// DecodeAll decodes every record in payload according to h and fields.
func DecodeAll(payload []byte, h types.Header, fields []types.FieldDescriptor) ([]types.Record, error) {
	records := make([]types.Record, 0, h.RecordCount)
	for i := uint32(0); i < h.RecordCount; i++ {
		rec, err := DecodeAt(payload, h, fields, i)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// DecodeAt decodes a single record at index i, failing with
// ErrKindRecordIndex if i is out of range.
func DecodeAt(payload []byte, h types.Header, fields []types.FieldDescriptor, i uint32) (types.Record, error) {
	if i >= h.RecordCount {
		return types.Record{}, types.NewError(types.ErrKindRecordIndex,
			fmt.Sprintf("record index %d, recordCount %d", i, h.RecordCount), nil)
	}
	start := int(i) * int(h.RecordLength)
	end := start + int(h.RecordLength)
	if end > len(payload) {
		return types.Record{}, types.NewError(types.ErrKindRecordIndex,
			fmt.Sprintf("record %d range [%d,%d) exceeds payload length %d", i, start, end, len(payload)), nil)
	}
	return record.Decode(payload[start:end], fields, h.LanguageDriver), nil
}
