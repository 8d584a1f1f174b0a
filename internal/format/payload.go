package format

import (
	"fmt"

	"github.com/xbasekit/sxdbf/internal/buf"
	"github.com/xbasekit/sxdbf/pkg/types"
)

// PayloadSlice returns the contiguous record-payload range
// [headerLength, headerLength+recordCount*recordLength) of buffer. It fails
// with a PayloadOutOfRange-kind error if that range exceeds the buffer.
func PayloadSlice(buffer []byte, h types.Header) ([]byte, error) {
	upper, ok := payloadUpperBound(h.HeaderLength, h.RecordCount, h.RecordLength)
	if !ok {
		return nil, types.NewError(types.ErrKindPayloadRange,
			"recordCount*recordLength overflows", nil)
	}
	slice, ok := buf.Slice(buffer, int(h.HeaderLength), upper-int(h.HeaderLength))
	if !ok {
		return nil, types.NewError(types.ErrKindPayloadRange,
			fmt.Sprintf("payload range [%d,%d) exceeds buffer length %d", h.HeaderLength, upper, len(buffer)),
			nil)
	}
	return slice, nil
}

// ReplacePayload returns a buffer identical to the input except the payload
// range is overwritten with newPayload, which must have exactly the length
// of the existing payload range or the call fails with ReplaceSizeMismatch.
func ReplacePayload(buffer []byte, newPayload []byte, h types.Header) ([]byte, error) {
	existing, err := PayloadSlice(buffer, h)
	if err != nil {
		return nil, err
	}
	if len(newPayload) != len(existing) {
		return nil, types.NewError(types.ErrKindReplaceSize,
			fmt.Sprintf("replacement payload has %d bytes, want %d", len(newPayload), len(existing)), nil)
	}
	out := make([]byte, len(buffer))
	copy(out, buffer)
	copy(out[h.HeaderLength:], newPayload)
	return out, nil
}
