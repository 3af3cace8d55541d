package avro

import (
	"fmt"

	"github.com/linkedin/goavro/v2"

	"ccw_query/internal/domain/order"
)

// Encoder wraps a goavro codec. Codecs are safe for concurrent use.
type Encoder struct {
	codec *goavro.Codec
}

// NewEncoder creates a new encoder from an Avro schema string
func NewEncoder(schema string) (*Encoder, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &Encoder{codec: codec}, nil
}

func NewOrderLineEncoder() (*Encoder, error) {
	return NewEncoder(OrderLineSchema)
}

// EncodeNative converts a goavro native value to Avro binary format
func (e *Encoder) EncodeNative(native interface{}) ([]byte, error) {
	binary, err := e.codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("failed to encode to avro binary: %w", err)
	}
	return binary, nil
}

func (e *Encoder) DecodeNative(binary []byte) (interface{}, error) {
	native, rest, err := e.codec.NativeFromBinary(binary)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avro binary: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("failed to decode avro binary: %d trailing bytes", len(rest))
	}
	return native, nil
}

func (e *Encoder) EncodeOrderLine(rec order.ExportRecord) ([]byte, error) {
	return e.EncodeNative(ToOrderLineNative(rec))
}

func (e *Encoder) DecodeOrderLine(binary []byte) (order.ExportRecord, error) {
	native, err := e.DecodeNative(binary)
	if err != nil {
		return order.ExportRecord{}, err
	}
	m, ok := native.(map[string]interface{})
	if !ok {
		return order.ExportRecord{}, fmt.Errorf("order line is %T, want record", native)
	}
	return FromOrderLineNative(m), nil
}
