// Package jsoncodec registers a JSON gRPC codec for the marketplace wire
// contract. The market API exchanges plain Go structs, so both server and
// client force this codec instead of the default protobuf one.
package jsoncodec

import (
	"encoding/json"
	"fmt"
)

// Name is the codec name used in gRPC content subtypes.
const Name = "json"

// Codec implements grpc/encoding.Codec over encoding/json.
type Codec struct{}

// Marshal encodes v as JSON.
func (Codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal: %w", err)
	}
	return data, nil
}

// Unmarshal decodes JSON data into v.
func (Codec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal: %w", err)
	}
	return nil
}

// Name returns the codec name.
func (Codec) Name() string {
	return Name
}
