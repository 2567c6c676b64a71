package pb

import "fmt"

// Codec is a grpc encoding.Codec for the messages in this package. It
// produces standard protobuf wire bytes, so it registers under "proto".
// Servers install it with grpc.ForceServerCodec; the client stubs force it
// on every call.
type Codec struct{}

func (Codec) Name() string { return "proto" }

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(wireMessage)
	if !ok {
		return nil, fmt.Errorf("pb codec: cannot marshal %T", v)
	}
	return m.MarshalWire()
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(wireMessage)
	if !ok {
		return fmt.Errorf("pb codec: cannot unmarshal into %T", v)
	}
	return m.UnmarshalWire(data)
}
