// Package wire holds the codec shared by the hand-maintained RPC contract
// packages.
//
// The catalog services speak plain gRPC, but their messages are encoded as
// JSON through a codec registered under the "json" content-subtype instead of
// protobuf. Client stubs select the codec per call, so standard services on
// the same connection (health checks, reflection) keep their default proto
// encoding. The stub and service-descriptor layout in the moviev1 and
// tvshowv1 subpackages mirrors protoc-gen-go output so the call sites read
// the same as they would against generated code.
package wire

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName is the content-subtype the catalog contract is registered under.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("wire marshal: %w", err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("wire unmarshal: %w", err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return CodecName
}
