package response

import (
	"encoding/json"
	"fmt"
)

// EncodeBody serializes an accumulated body for transports that carry
// bytes. Textual bodies pass through unchanged; everything else is
// JSON-encoded, matching the content-type inference applied at flush.
// A nil body encodes to nil.
func EncodeBody(v any) ([]byte, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("response: failed to encode body: %w", err)
		}
		return data, nil
	}
}
