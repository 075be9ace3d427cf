package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// KeyPrefix namespaces every cache key
const KeyPrefix = "cg:"

// Key derives a stable cache key from the request path and its body
// body is normalized first: object keys sorted at every depth, compact, numbers kept verbatim
func Key(path string, body any) (string, error) {
	norm, err := normalize(body)
	if err != nil {
		return "", err
	}
	// encoding/json sorts map keys, which gives the canonical form
	raw, err := json.Marshal(map[string]any{"p": path, "b": norm})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return KeyPrefix + hex.EncodeToString(sum[:]), nil
}

// normalize round-trips v through JSON into generic maps so struct field order stops mattering
func normalize(v any) (any, error) {
	raw, ok := v.(json.RawMessage)
	if !ok {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
