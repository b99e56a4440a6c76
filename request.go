package intlbridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedRequest is returned when a request string cannot be decoded
// into the positional 4-tuple the wire format prescribes.
var ErrMalformedRequest = errors.New("intlbridge: malformed request")

// Request describes a single call against a host sub-API: which facility to
// construct, with which arguments, then which method to invoke on it, with
// which arguments. Requests are value objects; they carry no identity beyond
// their content.
type Request struct {
	SubAPI     string
	CtorArgs   []any
	Method     string
	MethodArgs []any
}

// Encode serializes the request as a compact JSON array of exactly four
// elements, the second and fourth being arrays of arbitrary JSON values.
// Element order is fixed and positional. Encode performs no validation of
// sub-API or method names; an unrecognized name simply fails on dispatch.
func (r Request) Encode() (string, error) {
	ctorArgs := r.CtorArgs
	if ctorArgs == nil {
		ctorArgs = []any{}
	}

	methodArgs := r.MethodArgs
	if methodArgs == nil {
		methodArgs = []any{}
	}

	raw, err := json.Marshal([]any{r.SubAPI, ctorArgs, r.Method, methodArgs})
	if err != nil {
		return "", fmt.Errorf("intlbridge: could not encode request: %w", err)
	}

	return string(raw), nil
}

// DecodeRequest parses a request string back into its 4-tuple. Anything that
// is not a JSON array of exactly four elements, with string names at
// positions one and three and argument arrays at positions two and four,
// fails with ErrMalformedRequest.
func DecodeRequest(key string) (Request, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(key), &elements); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	if len(elements) != 4 {
		return Request{}, fmt.Errorf("%w: expected 4 elements, got %d", ErrMalformedRequest, len(elements))
	}

	var req Request
	if err := json.Unmarshal(elements[0], &req.SubAPI); err != nil {
		return Request{}, fmt.Errorf("%w: sub api name: %v", ErrMalformedRequest, err)
	}

	if err := json.Unmarshal(elements[1], &req.CtorArgs); err != nil || req.CtorArgs == nil {
		return Request{}, fmt.Errorf("%w: constructor arguments are not an array", ErrMalformedRequest)
	}

	if err := json.Unmarshal(elements[2], &req.Method); err != nil {
		return Request{}, fmt.Errorf("%w: method name: %v", ErrMalformedRequest, err)
	}

	if err := json.Unmarshal(elements[3], &req.MethodArgs); err != nil || req.MethodArgs == nil {
		return Request{}, fmt.Errorf("%w: method arguments are not an array", ErrMalformedRequest)
	}

	return req, nil
}
