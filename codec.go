// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"cloudeng.io/errors"
)

// The codecs encode the backing slice as-is: a heap-ordered array is a
// valid serialized form and decoding requires no rebuild, provided the
// decoding heap was constructed with the same ordering that produced
// the encoding. Orderings are code, not data, and are never serialized.
// Indexed heaps are not encodable since handles are only meaningful
// within the process that issued them.

// GobEncode implements gob.GobEncoder.
func (h *Heap[T]) GobEncode() ([]byte, error) {
	h.checkReleased()
	errs := errors.M{}
	buf := bytes.NewBuffer(make([]byte, 0, 64))
	enc := gob.NewEncoder(buf)
	errs.Append(enc.Encode(len(h.data)))
	errs.Append(enc.Encode(h.data))
	return buf.Bytes(), errs.Err()
}

// GobDecode implements gob.GobDecoder. The receiver's ordering is
// preserved and must match the ordering the data was encoded under.
func (h *Heap[T]) GobDecode(buf []byte) error {
	h.checkReleased()
	dec := gob.NewDecoder(bytes.NewBuffer(buf))
	errs := errors.M{}
	var size int
	errs.Append(dec.Decode(&size))
	h.data = make([]T, 0, size)
	errs.Append(dec.Decode(&h.data))
	return errs.Err()
}

type jsonEncoding struct {
	Size   int             `json:"size"`
	Values json.RawMessage `json:"values"`
}

// MarshalJSON implements json.Marshaler.
func (h *Heap[T]) MarshalJSON() ([]byte, error) {
	h.checkReleased()
	errs := errors.M{}
	valbuf := &bytes.Buffer{}
	enc := json.NewEncoder(valbuf)
	errs.Append(enc.Encode(h.data))
	buf := &bytes.Buffer{}
	enc = json.NewEncoder(buf)
	errs.Append(enc.Encode(jsonEncoding{
		Size:   len(h.data),
		Values: valbuf.Bytes(),
	}))
	return buf.Bytes(), errs.Err()
}

// UnmarshalJSON implements json.Unmarshaler. The receiver's ordering is
// preserved and must match the ordering the data was encoded under.
func (h *Heap[T]) UnmarshalJSON(buf []byte) error {
	h.checkReleased()
	dec := json.NewDecoder(bytes.NewBuffer(buf))
	hdr := jsonEncoding{}
	errs := errors.M{}
	errs.Append(dec.Decode(&hdr))
	h.data = make([]T, 0, hdr.Size)
	dec = json.NewDecoder(bytes.NewBuffer(hdr.Values))
	errs.Append(dec.Decode(&h.data))
	return errs.Err()
}
