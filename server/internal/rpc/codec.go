// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Codec encodes plain Go messages as JSON for the Connect protocol.
type Codec struct{}

func (Codec) Name() string {
	return "json"
}

func (Codec) Marshal(msg any) ([]byte, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("rpc: marshaling message: %w", err)
	}
	return b, nil
}

// Unmarshal decodes data into msg. An empty body is an empty message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return fmt.Errorf("rpc: unmarshaling message: %w", err)
	}
	return nil
}
