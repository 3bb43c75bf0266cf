// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package rpc

import (
	"errors"

	"connectrpc.com/connect"
)

// ErrorCode is the Connect code returned for errors matching Err.
type ErrorCode struct {
	Err  error
	Code connect.Code
}

// MapError returns err as a Connect error with the code of the first entry
// of codes it matches. Errors matching no entry are returned unchanged.
func MapError(err error, codes ...ErrorCode) error {
	if err == nil {
		return nil
	}
	for _, c := range codes {
		if errors.Is(err, c.Err) {
			return connect.NewError(c.Code, err)
		}
	}
	return err
}
