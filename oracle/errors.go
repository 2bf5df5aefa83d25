// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the oracle transport boundary.
package oracle

import "errors"

// ErrEmptyCommand is returned by NewDriver when given an empty command line.
var ErrEmptyCommand = errors.New("oracle: empty oracle command")
