// SPDX-License-Identifier: MIT
package report

import "errors"

var (
	// ErrNilResult indicates a sink was handed a nil result.
	ErrNilResult = errors.New("report: result is nil")
	// ErrEmptyPath indicates a Save* call without a destination path.
	ErrEmptyPath = errors.New("report: output path is empty")
	// ErrUnknownFormat indicates an unsupported chart file extension.
	ErrUnknownFormat = errors.New("report: unsupported chart format")
)
