// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// helpers.go — error formatting shared by constructors.

package builder

import "fmt"

// builderErrorf prefixes a wrapped message with the constructor name:
// "<Method>: <formatted message>". The format may carry one %w verb.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
