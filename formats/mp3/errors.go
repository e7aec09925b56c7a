// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrInvalidStream wraps any error go-mp3 reports while reading the first
// frame header.
var ErrInvalidStream = errors.New("mp3: invalid stream")
