// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ustardata

// ParseOctal reads an octal number out of a fixed-width header field,
// ignoring leading and trailing nonsense. Producers terminate these
// fields inconsistently (NUL, space, or nothing at all), so the parse
// is permissive: skip forward to the first octal digit, accumulate
// digits, and stop at the first byte that isn't one. A field with no
// digits yields 0; there is no error path.
func ParseOctal(field []byte) int64 {
	i := 0
	for i < len(field) && (field[i] < '0' || field[i] > '7') {
		i++
	}

	var n int64
	for i < len(field) && field[i] >= '0' && field[i] <= '7' {
		n = n<<3 + int64(field[i]-'0')
		i++
	}
	return n
}
