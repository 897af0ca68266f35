// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ustardata

import (
	"fmt"
)

// Checksum computes the standard ustar header checksum of a block: the
// sum of all 512 bytes taken as unsigned values, with each of the 8
// checksum-field bytes counted as an ASCII space (0x20). Producers
// compute the stored value the same way, writing the field as spaces
// first.
func Checksum(block []byte) int64 {
	var sum int64
	for i, b := range block {
		if i >= offChksum && i < offChksum+lenChksum {
			sum += 0x20
		} else {
			sum += int64(b)
		}
	}
	return sum
}

// ErrBadChecksum is returned by VerifyChecksum when the stored value
// doesn't match the computed sum. Since every preceding header was
// verified, a mismatch means the reader has lost block alignment (or
// the stream is corrupt), and the caller must stop trusting it.
type ErrBadChecksum struct {
	Nominal int64
	Actual  int64
}

func (e *ErrBadChecksum) Error() string {
	return fmt.Sprintf("mismatched header checksum: %#o, expected %#o", e.Nominal, e.Actual)
}

// VerifyChecksum checks a header block's stored checksum against the
// computed one, returning *ErrBadChecksum on mismatch.
func VerifyChecksum(block []byte) error {
	nominal := ParseOctal(block[offChksum : offChksum+lenChksum])
	if actual := Checksum(block); nominal != actual {
		return &ErrBadChecksum{Nominal: nominal, Actual: actual}
	}
	return nil
}
