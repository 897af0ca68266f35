// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ustardata

import (
	"io"

	"github.com/luci/luci-go/common/errors"
)

// BlockSize is the unit of a ustar stream. Headers occupy exactly one
// block and file data is zero-padded up to a block boundary.
const BlockSize = 512

// ReadBlock fills buf (which must be BlockSize long) from r. The ustar
// stream is strictly framed, so anything short of a full block is an
// error, including a clean EOF: a well-formed archive always ends with
// an all-zero block, never mid-block.
func ReadBlock(r io.Reader, buf []byte) error {
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return errors.Annotate(err).
			Reason("short read: expected %(want)d block bytes, got %(got)d").
			D("want", BlockSize).D("got", n).Err()
	}
	return nil
}

// IsEndOfArchive reports whether block is 512 zero bytes.
//
// Formally the end-of-archive marker is two consecutive zero blocks;
// this extractor stops at the first one. Producer output always pads
// the first zero block with more zeroes, so for the bootstrap case the
// single-block rule reads the same archives and keeps the loop from
// having to look ahead.
func IsEndOfArchive(block []byte) bool {
	for _, b := range block {
		if b != 0 {
			return false
		}
	}
	return true
}
