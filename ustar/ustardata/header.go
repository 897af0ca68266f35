// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ustardata

import (
	"bytes"
	"fmt"
	"os"
)

// Field offsets and widths within a header block, per the ustar
// interchange format. Only the fields this extractor acts on are
// named; the rest of the block participates in the checksum and is
// otherwise ignored.
const (
	offName = 0
	lenName = 100

	offMode = 100
	lenMode = 8

	offSize = 124
	lenSize = 12

	offChksum = 148
	lenChksum = 8

	offType = 156
)

// EntryType is the single-byte type flag identifying an archive
// member's kind.
type EntryType byte

// Type flag values defined by ustar. Anything not listed here is
// treated as a regular file by the extractor, which is what historical
// tar implementations do with flags they don't know.
const (
	TypeRegular     EntryType = '0'
	TypeHardLink    EntryType = '1'
	TypeSymlink     EntryType = '2'
	TypeCharDevice  EntryType = '3'
	TypeBlockDevice EntryType = '4'
	TypeDirectory   EntryType = '5'
	TypeFIFO        EntryType = '6'

	// TypeRegularOld is the pre-ustar encoding of a regular file.
	TypeRegularOld EntryType = 0
)

// String returns the human name used in "ignoring ..." log lines.
func (t EntryType) String() string {
	switch t {
	case TypeRegular, TypeRegularOld:
		return "file"
	case TypeHardLink:
		return "hardlink"
	case TypeSymlink:
		return "symlink"
	case TypeCharDevice:
		return "character device"
	case TypeBlockDevice:
		return "block device"
	case TypeDirectory:
		return "dir"
	case TypeFIFO:
		return "FIFO"
	}
	return fmt.Sprintf("unknown type 0x%02x", byte(t))
}

// Header holds the fields of one parsed header block that the
// extractor acts on.
type Header struct {
	Name   string
	Mode   os.FileMode
	Size   int64
	Type   EntryType
	Chksum int64
}

// ParseHeader extracts the header fields from a block. It assumes the
// block has already passed VerifyChecksum; field extraction itself
// cannot fail because the octal parse is total.
func ParseHeader(block []byte) *Header {
	return &Header{
		Name:   cstring(block[offName : offName+lenName]),
		Mode:   os.FileMode(ParseOctal(block[offMode : offMode+lenMode])),
		Size:   ParseOctal(block[offSize : offSize+lenSize]),
		Type:   EntryType(block[offType]),
		Chksum: ParseOctal(block[offChksum : offChksum+lenChksum]),
	}
}

// cstring truncates a NUL-padded field at its first NUL.
func cstring(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
