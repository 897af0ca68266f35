// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ustar

import (
	"context"
	"io"
	"os"

	"github.com/luci/luci-go/common/errors"
	"github.com/luci/luci-go/common/iotools"
	"github.com/luci/luci-go/common/logging"

	"github.com/ustarchive/untar/ustar/ustardata"
)

// Extract reads a ustar stream from r and materializes its files and
// directories relative to the current working directory. name is the
// display name used in log lines; r must be positioned at offset 0 of
// an already-decompressed archive and is not closed by Extract.
//
// A returned error means the stream desynchronized (truncated block or
// header checksum mismatch) and extraction of this archive stopped.
// Per-entry filesystem failures are logged and do not stop the loop:
// the entry's payload is drained unwritten so that later entries still
// line up on block boundaries.
func Extract(ctx context.Context, r io.Reader, name string) error {
	logging.Infof(ctx, "extracting from %s", name)

	cr := &iotools.CountingReader{Reader: r}
	buf := make([]byte, ustardata.BlockSize)

	for {
		hdrOffset := cr.Count
		if err := ustardata.ReadBlock(cr, buf); err != nil {
			return errors.Annotate(err).
				Reason("header of %(archive)q at offset 0x%(offset)x").
				D("archive", name).D("offset", hdrOffset).Err()
		}
		if ustardata.IsEndOfArchive(buf) {
			logging.Infof(ctx, "end of %s", name)
			return nil
		}
		if err := ustardata.VerifyChecksum(buf); err != nil {
			return errors.Annotate(err).
				Reason("header of %(archive)q at offset 0x%(offset)x").
				D("archive", name).D("offset", hdrOffset).Err()
		}

		h := ustardata.ParseHeader(buf)
		remaining := h.Size

		var out *os.File
		switch h.Type {
		case ustardata.TypeDirectory:
			logging.Infof(ctx, " extracting dir %s", h.Name)
			CreateDir(ctx, h.Name, h.Mode)
			// Directories carry no payload, whatever the size field says.
			remaining = 0

		case ustardata.TypeHardLink, ustardata.TypeSymlink,
			ustardata.TypeCharDevice, ustardata.TypeBlockDevice,
			ustardata.TypeFIFO:
			// These nominally have size 0, but any size the header does
			// declare frames payload blocks that must still be consumed.
			logging.Infof(ctx, " ignoring %s %s", h.Type, h.Name)

		default:
			logging.Infof(ctx, " extracting file %s", h.Name)
			out = CreateFile(ctx, h.Name, h.Mode)
		}

		for remaining > 0 {
			if err := ustardata.ReadBlock(cr, buf); err != nil {
				if out != nil {
					out.Close()
				}
				return errors.Annotate(err).
					Reason("payload of %(entry)q in %(archive)q").
					D("entry", h.Name).D("archive", name).Err()
			}

			n := remaining
			if n > ustardata.BlockSize {
				n = ustardata.BlockSize
			}
			if out != nil {
				if _, err := out.Write(buf[:n]); err != nil {
					logging.Errorf(ctx, "failed write to %q: %s", h.Name, err)
					out.Close()
					out = nil
				}
			}
			// The producer already padded the payload to the block
			// boundary, so the remaining count drops by the whole block,
			// not by the clipped write size.
			remaining -= ustardata.BlockSize
		}

		if out != nil {
			if err := out.Close(); err != nil {
				logging.Errorf(ctx, "failed close of %q: %s", h.Name, err)
			}
		}
	}
}
