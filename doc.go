// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package untar implements a minimal extractor for ustar tape archives.
// It exists so that a system with nothing but a Go toolchain can unpack
// a source distribution: no libarchive, no external tar binary, no
// archive library beyond this module.
//
// The ustar format is a sequence of 512-byte blocks. Each archive
// member starts with one header block of fixed-offset ASCII/octal
// fields (name, mode, size, type flag, checksum), followed by the
// member's data padded with zero bytes up to the next block boundary.
// One or more all-zero blocks terminate the archive.
//
// The extractor is deliberately narrow. It materializes regular files
// and directories and skips (with a log line) hard links, symlinks,
// device nodes and FIFOs. It does not restore ownership, understands
// no pax or GNU header extensions, and never writes archives. The
// stream is consumed strictly sequentially, so it can come from a pipe
// just as well as from a file.
//
// The packages divide the same way the format does:
//   - ustar holds the extraction loop and the filesystem side effects.
//   - ustar/ustardata holds the wire-level pieces: octal fields, the
//     header layout, the header checksum, and block framing.
//   - cmd/untar is the command-line front end, which also peels gzip,
//     bzip2 or xz compression off the stream before extraction.
package untar
