// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Command untar extracts one or more ustar archives into the current
// directory. Archives compressed with gzip, bzip2 or xz are detected
// by their magic bytes and decompressed on the fly; everything else is
// handed to the extractor as-is.
//
// Usage:
//
//	untar [-sum] archive...
//
// Each archive is processed independently: a failure in one is
// reported and the next one is still attempted. The exit code is
// nonzero if any archive failed.
package main

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/luci/luci-go/common/errors"
	"github.com/luci/luci-go/common/logging"
	"github.com/luci/luci-go/common/logging/gologger"
	"github.com/ulikunitz/xz"
	"golang.org/x/crypto/blake2b"

	"github.com/ustarchive/untar/ustar"
)

var sum = flag.Bool("sum", false, "log a BLAKE2b-256 digest of each archive as stored on disk")

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: untar [-sum] archive...")
		os.Exit(2)
	}

	ctx := gologger.StdConfig.Use(context.Background())

	code := 0
	for _, path := range flag.Args() {
		if err := extractOne(ctx, path); err != nil {
			logging.Errorf(ctx, "%s", err)
			code = 1
		}
	}
	os.Exit(code)
}

func extractOne(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Annotate(err).Reason("opening %(path)q").D("path", path).Err()
	}
	defer f.Close()

	var h hash.Hash
	src := io.Reader(f)
	if *sum {
		if h, err = blake2b.New256(nil); err != nil {
			return err
		}
		src = io.TeeReader(src, h)
	}

	r, err := decompressor(src)
	if err != nil {
		return errors.Annotate(err).Reason("decompressing %(path)q").D("path", path).Err()
	}
	defer r.Close()

	if err := ustar.Extract(ctx, r, path); err != nil {
		return err
	}

	if h != nil {
		// Pull any trailing padding through the tee so the digest
		// covers the whole file, not just what extraction consumed.
		if _, err := io.Copy(io.Discard, src); err != nil {
			return errors.Annotate(err).Reason("draining %(path)q").D("path", path).Err()
		}
		logging.Infof(ctx, "%s: blake2b-256 %s", path, hex.EncodeToString(h.Sum(nil)))
	}
	return nil
}

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte("BZh")
	xzMagic    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// decompressor sniffs the stream's leading magic bytes and wraps it in
// the matching decompressor, if any. Streams that match nothing are
// passed through untouched and left for the ustar layer to judge.
func decompressor(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case bytes.HasPrefix(magic, bzip2Magic):
		return readCloseHook{bzip2.NewReader(br), nil}, nil
	case bytes.HasPrefix(magic, xzMagic):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, err
		}
		return readCloseHook{xr, nil}, nil
	}
	return readCloseHook{br, nil}, nil
}

type readCloseHook struct {
	io.Reader

	clsFn func() error
}

func (c readCloseHook) Close() error {
	if c.clsFn != nil {
		return c.clsFn()
	}
	return nil
}
