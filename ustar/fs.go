// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ustar

import (
	"context"
	"os"
	"strings"

	"github.com/luci/luci-go/common/logging"
)

// intermediateDirMode is used for parent directories that get created
// only because a deeper entry needs them. The archive never names
// these, so no header mode applies to them.
const intermediateDirMode os.FileMode = 0755

// CreateDir creates the named directory, bootstrapping missing parent
// directories as necessary. Archive paths always use '/', whatever the
// host convention, so parents are split on that.
//
// Failure is not an error to the caller: it is logged and extraction
// of later entries carries on, some of which may fail in turn for the
// same reason.
func CreateDir(ctx context.Context, pathname string, mode os.FileMode) {
	pathname = strings.TrimSuffix(pathname, "/")
	if pathname == "" {
		return
	}

	err := mkdir(pathname, mode)
	if err != nil {
		if i := strings.LastIndexByte(pathname, '/'); i > 0 {
			CreateDir(ctx, pathname[:i], intermediateDirMode)
			err = mkdir(pathname, mode)
		}
	}
	if err != nil {
		logging.Errorf(ctx, "could not create directory %q: %s", pathname, err)
	}
}

func mkdir(pathname string, mode os.FileMode) error {
	perm := mode.Perm()
	if perm == 0 {
		perm = intermediateDirMode
	}
	err := os.Mkdir(pathname, perm)
	if os.IsExist(err) {
		return nil
	}
	return err
}

// CreateFile opens the named file for writing, truncating anything
// already there and bootstrapping the parent directory on a first
// failure. A nil return means the file could not be created (already
// logged); the caller must still consume the entry's payload blocks to
// keep the stream aligned, it just has nowhere to write them.
func CreateFile(ctx context.Context, pathname string, mode os.FileMode) *os.File {
	perm := mode.Perm()
	if perm == 0 {
		perm = 0666
	}

	f, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		if i := strings.LastIndexByte(pathname, '/'); i > 0 {
			CreateDir(ctx, pathname[:i], intermediateDirMode)
			f, err = os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
		}
	}
	if err != nil {
		logging.Errorf(ctx, "could not create file %q: %s", pathname, err)
		return nil
	}
	return f
}
