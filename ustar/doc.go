// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package ustar extracts ustar archive streams onto the filesystem.
//
// Extraction is single-threaded and strictly sequential over one
// stream. Paths are created relative to the process working directory,
// exactly as encoded in the archive, so concurrently extracting two
// archives whose trees overlap is a data race the caller must avoid.
package ustar
