// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package ustardata implements IO routines for reading the pieces of
// the ustar wire format: octal numeric fields, the fixed-offset header
// block, the header checksum, and 512-byte block framing.
package ustardata
