// Copyright 2026 The untar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package ustar

import (
	"io/ioutil"
	"os"
	"testing"

	"golang.org/x/net/context"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFilesystem(tst *testing.T) {
	Convey("filesystem materialization", tst, func() {
		ctx := context.Background()

		tmp, err := ioutil.TempDir("", "untar")
		So(err, ShouldBeNil)
		cwd, err := os.Getwd()
		So(err, ShouldBeNil)
		So(os.Chdir(tmp), ShouldBeNil)
		Reset(func() {
			os.Chdir(cwd)
			os.RemoveAll(tmp)
		})

		isDir := func(path string) bool {
			st, err := os.Stat(path)
			return err == nil && st.IsDir()
		}

		Convey("CreateDir", func() {
			Convey("plain", func() {
				CreateDir(ctx, "d", 0755)
				So(isDir("d"), ShouldBeTrue)
			})

			Convey("strips a trailing slash", func() {
				CreateDir(ctx, "d/", 0755)
				So(isDir("d"), ShouldBeTrue)
			})

			Convey("bootstraps missing parents", func() {
				CreateDir(ctx, "a/b/c", 0700)
				So(isDir("a"), ShouldBeTrue)
				So(isDir("a/b"), ShouldBeTrue)
				So(isDir("a/b/c"), ShouldBeTrue)
			})

			Convey("an already-present directory is fine", func() {
				CreateDir(ctx, "d", 0755)
				CreateDir(ctx, "d", 0755)
				So(isDir("d"), ShouldBeTrue)
			})

			Convey("failure is swallowed", func() {
				So(ioutil.WriteFile("plainfile", []byte("x"), 0644), ShouldBeNil)
				CreateDir(ctx, "plainfile/sub", 0755)
				So(isDir("plainfile/sub"), ShouldBeFalse)
			})
		})

		Convey("CreateFile", func() {
			Convey("plain", func() {
				f := CreateFile(ctx, "f.txt", 0644)
				So(f, ShouldNotBeNil)
				_, err := f.Write([]byte("data"))
				So(err, ShouldBeNil)
				So(f.Close(), ShouldBeNil)

				data, err := ioutil.ReadFile("f.txt")
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "data")
			})

			Convey("truncates what was there", func() {
				So(ioutil.WriteFile("f.txt", []byte("old content"), 0644), ShouldBeNil)
				f := CreateFile(ctx, "f.txt", 0644)
				So(f, ShouldNotBeNil)
				So(f.Close(), ShouldBeNil)

				data, err := ioutil.ReadFile("f.txt")
				So(err, ShouldBeNil)
				So(data, ShouldBeEmpty)
			})

			Convey("bootstraps the parent directory", func() {
				f := CreateFile(ctx, "deep/down/f.txt", 0644)
				So(f, ShouldNotBeNil)
				So(f.Close(), ShouldBeNil)
				So(isDir("deep/down"), ShouldBeTrue)
			})

			Convey("returns nil when creation cannot succeed", func() {
				So(ioutil.WriteFile("plainfile", []byte("x"), 0644), ShouldBeNil)
				So(CreateFile(ctx, "plainfile/f.txt", 0644), ShouldBeNil)
			})

			Convey("returns nil for a path that is a directory", func() {
				So(os.Mkdir("d", 0755), ShouldBeNil)
				So(CreateFile(ctx, "d", 0644), ShouldBeNil)
			})
		})
	})
}
