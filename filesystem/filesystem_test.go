package filesystem

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteFileAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("When writing into a missing directory", func() {
			err := WriteFileAtomic("/out/nested/file.json", []byte(`{}`), 0o644)

			Convey("Then the file should exist with the content", func() {
				So(err, ShouldBeNil)
				So(string(lo.Must(API().ReadFile("/out/nested/file.json"))), ShouldEqual, "{}")
			})

			Convey("And no temp file should be left behind", func() {
				So(lo.Must(API().Exists("/out/nested/file.json.tmp")), ShouldBeFalse)
			})
		})

		Convey("When overwriting an existing file", func() {
			So(WriteFileAtomic("/out/file.json", []byte("old"), 0o644), ShouldBeNil)
			So(WriteFileAtomic("/out/file.json", []byte("new"), 0o644), ShouldBeNil)
			So(string(lo.Must(API().ReadFile("/out/file.json"))), ShouldEqual, "new")
		})
	})
}
