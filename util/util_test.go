package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidinfo-cli/vidinfo/filesystem"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("clip:name?.json"), ShouldEqual, "clip_name_.json")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("my  clip"), ShouldEqual, "my_clip")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-dQw4w9WgXcQ-"), ShouldEqual, "dQw4w9WgXcQ")
			So(SanitizeFilename("  "), ShouldBeEmpty)
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "id", "ids"), ShouldEqual, "1 id")
		So(Quantify(3, "id", "ids"), ShouldEqual, "3 ids")
	})
}

func TestTruncate(t *testing.T) {
	Convey("Truncate", t, func() {
		So(Truncate("hello", 10), ShouldEqual, "hello")
		So(Truncate("hello world", 6), ShouldEqual, "hello…")
		So(Truncate("hello", 1), ShouldEqual, "…")
		So(Truncate("hello", 0), ShouldEqual, "hello")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("overview"), ShouldEqual, "Overview")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("état"), ShouldEqual, "État")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Max(-3, -1), ShouldEqual, -1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a file and a directory", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		fs := filesystem.API()
		So(fs.WriteFile("/cache/recent.json", []byte("{}"), 0o644), ShouldBeNil)
		So(fs.WriteFile("/logs/vidinfo.log", []byte("x"), 0o644), ShouldBeNil)

		Convey("Delete should remove a file", func() {
			So(Delete("/cache/recent.json"), ShouldBeNil)
			exists, _ := fs.Exists("/cache/recent.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete should remove a directory recursively", func() {
			So(Delete("/logs"), ShouldBeNil)
			exists, _ := fs.DirExists("/logs")
			So(exists, ShouldBeFalse)
		})

		Convey("Delete should fail for missing paths", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}
