package export

import (
	"encoding/json"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidinfo-cli/vidinfo/catalog"
	"github.com/vidinfo-cli/vidinfo/filesystem"
)

func TestFile(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		var video catalog.Video
		So(json.Unmarshal([]byte(`{"kind":"youtube#video","id":"abc123","statistics":{"viewCount":"1234567"}}`), &video), ShouldBeNil)

		Convey("When exporting with a name", func() {
			path, err := File(&video, "out", "clip")

			Convey("Then the raw record should be written with two-space indent", func() {
				So(err, ShouldBeNil)
				So(path, ShouldEqual, filepath.Join("out", "clip.json"))

				data, err := filesystem.API().ReadFile(path)
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "{\n  \"kind\": \"youtube#video\",\n  \"id\": \"abc123\",\n  \"statistics\": {\n    \"viewCount\": \"1234567\"\n  }\n}\n")
			})

			Convey("Then no temp file should remain", func() {
				exists, err := filesystem.API().Exists(path + ".tmp")
				So(err, ShouldBeNil)
				So(exists, ShouldBeFalse)
			})

			Convey("Then Size should report it", func() {
				So(Size(path), ShouldEndWith, "B")
			})
		})

		Convey("When the name already ends in json", func() {
			path, err := File(&video, "out", "clip.JSON")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join("out", "clip.json"))
		})

		Convey("When no name is given", func() {
			path, err := File(&video, "out", "")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, filepath.Join("out", "abc123.json"))
		})

		Convey("When the record is nil", func() {
			path, err := File(nil, "out", "clip")

			Convey("Then nothing should be written", func() {
				So(err, ShouldBeNil)
				So(path, ShouldBeEmpty)

				exists, _ := filesystem.API().DirExists("out")
				So(exists, ShouldBeFalse)
			})
		})
	})
}

func TestName(t *testing.T) {
	Convey("Name", t, func() {
		video := &catalog.Video{ID: "abc123"}

		So(Name(video, "my clip?"), ShouldEqual, "my_clip.json")
		So(Name(video, "   "), ShouldEqual, "abc123.json")
		So(Name(nil, ""), ShouldEqual, "video.json")
	})
}
