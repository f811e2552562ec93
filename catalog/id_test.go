package catalog

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseID(t *testing.T) {
	Convey("ParseID", t, func() {
		Convey("Should keep bare identifiers", func() {
			So(ParseID("dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
			So(ParseID("  dQw4w9WgXcQ \n"), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Should extract from watch urls", func() {
			So(ParseID("https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42"), ShouldEqual, "dQw4w9WgXcQ")
			So(ParseID("youtube.com/watch?v=dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
			So(ParseID("https://m.youtube.com/watch?v=dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Should extract from share and path forms", func() {
			So(ParseID("https://youtu.be/dQw4w9WgXcQ?si=abc"), ShouldEqual, "dQw4w9WgXcQ")
			So(ParseID("https://www.youtube.com/shorts/dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
			So(ParseID("https://www.youtube.com/embed/dQw4w9WgXcQ"), ShouldEqual, "dQw4w9WgXcQ")
		})

		Convey("Should leave unknown urls alone", func() {
			So(ParseID("https://example.com/watch?v=x"), ShouldEqual, "https://example.com/watch?v=x")
		})

		Convey("Should keep empty input empty", func() {
			So(ParseID("   "), ShouldBeEmpty)
		})
	})
}
