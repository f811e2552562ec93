package recent

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/filesystem"
	"github.com/vidinfo-cli/vidinfo/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRecent(t *testing.T) {
	Convey("Given remembering is enabled", t, func() {
		viper.Set(key.RecentRemember, true)
		viper.Set(key.RecentLimit, 20)
		So(Forget(), ShouldBeNil)

		Convey("When identifiers are remembered", func() {
			So(Remember("dQw4w9WgXcQ"), ShouldBeNil)
			So(Remember(" jNQXAC9IVRw "), ShouldBeNil)
			So(Remember("jNQXAC9IVRw"), ShouldBeNil)

			Convey("Then they should be stored trimmed and once", func() {
				So(Count(), ShouldEqual, 2)
			})

			Convey("Then the most used should be suggested first", func() {
				So(SuggestMany(""), ShouldResemble, []string{"jNQXAC9IVRw", "dQw4w9WgXcQ"})
			})

			Convey("Then partial input should match fuzzily and ignore case", func() {
				So(Suggest("dqw").MustGet(), ShouldEqual, "dQw4w9WgXcQ")
				So(Suggest("zzz").IsAbsent(), ShouldBeTrue)
			})

			Convey("Then the limit should cap suggestions", func() {
				viper.Set(key.RecentLimit, 1)
				So(SuggestMany(""), ShouldHaveLength, 1)
			})

			Convey("Then forgetting should clear them", func() {
				So(Forget(), ShouldBeNil)
				So(Count(), ShouldEqual, 0)
			})
		})

		Convey("When the identifier is blank", func() {
			So(Remember("  "), ShouldBeNil)
			So(Count(), ShouldEqual, 0)
		})
	})

	Convey("Given remembering is disabled", t, func() {
		viper.Set(key.RecentRemember, false)
		Reset(func() { viper.Set(key.RecentRemember, true) })
		So(Forget(), ShouldBeNil)

		So(Remember("dQw4w9WgXcQ"), ShouldBeNil)
		So(Count(), ShouldEqual, 0)
	})
}
