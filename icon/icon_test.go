package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Export

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					result := Get(target)
					So(result, ShouldNotBeEmpty)
				})
			}
		})

		Convey("It falls back to plain for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(target), ShouldEqual, icons[target].plain)
		})

		Convey("An unknown icon renders as nothing", func() {
			viper.Set(key.IconsVariant, "emoji")
			So(Get(Icon(-1)), ShouldBeEmpty)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Every icon should define every variant", t, func() {
		for i, def := range icons {
			So(def, ShouldNotBeNil)
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}
		viper.Set(key.IconsVariant, "plain")
	})
}
