package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidinfo-cli/vidinfo/constant"
	"github.com/vidinfo-cli/vidinfo/filesystem"
	"github.com/vidinfo-cli/vidinfo/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.APIEndpoint), ShouldEqual, constant.CatalogEndpoint)
			So(viper.GetStringSlice(key.APIParts), ShouldResemble, constant.CatalogParts)
		})

		Convey("Should read the api key from the environment", func() {
			t.Setenv("VIDINFO_API_KEY", "from-env")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.APIKey), ShouldEqual, "from-env")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("format.time_layout")
			So(result, ShouldEqual, "format_time_layout")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.FormatLocale]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "VIDINFO_FORMAT_LOCALE")
		})

		Convey("typeName should reflect the default value", func() {
			So(field.typeName(), ShouldEqual, "string")
			parts := Default[key.APIParts]
			So(parts.typeName(), ShouldEqual, "[]string")
		})
	})
}

func TestSecret(t *testing.T) {
	Convey("Mask should keep only the last four characters", t, func() {
		So(Mask("abcdefgh"), ShouldEqual, "****efgh")
		So(Mask("abc"), ShouldEqual, "***")
		So(Mask(""), ShouldEqual, "")
	})

	Convey("Given the api key field", t, func() {
		field := Default[key.APIKey]
		So(field.Secret, ShouldBeTrue)

		viper.Set(key.APIKey, "AIzaSecretValue1234")
		Reset(func() { viper.Set(key.APIKey, "") })

		Convey("Current should be masked", func() {
			So(field.Current(), ShouldEqual, "***************1234")
		})

		Convey("Pretty should not leak the value", func() {
			So(field.Pretty(), ShouldNotContainSubstring, "AIzaSecretValue")
		})
	})

	Convey("Plain fields should report their value unmasked", t, func() {
		field := Default[key.FormatLocale]
		So(field.Secret, ShouldBeFalse)
		So(field.Current(), ShouldEqual, viper.Get(key.FormatLocale))
	})
}
