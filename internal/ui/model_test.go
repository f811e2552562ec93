package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNotifier(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var n Notifier

		Convey("It should start empty", func() {
			So(n.View("line"), ShouldEqual, "line")
		})

		Convey("When notified", func() {
			msg := Notify("exported to clip.json")()
			So(n.Update(msg), ShouldNotBeNil)

			Convey("Then the text should be shown", func() {
				So(n.Text(), ShouldEqual, "exported to clip.json")
				So(n.View("line"), ShouldContainSubstring, "exported to clip.json")
			})

			Convey("Then a stale clear should be ignored", func() {
				n.Update(Notify("second")())
				n.Update(clearMsg{generation: 1})
				So(n.Text(), ShouldEqual, "second")

				n.Update(clearMsg{generation: 2})
				So(n.Text(), ShouldBeEmpty)
			})
		})
	})
}
