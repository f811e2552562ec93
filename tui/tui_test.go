package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidinfo-cli/vidinfo/catalog"
	"github.com/vidinfo-cli/vidinfo/display"
	"github.com/vidinfo-cli/vidinfo/filesystem"
	"github.com/vidinfo-cli/vidinfo/lookup"
)

type stubRetriever struct {
	items []catalog.Video
	err   error
}

func (s *stubRetriever) Fetch(context.Context, string) ([]catalog.Video, error) {
	return s.items, s.err
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestBubble(t *testing.T) {
	Convey("Given a bubble", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		retriever := &stubRetriever{items: []catalog.Video{{
			ID:         "abc123",
			Snippet:    &catalog.Snippet{Title: lo.ToPtr("A title")},
			Statistics: &catalog.Statistics{ViewCount: lo.ToPtr("1234567")},
		}}}

		var opened string
		b := newBubble(context.Background(), &Options{
			Retriever: retriever,
			Projector: display.Default(),
			ExportDir: "exports",
			Browser: func(url string) error {
				opened = url
				return nil
			},
		})
		b.resize(100, 40)

		Convey("When submitting an empty input", func() {
			_, cmd := b.Update(enter())

			Convey("Then it should stay on input and show the reason", func() {
				So(cmd, ShouldBeNil)
				So(b.state, ShouldEqual, inputState)
				So(b.controller.State().Reason, ShouldEqual, "missing identifier")
				So(b.View(), ShouldContainSubstring, "Missing identifier")
			})
		})

		Convey("When submitting a watch url", func() {
			b.inputC.SetValue("https://youtu.be/abc123")
			_, cmd := b.Update(enter())

			Convey("Then it should be loading the parsed id", func() {
				So(cmd, ShouldNotBeNil)
				So(b.state, ShouldEqual, loadingState)
				So(b.pending, ShouldEqual, "abc123")
			})

			Convey("Then another submit should be ignored", func() {
				_, again := b.Update(enter())
				So(again, ShouldBeNil)
				So(b.controller.State().Phase, ShouldEqual, lookup.Loading)
			})

			Convey("And the fetch completes", func() {
				b.Update(b.fetch("abc123")())

				Convey("Then the sections should be shown", func() {
					So(b.state, ShouldEqual, resultState)
					So(b.sections.Lookup(display.SectionStatistics, "View Count").MustGet(), ShouldEqual, "1,234,567")
					So(b.View(), ShouldContainSubstring, "A title")
				})

				Convey("Then export should write the record", func() {
					_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyCtrlE})
					So(cmd, ShouldNotBeNil)

					exists, _ := filesystem.API().Exists("exports/abc123.json")
					So(exists, ShouldBeTrue)
				})

				Convey("Then open should launch the watch page", func() {
					b.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
					So(opened, ShouldEqual, "https://www.youtube.com/watch?v=abc123")
				})

				Convey("Then esc should return to the input", func() {
					b.Update(tea.KeyMsg{Type: tea.KeyEsc})
					So(b.state, ShouldEqual, inputState)

					Convey("And esc again should come back to the record", func() {
						b.Update(tea.KeyMsg{Type: tea.KeyEsc})
						So(b.state, ShouldEqual, resultState)
					})

					Convey("And a blank submit should drop the previous record", func() {
						b.inputC.SetValue("   ")
						b.Update(enter())

						So(b.controller.State().Phase, ShouldEqual, lookup.Failure)
						So(b.sections, ShouldBeEmpty)

						b.Update(tea.KeyMsg{Type: tea.KeyEsc})
						So(b.state, ShouldNotEqual, resultState)
						So(b.View(), ShouldNotContainSubstring, "A title")
					})
				})
			})
		})

		Convey("When the fetch fails", func() {
			retriever.err = errors.New("boom")
			b.inputC.SetValue("abc123")
			b.Update(enter())
			b.Update(b.fetch("abc123")())

			Convey("Then the generic reason should be shown", func() {
				So(b.state, ShouldEqual, inputState)
				view := b.View()
				So(view, ShouldContainSubstring, "Retrieval failed")
				So(view, ShouldNotContainSubstring, "boom")
			})
		})
	})
}
