package catalog

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVideo(t *testing.T) {
	Convey("Given a decoded video", t, func() {
		body := `{"kind":"youtube#video","id":"abc123","snippet":{"title":"T","tags":["a","b"],"localized":{"description":"d"}}}`

		var video Video
		So(json.Unmarshal([]byte(body), &video), ShouldBeNil)

		Convey("Then optional groups should stay nil", func() {
			So(video.Statistics, ShouldBeNil)
			So(video.LiveStreamingDetails, ShouldBeNil)
			So(video.Snippet.Localized.Title, ShouldBeNil)
			So(*video.Snippet.Localized.Description, ShouldEqual, "d")
		})

		Convey("Then Raw should return the received bytes", func() {
			raw, err := video.Raw()
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, body)
		})

		Convey("Then WatchURL should point at the video", func() {
			So(video.WatchURL(), ShouldEqual, "https://www.youtube.com/watch?v=abc123")
		})
	})

	Convey("Given a video built in code", t, func() {
		video := Video{ID: "xyz", Statistics: &Statistics{ViewCount: lo.ToPtr("10")}}

		Convey("Then Raw should marshal it without empty groups", func() {
			raw, err := video.Raw()
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, `{"id":"xyz","statistics":{"viewCount":"10"}}`)
		})
	})
}

func TestVideoWrongTypes(t *testing.T) {
	Convey("Given a record with values of the wrong JSON type", t, func() {
		body := `{
		  "id": "abc123",
		  "snippet": {"title": 42, "tags": "solo", "categoryId": 10, "thumbnails": {"medium": {"url": "m", "width": "320"}}},
		  "contentDetails": {"licensedContent": "true", "duration": {"nested": true}},
		  "statistics": {"viewCount": 1234567, "likeCount": ["x"], "commentCount": null},
		  "status": {"embeddable": "maybe", "publicStatsViewable": false, "privacyStatus": true},
		  "topicDetails": {"topicIds": [1, "b"]},
		  "liveStreamingDetails": "not an object"
		}`

		var video Video
		So(json.Unmarshal([]byte(body), &video), ShouldBeNil)

		Convey("Then convertible values should keep their text", func() {
			So(*video.Snippet.Title, ShouldEqual, "42")
			So(*video.Snippet.CategoryID, ShouldEqual, "10")
			So(*video.Statistics.ViewCount, ShouldEqual, "1234567")
			So(*video.Status.PrivacyStatus, ShouldEqual, "true")
		})

		Convey("Then flags and lists should be coerced", func() {
			So(*video.ContentDetails.LicensedContent, ShouldBeTrue)
			So(*video.Status.PublicStatsViewable, ShouldBeFalse)
			So(video.Snippet.Tags, ShouldResemble, []string{"solo"})
			So(video.TopicDetails.TopicIDs, ShouldResemble, []string{"1", "b"})
			So(video.Snippet.Thumbnails.Medium.Width, ShouldEqual, 320)
		})

		Convey("Then only the unconvertible fields should be dropped", func() {
			So(video.ContentDetails.Duration, ShouldBeNil)
			So(video.Statistics.LikeCount, ShouldBeNil)
			So(video.Statistics.CommentCount, ShouldBeNil)
			So(video.Status.Embeddable, ShouldBeNil)
			So(video.LiveStreamingDetails, ShouldBeNil)
			So(video.ID, ShouldEqual, "abc123")
		})

		Convey("Then Raw should still return the received bytes", func() {
			raw, err := video.Raw()
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, body)
		})
	})

	Convey("Given a record that is not an object", t, func() {
		var video Video
		So(json.Unmarshal([]byte(`[1,2]`), &video), ShouldNotBeNil)
	})
}

func TestThumbnails(t *testing.T) {
	Convey("Best", t, func() {
		Convey("Should prefer the medium thumbnail", func() {
			thumbs := &Thumbnails{
				Default: &Thumbnail{URL: "d"},
				Medium:  &Thumbnail{URL: "m"},
				High:    &Thumbnail{URL: "h"},
			}
			So(thumbs.Best().URL, ShouldEqual, "m")
		})

		Convey("Should fall back to any available size", func() {
			thumbs := &Thumbnails{Default: &Thumbnail{URL: "d"}}
			So(thumbs.Best().URL, ShouldEqual, "d")
		})

		Convey("Should be nil when nothing is usable", func() {
			var thumbs *Thumbnails
			So(thumbs.Best(), ShouldBeNil)
			So((&Thumbnails{Medium: &Thumbnail{}}).Best(), ShouldBeNil)
		})
	})
}
