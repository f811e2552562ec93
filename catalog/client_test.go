package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func newTestServer(status int, body string, seen *http.Request) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = *r
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestFetch(t *testing.T) {
	Convey("Given a catalog server", t, func() {
		ctx := context.Background()

		Convey("When the video exists", func() {
			var seen http.Request
			server := newTestServer(http.StatusOK, `{"kind":"youtube#videoListResponse","items":[{"id":"abc123","etag":"x","statistics":{"viewCount":"1234567"}},{"id":"other"}]}`, &seen)
			defer server.Close()

			client := New(Options{Endpoint: server.URL, Key: "secret", Parts: []string{"snippet", "statistics"}})
			items, err := client.Fetch(ctx, "abc123")

			Convey("Then every item should be decoded", func() {
				So(err, ShouldBeNil)
				So(items, ShouldHaveLength, 2)
				So(items[0].ID, ShouldEqual, "abc123")
				So(*items[0].Statistics.ViewCount, ShouldEqual, "1234567")
			})

			Convey("And the request should carry id, parts and key", func() {
				q := seen.URL.Query()
				So(q.Get("id"), ShouldEqual, "abc123")
				So(q.Get("part"), ShouldEqual, "snippet,statistics")
				So(q.Get("key"), ShouldEqual, "secret")
				So(seen.Header.Get("User-Agent"), ShouldNotBeEmpty)
			})
		})

		Convey("When a counter arrives as a JSON number", func() {
			server := newTestServer(http.StatusOK, `{"items":[{"id":"abc123","statistics":{"viewCount":1234567,"likeCount":"10"}}]}`, nil)
			defer server.Close()

			items, err := New(Options{Endpoint: server.URL, Key: "secret"}).Fetch(ctx, "abc123")

			Convey("Then the record should still be decoded", func() {
				So(err, ShouldBeNil)
				So(items, ShouldHaveLength, 1)
				So(*items[0].Statistics.ViewCount, ShouldEqual, "1234567")
				So(*items[0].Statistics.LikeCount, ShouldEqual, "10")
			})
		})

		Convey("When the video does not exist", func() {
			server := newTestServer(http.StatusOK, `{"items":[]}`, nil)
			defer server.Close()

			items, err := New(Options{Endpoint: server.URL, Key: "secret"}).Fetch(ctx, "missing")
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
		})

		Convey("When the catalog rejects the request", func() {
			server := newTestServer(http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid."}}`, nil)
			defer server.Close()

			_, err := New(Options{Endpoint: server.URL, Key: "bad"}).Fetch(ctx, "abc123")

			Convey("Then the api error should be surfaced", func() {
				var apiErr *APIError
				So(errors.As(err, &apiErr), ShouldBeTrue)
				So(apiErr.Status, ShouldEqual, http.StatusBadRequest)
				So(apiErr.Message, ShouldEqual, "API key not valid.")
			})
		})

		Convey("When the error body is not json", func() {
			server := newTestServer(http.StatusBadGateway, `<html>bad gateway</html>`, nil)
			defer server.Close()

			_, err := New(Options{Endpoint: server.URL, Key: "k"}).Fetch(ctx, "abc123")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "catalog responded with status 502")
		})

		Convey("When the body is malformed", func() {
			server := newTestServer(http.StatusOK, `{"items":[`, nil)
			defer server.Close()

			_, err := New(Options{Endpoint: server.URL, Key: "k"}).Fetch(ctx, "abc123")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "catalog decode")
		})
	})

	Convey("Given a client without a key", t, func() {
		_, err := New(Options{}).Fetch(context.Background(), "abc123")
		So(errors.Is(err, ErrMissingKey), ShouldBeTrue)
	})
}
