// Package catalog provides a client for the YouTube Data API videos resource.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/sirupsen/logrus"
	"github.com/vidinfo-cli/vidinfo/constant"
	"github.com/vidinfo-cli/vidinfo/log"
)

// BroadcastState reports whether a video is, or will be, a live broadcast.
type BroadcastState string

const (
	BroadcastNone     BroadcastState = "none"
	BroadcastLive     BroadcastState = "live"
	BroadcastUpcoming BroadcastState = "upcoming"
)

// Video is a single videos.list item exactly as the catalog reported it.
// Every group is optional: the catalog omits parts that were not requested or do not apply.
// Numeric values stay in their transported text form; the display layer parses them.
type Video struct {
	// ID is the opaque identifier of the video.
	ID string `json:"id" jsonschema:"description=Identifier of the video."`
	// Snippet holds the core descriptive metadata.
	Snippet *Snippet `json:"snippet,omitempty" jsonschema:"description=Core descriptive metadata."`
	// ContentDetails describes the media itself.
	ContentDetails *ContentDetails `json:"contentDetails,omitempty" jsonschema:"description=Media details such as duration and definition."`
	// Player holds the embeddable player markup.
	Player *Player `json:"player,omitempty" jsonschema:"description=Embeddable player."`
	// Statistics holds the public counters, each transported as a decimal string.
	Statistics *Statistics `json:"statistics,omitempty" jsonschema:"description=Public counters transported as decimal strings."`
	// Status describes upload, privacy and license state.
	Status *Status `json:"status,omitempty" jsonschema:"description=Upload and privacy and license state."`
	// TopicDetails lists topics associated with the video.
	TopicDetails *TopicDetails `json:"topicDetails,omitempty" jsonschema:"description=Topics associated with the video."`
	// RecordingDetails holds the recording date, when known.
	RecordingDetails *RecordingDetails `json:"recordingDetails,omitempty" jsonschema:"description=Recording details."`
	// LiveStreamingDetails is present only for live or streamed videos.
	LiveStreamingDetails *LiveStreamingDetails `json:"liveStreamingDetails,omitempty" jsonschema:"description=Present only for live or streamed videos."`

	raw json.RawMessage
}

// Snippet is the core group of a video.
type Snippet struct {
	PublishedAt          *string         `json:"publishedAt,omitempty" jsonschema:"description=ISO 8601 publish timestamp."`
	ChannelID            *string         `json:"channelId,omitempty"`
	Title                *string         `json:"title,omitempty"`
	Description          *string         `json:"description,omitempty"`
	Thumbnails           *Thumbnails     `json:"thumbnails,omitempty"`
	ChannelTitle         *string         `json:"channelTitle,omitempty"`
	Tags                 []string        `json:"tags,omitempty"`
	CategoryID           *string         `json:"categoryId,omitempty"`
	LiveBroadcastContent *BroadcastState `json:"liveBroadcastContent,omitempty" jsonschema:"enum=none,enum=live,enum=upcoming"`
	// Localized is the title and description in the requested display language.
	Localized *Localized `json:"localized,omitempty"`
}

// Localized carries a localized title and description override.
type Localized struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Thumbnail is a single preview image.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Thumbnails maps each size key to its preview image.
type Thumbnails struct {
	Default  *Thumbnail `json:"default,omitempty"`
	Medium   *Thumbnail `json:"medium,omitempty"`
	High     *Thumbnail `json:"high,omitempty"`
	Standard *Thumbnail `json:"standard,omitempty"`
	Maxres   *Thumbnail `json:"maxres,omitempty"`
}

// Best returns the preferred thumbnail, favouring the medium size, or nil when none has a URL.
func (t *Thumbnails) Best() *Thumbnail {
	if t == nil {
		return nil
	}

	for _, candidate := range []*Thumbnail{t.Medium, t.High, t.Standard, t.Maxres, t.Default} {
		if candidate != nil && candidate.URL != "" {
			return candidate
		}
	}

	return nil
}

// ContentDetails describes the media of a video.
type ContentDetails struct {
	Duration          *string            `json:"duration,omitempty" jsonschema:"description=ISO 8601 duration such as PT4M13S."`
	Dimension         *string            `json:"dimension,omitempty" jsonschema:"enum=2d,enum=3d"`
	Definition        *string            `json:"definition,omitempty" jsonschema:"enum=hd,enum=sd"`
	Caption           *string            `json:"caption,omitempty"`
	LicensedContent   *bool              `json:"licensedContent,omitempty"`
	RegionRestriction *RegionRestriction `json:"regionRestriction,omitempty"`
	Projection        *string            `json:"projection,omitempty" jsonschema:"enum=rectangular,enum=360"`
}

// RegionRestriction lists the regions a video is allowed or blocked in.
type RegionRestriction struct {
	Allowed []string `json:"allowed,omitempty"`
	Blocked []string `json:"blocked,omitempty"`
}

// Player holds the embeddable player of a video.
type Player struct {
	// EmbedHTML is an iframe fragment supplied by the catalog. It is not sanitized.
	EmbedHTML *string `json:"embedHtml,omitempty"`
}

// Statistics holds the counters of a video. A counter is absent when the owner hides it.
type Statistics struct {
	ViewCount     *string `json:"viewCount,omitempty"`
	LikeCount     *string `json:"likeCount,omitempty"`
	CommentCount  *string `json:"commentCount,omitempty"`
	FavoriteCount *string `json:"favoriteCount,omitempty"`
}

// Status describes upload, privacy and license state.
type Status struct {
	UploadStatus        *string `json:"uploadStatus,omitempty"`
	PrivacyStatus       *string `json:"privacyStatus,omitempty"`
	License             *string `json:"license,omitempty"`
	Embeddable          *bool   `json:"embeddable,omitempty"`
	PublicStatsViewable *bool   `json:"publicStatsViewable,omitempty"`
	PublishAt           *string `json:"publishAt,omitempty" jsonschema:"description=Scheduled publish timestamp for private videos."`
}

// TopicDetails lists the topics of a video.
type TopicDetails struct {
	TopicCategories []string `json:"topicCategories,omitempty"`
	TopicIDs        []string `json:"topicIds,omitempty"`
}

// RecordingDetails holds when a video was recorded.
type RecordingDetails struct {
	RecordingDate *string `json:"recordingDate,omitempty"`
}

// LiveStreamingDetails describes a live broadcast.
type LiveStreamingDetails struct {
	ScheduledStartTime *string `json:"scheduledStartTime,omitempty"`
	ActualStartTime    *string `json:"actualStartTime,omitempty"`
	ActualEndTime      *string `json:"actualEndTime,omitempty"`
	ConcurrentViewers  *string `json:"concurrentViewers,omitempty"`
	ActiveLiveChatID   *string `json:"activeLiveChatId,omitempty"`
}

// UnmarshalJSON decodes the item leniently and keeps the bytes it was decoded from.
// Scalars of the wrong JSON type are converted where possible: a counter sent as a number
// keeps its digits and a flag sent as "true" becomes a bool. A field that cannot be
// converted is left unset, so one bad value never costs the rest of the record.
func (v *Video) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return err
	}

	type plain Video

	var p plain
	if err := decodeLenient(fields, reflect.ValueOf(&p).Elem()); err != nil {
		log.WithFields(logrus.Fields{"id": p.ID}).Warnf("skipped malformed fields: %s", err)
	}

	*v = Video(p)
	v.raw = append(json.RawMessage(nil), data...)
	return nil
}

// decodeLenient fills the struct target from a generic JSON object, one field at a time.
// Nested objects recurse so that a bad leaf only clears that leaf.
func decodeLenient(input map[string]any, target reflect.Value) error {
	var errs []error

	for i := 0; i < target.NumField(); i++ {
		structField := target.Type().Field(i)
		name, _, _ := strings.Cut(structField.Tag.Get("json"), ",")
		if !structField.IsExported() || name == "" || name == "-" {
			continue
		}

		value, ok := input[name]
		if !ok || value == nil {
			continue
		}

		field := target.Field(i)
		if object, ok := value.(map[string]any); ok && isStructPointer(structField.Type) {
			nested := reflect.New(structField.Type.Elem())
			errs = append(errs, decodeLenient(object, nested.Elem()))
			field.Set(nested)
			continue
		}

		if err := weakDecode(value, field.Addr().Interface()); err != nil {
			field.Set(reflect.Zero(structField.Type))
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func isStructPointer(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// weakDecode converts a single JSON value into target, accepting numbers for text,
// text for flags and a lone value for a list.
func weakDecode(value any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncKind(boolToText),
		Result:           target,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(value)
}

// boolToText spells booleans out instead of the "1" and "0" weak typing would produce.
func boolToText(from reflect.Kind, to reflect.Kind, data any) (any, error) {
	if b, ok := data.(bool); ok && to == reflect.String {
		return strconv.FormatBool(b), nil
	}
	return data, nil
}

// Raw returns the record as received. Videos built in code are marshaled instead.
func (v *Video) Raw() (json.RawMessage, error) {
	if len(v.raw) > 0 {
		return v.raw, nil
	}

	type plain Video
	return json.Marshal((*plain)(v))
}

// WatchURL returns the public page of the video.
func (v *Video) WatchURL() string {
	return constant.WatchURL + v.ID
}
