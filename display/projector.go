package display

import (
	"time"

	"github.com/vidinfo-cli/vidinfo/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Section names in the order they are emitted.
const (
	SectionOverview   = "Overview"
	SectionMedia      = "Media"
	SectionStatistics = "Statistics"
	SectionStatus     = "Status"
	SectionTopic      = "Topic"
	SectionRecording  = "Recording"
	SectionLive       = "Live Streaming"
)

// DefaultTimeLayout renders timestamps as month/day/year with a 12-hour clock.
const DefaultTimeLayout = "1/2/2006, 3:04:05 PM"

// Options configures how values are formatted.
type Options struct {
	// Locale selects digit grouping for counters.
	Locale language.Tag
	// Location is the zone timestamps are converted to. Nil means UTC.
	Location *time.Location
	// TimeLayout is a time.Format layout. Empty means DefaultTimeLayout.
	TimeLayout string
}

// Projector turns a video into display sections. It holds no mutable state.
type Projector struct {
	format formatter
}

// New creates a Projector.
func New(options Options) Projector {
	if options.Location == nil {
		options.Location = time.UTC
	}

	if options.TimeLayout == "" {
		options.TimeLayout = DefaultTimeLayout
	}

	return Projector{
		format: formatter{
			printer:  message.NewPrinter(options.Locale),
			location: options.Location,
			layout:   options.TimeLayout,
		},
	}
}

// Default creates a Projector for English in UTC.
func Default() Projector {
	return New(Options{Locale: language.English})
}

// builder collects the fields of one section.
type builder struct {
	name   string
	fields []Field
}

func (b *builder) add(label, value string) {
	b.fields = append(b.fields, Field{Section: b.name, Label: label, Value: value, Kind: Text})
}

func (b *builder) markup(label, value string) {
	b.fields = append(b.fields, Field{Section: b.name, Label: label, Value: value, Kind: Markup})
}

func (b *builder) optional(label string, value *string) {
	if value != nil {
		b.add(label, *value)
	}
}

func (b *builder) list(label string, values []string, f formatter) {
	if len(values) > 0 {
		b.add(label, f.list(values))
	}
}

func (b *builder) flag(label string, value *bool, f formatter) {
	if value != nil {
		b.add(label, f.flag(*value))
	}
}

func (b *builder) section() Section {
	return Section{Name: b.name, Fields: b.fields}
}

// Project returns the sections for video. A nil video yields no sections.
func (p Projector) Project(video *catalog.Video) Sections {
	sections := Sections{}
	if video == nil {
		return sections
	}

	if video.Snippet != nil {
		sections = append(sections, p.overview(video.ID, video.Snippet))
	}

	if video.ContentDetails != nil || video.Player != nil {
		sections = append(sections, p.media(video.ContentDetails, video.Player))
	}

	if video.Statistics != nil {
		sections = append(sections, p.statistics(video.Statistics))
	}

	if video.Status != nil {
		sections = append(sections, p.status(video.Status))
	}

	if video.TopicDetails != nil {
		sections = append(sections, p.topic(video.TopicDetails))
	}

	if video.RecordingDetails != nil {
		sections = append(sections, p.recording(video.RecordingDetails))
	}

	if video.LiveStreamingDetails != nil {
		sections = append(sections, p.live(video.LiveStreamingDetails))
	}

	return sections
}

func (p Projector) overview(id string, s *catalog.Snippet) Section {
	b := builder{name: SectionOverview}
	f := p.format

	if id != "" {
		b.add("Video ID", id)
	}
	b.optional("Title", s.Title)
	if thumb := s.Thumbnails.Best(); thumb != nil {
		b.add("Thumbnail", thumb.URL)
	}
	b.add("Published At", f.timestamp(s.PublishedAt))
	b.optional("Channel ID", s.ChannelID)
	b.optional("Channel Title", s.ChannelTitle)
	b.optional("Description", s.Description)
	b.list("Tags", s.Tags, f)
	b.optional("Category ID", s.CategoryID)
	if s.LiveBroadcastContent != nil {
		b.add("Live Broadcast Content", string(*s.LiveBroadcastContent))
	}

	// A localized group signals intent to localize, so both fields are always shown.
	if s.Localized != nil {
		b.add("Localized Title", f.text(s.Localized.Title))
		b.add("Localized Description", f.text(s.Localized.Description))
	}

	return b.section()
}

func (p Projector) media(c *catalog.ContentDetails, player *catalog.Player) Section {
	b := builder{name: SectionMedia}
	f := p.format

	if c != nil {
		b.optional("Duration", c.Duration)
		b.optional("Dimension", c.Dimension)
		b.optional("Definition", c.Definition)
		b.optional("Caption", c.Caption)
		b.flag("Licensed Content", c.LicensedContent, f)
		if c.RegionRestriction != nil {
			b.add("Region Restriction", f.dump(c.RegionRestriction))
		}
		b.optional("Projection", c.Projection)
	}

	if player != nil && player.EmbedHTML != nil {
		b.markup("Embed HTML", *player.EmbedHTML)
	}

	return b.section()
}

func (p Projector) statistics(s *catalog.Statistics) Section {
	b := builder{name: SectionStatistics}
	f := p.format

	b.add("View Count", f.counter(s.ViewCount))
	b.add("Like Count", f.counter(s.LikeCount))
	b.add("Comment Count", f.counter(s.CommentCount))
	b.add("Favorite Count", f.counter(s.FavoriteCount))

	return b.section()
}

func (p Projector) status(s *catalog.Status) Section {
	b := builder{name: SectionStatus}
	f := p.format

	b.optional("Upload Status", s.UploadStatus)
	b.optional("Privacy Status", s.PrivacyStatus)
	b.optional("License", s.License)
	b.flag("Embeddable", s.Embeddable, f)
	b.flag("Public Stats Viewable", s.PublicStatsViewable, f)
	if s.PublishAt != nil {
		b.add("Scheduled Publish At", f.timestamp(s.PublishAt))
	}

	return b.section()
}

func (p Projector) topic(t *catalog.TopicDetails) Section {
	b := builder{name: SectionTopic}

	b.list("Topic Categories", t.TopicCategories, p.format)
	b.list("Topic IDs", t.TopicIDs, p.format)

	return b.section()
}

func (p Projector) recording(r *catalog.RecordingDetails) Section {
	b := builder{name: SectionRecording}

	if r.RecordingDate != nil {
		b.add("Recording Date", p.format.timestamp(r.RecordingDate))
	}

	return b.section()
}

func (p Projector) live(l *catalog.LiveStreamingDetails) Section {
	b := builder{name: SectionLive}
	f := p.format

	b.add("Scheduled Start Time", f.timestamp(l.ScheduledStartTime))
	b.add("Actual Start Time", f.timestamp(l.ActualStartTime))
	b.add("Actual End Time", f.timestamp(l.ActualEndTime))
	b.add("Concurrent Viewers", f.counter(l.ConcurrentViewers))
	b.optional("Active Live Chat ID", l.ActiveLiveChatID)

	return b.section()
}
