package constant

// Catalog endpoints and the parts requested from videos.list.
const (
	CatalogEndpoint = "https://www.googleapis.com/youtube/v3/videos"
	WatchURL        = "https://www.youtube.com/watch?v="
)

// CatalogParts lists every resource part the projector knows how to display.
var CatalogParts = []string{
	"snippet",
	"contentDetails",
	"player",
	"statistics",
	"status",
	"topicDetails",
	"recordingDetails",
	"liveStreamingDetails",
}

// Unavailable is the literal substituted for missing or unparsable values.
const Unavailable = "Unavailable"
