package domain

// VideoPlatform is a recognized external video host
type VideoPlatform string

const (
	VideoPlatformYouTube     VideoPlatform = "youtube"
	VideoPlatformVimeo       VideoPlatform = "vimeo"
	VideoPlatformDailymotion VideoPlatform = "dailymotion"
)

// VideoMetadata is what a resolver returns for an external video
type VideoMetadata struct {
	Platform        VideoPlatform
	Title           string
	DurationSeconds int
	ThumbnailURL    string
}
