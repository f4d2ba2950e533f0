package video

import (
	"context"
	"doclib/internal/config"
	"doclib/internal/core/domain"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
)

var (
	youtubePattern     = regexp.MustCompile(`^https?://(?:(?:www|m)\.)?(?:youtube\.com/(?:watch\?(?:[^#]*&)?v=|shorts/|embed/)|youtu\.be/)[A-Za-z0-9_-]{11}`)
	vimeoPattern       = regexp.MustCompile(`^https?://(?:(?:www|player)\.)?vimeo\.com/(?:video/)?\d+`)
	dailymotionPattern = regexp.MustCompile(`^https?://(?:(?:www)\.)?(?:dailymotion\.com/video/|dai\.ly/)[A-Za-z0-9]+`)
)

// Platform returns the video platform rawURL belongs to
func Platform(rawURL string) (domain.VideoPlatform, bool) {
	switch {
	case youtubePattern.MatchString(rawURL):
		return domain.VideoPlatformYouTube, true
	case vimeoPattern.MatchString(rawURL):
		return domain.VideoPlatformVimeo, true
	case dailymotionPattern.MatchString(rawURL):
		return domain.VideoPlatformDailymotion, true
	default:
		return "", false
	}
}

// OEmbedResolver resolves video urls through the oEmbed endpoints of each platform
type OEmbedResolver struct {
	client    *http.Client
	endpoints map[domain.VideoPlatform]string
	logger    *slog.Logger
}

// NewOEmbedResolver returns an OEmbedResolver
func NewOEmbedResolver(cfg config.VideoConfig, logger *slog.Logger) *OEmbedResolver {
	return &OEmbedResolver{
		client: &http.Client{Timeout: cfg.Timeout},
		endpoints: map[domain.VideoPlatform]string{
			domain.VideoPlatformYouTube:     cfg.YouTubeOEmbedURL,
			domain.VideoPlatformVimeo:       cfg.VimeoOEmbedURL,
			domain.VideoPlatformDailymotion: cfg.DailymotionOEmbedURL,
		},
		logger: logger,
	}
}

type oembedResponse struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     int    `json:"duration"`
}

// Resolve fetches the title, duration and thumbnail of a video
func (r *OEmbedResolver) Resolve(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	platform, ok := Platform(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnrecognizedVideoURL, rawURL)
	}

	query := url.Values{}
	query.Set("url", rawURL)
	query.Set("format", "json")
	endpoint := r.endpoints[platform] + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach %s: %w", platform, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%s video is private or not embeddable", platform)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s video not found", platform)
	default:
		return nil, fmt.Errorf("%s returned unexpected status code: %d", platform, resp.StatusCode)
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("could not decode %s response: %w", platform, err)
	}
	if body.Title == "" {
		return nil, fmt.Errorf("%s response has no title", platform)
	}

	r.logger.Info("video resolved", slog.String("platform", string(platform)), slog.String("title", body.Title))

	return &domain.VideoMetadata{
		Platform:        platform,
		Title:           body.Title,
		DurationSeconds: body.Duration,
		ThumbnailURL:    body.ThumbnailURL,
	}, nil
}
