// models/config.go
package models

// SpecialCountdown toggles the full-screen takeover hero on the public
// site in place of the normal rotation.
type SpecialCountdown struct {
	Enabled           bool   `json:"enabled"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	TargetDate        string `json:"targetDate"`
	Logo              string `json:"logo,omitempty"`
	BackgroundImage   string `json:"backgroundImage,omitempty"`
	YoutubeVideoID    string `json:"youtubeVideoId,omitempty"`
	YoutubeRevealDate string `json:"youtubeRevealDate,omitempty"`
}

// SiteConfig is a singleton document; an absent record means no special
// countdown is configured.
type SiteConfig struct {
	SpecialCountdown *SpecialCountdown `json:"specialCountdown,omitempty"`
}
