package blockform

import "regexp"

var youtubePattern = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// YouTubeID extracts the 11-character video id from a YouTube link.
func YouTubeID(link string) (string, bool) {
	m := youtubePattern.FindStringSubmatch(link)
	if m == nil || len(m[2]) != 11 {
		return "", false
	}
	return m[2], true
}

// EmbedURL returns the iframe source for a YouTube video id.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + id
}
