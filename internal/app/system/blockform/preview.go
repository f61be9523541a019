package blockform

import (
	"html/template"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/htmlsanitize"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

// Preview is a block prepared for the preview template.
type Preview struct {
	ID    string
	Kind  models.BlockKind
	Order int

	HTML    template.HTML // text and quote bodies, sanitized
	Caption string

	ImageURL string

	VideoURL      string
	VideoEmbedURL string // empty when no YouTube id could be extracted

	LinkURL  string
	LinkText string

	Spacer bool
}

// NewPreview prepares b for rendering.
func NewPreview(b models.Block) Preview {
	p := Preview{ID: b.BlockID(), Kind: b.Kind(), Order: b.Position()}
	switch v := b.(type) {
	case models.TextBlock:
		p.HTML = htmlsanitize.PrepareForDisplay(v.Content)
	case models.QuoteBlock:
		p.HTML = htmlsanitize.PrepareForDisplay(v.Content)
		p.Caption = v.Caption
	case models.ImageBlock:
		p.ImageURL = v.URL
		p.Caption = v.Caption
	case models.VideoBlock:
		p.VideoURL = v.URL
		if id, ok := YouTubeID(v.URL); ok {
			p.VideoEmbedURL = EmbedURL(id)
		}
		p.Caption = v.Caption
	case models.LinkBlock:
		p.LinkURL = v.URL
		p.LinkText = v.Text
		if p.LinkText == "" {
			p.LinkText = v.URL
		}
	case models.SpacerBlock:
		p.Spacer = true
	}
	return p
}

// Previews prepares every block in order.
func Previews(blocks []models.Block) []Preview {
	out := make([]Preview, len(blocks))
	for i, b := range blocks {
		out[i] = NewPreview(b)
	}
	return out
}
