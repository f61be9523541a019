// Package blockform is the per-kind editing form for a single lesson block.
//
// Fields reports which inputs a kind shows, Apply copies submitted values onto
// a block, Validate decides whether the form may be committed, and Preview
// prepares a block for rendering.
package blockform

import (
	"errors"
	"net/http"
	"strings"

	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

var (
	// ErrContentRequired is returned for a text block with no content.
	ErrContentRequired = errors.New("content is required")
	// ErrURLRequired is returned for an image, video or link block with no url.
	ErrURLRequired = errors.New("url is required")
)

// Form field names.
const (
	FieldContent = "content"
	FieldURL     = "url"
	FieldCaption = "caption"
)

// Field describes one visible input of the block form.
type Field struct {
	Name      string
	LabelKey  string
	HelpKey   string
	Multiline bool
	Required  bool
}

// Fields returns the inputs shown for kind, in display order.
func Fields(kind models.BlockKind) []Field {
	switch kind {
	case models.BlockText:
		return []Field{
			{Name: FieldContent, LabelKey: "field.content", Multiline: true, Required: true},
		}
	case models.BlockQuote:
		return []Field{
			{Name: FieldContent, LabelKey: "field.content", Multiline: true},
			{Name: FieldCaption, LabelKey: "field.caption"},
		}
	case models.BlockImage:
		return []Field{
			{Name: FieldURL, LabelKey: "field.url", Required: true},
			{Name: FieldCaption, LabelKey: "field.caption"},
		}
	case models.BlockVideo:
		return []Field{
			{Name: FieldURL, LabelKey: "field.videoURL", HelpKey: "help.videoURL", Required: true},
			{Name: FieldCaption, LabelKey: "field.caption"},
		}
	case models.BlockLink:
		return []Field{
			{Name: FieldURL, LabelKey: "field.url", Required: true},
			{Name: FieldContent, LabelKey: "field.linkText"},
		}
	}
	return nil
}

// Values holds submitted form input. Inputs a kind does not show are ignored.
type Values struct {
	Content string `json:"content"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// Normalize trims the URL. Content and caption are kept as typed.
func (v Values) Normalize() Values {
	v.URL = strings.TrimSpace(v.URL)
	return v
}

// ValuesFromRequest reads the form fields from r.
func ValuesFromRequest(r *http.Request) Values {
	return Values{
		Content: r.FormValue(FieldContent),
		URL:     r.FormValue(FieldURL),
		Caption: r.FormValue(FieldCaption),
	}.Normalize()
}

// ValuesOf returns the current form values of b.
func ValuesOf(b models.Block) Values {
	switch v := b.(type) {
	case models.TextBlock:
		return Values{Content: v.Content}
	case models.QuoteBlock:
		return Values{Content: v.Content, Caption: v.Caption}
	case models.ImageBlock:
		return Values{URL: v.URL, Caption: v.Caption}
	case models.VideoBlock:
		return Values{URL: v.URL, Caption: v.Caption}
	case models.LinkBlock:
		return Values{URL: v.URL, Content: v.Text}
	}
	return Values{}
}

// Apply returns b with the fields its kind shows replaced by vals.
// Identity, kind and order are kept.
func Apply(b models.Block, vals Values) models.Block {
	vals = vals.Normalize()
	switch v := b.(type) {
	case models.TextBlock:
		v.Content = vals.Content
		return v
	case models.QuoteBlock:
		v.Content = vals.Content
		v.Caption = vals.Caption
		return v
	case models.ImageBlock:
		v.URL = vals.URL
		v.Caption = vals.Caption
		return v
	case models.VideoBlock:
		v.URL = vals.URL
		v.Caption = vals.Caption
		return v
	case models.LinkBlock:
		v.URL = vals.URL
		v.Text = vals.Content
		return v
	}
	return b
}

// Validate reports whether b may be committed from the form.
func Validate(b models.Block) error {
	switch v := b.(type) {
	case models.TextBlock:
		if v.Content == "" {
			return ErrContentRequired
		}
	case models.ImageBlock:
		if v.URL == "" {
			return ErrURLRequired
		}
	case models.VideoBlock:
		if v.URL == "" {
			return ErrURLRequired
		}
	case models.LinkBlock:
		if v.URL == "" {
			return ErrURLRequired
		}
	}
	return nil
}

// MessageKey maps a Validate error to its locale key.
func MessageKey(err error) string {
	switch {
	case errors.Is(err, ErrContentRequired):
		return "block.contentRequired"
	case errors.Is(err, ErrURLRequired):
		return "block.urlRequired"
	}
	return ""
}
