package blockform

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

func fieldNames(fs []Field) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}
	return out
}

func TestFields(t *testing.T) {
	tests := []struct {
		kind models.BlockKind
		want []string
	}{
		{models.BlockText, []string{FieldContent}},
		{models.BlockQuote, []string{FieldContent, FieldCaption}},
		{models.BlockImage, []string{FieldURL, FieldCaption}},
		{models.BlockVideo, []string{FieldURL, FieldCaption}},
		{models.BlockLink, []string{FieldURL, FieldContent}},
		{models.BlockSpacer, []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got := fieldNames(Fields(tt.kind))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Fields(%s) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestFields_Required(t *testing.T) {
	for _, f := range Fields(models.BlockQuote) {
		if f.Required {
			t.Errorf("quote field %s should not be required", f.Name)
		}
	}
	text := Fields(models.BlockText)
	if !text[0].Required || !text[0].Multiline {
		t.Errorf("text content field = %+v, want required multiline", text[0])
	}
}

func TestApply_OnlyVisibleFields(t *testing.T) {
	vals := Values{Content: "body", URL: "https://example.com/a.png", Caption: "cap"}

	img := Apply(models.ImageBlock{ID: "i", Order: 2}, vals).(models.ImageBlock)
	if img.URL != vals.URL || img.Caption != "cap" || img.ID != "i" || img.Order != 2 {
		t.Errorf("Apply(image) = %+v", img)
	}
	if rec := models.ToRecord(img); rec.Content != "" {
		t.Errorf("image record content = %q, want empty", rec.Content)
	}

	text := Apply(models.TextBlock{ID: "t"}, vals).(models.TextBlock)
	if text.Content != "body" {
		t.Errorf("Apply(text).Content = %q", text.Content)
	}
	if rec := models.ToRecord(text); rec.URL != "" || rec.Caption != "" {
		t.Errorf("text record carried url/caption: %+v", rec)
	}

	link := Apply(models.LinkBlock{ID: "l"}, vals).(models.LinkBlock)
	if link.Text != "body" || link.URL != vals.URL {
		t.Errorf("Apply(link) = %+v", link)
	}

	spacer := Apply(models.SpacerBlock{ID: "s", Order: 1}, vals)
	if spacer != (models.SpacerBlock{ID: "s", Order: 1}) {
		t.Errorf("Apply(spacer) = %+v", spacer)
	}
}

func TestApply_TrimsURL(t *testing.T) {
	for _, b := range []models.Block{models.ImageBlock{ID: "i"}, models.VideoBlock{ID: "v"}, models.LinkBlock{ID: "l"}} {
		t.Run(string(b.Kind()), func(t *testing.T) {
			blank := Apply(b, Values{URL: "   \t "})
			if !errors.Is(Validate(blank), ErrURLRequired) {
				t.Errorf("whitespace-only url accepted: %+v", blank)
			}
			padded := Apply(b, Values{URL: "  https://example.com/a  "})
			if got := ValuesOf(padded).URL; got != "https://example.com/a" {
				t.Errorf("URL = %q, want trimmed", got)
			}
		})
	}
}

func TestValuesOf_RoundTrip(t *testing.T) {
	b := models.QuoteBlock{ID: "q", Content: "Bilim - nur", Caption: "proverb"}
	got := Apply(models.QuoteBlock{ID: "q"}, ValuesOf(b))
	if got != b {
		t.Errorf("Apply(ValuesOf(b)) = %+v, want %+v", got, b)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		block models.Block
		want  error
	}{
		{"text empty", models.TextBlock{}, ErrContentRequired},
		{"text ok", models.TextBlock{Content: "Salam"}, nil},
		{"quote empty ok", models.QuoteBlock{}, nil},
		{"image no url", models.ImageBlock{Caption: "x"}, ErrURLRequired},
		{"image ok", models.ImageBlock{URL: "https://example.com/a.png"}, nil},
		{"video no url", models.VideoBlock{}, ErrURLRequired},
		{"video ok", models.VideoBlock{URL: "https://youtu.be/dQw4w9WgXcQ"}, nil},
		{"link no url", models.LinkBlock{Text: "docs"}, ErrURLRequired},
		{"link ok", models.LinkBlock{URL: "https://example.com"}, nil},
		{"spacer", models.SpacerBlock{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.block)
			if !errors.Is(err, tt.want) || (tt.want == nil && err != nil) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMessageKey(t *testing.T) {
	if MessageKey(ErrContentRequired) != "block.contentRequired" {
		t.Error("wrong key for ErrContentRequired")
	}
	if MessageKey(ErrURLRequired) != "block.urlRequired" {
		t.Error("wrong key for ErrURLRequired")
	}
	if MessageKey(errors.New("other")) != "" {
		t.Error("unexpected key for unrelated error")
	}
}

func TestValuesFromRequest(t *testing.T) {
	form := url.Values{}
	form.Set("content", "  keep spaces  ")
	form.Set("url", "  https://example.com  ")
	form.Set("caption", "c")

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got := ValuesFromRequest(r)
	if got.Content != "  keep spaces  " {
		t.Errorf("Content = %q", got.Content)
	}
	if got.URL != "https://example.com" {
		t.Errorf("URL = %q, want trimmed", got.URL)
	}
	if got.Caption != "c" {
		t.Errorf("Caption = %q", got.Caption)
	}
}
