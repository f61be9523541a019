// internal/domain/models/block.go
package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BlockKind identifies the variant of a lesson content block.
// The kind is fixed when the block is created.
type BlockKind string

// Block kinds, in the order the add-block dialog lists them.
const (
	BlockText   BlockKind = "text"
	BlockImage  BlockKind = "image"
	BlockVideo  BlockKind = "video"
	BlockLink   BlockKind = "link"
	BlockQuote  BlockKind = "quote"
	BlockSpacer BlockKind = "spacer"
)

// ErrUnknownBlockKind is returned when a kind string is not one of the known block kinds.
var ErrUnknownBlockKind = errors.New("unknown block kind")

// AllBlockKinds returns every block kind.
func AllBlockKinds() []BlockKind {
	return []BlockKind{
		BlockText,
		BlockImage,
		BlockVideo,
		BlockLink,
		BlockQuote,
		BlockSpacer,
	}
}

// IsValidBlockKind checks if s names a block kind.
func IsValidBlockKind(s string) bool {
	for _, k := range AllBlockKinds() {
		if string(k) == s {
			return true
		}
	}
	return false
}

// ParseBlockKind normalizes s and returns the matching kind.
func ParseBlockKind(s string) (BlockKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !IsValidBlockKind(s) {
		return "", fmt.Errorf("%w: %q", ErrUnknownBlockKind, s)
	}
	return BlockKind(s), nil
}

// Block is one typed unit of lesson content.
//
// The set of implementations is closed: TextBlock, QuoteBlock, ImageBlock,
// VideoBlock, LinkBlock and SpacerBlock. Use a type switch to reach the
// kind-specific fields.
type Block interface {
	BlockID() string
	Kind() BlockKind
	Position() int
	// WithPosition returns a copy of the block with its order set to n.
	WithPosition(n int) Block

	isBlock()
}

// TextBlock is a paragraph of body text.
type TextBlock struct {
	ID       string
	Order    int
	Content  string
	Language string
}

// QuoteBlock is a quotation with an optional attribution caption.
type QuoteBlock struct {
	ID       string
	Order    int
	Content  string
	Caption  string
	Language string
}

// ImageBlock shows an external image.
type ImageBlock struct {
	ID      string
	Order   int
	URL     string
	Caption string
}

// VideoBlock embeds a video, normally a YouTube link.
type VideoBlock struct {
	ID      string
	Order   int
	URL     string
	Caption string
}

// LinkBlock is a hyperlink. Text is the visible label.
type LinkBlock struct {
	ID    string
	Order int
	URL   string
	Text  string
}

// SpacerBlock adds vertical space between blocks and has no content.
type SpacerBlock struct {
	ID    string
	Order int
}

func (b TextBlock) BlockID() string   { return b.ID }
func (b QuoteBlock) BlockID() string  { return b.ID }
func (b ImageBlock) BlockID() string  { return b.ID }
func (b VideoBlock) BlockID() string  { return b.ID }
func (b LinkBlock) BlockID() string   { return b.ID }
func (b SpacerBlock) BlockID() string { return b.ID }

func (TextBlock) Kind() BlockKind   { return BlockText }
func (QuoteBlock) Kind() BlockKind  { return BlockQuote }
func (ImageBlock) Kind() BlockKind  { return BlockImage }
func (VideoBlock) Kind() BlockKind  { return BlockVideo }
func (LinkBlock) Kind() BlockKind   { return BlockLink }
func (SpacerBlock) Kind() BlockKind { return BlockSpacer }

func (b TextBlock) Position() int   { return b.Order }
func (b QuoteBlock) Position() int  { return b.Order }
func (b ImageBlock) Position() int  { return b.Order }
func (b VideoBlock) Position() int  { return b.Order }
func (b LinkBlock) Position() int   { return b.Order }
func (b SpacerBlock) Position() int { return b.Order }

func (b TextBlock) WithPosition(n int) Block   { b.Order = n; return b }
func (b QuoteBlock) WithPosition(n int) Block  { b.Order = n; return b }
func (b ImageBlock) WithPosition(n int) Block  { b.Order = n; return b }
func (b VideoBlock) WithPosition(n int) Block  { b.Order = n; return b }
func (b LinkBlock) WithPosition(n int) Block   { b.Order = n; return b }
func (b SpacerBlock) WithPosition(n int) Block { b.Order = n; return b }

func (TextBlock) isBlock()   {}
func (QuoteBlock) isBlock()  {}
func (ImageBlock) isBlock()  {}
func (VideoBlock) isBlock()  {}
func (LinkBlock) isBlock()   {}
func (SpacerBlock) isBlock() {}

// NewBlockID returns a fresh opaque block identifier.
func NewBlockID() string {
	return uuid.NewString()
}

// NewBlock returns an empty block of the given kind positioned after count
// existing blocks. Nothing is validated here; the block editor and the save
// path check required fields.
func NewBlock(kind BlockKind, count int) (Block, error) {
	id := NewBlockID()
	switch kind {
	case BlockText:
		return TextBlock{ID: id, Order: count}, nil
	case BlockQuote:
		return QuoteBlock{ID: id, Order: count}, nil
	case BlockImage:
		return ImageBlock{ID: id, Order: count}, nil
	case BlockVideo:
		return VideoBlock{ID: id, Order: count}, nil
	case BlockLink:
		return LinkBlock{ID: id, Order: count}, nil
	case BlockSpacer:
		return SpacerBlock{ID: id, Order: count}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockKind, kind)
	}
}

// BlockRecord is the flat JSON shape a block has inside a lesson's content field.
type BlockRecord struct {
	ID       string    `json:"id"`
	Type     BlockKind `json:"type"`
	Content  string    `json:"content"`
	Order    int       `json:"order"`
	Caption  string    `json:"caption,omitempty"`
	URL      string    `json:"url,omitempty"`
	Language string    `json:"language,omitempty"`
}

// ToRecord flattens a block into its wire shape.
func ToRecord(b Block) BlockRecord {
	switch v := b.(type) {
	case TextBlock:
		return BlockRecord{ID: v.ID, Type: BlockText, Content: v.Content, Order: v.Order, Language: v.Language}
	case QuoteBlock:
		return BlockRecord{ID: v.ID, Type: BlockQuote, Content: v.Content, Order: v.Order, Caption: v.Caption, Language: v.Language}
	case ImageBlock:
		return BlockRecord{ID: v.ID, Type: BlockImage, Order: v.Order, URL: v.URL, Caption: v.Caption}
	case VideoBlock:
		return BlockRecord{ID: v.ID, Type: BlockVideo, Order: v.Order, URL: v.URL, Caption: v.Caption}
	case LinkBlock:
		return BlockRecord{ID: v.ID, Type: BlockLink, Content: v.Text, Order: v.Order, URL: v.URL}
	case SpacerBlock:
		return BlockRecord{ID: v.ID, Type: BlockSpacer, Order: v.Order}
	}
	return BlockRecord{}
}

// Block converts the record into its typed block. Fields that the kind does
// not use are dropped.
func (r BlockRecord) Block() (Block, error) {
	switch r.Type {
	case BlockText:
		return TextBlock{ID: r.ID, Order: r.Order, Content: r.Content, Language: r.Language}, nil
	case BlockQuote:
		return QuoteBlock{ID: r.ID, Order: r.Order, Content: r.Content, Caption: r.Caption, Language: r.Language}, nil
	case BlockImage:
		return ImageBlock{ID: r.ID, Order: r.Order, URL: r.URL, Caption: r.Caption}, nil
	case BlockVideo:
		return VideoBlock{ID: r.ID, Order: r.Order, URL: r.URL, Caption: r.Caption}, nil
	case BlockLink:
		return LinkBlock{ID: r.ID, Order: r.Order, URL: r.URL, Text: r.Content}, nil
	case BlockSpacer:
		return SpacerBlock{ID: r.ID, Order: r.Order}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockKind, r.Type)
	}
}
