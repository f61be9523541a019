// Package blocklist maintains the ordered block sequence of a lesson being edited.
//
// Every structural change (append, remove, reorder) ends with Renumber, so
// block orders are always exactly 0..N-1 by position. Update replaces a block
// in place and keeps its slot's order.
package blocklist

import (
	"errors"
	"fmt"

	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

var (
	// ErrBlockNotFound is returned when no block has the given id.
	ErrBlockNotFound = errors.New("block not found")
	// ErrKindChanged is returned when an update tries to change a block's kind.
	ErrKindChanged = errors.New("block kind cannot change")
	// ErrIndexOutOfRange is returned by Reorder for an invalid index.
	ErrIndexOutOfRange = errors.New("block index out of range")
)

// Renumber returns a copy of blocks with each order set to its position.
func Renumber(blocks []models.Block) []models.Block {
	out := make([]models.Block, len(blocks))
	for i, b := range blocks {
		out[i] = b.WithPosition(i)
	}
	return out
}

// List is an ordered block sequence. It is not safe for concurrent use.
type List struct {
	blocks []models.Block
}

// New returns a list holding blocks in their given sequence, renumbered.
func New(blocks []models.Block) *List {
	return &List{blocks: Renumber(blocks)}
}

// Len returns the number of blocks.
func (l *List) Len() int {
	return len(l.blocks)
}

// Blocks returns a copy of the current sequence.
func (l *List) Blocks() []models.Block {
	out := make([]models.Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Index returns the position of the block with id, or -1.
func (l *List) Index(id string) int {
	for i, b := range l.blocks {
		if b.BlockID() == id {
			return i
		}
	}
	return -1
}

// Find returns the block with id.
func (l *List) Find(id string) (models.Block, bool) {
	i := l.Index(id)
	if i < 0 {
		return nil, false
	}
	return l.blocks[i], true
}

// Append adds an empty block of kind at the end and returns it.
func (l *List) Append(kind models.BlockKind) (models.Block, error) {
	b, err := models.NewBlock(kind, len(l.blocks))
	if err != nil {
		return nil, err
	}
	l.blocks = Renumber(append(l.blocks, b))
	return l.blocks[len(l.blocks)-1], nil
}

// Remove deletes the block with id and renumbers the rest.
func (l *List) Remove(id string) error {
	i := l.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	next := make([]models.Block, 0, len(l.blocks)-1)
	next = append(next, l.blocks[:i]...)
	next = append(next, l.blocks[i+1:]...)
	l.blocks = Renumber(next)
	return nil
}

// Update replaces the block that shares b's id. The replacement takes the
// order of the slot it fills.
func (l *List) Update(b models.Block) error {
	i := l.Index(b.BlockID())
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, b.BlockID())
	}
	if l.blocks[i].Kind() != b.Kind() {
		return fmt.Errorf("%w: %s to %s", ErrKindChanged, l.blocks[i].Kind(), b.Kind())
	}
	l.blocks[i] = b.WithPosition(l.blocks[i].Position())
	return nil
}

// Reorder moves the block at src to dst, shifting the blocks between them,
// and renumbers.
func (l *List) Reorder(src, dst int) error {
	n := len(l.blocks)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return fmt.Errorf("%w: move %d to %d in %d blocks", ErrIndexOutOfRange, src, dst, n)
	}
	if src == dst {
		return nil
	}
	moved := l.blocks[src]
	next := make([]models.Block, 0, n)
	next = append(next, l.blocks[:src]...)
	next = append(next, l.blocks[src+1:]...)
	next = append(next[:dst], append([]models.Block{moved}, next[dst:]...)...)
	l.blocks = Renumber(next)
	return nil
}

// Move is Reorder addressed by block id.
func (l *List) Move(id string, dst int) error {
	i := l.Index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	return l.Reorder(i, dst)
}
