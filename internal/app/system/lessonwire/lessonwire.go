// Package lessonwire converts a lesson's block list to and from the JSON
// string stored in the backend's content field.
package lessonwire

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blocklist"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

// Marshal encodes blocks exactly as they are.
func Marshal(blocks []models.Block) (string, error) {
	recs := make([]models.BlockRecord, len(blocks))
	for i, b := range blocks {
		recs[i] = models.ToRecord(b)
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return "", fmt.Errorf("encode blocks: %w", err)
	}
	return string(data), nil
}

// Unmarshal strictly decodes a content string produced by Marshal.
func Unmarshal(content string) ([]models.Block, error) {
	var recs []models.BlockRecord
	if err := json.Unmarshal([]byte(content), &recs); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}
	blocks := make([]models.Block, 0, len(recs))
	for i, rec := range recs {
		b, err := rec.Block()
		if err != nil {
			return nil, fmt.Errorf("decode block %d: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// EncodeContent renumbers blocks, replaces empty or whitespace-only content
// with models.ContentPlaceholder, and encodes the result.
func EncodeContent(blocks []models.Block) (string, error) {
	blocks = blocklist.Renumber(blocks)
	recs := make([]models.BlockRecord, len(blocks))
	for i, b := range blocks {
		rec := models.ToRecord(b)
		if strings.TrimSpace(rec.Content) == "" {
			rec.Content = models.ContentPlaceholder
		}
		recs[i] = rec
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return "", fmt.Errorf("encode content: %w", err)
	}
	return string(data), nil
}

// looseRecord accepts whatever historical lessons stored for a block.
type looseRecord struct {
	ID       any    `json:"id"`
	Type     string `json:"type"`
	Content  any    `json:"content"`
	Order    any    `json:"order"`
	Caption  any    `json:"caption"`
	URL      any    `json:"url"`
	Language any    `json:"language"`
}

// DecodeContent parses a stored content field and never fails.
//
// Content that is not a JSON array gives an empty list. Elements that are
// not objects or have an unknown type are skipped. A missing or repeated id
// gets a new one; a missing or zero order falls back to the element's index. The result
// is sorted by order and renumbered.
func DecodeContent(content string) []models.Block {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return []models.Block{}
	}

	type positioned struct {
		block models.Block
		order int
	}
	items := make([]positioned, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, elem := range raw {
		var lr looseRecord
		if err := json.Unmarshal(elem, &lr); err != nil {
			continue
		}
		kind, err := models.ParseBlockKind(lr.Type)
		if err != nil {
			continue
		}

		rec := models.BlockRecord{
			ID:       stringOf(lr.ID),
			Type:     kind,
			Content:  stringOf(lr.Content),
			Caption:  stringOf(lr.Caption),
			URL:      stringOf(lr.URL),
			Language: stringOf(lr.Language),
		}
		if rec.ID == "" || seen[rec.ID] {
			rec.ID = models.NewBlockID()
		}
		seen[rec.ID] = true
		order, ok := intOf(lr.Order)
		if !ok || order == 0 {
			order = i
		}

		b, err := rec.Block()
		if err != nil {
			continue
		}
		items = append(items, positioned{block: b, order: order})
	}

	sort.SliceStable(items, func(a, b int) bool { return items[a].order < items[b].order })

	blocks := make([]models.Block, len(items))
	for i, it := range items {
		blocks[i] = it.block
	}
	return blocklist.Renumber(blocks)
}

func stringOf(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func intOf(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n, true
		}
	}
	return 0, false
}
