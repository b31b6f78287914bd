package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sevenuz/cake/models"
	"github.com/sevenuz/cake/types"
	yaml "gopkg.in/yaml.v3"
)

// Format identifies a persistence format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatSQLite   Format = "sqlite"
)

// BlockDelimiter separates item blocks in the Markdown form.
const BlockDelimiter = "\n\n---\n\n"

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".md":
		return FormatMarkdown, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".db", ".sqlite":
		return FormatSQLite, nil
	}
	return "", types.NewParseError(path, "unsupported file extension, use .json, .md, .yaml, .yml, .toml, .db or .sqlite", nil)
}

// Encode serializes the store in one of the file based formats.
func (s *Store) Encode(format Format) ([]byte, error) {
	doc := s.document()
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		buf := new(bytes.Buffer)
		if err := toml.NewEncoder(buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to marshal TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatMarkdown:
		items := make([]*models.Item, 0, len(s.items))
		for _, id := range s.IDs() {
			items = append(items, s.items[id])
		}
		return []byte(EncodeMarkdown(items, nil)), nil
	}
	return nil, fmt.Errorf("unsupported data format for encoding: %s", format)
}

// Decode builds a store from data in one of the file based formats. Blank
// input yields an empty store.
func Decode(format Format, data []byte) (*Store, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}

	var doc Document
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatMarkdown:
		items, mdErr := DecodeMarkdown(string(data))
		if mdErr != nil {
			return nil, mdErr
		}
		doc.Items = make(map[string]*models.Item, len(items))
		for _, item := range items {
			if _, dup := doc.Items[item.ID]; dup {
				return nil, types.NewParseError(item.ID, "duplicate item block", nil)
			}
			doc.Items[item.ID] = item
		}
	default:
		return nil, fmt.Errorf("unsupported data format for decoding: %s", format)
	}
	if err != nil {
		return nil, types.NewParseError(string(format), "malformed document", err)
	}
	for key, item := range doc.Items {
		if item != nil && item.ID == "" {
			item.ID = key
		}
	}
	return fromDocument(&doc), nil
}

// EncodeMarkdown renders items as Markdown blocks with dates in loc (nil
// means local time).
func EncodeMarkdown(items []*models.Item, loc *time.Location) string {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, item.MarshalBlock(loc))
	}
	return strings.Join(blocks, BlockDelimiter)
}

// DecodeMarkdown parses a Markdown body into items in file order.
func DecodeMarkdown(body string) ([]*models.Item, error) {
	if strings.TrimSpace(body) == "" {
		return []*models.Item{}, nil
	}
	blocks := splitBlocks(body)
	items := make([]*models.Item, 0, len(blocks))
	for n, block := range blocks {
		item, err := models.ParseBlock(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", n+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// splitBlocks cuts body at every BlockDelimiter that is directly followed by
// an id line, so content may contain horizontal rules.
func splitBlocks(body string) []string {
	var blocks []string
	start, from := 0, 0
	for {
		i := strings.Index(body[from:], BlockDelimiter)
		if i < 0 {
			break
		}
		at := from + i
		next := at + len(BlockDelimiter)
		if strings.HasPrefix(body[next:], models.PrefixID) {
			blocks = append(blocks, body[start:at])
			start = next
			from = next
			continue
		}
		from = at + 1
	}
	return append(blocks, body[start:])
}
