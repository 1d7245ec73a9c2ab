package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlogPost is an editorial article shown in the storefront blog.
type BlogPost struct {
	ID            uuid.UUID
	Slug          string
	Title         string
	Excerpt       string
	Content       string
	Category      string
	ReadTime      string
	PublishedDate time.Time
	IsPublished   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ContentBlock is one rendered unit of a blog post body.
// Text is set for headings and paragraphs, Items for lists.
type ContentBlock struct {
	Kind  BlockKind
	Text  string
	Items []string
}

// ParseContent splits post content into blocks using the blog markup convention:
// "## " and "### " start headings, "- " starts a list item, blank lines
// separate paragraphs. Consecutive list items form one list and consecutive
// text lines are joined into one paragraph.
func ParseContent(content string) []ContentBlock {
	var (
		blocks []ContentBlock
		para   []string
		items  []string
	)

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, ContentBlock{Kind: BlockParagraph, Text: strings.Join(para, " ")})
			para = nil
		}
	}
	flushList := func() {
		if len(items) > 0 {
			blocks = append(blocks, ContentBlock{Kind: BlockList, Items: items})
			items = nil
		}
	}

	for _, raw := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			flushPara()
			flushList()
		case strings.HasPrefix(line, "### "):
			flushPara()
			flushList()
			blocks = append(blocks, ContentBlock{Kind: BlockHeading3, Text: strings.TrimSpace(line[4:])})
		case strings.HasPrefix(line, "## "):
			flushPara()
			flushList()
			blocks = append(blocks, ContentBlock{Kind: BlockHeading2, Text: strings.TrimSpace(line[3:])})
		case strings.HasPrefix(line, "- "):
			flushPara()
			items = append(items, strings.TrimSpace(line[2:]))
		default:
			flushList()
			para = append(para, line)
		}
	}
	flushPara()
	flushList()

	return blocks
}
