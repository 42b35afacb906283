package text

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Line is one laid-out line of a paragraph.
type Line struct {
	Text  string    // Words of the line, each followed by a space except the last word of the text
	Start int       // Byte offset of the line's first word in the laid-out string
	Pos   core.Vec2 // Top-left corner of the line
}

// Page is the result of laying out text in a rectangle.
// When More is set, Resume is the byte offset of the first word that did not
// fit; laying out s[Resume:] continues where this page stopped.
type Page struct {
	Lines  []Line
	Resume int
	More   bool
}

type word struct {
	text  string
	start int
}

// splitWords splits s on Unicode whitespace, keeping each word's byte offset.
func splitWords(s string) []word {
	var words []word
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, word{text: s[start:i], start: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, word{text: s[start:], start: start})
	}
	return words
}

// LayoutInRect greedily wraps the words of s into lines no wider than r.W,
// stacking them downward from r's top-left corner. A line is only opened if
// its bottom edge stays at or above bottom. The first line is always placed,
// so paging through a long text always makes progress. A word wider than
// r.W gets a line of its own.
func LayoutInRect(s string, r core.Rect, f *Font, bottom float32) Page {
	var page Page

	words := splitWords(s)
	if len(words) == 0 {
		return page
	}

	lineHeight := f.LineHeight()
	space := f.Advance(' ')

	var (
		buf   strings.Builder
		width float32
		start = -1
		y     = r.Y
	)

	for _, w := range words {
		ww := f.Measure(w.text)

		if start >= 0 && width+ww > r.W {
			page.Lines = append(page.Lines, Line{Text: buf.String(), Start: start, Pos: core.V(r.X, y)})
			y += lineHeight
			buf.Reset()
			width = 0
			start = -1
		}

		if start < 0 {
			if len(page.Lines) > 0 && y+lineHeight > bottom {
				page.Resume = w.start
				page.More = true
				return page
			}
			start = w.start
		}

		buf.WriteString(w.text)
		buf.WriteByte(' ')
		width += ww + space
	}

	last := strings.TrimSuffix(buf.String(), " ")
	page.Lines = append(page.Lines, Line{Text: last, Start: start, Pos: core.V(r.X, y)})
	return page
}

// DrawTextInRect lays out s inside r and draws the lines that fit. It returns
// the byte offset of the first word left over and whether any text remains.
// With allowOverflow the text may run past r down to the bottom of dst.
func DrawTextInRect(dst *core.Screen, s string, r core.Rect, f *Font, allowOverflow bool) (int, bool) {
	bottom := r.Bottom()
	if allowOverflow {
		bottom = float32(dst.Height())
	}

	page := LayoutInRect(s, r, f, bottom)
	for _, line := range page.Lines {
		DrawTextAtPos(dst, line.Text, line.Pos, f)
	}
	return page.Resume, page.More
}

// Paginate splits s into the successive pages produced by repeated layout
// in r. Offsets in the returned pages are relative to s.
func Paginate(s string, r core.Rect, f *Font) []Page {
	var pages []Page
	offset := 0
	for {
		page := LayoutInRect(s[offset:], r, f, r.Bottom())
		if len(page.Lines) == 0 {
			return pages
		}
		for i := range page.Lines {
			page.Lines[i].Start += offset
		}
		if page.More {
			page.Resume += offset
		}
		pages = append(pages, page)
		if !page.More {
			return pages
		}
		offset = page.Resume
	}
}
