package notes

import (
	"fmt"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"daytrace/internal/frontmatter"
)

// DayNotePath returns where a new note for date goes: {folder}/{date}.md
// when a folder is configured, {date}.md otherwise.
func DayNotePath(folder, date string) string {
	fileName := date + ".md"
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return fileName
	}
	return path.Join(folder, fileName)
}

// DayNoteContent renders the template of a new day note: a frontmatter
// block with the date, a top-level heading repeating it and an empty body.
func DayNoteContent(date string) []byte {
	return []byte(fmt.Sprintf("---\ndate: %s\n---\n\n# %s\n\n", date, date))
}

// Summary holds the display text of a note
type Summary struct {
	Title   string
	Preview string
}

// Summarize extracts the first level-1 heading and a short preview of the
// first paragraphs of a note body. The frontmatter block is skipped.
func Summarize(content []byte) Summary {
	_, body, _ := frontmatter.Split(content)
	return Summary{
		Title:   extractTitle(body),
		Preview: extractPreview(body),
	}
}

func extractTitle(markdown []byte) string {
	reader := text.NewReader(markdown)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			heading := n.(*ast.Heading)
			if heading.Level == 1 {
				title = string(n.Text(markdown))
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})

	return title
}

func extractPreview(markdown []byte) string {
	reader := text.NewReader(markdown)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var preview strings.Builder
	lineCount := 0
	maxLines := 2

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if n.Kind() == ast.KindHeading {
			return ast.WalkSkipChildren, nil
		}

		if n.Kind() == ast.KindParagraph {
			if lineCount >= maxLines {
				return ast.WalkStop, nil
			}

			para := string(n.Text(markdown))
			if para != "" {
				if preview.Len() > 0 {
					preview.WriteString(" ")
				}
				preview.WriteString(para)
				lineCount++
			}

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	previewText := []rune(preview.String())
	if len(previewText) > 60 {
		return string(previewText[:57]) + "..."
	}

	return string(previewText)
}
