package domain

import (
	"strings"
)

// MarkdownFence is the fence marker code blocks are converted to
const MarkdownFence = "```"

var fenceReplacer = strings.NewReplacer("{{{", MarkdownFence, "}}}", MarkdownFence)

// ConvertToMarkdown rewrites wiki headings and code block delimiters as
// Markdown. Everything else, line endings included, is kept as is.
func ConvertToMarkdown(content string) string {
	lines := strings.SplitAfter(content, "\n")
	var out strings.Builder
	out.Grow(len(content))
	for _, line := range lines {
		body, eol := splitLineEnding(line)
		out.WriteString(ConvertLine(body))
		out.WriteString(eol)
	}
	return out.String()
}

// ConvertLine converts a single line without its line ending
func ConvertLine(line string) string {
	if level, title, ok := ParseHeading(line); ok {
		return strings.Repeat("#", level) + " " + title
	}
	return fenceReplacer.Replace(line)
}

// ParseHeading recognizes "= Title =" style headings.
// The number of '=' must match on both sides and is returned as the level.
func ParseHeading(line string) (level int, title string, ok bool) {
	trimmed := strings.Trim(line, " \t")
	for level < len(trimmed) && trimmed[level] == '=' {
		level++
	}
	if level == 0 {
		return 0, "", false
	}

	marks := strings.Repeat("=", level)
	open := marks + " "
	closing := " " + marks
	if len(trimmed) < len(open)+len(closing) {
		return 0, "", false
	}
	if !strings.HasPrefix(trimmed, open) || !strings.HasSuffix(trimmed, closing) {
		return 0, "", false
	}
	return level, trimmed[len(open) : len(trimmed)-len(closing)], true
}

func splitLineEnding(line string) (body, eol string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}

// MarkdownFileName returns fileName with its extension replaced by extension
func MarkdownFileName(fileName, extension string) string {
	return PageName(fileName) + "." + strings.TrimPrefix(extension, ".")
}
