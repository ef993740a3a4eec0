package deck

import (
	"strconv"
	"strings"
)

// Meta is the optional frontmatter of a slide.
type Meta struct {
	Title string
	// Width is the card's natural width in cells, 0 for the deck default.
	Width int
	Tags  []string
}

func parseFrontmatterAndBody(content string) (Meta, string) {
	const delim = "---"
	trimmed := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(trimmed, delim+"\n") && !strings.HasPrefix(trimmed, delim+"\r\n") {
		return Meta{}, content
	}

	lines := strings.Split(trimmed, "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delim {
			end = i
			break
		}
	}
	if end <= 0 {
		return Meta{}, content
	}

	meta := parseSimpleFrontmatter(lines[1:end])
	body := strings.Join(lines[end+1:], "\n")
	return meta, body
}

func parseSimpleFrontmatter(lines []string) Meta {
	meta := Meta{}
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		i++
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "title":
			meta.Title = trimQuoted(value)
		case "width":
			if n, err := strconv.Atoi(trimQuoted(value)); err == nil && n > 0 {
				meta.Width = n
			}
		case "tags":
			if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
				value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
			}
			if value != "" {
				meta.Tags = normalizeTagList(strings.Split(value, ","))
				continue
			}
			var bullets []string
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if !strings.HasPrefix(next, "-") {
					break
				}
				bullets = append(bullets, strings.TrimPrefix(next, "-"))
				i++
			}
			meta.Tags = normalizeTagList(bullets)
		}
	}
	return meta
}

// headingTitle returns the text of the first ATX heading in body.
func headingTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}
		title := strings.TrimSpace(strings.TrimLeft(line, "#"))
		if title != "" {
			return title
		}
	}
	return ""
}

func trimQuoted(value string) string {
	return strings.Trim(strings.TrimSpace(value), `"'`)
}

func normalizeTagList(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, value := range values {
		tag := strings.ToLower(trimQuoted(value))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
