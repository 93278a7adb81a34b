package main

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

var (
	boldTag   = regexp.MustCompile(`<b>(.*?)</b>`)
	italicTag = regexp.MustCompile(`<i>(.*?)</i>`)

	plainTags = strings.NewReplacer("<b>", "", "</b>", "", "<i>", "", "</i>", "")

	bold   = color.New(color.Bold).SprintFunc()
	italic = color.New(color.Italic).SprintFunc()
	alert  = color.New(color.FgRed, color.Bold).SprintFunc()
)

const rule = "----------------------------------------"

// renderLines turns report lines into terminal text. Plain output drops
// the markup; otherwise it becomes ANSI styling.
func renderLines(lines []string, plain bool) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "<hr>" {
			out = append(out, rule)
			continue
		}
		if plain {
			out = append(out, plainTags.Replace(line))
			continue
		}
		out = append(out, styleLine(line))
	}
	return strings.Join(out, "\n")
}

func styleLine(line string) string {
	style := bold
	if strings.Contains(line, "RATE NOT FOUND") || strings.HasPrefix(line, "<b>Error:</b>") ||
		strings.HasPrefix(line, "<b>Warning:</b>") || strings.HasPrefix(line, "<b>An unexpected") {
		style = alert
	}
	line = boldTag.ReplaceAllStringFunc(line, func(m string) string {
		return style(boldTag.FindStringSubmatch(m)[1])
	})
	return italicTag.ReplaceAllStringFunc(line, func(m string) string {
		return italic(italicTag.FindStringSubmatch(m)[1])
	})
}
