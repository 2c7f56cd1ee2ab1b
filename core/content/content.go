package content

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// modalityPrefix marks content that already declares its source medium.
const modalityPrefix = "MODALITY:"

// Normalize prepares raw content for prompting. HTML input is converted to
// Markdown; everything else passes through verbatim. When modality is
// non-empty and the content does not already carry a modality prefix, one is
// attached so the model knows what kind of media the text came from.
//
// Conversion failures fall back to the raw content: a prompt over imperfect
// markup still beats no prompt at all.
func Normalize(raw, modality string) string {
	normalized := raw

	if looksLikeHTML(raw) {
		markdown, err := htmltomarkdown.ConvertString(raw)
		if err == nil && strings.TrimSpace(markdown) != "" {
			normalized = markdown
		}
	}

	if modality != "" && !strings.HasPrefix(strings.TrimSpace(normalized), modalityPrefix) {
		normalized = fmt.Sprintf("%s %s\n\n%s", modalityPrefix, modality, normalized)
	}

	return normalized
}

// looksLikeHTML applies a cheap structural sniff: a document or common
// block-level tag near the start of the text. Transcripts mentioning "<" in
// prose should not trip it.
func looksLikeHTML(s string) bool {
	head := strings.ToLower(strings.TrimSpace(s))
	if len(head) > 512 {
		head = head[:512]
	}
	for _, marker := range []string{"<!doctype html", "<html", "<body", "<div", "<p>", "<article", "<table"} {
		if strings.Contains(head, marker) {
			return true
		}
	}
	return false
}
