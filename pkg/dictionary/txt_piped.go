package dictionary

import (
	"bufio"
	"bytes"
	"strings"
)

// sniffPipedTxt detects the piped text format:
//
//	<word>\t<candidate1> | <candidate2> | ...
func sniffPipedTxt(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	scanner := bufio.NewScanner(bytes.NewReader(sniff))
	checked := 0
	for scanner.Scan() && checked < 2 {
		line := stripInlineCommentAndTrim(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.Contains(line, "\t") {
			return false
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
			return false
		}
		checked++
	}
	return checked > 0
}

// parsePipedTxtLine parses a single line of the piped text format.
func parsePipedTxtLine(line string) (string, []string, error) {
	line = stripInlineCommentAndTrim(line)
	if line == "" {
		return "", nil, nil
	}

	parts := strings.SplitN(line, "\t", 2)
	if len(parts) != 2 {
		return "", nil, nil
	}
	word := strings.TrimSpace(parts[0])
	raw := strings.TrimSpace(parts[1])
	if word == "" || raw == "" {
		return "", nil, nil
	}

	chunks := strings.Split(raw, "|")
	candidates := make([]string, 0, len(chunks))
	for _, c := range chunks {
		c = strings.TrimSpace(c)
		if c != "" {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return "", nil, nil
	}
	return word, candidates, nil
}
