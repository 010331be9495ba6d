package wizard

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	atWordRegex     = regexp.MustCompile(`(?i)\b(at|arroba|arobase)\b`)
	atSpacingRegex  = regexp.MustCompile(`\s*@\s*`)
	dotWordRegex    = regexp.MustCompile(`(?i)\b(dot|punto|point)\b`)
	dotSpacingRegex = regexp.MustCompile(`\s*\.\s*`)
	providerRegex   = regexp.MustCompile(`(?i)\b(gmail|yahoo|hotmail|outlook)\s+com\b`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nameCharsRegex  = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s'-]`)
	phoneCharsRegex = regexp.MustCompile(`[^\d\s+()-]`)
	textFieldRegex  = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s',-]`)
	skipWords       = []string{"skip", "next", "pass"}
)

// IsSkip reports whether a transcript is an explicit request to skip the
// current question. Only the optional phone field treats this as valid input.
func IsSkip(transcript string) bool {
	lowered := strings.ToLower(transcript)
	for _, word := range skipWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

// Normalize cleans up raw speech-to-text output for a field before it is
// validated. Passwords pass through untouched apart from trimming, since
// they are case and punctuation sensitive.
func Normalize(field string, transcript string) string {
	processed := strings.TrimSpace(transcript)

	switch field {
	case FieldEmail:
		processed = atWordRegex.ReplaceAllString(processed, "@")
		processed = atSpacingRegex.ReplaceAllString(processed, "@")
		processed = dotWordRegex.ReplaceAllString(processed, ".")
		processed = dotSpacingRegex.ReplaceAllString(processed, ".")
		processed = providerRegex.ReplaceAllString(processed, "$1.com")
		processed = whitespaceRegex.ReplaceAllString(processed, "")
		processed = strings.ToLower(processed)
	case FieldName:
		processed = nameCharsRegex.ReplaceAllString(processed, "")
		processed = whitespaceRegex.ReplaceAllString(processed, " ")
		processed = titleCase(strings.TrimSpace(processed))
	case FieldPhone:
		processed = phoneCharsRegex.ReplaceAllString(processed, "")
		processed = strings.TrimSpace(processed)
	case FieldLocation, FieldCategory:
		processed = textFieldRegex.ReplaceAllString(processed, "")
		processed = whitespaceRegex.ReplaceAllString(processed, " ")
		processed = capitalizeFirst(strings.TrimSpace(processed))
	}

	return processed
}

func titleCase(s string) string {
	words := strings.Split(strings.ToLower(s), " ")
	for i, word := range words {
		words[i] = upperFirst(word)
	}
	return strings.Join(words, " ")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return upperFirst(strings.ToLower(s))
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
