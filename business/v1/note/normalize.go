package note

import "strings"

// Normalize trims the surrounding whitespace of raw, nil becomes ""
func Normalize(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.TrimSpace(*raw)
}

func validContent(raw *string) (string, error) {
	content := Normalize(raw)
	if content == "" {
		return "", ErrInvalidContent
	}
	return content, nil
}
