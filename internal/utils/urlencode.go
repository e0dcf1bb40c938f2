package utils

import "strings"

const upperHex = "0123456789ABCDEF"

// URLEncodeFull percent-encodes everything after the "scheme://host/"
// prefix of rawURL. ASCII alphanumerics and "*-._/" are left as is.
func URLEncodeFull(rawURL string) string {
	prefix, rest := splitURLPrefix(rawURL)

	var buf strings.Builder
	buf.Grow(len(rawURL) + 16)
	buf.WriteString(prefix)

	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if shouldKeep(c) {
			buf.WriteByte(c)
			continue
		}
		buf.WriteByte('%')
		buf.WriteByte(upperHex[c>>4])
		buf.WriteByte(upperHex[c&0x0F])
	}

	return buf.String()
}

// splitURLPrefix separates "scheme://host/" from the path of rawURL.
// Strings without a scheme are encoded in full.
func splitURLPrefix(rawURL string) (string, string) {
	schemeEnd := strings.Index(rawURL, "://")
	if schemeEnd < 0 {
		return "", rawURL
	}

	hostStart := schemeEnd + len("://")
	slash := strings.IndexByte(rawURL[hostStart:], '/')
	if slash < 0 {
		return rawURL, ""
	}

	split := hostStart + slash + 1
	return rawURL[:split], rawURL[split:]
}

func shouldKeep(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '*', c == '-', c == '.', c == '_', c == '/':
		return true
	}
	return false
}
