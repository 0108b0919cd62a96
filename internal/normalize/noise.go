package normalize

import (
	"regexp"
	"strings"
)

// noisePatterns is the allowlist of bracketed token classes that are
// always removed: encoder and ripper signatures, DJ software stamps,
// scene markers, and bitrate/container tokens. Anything not matching a
// pattern is left alone, no matter how suspicious it looks.
var noisePatterns = []*regexp.Regexp{
	// Encoders and rippers
	regexp.MustCompile(`(?i)^(lame|exact audio copy|eac|xld|dbpoweramp|fre:?ac|foobar2000|audiograbber|cdex|itunes)\b`),
	regexp.MustCompile(`(?i)^(ripped|encoded|recorded|grabbed)\s+(by|with|using)\b`),

	// DJ tooling stamps
	regexp.MustCompile(`(?i)^(serato|traktor|rekordbox|virtual\s?dj|mixed in key|djuced|mixxx)\b`),

	// Scene and release markers
	regexp.MustCompile(`(?i)^(web|cd|vinyl|tape)[\s-]?rip$`),
	regexp.MustCompile(`(?i)^(promo(\s+only)?|retail|scene|proper|repack|freeleech)$`),
	regexp.MustCompile(`(?i)^(www\.)?[a-z0-9][a-z0-9-]*\.(com|net|org|info|biz|to|cc|fm)$`),

	// Bitrate and container tokens
	regexp.MustCompile(`(?i)^\d{2,4}\s?kbps\b`),
	regexp.MustCompile(`(?i)^(320|256|224|192|160|128)(\s?k(bps)?)?$`),
	regexp.MustCompile(`(?i)^(vbr|cbr|abr)(\s+v?\d+)?$`),
	regexp.MustCompile(`(?i)^(mp3|flac|aac|ogg|opus|wav|m4a|wma|ape)$`),
	regexp.MustCompile(`(?i)^(16|24)\s?bit([\s/-]+\d+(\.\d+)?\s?khz)?$`),
}

// maxNoisePasses bounds the fixed-point rescan: removing one token can
// expose an adjacent one, but the loop must always terminate.
const maxNoisePasses = 8

// StripNoise removes bracketed noise tags from s. Groups delimited by
// (), [] or {} are classified against the noise allowlist and removed
// when they match. The scan repeats until nothing changes, bounded by
// maxNoisePasses.
func StripNoise(s string) string {
	for i := 0; i < maxNoisePasses; i++ {
		next := stripNoisePass(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

// bracketGroup is one balanced bracket group found in a scan.
type bracketGroup struct {
	start, end int // byte offsets, end is past the closing bracket
	inner      string
}

var closers = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// scanGroups returns the outermost balanced bracket groups of s, left to
// right. Unbalanced openers are ignored.
func scanGroups(s string) []bracketGroup {
	var groups []bracketGroup
	for i := 0; i < len(s); i++ {
		closer, ok := closers[s[i]]
		if !ok {
			continue
		}
		depth := 1
		for j := i + 1; j < len(s); j++ {
			switch s[j] {
			case s[i]:
				depth++
			case closer:
				depth--
				if depth == 0 {
					groups = append(groups, bracketGroup{
						start: i,
						end:   j + 1,
						inner: s[i+1 : j],
					})
					i = j
					j = len(s)
				}
			}
		}
	}
	return groups
}

// stripNoisePass removes noise groups found in one scan over s.
func stripNoisePass(s string) string {
	groups := scanGroups(s)
	if len(groups) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for _, g := range groups {
		inner := strings.TrimSpace(g.inner)
		if inner != "" && !isNoise(inner) {
			continue
		}
		b.WriteString(strings.TrimRight(s[pos:g.start], " "))
		pos = g.end
	}
	b.WriteString(s[pos:])
	return b.String()
}

// isNoise classifies the inner text of one bracket group.
func isNoise(inner string) bool {
	for _, p := range noisePatterns {
		if p.MatchString(inner) {
			return true
		}
	}
	return false
}
