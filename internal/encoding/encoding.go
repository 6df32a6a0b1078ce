// Package encoding guesses the character set of raw HTML bytes and decodes
// them to UTF-8.
package encoding

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultCharset is assumed when neither a declaration nor the detector
// produce an answer.
const DefaultCharset = "iso-8859-1"

var declarations = []*regexp.Regexp{
	regexp.MustCompile(`(?i)meta\s+http-equiv="content-type"\s+content="[^;]+;\s*charset=([A-Za-z0-9_\-]+)"`),
	regexp.MustCompile(`(?i)meta\s+charset="([A-Za-z0-9_\-]+)"`),
}

// Detect returns the charset name declared by the page, or the one guessed
// by the statistical detector when there is no declaration.
func Detect(page []byte) string {
	name := ""
	for _, re := range declarations {
		if m := re.FindSubmatch(page); m != nil {
			name = string(m[1])
			break
		}
	}
	if name == "" {
		name = detect(page)
	}
	return normalize(name)
}

func detect(page []byte) string {
	if len(page) == 0 {
		return DefaultCharset
	}
	res, err := chardet.NewHtmlDetector().DetectBest(page)
	if err != nil || res == nil || res.Charset == "" {
		return DefaultCharset
	}
	return res.Charset
}

func normalize(name string) string {
	if strings.EqualFold(name, "MacCyrillic") {
		return "cp1251"
	}
	return name
}

// Decode converts page to UTF-8 and reports the charset used. Labels that
// no decoder knows fall back to UTF-8 with invalid bytes replaced.
func Decode(page []byte) (string, string, error) {
	name := Detect(page)
	enc, _ := charset.Lookup(name)
	if enc == nil {
		return strings.ToValidUTF8(string(page), string(utf8.RuneError)), name, nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), page)
	if err != nil {
		return "", name, err
	}
	return string(out), name, nil
}
