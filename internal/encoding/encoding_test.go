package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDeclared(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{
			name: "http-equiv",
			page: `<html><head><meta http-equiv="Content-Type" content="text/html; charset=windows-1251"></head></html>`,
			want: "windows-1251",
		},
		{
			name: "html5 meta charset",
			page: `<html><head><meta charset="UTF-8"></head></html>`,
			want: "UTF-8",
		},
		{
			name: "http-equiv wins over html5",
			page: `<meta charset="utf-8"><meta http-equiv="content-type" content="text/html; charset=koi8-r">`,
			want: "koi8-r",
		},
		{
			name: "mac cyrillic is mapped",
			page: `<meta charset="MacCyrillic">`,
			want: "cp1251",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect([]byte(tt.page)))
		})
	}
}

func TestDetectFallsBack(t *testing.T) {
	assert.Equal(t, DefaultCharset, Detect(nil))
	assert.NotEmpty(t, Detect([]byte("<html><body><p>plain ascii text without any declaration</p></body></html>")))
}

func TestDecodeWindows1251(t *testing.T) {
	page := append([]byte(`<meta charset="windows-1251"><p>`), 0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2)
	page = append(page, []byte("</p>")...)

	text, name, err := Decode(page)
	require.NoError(t, err)
	assert.Equal(t, "windows-1251", name)
	assert.Contains(t, text, "Привет")
}

func TestDecodeUnknownLabel(t *testing.T) {
	text, name, err := Decode([]byte(`<meta charset="no-such-charset"><p>hello</p>`))
	require.NoError(t, err)
	assert.Equal(t, "no-such-charset", name)
	assert.Contains(t, text, "hello")
}
