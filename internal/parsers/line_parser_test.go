package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleLine = `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" "Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" 0.390`

func TestParse_ValidLine(t *testing.T) {
	t.Parallel()

	parsed := Parse(sampleLine)

	assert.True(t, parsed.Valid)
	assert.Equal(t, "/api/v2/banner/25019354", parsed.URL)
	assert.Equal(t, 0.390, parsed.RequestTime)
	assert.Equal(t, "Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5", parsed.UserAgent)
}

func TestParse_MethodCaseInsensitive(t *testing.T) {
	t.Parallel()

	line := `1.99.174.176 3b81f63526fa8  - [29/Jun/2017:03:50:22 +0300] "post /accounts/login/ HTTP/1.1" 200 12 "-" "curl/7.35.0" "-" "-" "-" 0.133`
	parsed := Parse(line)

	assert.True(t, parsed.Valid)
	assert.Equal(t, "/accounts/login/", parsed.URL)
	assert.Equal(t, 0.133, parsed.RequestTime)
}

func TestParse_MalformedLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{
			name: "empty line",
			line: "",
		},
		{
			name: "garbage",
			line: "not an access log line at all",
		},
		{
			name: "missing quoted request field",
			line: `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] 200 927 "-" "Lynx" "-" "-" "dc7161be3" 0.390`,
		},
		{
			name: "request without method",
			line: `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "/api/v2/banner HTTP/1.1" 200 927 "-" "Lynx" "-" "-" "dc7161be3" 0.390`,
		},
		{
			name: "non-numeric request time",
			line: `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner HTTP/1.1" 200 927 "-" "Lynx" "-" "-" "dc7161be3" fast`,
		},
		{
			name: "integer request time",
			line: `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner HTTP/1.1" 200 927 "-" "Lynx" "-" "-" "dc7161be3" 1`,
		},
		{
			name: "missing request time",
			line: `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner HTTP/1.1" 200 927 "-" "Lynx" "-" "-" "dc7161be3"`,
		},
		{
			name: "non-ip remote host",
			line: `localhost -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner HTTP/1.1" 200 927 "-" "Lynx" "-" "-" "dc7161be3" 0.390`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parsed := Parse(tt.line)
			assert.False(t, parsed.Valid)
			assert.Empty(t, parsed.URL)
			assert.Zero(t, parsed.RequestTime)
		})
	}
}

func TestParse_IsPure(t *testing.T) {
	t.Parallel()

	first := Parse(sampleLine)
	second := Parse(sampleLine)
	assert.Equal(t, first, second)
}
