package distill

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFeatures(t *testing.T) {
	tests := []struct {
		name   string
		readme string
		want   []string
	}{
		{
			name:   "basic section",
			readme: "## Features\n- fast\n- safe\n## Installation\nrun cargo add",
			want:   []string{"fast", "safe"},
		},
		{
			name:   "no features heading",
			readme: "# mycrate\nSome prose.\n## Usage\n- not a feature",
			want:   nil,
		},
		{
			name:   "partial heading does not match",
			readme: "## Feature Flags\n- flagged\n",
			want:   nil,
		},
		{
			name:   "case insensitive heading",
			readme: "### FEATURES\n- loud\n",
			want:   []string{"loud"},
		},
		{
			name:   "level four heading",
			readme: "#### features\n* star bullet\n",
			want:   []string{"star bullet"},
		},
		{
			name:   "level five heading ignored",
			readme: "##### Features\n- too deep\n",
			want:   nil,
		},
		{
			name:   "no marker space is not a heading",
			readme: "##Features\n- glued\n",
			want:   nil,
		},
		{
			name:   "indented heading is not a heading",
			readme: "  ## Features\n- indented\n",
			want:   nil,
		},
		{
			name:   "prose and blanks inside span are skipped",
			readme: "## Features\nintro prose\n\n- one\n\nmore prose\n- two\n",
			want:   []string{"one", "two"},
		},
		{
			name:   "section runs to end of document",
			readme: "Some intro.\n# Features\n- last bullet",
			want:   []string{"last bullet"},
		},
		{
			name:   "stops at next heading of any level",
			readme: "## Features\n- kept\n#### License\n- dropped\n",
			want:   []string{"kept"},
		},
		{
			name:   "marker run is stripped",
			readme: "## Features\n-- double dash\n* - mixed markers\n",
			want:   []string{"double dash", "mixed markers"},
		},
		{
			name:   "first matching section wins",
			readme: "## Features\n- first\n## More\n## Features\n- second\n",
			want:   []string{"first"},
		},
		{
			name:   "trailing whitespace on heading",
			readme: "## Features   \n- trimmed\n",
			want:   []string{"trimmed"},
		},
		{
			name:   "crlf line endings",
			readme: "## Features\r\n- windows\r\n## Next\r\n- no\r\n",
			want:   []string{"windows"},
		},
		{
			name:   "empty document",
			readme: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFeatures(tt.readme)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFeaturesCapsAtTwelve(t *testing.T) {
	var b strings.Builder
	b.WriteString("## Features\n")
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "- bullet %d\n", i)
	}
	b.WriteString("## Next\n")

	got := ExtractFeatures(b.String())
	assert.Len(t, got, maxFeatures)
	assert.Equal(t, "bullet 1", got[0])
	assert.Equal(t, "bullet 12", got[len(got)-1])
}
