package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
		"```json{\"a\":1}```":     `{"a":1}`,
		"plain text":              "plain text",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripCodeFence(in), in)
	}
}

func TestStripCodeFence_RoundTrip(t *testing.T) {
	for _, j := range []string{`{}`, `{"title":"x","keyPoints":["a","b"]}`, "{\n  \"a\": 1\n}"} {
		assert.Equal(t, j, StripCodeFence(WrapCodeFence(j)))
	}
}

func TestParse_FencedObject(t *testing.T) {
	sn, err := Parse(WrapCodeFence(`{"title":"Retro","keyPoints":["one","two"],"sentiment":"Positive"}`))
	require.NoError(t, err)

	assert.Equal(t, "Retro", sn.Title)
	assert.Equal(t, []string{"one", "two"}, sn.KeyPoints)
	assert.Equal(t, "Positive", sn.Sentiment)
}

func TestParse_RejectsNonObjects(t *testing.T) {
	for _, raw := range []string{"", "null", `["a"]`, `"text"`, "Abstract Summary\nhello", `{"keyPoints":"not a list"}`} {
		_, err := Parse(raw)
		assert.Error(t, err, raw)
	}
}
