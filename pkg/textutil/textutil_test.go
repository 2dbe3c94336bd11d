package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Go", "Fiber", "PostgreSQL"}, SplitList(" Go ,Fiber,  PostgreSQL "))
	assert.Equal(t, []string{"solo"}, SplitList("solo"))
	assert.Empty(t, SplitList(" , ,"))
	assert.Empty(t, SplitList(""))
}

func TestFirstTag(t *testing.T) {
	assert.Equal(t, "go", FirstTag("go, web"))
	assert.Equal(t, "web", FirstTag(" , web"))
	assert.Equal(t, "General", FirstTag(""))
	assert.Equal(t, "General", FirstTag("  ,  "))
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello world", StripHTML("<p>Hello <strong>world</strong></p>"))
	assert.Equal(t, "plain text", StripHTML("plain text"))
	assert.Equal(t, "a b", StripHTML("<div>a</div>\n\n<div>b</div>"))
	assert.Equal(t, "", StripHTML("<br><hr>"))
}
