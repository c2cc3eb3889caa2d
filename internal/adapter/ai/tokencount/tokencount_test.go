package tokencount

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount_NonZeroForText(t *testing.T) {
	t.Parallel()
	assert.Positive(t, Count("hello world", "gpt-3.5-turbo"))
	assert.Positive(t, Count("merhaba dünya", "unknown-model"))
}

func TestTruncate_ShortTextUntouched(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "short", Truncate("short", "gpt-3.5-turbo", 100))
}

func TestTruncate_LongTextShrinks(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("lorem ipsum dolor sit amet ", 200)
	got := Truncate(long, "gpt-3.5-turbo", 50)
	assert.Less(t, len(got), len(long))
	assert.LessOrEqual(t, Count(got, "gpt-3.5-turbo"), 50)
}

func TestTruncate_ZeroBudget(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Truncate("anything", "gpt-3.5-turbo", 0))
}
