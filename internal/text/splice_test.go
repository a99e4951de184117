package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplice(t *testing.T) {
	const str = "1234567"

	tests := []struct {
		name       string
		str        string
		insert     string
		start, end int
		want       string
	}{
		{"insert at start", str, "###", 0, 0, "###1234567"},
		{"insert one", str, "#", 1, 1, "1#234567"},
		{"replace range", str, "#", 1, 3, "1#4567"},
		{"insert many", str, "###", 1, 1, "1###234567"},
		{"replace head", str, "###", 0, 3, "###4567"},
		{"insert middle", str, "###", 2, 2, "12###34567"},
		{"empty everything", "", "", 0, 0, ""},
		{"no insert", str, "", 0, 0, str},
		{"start past end", str, "###", 10, 10, "1234567###"},
		{"end past length", str, "###", 0, 10, "###"},
		{"start after end", str, "###", 12, 2, "1234567###"},
		{"negative start", str, "###", -2, 0, "###1234567"},
		{"negative both", str, "###", -12, -4, "###1234567"},
		{"multibyte runes", "привет", "ё", 2, 4, "прёет"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Splice(tt.str, tt.insert, tt.start, tt.end))
		})
	}
}

func TestSubstring(t *testing.T) {
	assert.Equal(t, "23", Substring("12345", 1, 3))
	assert.Equal(t, "23", Substring("12345", 3, 1))
	assert.Equal(t, "1", Substring("12345", -1, 1))
	assert.Equal(t, "45", Substring("12345", 3, 99))
	assert.Equal(t, "ёж", Substring("ёжик", 0, 2))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 4, Len("ёжик"))
	assert.Equal(t, "ки", Head("кит", 2))
	assert.Equal(t, "", Head("кит", -1))
	assert.Equal(t, "кит", Head("кит", 5))
	assert.Equal(t, "321 ", Reverse(" 123"))
	assert.Equal(t, 3, IndexRune("+7(***)", '*'))
	assert.Equal(t, -1, IndexRune("+7()", '*'))
	assert.Equal(t, 4, ByteOffset("ёжик", 2))
	assert.Equal(t, len("ёжик"), ByteOffset("ёжик", 10))
}
