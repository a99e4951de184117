package mask

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/maskedit/internal/logger"
)

// Configuration errors reported by Validate.
var (
	ErrInvalidSymbols  = errors.New("invalid valid-symbols class")
	ErrInvalidMaskChar = errors.New("mask character must be a single character")
)

// classes holds the compiled character classes for one (ValidSymbols,
// MaskChar) pair.
type classes struct {
	mask rune

	invalid   *regexp.Regexp // [^valid]; nil accepts everything
	valid     *regexp.Regexp // [valid]; nil when unrestricted
	boundary  *regexp.Regexp // word delimiter: invalid, or whitespace
	nonFormat *regexp.Regexp // [^valid mask]: stripped from the format by toRaw
}

type classKey struct {
	symbols string
	mask    rune
}

var classCache sync.Map // classKey -> *classes

var whitespace = regexp.MustCompile(`\s`)

// classesFor returns the compiled classes, building them on first use.
func classesFor(symbols string, mask rune) *classes {
	key := classKey{symbols: symbols, mask: mask}
	if c, ok := classCache.Load(key); ok {
		return c.(*classes)
	}
	c, _ := classCache.LoadOrStore(key, compileClasses(symbols, mask))
	return c.(*classes)
}

func compileClasses(symbols string, mask rune) *classes {
	if _, err := regexp.Compile("[^" + symbols + "]"); symbols != "" && err != nil {
		logger.Warnf("mask: valid symbols %q do not form a character class (%v), matching them literally", symbols, err)
		symbols = escapeClass(symbols)
	}

	c := &classes{mask: mask, boundary: whitespace}
	if symbols != "" {
		c.invalid = compileClass("^", symbols, "")
		c.valid = compileClass("", symbols, "")
		c.boundary = c.invalid
	}
	c.nonFormat = compileClass("^", symbols, escapeClass(string(mask)))
	return c
}

// compileClass builds [prefix body suffix]. A body that only breaks once
// combined with the suffix is retried with its punctuation escaped.
func compileClass(prefix, body, suffix string) *regexp.Regexp {
	re, err := regexp.Compile("[" + prefix + body + suffix + "]")
	if err != nil {
		re = regexp.MustCompile("[" + prefix + escapeClass(body) + suffix + "]")
	}
	return re
}

// escapeClass makes every ASCII punctuation rune literal inside a bracket
// expression.
func escapeClass(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < utf8.RuneSelf && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// filter drops every rune outside the accepted class.
func (c *classes) filter(s string) string {
	if c.invalid == nil {
		return s
	}
	return c.invalid.ReplaceAllString(s, "")
}

func (c *classes) isBoundary(r rune) bool {
	return c.boundary.MatchString(string(r))
}

// Validate checks field constraints ahead of time. Apply itself accepts
// anything.
func Validate(validSymbols, maskChar string) error {
	if validSymbols != "" {
		if _, err := regexp.Compile("[^" + validSymbols + "]"); err != nil {
			return fmt.Errorf("%w %q: %v", ErrInvalidSymbols, validSymbols, err)
		}
	}
	if maskChar != "" && utf8.RuneCountInString(maskChar) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidMaskChar, maskChar)
	}
	return nil
}
