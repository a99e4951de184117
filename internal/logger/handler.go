package logger

import (
	"context"
	"log/slog"
	"strings"
)

const tagKey = "tag" // attribute key used for filtering

// filteringHandler wraps a base slog.Handler and drops records by tag.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
	tag  string // tag bound through WithAttrs
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	tag := h.tag
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = strings.ToLower(a.Value.String())
			return false
		}
		return true
	})

	if !h.allowed(tag) {
		return nil
	}
	return h.base.Handle(ctx, r)
}

// allowed applies the disabled list first, then the enabled list.
// Untagged records pass unless an enabled list is configured.
func (h *filteringHandler) allowed(tag string) bool {
	if tag == "" {
		return h.cfg.enabledTagsSet == nil
	}
	if _, found := h.cfg.disabledTagsSet[tag]; found {
		return false
	}
	if h.cfg.enabledTagsSet != nil {
		_, found := h.cfg.enabledTagsSet[tag]
		return found
	}
	return true
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := &filteringHandler{base: h.base.WithAttrs(attrs), cfg: h.cfg, tag: h.tag}
	for _, a := range attrs {
		if a.Key == tagKey {
			next.tag = strings.ToLower(a.Value.String())
		}
	}
	return next
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return &filteringHandler{base: h.base.WithGroup(name), cfg: h.cfg, tag: h.tag}
}
