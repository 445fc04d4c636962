package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spatialid/adjuststatus/internal/msgfmt"
)

// Messages resolves message ids against a static catalog and writes the
// result to the sink selected by the id's severity prefix.
type Messages struct {
	logger  *slog.Logger
	catalog map[string]string
}

// NewMessages returns a facade over logger using the built-in catalog.
func NewMessages(logger *slog.Logger) *Messages {
	return NewMessagesWithCatalog(logger, defaultCatalog)
}

func NewMessagesWithCatalog(logger *slog.Logger, catalog map[string]string) *Messages {
	return &Messages{logger: logger, catalog: catalog}
}

// With returns a facade whose records carry the given attributes.
func (m *Messages) With(args ...any) *Messages {
	return &Messages{logger: m.logger.With(args...), catalog: m.catalog}
}

// ResolveMessage formats the template registered for messageID. Position 0 is
// the id itself, followed by params. Unregistered ids render as the id and
// params joined by spaces.
func (m *Messages) ResolveMessage(messageID string, params ...string) string {
	tmpl, ok := m.catalog[messageID]
	if !ok {
		return strings.Join(append([]string{messageID}, params...), " ")
	}

	args := make([]any, 0, len(params)+1)
	args = append(args, messageID)
	for _, p := range params {
		args = append(args, p)
	}
	return msgfmt.Format(tmpl, args...)
}

// Emit logs the resolved message at the severity named by the id prefix.
// Ids with any other prefix are dropped without error.
func (m *Messages) Emit(ctx context.Context, messageID string, params ...string) {
	lvl, ok := ParseSeverity(messageID).Level()
	if !ok {
		return
	}
	m.logger.LogAttrs(ctx, lvl, m.ResolveMessage(messageID, params...),
		slog.String("message_id", messageID),
	)
}
