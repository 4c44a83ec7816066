package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// safeModel recovers panics from the browser so the terminal is restored
// and the user lands back on the post list.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			next, cmd = s.recovered("tui.update", r), nil
		}
	}()

	inner, c := s.m.Update(msg)
	if mm, ok := inner.(model); ok {
		s.m = mm
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.view", r)
			out = s.m.theme.Error.Render(panicToast)
		}
	}()
	return s.m.View()
}

// recovered logs the panic and returns the wrapper reset to the post list.
// Loaded posts are kept; the comments screen state is dropped.
func (s safeModel) recovered(where string, r any) safeModel {
	s.report(where, r)
	s.m = s.m.back()
	s.m.toast = panicToast
	return s
}

func (s safeModel) report(where string, r any) {
	attrs := []any{
		"where", where,
		"screen", s.m.scr.String(),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}
	if id := s.m.active.ID(); id != "" {
		attrs = append(attrs, "post_id", id)
	}
	s.log.Error("tui.panic", attrs...)
}

var _ tea.Model = safeModel{}
