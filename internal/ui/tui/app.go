package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/postline/internal/domain"
)

type screen int

const (
	screenPosts screen = iota
	screenComments
)

func (s screen) String() string {
	switch s {
	case screenPosts:
		return "posts"
	case screenComments:
		return "comments"
	default:
		return "unknown"
	}
}

type postItem struct {
	post domain.Post
}

func (i postItem) Title() string {
	return clampString(oneLine(i.post.Content()), 72)
}

func (i postItem) Description() string {
	return i.post.Author() + " · " + formatTime(i.post.CreatedAt())
}

func (i postItem) FilterValue() string {
	return i.post.Author() + " " + i.post.Content()
}

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	posts list.Model

	loading bool
	toast   string

	active   domain.Post
	comments []domain.Comment

	width int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Posts"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenPosts,
		posts:   l,
		loading: true,
	}
}

func (m model) Init() tea.Cmd {
	return cmdLoadPosts(m.deps.API)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.posts.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case postsLoadedMsg:
		m.loading = false
		if msg.res.Err != nil {
			m.toast = userMessage(msg.res.Err)
			m.logFailure("tui.posts.failed", msg.res.Err)
			return m, nil
		}
		m.toast = ""
		items := make([]list.Item, 0, len(msg.res.Data))
		for _, p := range msg.res.Data {
			items = append(items, postItem{post: p})
		}
		return m, m.posts.SetItems(items)

	case commentsLoadedMsg:
		if m.scr != screenComments || msg.postID != m.active.ID() {
			// Stale response for a post the user already left.
			return m, nil
		}
		m.loading = false
		if msg.res.Err != nil {
			m.toast = userMessage(msg.res.Err)
			m.logFailure("tui.comments.failed", msg.res.Err)
			return m, nil
		}
		m.toast = ""
		m.comments = msg.res.Data
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenPosts && m.posts.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenPosts {
				return m, tea.Quit
			}
			return m.back(), nil

		case "esc", "b":
			if m.scr == screenComments {
				return m.back(), nil
			}

		case "r":
			m.loading = true
			m.toast = ""
			if m.scr == screenComments {
				return m, cmdLoadComments(m.deps.API, m.active.ID())
			}
			return m, cmdLoadPosts(m.deps.API)

		case "enter":
			if m.scr == screenPosts {
				it, ok := m.posts.SelectedItem().(postItem)
				if !ok {
					return m, nil
				}
				m.scr = screenComments
				m.active = it.post
				m.comments = nil
				m.loading = true
				m.toast = ""
				return m, cmdLoadComments(m.deps.API, it.post.ID())
			}
		}
	}

	if m.scr == screenPosts {
		var cmd tea.Cmd
		m.posts, cmd = m.posts.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) back() model {
	m.scr = screenPosts
	m.active = domain.Post{}
	m.comments = nil
	m.loading = false
	m.toast = ""
	return m
}

func (m model) logFailure(event string, err *domain.Error) {
	if m.deps.Logger == nil {
		return
	}
	m.deps.Logger.Warn(event, "error_type", string(err.Type), "err", err)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("postline") + "\n" +
		m.theme.Subtitle.Render(m.deps.BaseURL) + "\n"
	if m.deps.Debug && m.deps.LogPath != "" {
		header += m.theme.Help.Render("log: "+m.deps.LogPath) + "\n"
	}

	status := ""
	switch {
	case m.toast != "":
		status = m.theme.Error.Render("⚠ "+m.toast) + "\n\n"
	case m.loading:
		status = m.theme.Subtitle.Render("Loading…") + "\n\n"
	}

	switch m.scr {
	case screenPosts:
		help := m.theme.Help.Render("↑/↓ navigate • enter comments • / search • r reload • q quit")
		return wrap.Render(header + "\n" + status + m.theme.Card.Render(m.posts.View()) + "\n" + help)

	case screenComments:
		p := m.active
		body := fmt.Sprintf("%s\n%s\n\n%s",
			m.theme.Author.Render(p.Author()),
			m.theme.Subtitle.Render(formatTime(p.CreatedAt())),
			p.Content(),
		)
		comments := ""
		if !m.loading && m.toast == "" {
			comments = renderComments(m.theme, m.comments, m.width-8)
		}
		help := m.theme.Help.Render("esc/b back • r reload • q posts")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + "\n\n" + status + comments + "\n\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
