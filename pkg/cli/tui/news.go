package tui

import (
	"context"
	"strings"
	"time"

	"social-news-go/pkg/cli/logger"
	"social-news-go/pkg/workflow"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// NewsAPI is the remote side of the news list.
type NewsAPI interface {
	workflow.NewsLister
	workflow.LinkSubmitter
}

// tickFunc schedules a message after a delay; tea.Tick in production.
type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

type activeBanner struct {
	id string
	workflow.Banner
}

// newsModel shows the news list, the add-link form and submission banners.
// All workflow and store mutations happen inside Update.
type newsModel struct {
	ctx  context.Context
	api  NewsAPI
	flow *workflow.Workflow

	form    *linkForm
	banners []activeBanner
	loaded  bool
	width   int

	after tickFunc
}

// NewNewsModel creates the news flow wrapped in a scrolling viewport.
func NewNewsModel(ctx context.Context, api NewsAPI, flow *workflow.Workflow) tea.Model {
	return NewViewportWrapper(newNewsModel(ctx, api, flow), ViewportConfig{
		Title:       "Social News",
		ShowHeader:  true,
		ShowFooter:  true,
		UseViewport: true,
		EnableHelp:  true,
		HelpContent: NewsHelpContent,
		MinWidth:    60,
		MinHeight:   10,
	})
}

func newNewsModel(ctx context.Context, api NewsAPI, flow *workflow.Workflow) *newsModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if flow == nil {
		flow = workflow.New(nil)
	}
	return &newsModel{
		ctx:   ctx,
		api:   api,
		flow:  flow,
		width: 80,
		after: tea.Tick,
	}
}

func (m *newsModel) Init() tea.Cmd {
	return m.loadFeed()
}

func (m *newsModel) loadFeed() tea.Cmd {
	return func() tea.Msg {
		links, err := m.api.ListNews(m.ctx)
		return feedLoadedMsg{links: links, err: err}
	}
}

// CapturingInput reports whether keystrokes belong to the form.
func (m *newsModel) CapturingInput() bool {
	return m.form != nil
}

func (m *newsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil

	case feedLoadedMsg:
		res := m.flow.ApplyFeed(msg.links, msg.err)
		logger.Log("newsModel.Update: feed settled, added=%d offline=%v", res.Added, res.Offline)
		m.loaded = true
		return m, nil

	case submitResultMsg:
		out, err := m.flow.Settle(msg.local, msg.echoed, msg.err)
		if err != nil {
			logger.LogError(err, "newsModel.Update: unexpected submit result")
			return m, nil
		}
		m.form = nil
		return m, m.showBanner(out.Banner)

	case bannerExpiredMsg:
		m.removeBanner(msg.id)
		return m, nil

	case tea.KeyMsg:
		logger.Log("newsModel.Update: key=%q state=%s", msg.String(), m.flow.State())
		if m.form != nil {
			return m.handleFormKeys(msg)
		}
		if msg.String() == "a" {
			return m, m.openForm()
		}
		return m, nil
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

// openForm shows the add-link form unless one is already open.
func (m *newsModel) openForm() tea.Cmd {
	if !m.flow.OpenForm() {
		return nil
	}
	m.form = newLinkForm()
	return m.form.focusField(fieldAuthor)
}

func (m *newsModel) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.flow.State() == workflow.StateSubmitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.flow.CancelForm() {
			m.form = nil
		}
		return m, nil
	case "enter":
		return m, m.submit()
	}

	return m, m.form.update(msg)
}

// submit validates the form and, if it passes, posts the link.
func (m *newsModel) submit() tea.Cmd {
	title, url, author := m.form.values()
	local, err := m.flow.BeginSubmit(title, url, author)
	if err != nil {
		m.form.err = err
		return nil
	}
	m.form.err = nil
	m.form.submitting = true

	return func() tea.Msg {
		echoed, err := m.api.SubmitLink(m.ctx, local)
		return submitResultMsg{local: local, echoed: echoed, err: err}
	}
}

func (m *newsModel) showBanner(b workflow.Banner) tea.Cmd {
	id := uuid.NewString()
	m.banners = append([]activeBanner{{id: id, Banner: b}}, m.banners...)
	return m.after(b.TTL, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}

func (m *newsModel) removeBanner(id string) {
	for i, b := range m.banners {
		if b.id == id {
			m.banners = append(m.banners[:i], m.banners[i+1:]...)
			return
		}
	}
}

func (m *newsModel) View() string {
	var b strings.Builder

	if m.flow.IsFormOpen() {
		b.WriteString(disabledStyle.Render("[a] Add link"))
	} else {
		b.WriteString(actionKeyStyle.Render("[a]") + " Add link")
	}
	b.WriteString("\n")
	b.WriteString(renderDivider(max(m.width-2, 10)))
	b.WriteString("\n\n")

	for _, banner := range m.banners {
		b.WriteString(renderBanner(banner.Banner))
		b.WriteString("\n\n")
	}

	if m.form != nil {
		b.WriteString(m.form.view())
		b.WriteString("\n\n")
	}

	if !m.loaded {
		b.WriteString(renderLoadingState("Loading links..."))
		b.WriteString("\n")
	}
	if m.loaded || m.flow.Store().Len() > 0 {
		b.WriteString(renderLinkList(m.flow.Store().Links(), m.width))
	}

	if m.flow.Offline() {
		b.WriteString("\n")
		b.WriteString(renderOfflineNotice())
		b.WriteString("\n")
	}

	return b.String()
}
