package tui

import (
	"fmt"
	"io"
	"time"

	"nathanbeddoewebdev/bwdash/internal/cache"
	"nathanbeddoewebdev/bwdash/internal/daterange"
	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/orchestrator"
	"nathanbeddoewebdev/bwdash/internal/series"
	"nathanbeddoewebdev/bwdash/internal/tui/components"
	"nathanbeddoewebdev/bwdash/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	tooltipWidth = 34
	overviewRows = 6
)

// --- Messages ---

// updateMsg carries one published orchestrator update.
type updateMsg orchestrator.Update

// updatesClosedMsg is sent once the orchestrator has shut down.
type updatesClosedMsg struct{}

// listen waits for the next published update.
func listen(ch <-chan orchestrator.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return updatesClosedMsg{}
		}
		return updateMsg(u)
	}
}

// --- Options ---

// DashboardOptions wires the dashboard to its collaborators.
type DashboardOptions struct {
	Orchestrator *orchestrator.Orchestrator
	Cache        *cache.Cache
	Logger       *log.Logger
	LabelMode    series.LabelMode
	Window       domain.Window
	Backend      string

	// Now defaults to time.Now.
	Now func() time.Time
}

// --- Dashboard model ---

type dashboardModel struct {
	orch    *orchestrator.Orchestrator
	cache   *cache.Cache
	logger  *log.Logger
	mode    series.LabelMode
	backend string
	now     func() time.Time

	window domain.Window

	result *domain.Result
	points []domain.ChartPoint
	refs   []series.ReferenceLine
	brush  series.Brush
	cursor int

	seq         uint64
	stateName   string
	fetching    bool
	status      string
	statusLevel components.StatusLevel

	width   int
	height  int
	spinner spinner.Model
}

// RunDashboard starts the full-window bandwidth dashboard and blocks until
// the user quits.
func RunDashboard(opts DashboardOptions) error {
	m := newDashboardModel(opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

func newDashboardModel(opts DashboardOptions) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mode := opts.LabelMode
	if mode == "" {
		mode = series.LabelDays
	}
	window := opts.Window
	if !window.Defined() {
		window = daterange.DefaultWindow(now())
	}

	m := dashboardModel{
		orch:      opts.Orchestrator,
		cache:     opts.Cache,
		logger:    logger,
		mode:      mode,
		backend:   opts.Backend,
		now:       now,
		window:    window,
		stateName: orchestrator.Idle.String(),
		spinner:   s,
	}
	m.loadCached()
	return m
}

// loadCached shows the last settled result from a previous session until
// the first fetch settles.
func (m *dashboardModel) loadCached() {
	entry, ok, err := m.cache.Load()
	if err != nil {
		m.logger.Warn("failed to read cached result", "err", err)
		return
	}
	if !ok {
		return
	}
	if err := m.apply(entry.Result); err != nil {
		m.logger.Warn("ignoring unusable cached result", "err", err)
		return
	}
	m.stateName = "cached"
	m.setStatus(fmt.Sprintf("Showing cached data from %s ago.", entry.Age(m.now()).Round(time.Minute)), components.StatusInfo)
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(listen(m.orch.Updates()), func() tea.Msg { return refetchMsg{} })
}

// refetchMsg asks the model to request its current window.
type refetchMsg struct{}

// request asks the orchestrator for the selected window. An incomplete
// window issues nothing and leaves a hint in the status bar.
func (m *dashboardModel) request() tea.Cmd {
	seq, ok := m.orch.Request(m.window)
	if !ok {
		m.setStatus("Pick both dates with From before To to load data.", components.StatusWarn)
		return nil
	}
	m.seq = seq
	m.fetching = true
	m.stateName = orchestrator.Fetching.String()
	return m.spinner.Tick
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case refetchMsg:
		return m, m.request()

	case updateMsg:
		m.handleUpdate(orchestrator.Update(msg))
		return m, listen(m.orch.Updates())

	case updatesClosedMsg:
		return m, nil

	case spinner.TickMsg:
		if m.fetching {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m *dashboardModel) handleUpdate(u orchestrator.Update) {
	if u.Seq != m.seq {
		m.logger.Debug("ignoring superseded update", "seq", u.Seq, "latest", m.seq)
		return
	}
	m.fetching = false
	m.stateName = u.State.String()

	switch u.State {
	case orchestrator.Settled:
		if err := m.apply(*u.Result); err != nil {
			m.stateName = orchestrator.Failed.String()
			m.setStatus("Cannot draw response: "+err.Error(), components.StatusError)
			return
		}
		if err := m.cache.Save(*u.Result); err != nil {
			m.logger.Warn("failed to cache result", "err", err)
		}
		m.setStatus("", components.StatusInfo)

	case orchestrator.Failed:
		msg := "Fetch failed: " + u.Err.Error()
		if m.result != nil {
			msg += " (showing previous data)"
		}
		m.setStatus(msg, components.StatusError)
	}
}

// apply replaces the displayed data with r. A response that cannot be
// merged leaves the previous data in place.
func (m *dashboardModel) apply(r domain.Result) error {
	points, err := series.Merge(r.Series, m.mode)
	if err != nil {
		return err
	}

	prevN := len(m.points)
	m.result = &r
	m.points = points
	m.refs = series.ReferenceLines(r.Maxima)
	if prevN == 0 {
		m.brush = series.NewBrush(len(points))
	} else {
		m.brush = m.brush.Fit(prevN, len(points))
	}
	m.cursor = min(max(m.cursor, 0), max(m.brush.Len()-1, 0))
	return nil
}

func (m *dashboardModel) setStatus(msg string, level components.StatusLevel) {
	m.status = msg
	m.statusLevel = level
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.points)
	step := max(m.brush.Len()/10, 1)

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit

	case "left":
		m.cursor = max(m.cursor-1, 0)
	case "right":
		m.cursor = min(m.cursor+1, max(m.brush.Len()-1, 0))

	case "h":
		m.brush = m.brush.Pan(-step, n)
	case "l":
		m.brush = m.brush.Pan(step, n)
	case "+", "=":
		m.brush = m.brush.Resize(-step, n)
		m.cursor = min(m.cursor, max(m.brush.Len()-1, 0))
	case "-":
		m.brush = m.brush.Resize(step, n)

	case "[":
		return m.shiftFrom(-1)
	case "]":
		return m.shiftFrom(1)
	case "{":
		return m.shiftTo(-1)
	case "}":
		return m.shiftTo(1)

	case "r":
		m.setStatus("", components.StatusInfo)
		return m, m.request()
	}

	return m, nil
}

func (m dashboardModel) shiftFrom(days int) (tea.Model, tea.Cmd) {
	if m.window.From.IsZero() {
		return m, nil
	}
	limits := daterange.Bounds(m.now(), m.window)
	next := daterange.Clamp(daterange.ShiftDate(m.window.From, days), limits.FromMin, limits.FromMax)
	if next.Equal(m.window.From) {
		m.setStatus("From date is already at its limit.", components.StatusWarn)
		return m, nil
	}
	m.window.From = next
	m.setStatus("", components.StatusInfo)
	return m, m.request()
}

func (m dashboardModel) shiftTo(days int) (tea.Model, tea.Cmd) {
	if m.window.To.IsZero() {
		return m, nil
	}
	limits := daterange.Bounds(m.now(), m.window)
	next := daterange.Clamp(daterange.ShiftDate(m.window.To, days), limits.ToMin, limits.ToMax)
	// The picker moves in whole days; a clamp that only catches up with
	// the clock inside the same day is not a move.
	if next.Equal(m.window.To) || (days > 0 && sameDay(next, m.window.To)) {
		m.setStatus("To date is already at its limit.", components.StatusWarn)
		return m, nil
	}
	m.window.To = next
	m.setStatus("", components.StatusInfo)
	return m, m.request()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// visible returns the brushed points.
func (m dashboardModel) visible() []domain.ChartPoint {
	return m.brush.Apply(m.points)
}

func (m dashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "bandwidth", m.stateName, m.backend)
	rangeBar := components.DateRangeBar(m.width, m.window, daterange.Bounds(m.now(), m.window))
	footer := components.Footer(m.width, components.DashboardBindings)
	status := components.StatusBar(m.width, m.status, m.statusLevel)

	used := lipgloss.Height(header) + lipgloss.Height(rangeBar) + lipgloss.Height(footer)
	if status != "" {
		used += lipgloss.Height(status)
	}
	contentH := max(m.height-used, 1)

	parts := []string{header, rangeBar, m.renderContent(contentH)}
	if status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m dashboardModel) renderContent(height int) string {
	if m.result == nil {
		text := "No data yet."
		if m.fetching {
			text = m.spinner.View() + "  Fetching bandwidth..."
		}
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, styles.MutedText.Render(text))
	}

	visible := m.visible()
	chartW := max(m.width-tooltipWidth-2, 20)
	chartH := max(height-overviewRows-2, 6)

	chart := components.BandwidthChart(chartW, chartH, visible, m.refs, series.TicksFor(m.mode, m.points))
	marker := components.CursorMarker(chartW, m.cursor, len(visible))

	var tooltip string
	if m.cursor < len(visible) {
		tooltip = components.Tooltip(series.Summarize(visible[m.cursor]))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, chart, marker),
		"  ",
		tooltip,
	)

	overview := components.BrushOverview(m.width-4,
		series.Values(m.points, series.CDN),
		series.Values(m.points, series.P2P),
		m.brush,
	)

	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(
		lipgloss.JoinVertical(lipgloss.Left, top, components.Legend(m.refs), overview),
	)
}
