package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/track"
)

// WatchState represents the playback state of the watch view.
type WatchState int

const (
	// WatchStatePlaying advances the track on every tick.
	WatchStatePlaying WatchState = iota
	// WatchStatePaused keeps ticking without advancing.
	WatchStatePaused
	// WatchStateFinished indicates the last sample has been shown.
	WatchStateFinished
	// WatchStateQuitting indicates the program is exiting.
	WatchStateQuitting
)

// DefaultTickInterval is the refresh period of the watch view.
const DefaultTickInterval = 250 * time.Millisecond

const (
	watchDefaultWidth = 60
	gaugePadding      = 4
	maxGaugeWidth     = 80
)

// tickMsg drives playback.
type tickMsg time.Time

// WatchOptions configure a WatchModel. Zero values select defaults.
type WatchOptions struct {
	// Speedup multiplies playback speed; 10 plays a 60 s track in 6 s.
	// Values that are not finite and positive select 1.
	Speedup float64
	// TickInterval is the wall-clock refresh period.
	TickInterval time.Duration
	// SpeedUnit is the unit speeds are displayed in.
	SpeedUnit advisor.SpeedUnit
	// DistanceUnit is the unit distances are displayed in.
	DistanceUnit advisor.DistanceUnit
	// Precision is the number of decimals displayed.
	Precision int
}

func (o WatchOptions) withDefaults() WatchOptions {
	if !(o.Speedup > 0) || math.IsInf(o.Speedup, 0) {
		o.Speedup = 1
	}
	if o.TickInterval <= 0 {
		o.TickInterval = DefaultTickInterval
	}
	if o.SpeedUnit == "" {
		o.SpeedUnit = advisor.UnitKmh
	}
	if o.DistanceUnit == "" {
		o.DistanceUnit = advisor.DistanceMeters
	}
	return o
}

// WatchModel is the Bubble Tea model that plays a track back in real time.
type WatchModel struct {
	adv   *advisor.Advisor
	track *track.Track
	opts  WatchOptions

	tracker *advisor.Tracker
	gauge   progress.Model

	// Playback position
	elapsed float64
	index   int
	current advisor.Recommendation
	last    *track.TimedTransition
	warning bool

	state WatchState
	width int
}

// NewWatchModel creates a WatchModel positioned on the first sample of tr.
func NewWatchModel(adv *advisor.Advisor, tr *track.Track, opts WatchOptions) (*WatchModel, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	if _, err := advisor.ToKmh(0, tr.Unit); err != nil {
		return nil, err
	}

	m := &WatchModel{
		adv:     adv,
		track:   tr,
		opts:    opts.withDefaults(),
		tracker: advisor.NewTracker(),
		gauge:   progress.New(progress.WithDefaultGradient()),
		width:   watchDefaultWidth,
	}
	m.gauge.Width = watchDefaultWidth - gaugePadding
	m.restart()
	return m, nil
}

// State returns the playback state.
func (m *WatchModel) State() WatchState {
	return m.state
}

// Current returns the recommendation for the sample on screen.
func (m *WatchModel) Current() advisor.Recommendation {
	return m.current
}

// Warning reports whether the vehicle has left the below-minimum regime and
// not yet returned to it.
func (m *WatchModel) Warning() bool {
	return m.warning
}

// Init starts the refresh timer.
func (m *WatchModel) Init() tea.Cmd {
	if m.state == WatchStateFinished {
		return nil
	}
	return m.tick()
}

// Update handles messages and updates the model state.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.gauge.Width = max(1, min(msg.Width-gaugePadding, maxGaugeWidth))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m *WatchModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.state = WatchStateQuitting
		return m, tea.Quit

	case " ", "space":
		switch m.state {
		case WatchStatePlaying:
			m.state = WatchStatePaused
		case WatchStatePaused:
			m.state = WatchStatePlaying
		case WatchStateFinished, WatchStateQuitting:
		}
		return m, nil

	case "r":
		wasFinished := m.state == WatchStateFinished
		m.restart()
		if wasFinished && m.state != WatchStateFinished {
			return m, m.tick()
		}
		return m, nil
	}

	return m, nil
}

func (m *WatchModel) handleTick() (tea.Model, tea.Cmd) {
	switch m.state {
	case WatchStateFinished, WatchStateQuitting:
		return m, nil
	case WatchStatePaused:
		return m, m.tick()
	case WatchStatePlaying:
	}

	m.elapsed += m.opts.TickInterval.Seconds() * m.opts.Speedup
	m.advance()
	if m.state == WatchStateFinished {
		return m, nil
	}
	return m, m.tick()
}

func (m *WatchModel) tick() tea.Cmd {
	return tea.Tick(m.opts.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// restart rewinds playback to the first sample.
func (m *WatchModel) restart() {
	m.tracker.Reset()
	m.elapsed = 0
	m.index = -1
	m.last = nil
	m.warning = false
	m.state = WatchStatePlaying
	m.advance()
}

// advance shows every sample whose offset from the first sample has elapsed.
func (m *WatchModel) advance() {
	samples := m.track.Samples
	start := samples[0].T
	for m.index+1 < len(samples) && samples[m.index+1].T-start <= m.elapsed {
		m.index++
		m.observe(samples[m.index])
	}
	if m.index == len(samples)-1 {
		m.state = WatchStateFinished
	}
}

func (m *WatchModel) observe(s track.Sample) {
	// Unit was checked by NewWatchModel.
	rec, _ := m.adv.RecommendIn(s.Speed, m.track.Unit)
	m.current = rec

	tr, changed := m.tracker.Observe(rec)
	if !changed {
		return
	}
	m.last = &track.TimedTransition{T: s.T, Transition: tr}
	switch {
	case tr.Warn:
		m.warning = true
	case tr.To == advisor.RegimeBelowMinimum:
		m.warning = false
	}
}

// View renders the current sample.
func (m *WatchModel) View() string {
	if m.state == WatchStateQuitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderReadings())
	b.WriteString("\n")
	b.WriteString(m.renderGauge())
	b.WriteString("\n\n")
	if m.warning {
		b.WriteString(m.renderWarning())
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *WatchModel) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(ColorHeader).
		Bold(true)
	name := m.track.Name
	if name == "" {
		name = "track"
	}
	return titleStyle.Render("Following distance: " + name)
}

func (m *WatchModel) renderReadings() string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	regimeStyle := lipgloss.NewStyle().Foreground(regimeColor(m.current.Regime))

	rows := []string{
		labelStyle.Render("Speed") + valueStyle.Render(
			advisor.FormatSpeed(m.current.SpeedKmh, m.opts.SpeedUnit, m.opts.Precision)),
		labelStyle.Render("Distance") + valueStyle.Render(
			advisor.FormatDistance(m.current.Distance, m.opts.DistanceUnit, m.opts.Precision)),
		labelStyle.Render("Regime") + regimeStyle.Render(m.current.Regime.String()),
	}
	return strings.Join(rows, "\n") + "\n"
}

// renderGauge shows the distance as a share of the calibrated maximum.
func (m *WatchModel) renderGauge() string {
	maxDistance := m.adv.Calibration().MaxDistance()
	percent := 0.0
	if maxDistance > 0 {
		percent = min(m.current.Distance/maxDistance, 1)
	}
	return m.gauge.ViewAs(percent)
}

func (m *WatchModel) renderWarning() string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(ColorWarning).
		Bold(true).
		Padding(0, 1)
	text := fmt.Sprintf("WARNING keep at least %s",
		advisor.FormatDistance(m.current.Distance, m.opts.DistanceUnit, m.opts.Precision))
	return bannerStyle.Render(text)
}

func (m *WatchModel) renderStatus() string {
	muted := lipgloss.NewStyle().Foreground(ColorMuted)

	status := fmt.Sprintf("sample %d/%d  t=%ss  x%s",
		m.index+1, len(m.track.Samples),
		advisor.FormatNumber(m.track.Samples[m.index].T, 1),
		advisor.FormatNumber(m.opts.Speedup, 1))
	switch m.state {
	case WatchStatePaused:
		status += "  [paused]"
	case WatchStateFinished:
		status += "  [finished]"
	case WatchStatePlaying, WatchStateQuitting:
	}
	if m.last != nil {
		status += fmt.Sprintf("  last change %s -> %s at %ss",
			m.last.From, m.last.To, advisor.FormatNumber(m.last.T, 1))
	}
	return muted.Render(status)
}

func (m *WatchModel) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	return helpStyle.Render("q quit, space pause, r restart")
}
