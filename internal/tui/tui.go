// Package tui provides a Bubble Tea terminal user interface for packotron.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/musica-packotron/internal/assemble"
	"github.com/handiism/musica-packotron/internal/audio"
	"github.com/handiism/musica-packotron/internal/catalog"
	"github.com/handiism/musica-packotron/internal/config"
	"github.com/handiism/musica-packotron/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7FB069")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateTracks State = iota
	StateForm
	StateAssembling
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   assemble.ProgressLevel
}

const maxLogs = 10

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings

	// Pack being edited
	draft     *catalog.Draft
	meta      model.PackMetadata
	outputDir string
	cursor    int
	form      form
	notice    string

	logs []LogEntry
	err  error

	// Assembly context
	ctx       context.Context
	cancel    context.CancelFunc
	assembler *assemble.Assembler
	events    *eventQueue

	copiedFiles int32
	totalFiles  int32
	archivePath string

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model seeded from settings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB069"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateTracks,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		draft:     &catalog.Draft{},
		meta:      settings.ToPackMetadata(),
		outputDir: settings.OutputDir,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		verbose:   settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// AssembleDoneMsg is sent when the pack has been written or failed.
	AssembleDoneMsg struct {
		Path string
		Err  error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		switch m.state {
		case StateTracks:
			return m.updateTracks(msg)
		case StateForm:
			return m.updateForm(msg)
		case StateAssembling:
			if msg.String() == "esc" {
				m.cancel()
			}
		case StateComplete, StateError:
			switch msg.String() {
			case "q", "esc":
				return m, tea.Quit
			case "r":
				// Back to editing; the draft is kept
				m.state = StateTracks
				m.logs = nil
				m.err = nil
				m.archivePath = ""
				m.copiedFiles, m.totalFiles = 0, 0
				m.assembler = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case TickMsg:
		if m.state == StateAssembling && m.assembler != nil {
			m.drainEvents()
			m.copiedFiles, m.totalFiles = m.assembler.GetProgress()

			var percent float64
			if m.totalFiles > 0 {
				percent = float64(m.copiedFiles) / float64(m.totalFiles)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case AssembleDoneMsg:
		m.drainEvents()
		if m.assembler != nil {
			m.copiedFiles, m.totalFiles = m.assembler.GetProgress()
		}
		switch {
		case msg.Err != nil && errors.Is(msg.Err, context.Canceled):
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			m.archivePath = msg.Path
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateTracks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "esc", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.draft.Len()-1 {
			m.cursor++
		}

	case "a":
		m.form = m.trackForm(-1, catalog.Entry{})
		m.state = StateForm

	case "e":
		if entry, ok := m.draft.Entry(m.cursor); ok {
			m.form = m.trackForm(m.cursor, entry)
			m.state = StateForm
		}

	case "x", "delete":
		if err := m.draft.Remove(m.cursor); err == nil && m.cursor >= m.draft.Len() && m.cursor > 0 {
			m.cursor--
		}

	case "i":
		m.form = m.packForm()
		m.state = StateForm

	case "v":
		m.verbose = !m.verbose

	case "enter":
		if m.draft.Len() == 0 {
			m.notice = "Add at least one track first"
			return m, nil
		}
		return m.startAssembly()
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateTracks
		return m, nil

	case "tab", "down":
		return m, m.form.move(1)

	case "shift+tab", "up":
		return m, m.form.move(-1)

	case "ctrl+s":
		m.submitForm()
		return m, nil

	case "enter":
		if m.form.onLast() {
			m.submitForm()
			return m, nil
		}
		return m, m.form.move(1)
	}

	return m, m.form.update(msg)
}

// Track form fields
const (
	fieldAudio = iota
	fieldTexture
	fieldDescription
	fieldLore
	fieldSpecialName
)

// Pack form fields
const (
	fieldPackName = iota
	fieldPackAuthor
	fieldPackDescription
	fieldPackVersion
	fieldThumbnail
	fieldOutputDir
)

func (m Model) trackForm(index int, e catalog.Entry) form {
	title := "Add track"
	if index >= 0 {
		title = fmt.Sprintf("Edit track %d", index+1)
	}
	f := newForm(formTrack, title)
	f.index = index
	f.addInput("Audio", "/path/to/song.ogg", e.AudioPath)
	f.addInput("Texture", "/path/to/record.png", e.TexturePath)
	f.addInput("Description", "defaults to the file name", e.Description)
	f.addInput("Lore", "optional", e.Lore)
	f.addInput("Special name", "optional", e.SpecialName)
	f.addToggle("Shiny", e.IsShiny)
	return f
}

func (m Model) packForm() form {
	f := newForm(formPack, "Pack info")
	f.addInput("Name", "Musica Pack", m.meta.Name)
	f.addInput("Author", model.DefaultPackAuthor, m.meta.Author)
	f.addInput("Description", model.DefaultPackDescription, m.meta.Description)
	f.addInput("Version", model.DefaultPackVersion, m.meta.Version)
	f.addInput("Thumbnail", "optional 128x128 .png", m.meta.ThumbnailPath)
	f.addInput("Output dir", ".", m.outputDir)
	return f
}

// submitForm stores the form values and returns to the track list.
func (m *Model) submitForm() {
	f := m.form
	switch f.kind {
	case formTrack:
		entry := catalog.Entry{
			AudioPath:   f.value(fieldAudio),
			TexturePath: f.value(fieldTexture),
			Description: f.value(fieldDescription),
			Lore:        f.value(fieldLore),
			SpecialName: f.value(fieldSpecialName),
			IsShiny:     f.toggled(0),
		}
		if entry.AudioPath == "" {
			m.notice = "Audio path is required"
			return
		}
		if f.index >= 0 {
			if err := m.draft.Update(f.index, entry); err != nil {
				m.notice = err.Error()
				return
			}
		} else {
			m.cursor = m.draft.Add(entry)
		}

	case formPack:
		m.meta = model.PackMetadata{
			Name:          f.value(fieldPackName),
			Author:        f.value(fieldPackAuthor),
			Description:   f.value(fieldPackDescription),
			Version:       f.value(fieldPackVersion),
			ThumbnailPath: f.value(fieldThumbnail),
		}
		m.outputDir = f.value(fieldOutputDir)
	}

	m.notice = ""
	m.state = StateTracks
}

// startAssembly builds the track model and starts the pipeline in the background.
func (m Model) startAssembly() (tea.Model, tea.Cmd) {
	var describer catalog.Describer
	if m.settings.DescriptionFromTags {
		describer = audio.NewTagReader()
	}

	tracks, err := catalog.NewBuilder(describer).Build(m.draft.Input())
	if err != nil {
		m.state = StateError
		m.err = err
		return m, nil
	}

	events := &eventQueue{}
	m.events = events
	m.assembler = assemble.NewAssembler(events.push, m.settings.ToAssembleOptions())
	m.state = StateAssembling
	m.logs = nil

	ctx, assembler, meta, outputDir := m.ctx, m.assembler, m.meta, m.outputDir
	run := func() tea.Msg {
		path, err := assembler.AssemblePack(ctx, tracks, meta, outputDir)
		return AssembleDoneMsg{Path: path, Err: err}
	}

	return m, tea.Batch(run, m.spinner.Tick, m.tickProgress())
}

// drainEvents moves pending progress events into the log.
func (m *Model) drainEvents() {
	if m.events == nil {
		return
	}
	for _, e := range m.events.drain() {
		m.appendLog(e)
	}
}

func (m *Model) appendLog(e assemble.ProgressEvent) {
	if e.Level == assemble.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: e.Message, Level: e.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Musica Pack-o-tron"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Build resource packs for the Musica mod"))
	b.WriteString("\n\n")

	switch m.state {
	case StateTracks:
		b.WriteString(m.viewTracks())
	case StateForm:
		b.WriteString(m.form.view())
	case StateAssembling:
		b.WriteString(m.viewAssembling())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("! " + m.notice))
		b.WriteString("\n")
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewTracks() string {
	var b strings.Builder

	name := m.meta.Name
	if name == "" {
		name = "(unnamed)"
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Pack: %s", name)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output: %s", m.outputDir)))
	b.WriteString("\n\n")

	if m.draft.Len() == 0 {
		b.WriteString(dimStyle.Render("  No tracks yet. Press a to add one."))
		b.WriteString("\n")
	}
	for i, e := range m.draft.Entries() {
		line := fmt.Sprintf("  %d. %s", i+1, e.Label())
		if e.IsShiny {
			line += " ✦"
		}
		texture := filepath.Base(e.TexturePath)
		if e.TexturePath == "" {
			texture = "no texture"
		}
		line += dimStyle.Render(fmt.Sprintf("  (%s, %s)", filepath.Base(e.AudioPath), texture))

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("›") + line[1:])
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewAssembling() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Assembling %s...", m.meta.Name)))
	b.WriteString("\n\n")

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.copiedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.copiedFiles, m.totalFiles)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Pack complete!\n\n"+
			"Tracks: %d\n"+
			"Archive: %s\n\n"+
			"%s",
		m.draft.Len(),
		m.archivePath,
		assemble.InstallHint,
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case assemble.LevelError:
			style = errorStyle
			prefix = "✗"
		case assemble.LevelWarning:
			style = warningStyle
			prefix = "!"
		case assemble.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case assemble.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateTracks:
		return "a: add • e: edit • x: remove • i: pack info • v: verbose • enter: build • esc: quit"
	case StateForm:
		return "tab: next • shift+tab: previous • space: toggle • ctrl+s: save • esc: cancel"
	case StateAssembling:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: back to tracks • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
