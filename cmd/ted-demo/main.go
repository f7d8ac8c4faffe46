package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/ted"
	"github.com/iw2rmb/ted/editor"
	"github.com/iw2rmb/ted/metrics"
)

const composerRows = 5

var (
	sentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238"))
)

type model struct {
	editor editor.Model
	help   help.Model
	log    *slog.Logger

	sent   []string
	width  int
	height int
}

func newModel(cfg editor.Config, log *slog.Logger) model {
	cfg.Style = editor.DefaultStyle()
	cfg.Placeholder = "Write a message..."
	cfg.OnChange = func(ev editor.ChangeEvent) {
		log.Debug("change", "version", ev.Version, "row", ev.Cursor.Row, "col", ev.Cursor.Col,
			"overflow", ev.Cursor.Overflow, "offset", ev.Offset)
	}
	return model{
		editor: editor.New(cfg),
		help:   help.New(),
		log:    log,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w := msg.Width - frameStyle.GetHorizontalFrameSize()
		m.editor = m.editor.SetSize(w, composerRows)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
	case editor.SubmitMsg:
		m.sent = append(m.sent, msg.Text)
		m.log.Info("sent", "runes", len([]rune(msg.Text)))
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if err := m.editor.Err(); err != nil {
		m.log.Warn("edit rejected", "err", err)
	}
	return m, cmd
}

func (m model) View() string {
	composerView := frameStyle.Render(m.editor.View())
	status := m.statusLine()

	historyRows := m.height - lipgloss.Height(composerView) - lipgloss.Height(status)
	history := m.historyView(historyRows)

	return lipgloss.JoinVertical(lipgloss.Left, history, composerView, status)
}

func (m model) historyView(rows int) string {
	if rows <= 0 {
		return ""
	}
	var lines []string
	for _, s := range m.sent {
		lines = append(lines, strings.Split(sentStyle.Render(s), "\n")...)
	}
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for len(lines) < rows {
		lines = append([]string{""}, lines...)
	}
	return strings.Join(lines, "\n")
}

func (m model) statusLine() string {
	c := m.editor.Composer()
	left := statusStyle.Render(fmt.Sprintf("%d/%d", c.Len(), c.Cap()))
	if err := m.editor.Err(); err != nil {
		left = errStyle.Render(err.Error())
	}
	return left + "  " + m.help.View(m.editor.KeyMap())
}

func main() {
	var (
		capacity   = flag.Int("capacity", 0, "maximum message length in runes (0 for the default)")
		keymap     = flag.String("keymap", "default", "key bindings: default or emacs")
		logPath    = flag.String("log", "", "write JSON logs to this file")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
		layoutMode = flag.Bool("layout", false, "read text from stdin and print its wrapped rows")
		maxWidth   = flag.Float64("width", 320, "wrap width in points for -layout")
		fontSize   = flag.Float64("font-size", 14, "Go font size in points for -layout")
		dpi        = flag.Float64("dpi", 72, "resolution for -layout")
		version    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(ted.VersionTag())
		return
	}

	if *layoutMode {
		if err := runLayout(os.Stdin, os.Stdout, *maxWidth, *fontSize, *dpi); err != nil {
			fatal(err)
		}
		return
	}

	logger, closer, err := newLogger(*logPath, *logLevel)
	if err != nil {
		fatal(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	cfg := editor.Config{Capacity: *capacity}
	switch *keymap {
	case "default":
		cfg.KeyMap = editor.DefaultKeyMap()
	case "emacs":
		cfg.KeyMap = editor.EmacsKeyMap()
	default:
		fatal(fmt.Errorf("unknown keymap: %s", *keymap))
	}

	logger.Info("start", "version", ted.Version(), "keymap", *keymap, "capacity", *capacity)
	p := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("run", "err", err)
		fatal(err)
	}
}

func runLayout(r io.Reader, w io.Writer, maxWidth, fontSize, dpi float64) error {
	face, err := metrics.GoFont(fontSize, dpi)
	if err != nil {
		return err
	}
	defer face.Close()

	b, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	text := strings.TrimSuffix(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	return dumpLayout(w, []rune(text), maxWidth, metrics.Cached(metrics.Face(face)))
}

func fatal(err error) {
	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}
