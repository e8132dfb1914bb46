package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/clipboard"
	"github.com/iw2rmb/quill/config"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/logger"
	"github.com/iw2rmb/quill/search"
)

type flags struct {
	configPath    string
	regex         bool
	caseSensitive bool
	theme         string
	logFile       string
	noLineNumbers bool
}

// Execute runs the quill command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "quill [file]",
		Short: "A small terminal text editor",
		Long: `quill edits one plain-text file in the terminal.
A missing file is created on start. Without a file, the buffer has no name
until it is saved.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runEditor(cfg, path)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/quill/config.toml)")
	pf.BoolVar(&f.regex, "regex", false, "treat search terms as regular expressions")
	pf.BoolVar(&f.caseSensitive, "case-sensitive", false, "match case when searching")
	pf.StringVar(&f.theme, "theme", "", "syntax color theme (chroma style name)")
	pf.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&f.noLineNumbers, "no-line-numbers", false, "hide the line-number gutter")

	root.AddCommand(newFindCmd(f), newReplaceCmd(f), newVersionCmd())
	return root
}

// settings loads the config file and applies flags the user set explicitly.
func (f *flags) settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	fl := cmd.Flags()
	if fl.Changed("regex") {
		cfg.Regex = f.regex
	}
	if fl.Changed("case-sensitive") {
		cfg.CaseSensitive = f.caseSensitive
	}
	if fl.Changed("theme") {
		cfg.Theme = f.theme
	}
	if fl.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if fl.Changed("no-line-numbers") {
		cfg.LineNumbers = !f.noLineNumbers
	}
	return cfg, nil
}

func searchOptions(cfg config.Config) search.Options {
	return search.Options{
		CaseSensitive: cfg.CaseSensitive,
		UseRegex:      cfg.Regex,
		MatchTimeout:  cfg.MatchTimeout.Duration,
	}
}

// openOrCreate loads path into b, creating an empty file when it is missing.
func openOrCreate(b *buffer.Buffer, path string) error {
	err := b.LoadFile(path)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	b.SetPath(path)
	return b.Save()
}

func runEditor(cfg config.Config, path string) error {
	log, closeLog, err := logger.New(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = closeLog() }()

	b := buffer.New("", buffer.Options{})
	if path != "" {
		if err := openOrCreate(b, path); err != nil {
			log.Error("open", "path", path, "err", err)
			return err
		}
	}

	var sys clipboard.System
	if cfg.SystemClipboard && clipboard.SystemSupported() {
		sys = clipboard.SystemClipboard{}
	}

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log.Info("start", "path", path, "theme", cfg.Theme)
	ed := editor.New(editor.Config{
		Buffer:        b,
		ShowLineNums:  cfg.LineNumbers,
		TabWidth:      cfg.TabWidth,
		Style:         editor.NewStyle(nil, cfg.Theme),
		System:        sys,
		Search:        searchOptions(cfg),
		PreviewLength: cfg.PreviewLength,
		Logger:        log,
	})

	p := tea.NewProgram(app{editor: ed}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program", "err", err)
		return err
	}
	log.Info("exit", "path", b.Path(), "modified", b.Modified())
	return nil
}

// app adapts the editor model to tea.Model.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string {
	if a.editor.Quitting() {
		return ""
	}
	return a.editor.View()
}
