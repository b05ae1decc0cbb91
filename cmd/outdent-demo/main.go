package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/outdent"
	"github.com/iw2rmb/outdent/indent"
	"github.com/iw2rmb/outdent/viewer"
)

const sampleText = `* Introduction
Welcome to the outdent demo.
** Controls
Press i to toggle the indent mode, n to toggle numbering.
** What you see
Headline prefixes shrink as nesting deepens, so every title
and body line starts at the same column.
*** Numbering
With numbering on, marker runs are hidden and replaced by
hierarchical labels.
* Closing
Press q or ctrl+c to quit.
`

type options struct {
	file         string
	markdown     bool
	maxLevel     int
	numbering    bool
	showLineNums bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "outdent-demo [file]",
		Short:         "Interactive demo of the outdent indent mode",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.file = args[0]
			}
			return run(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "treat the document as markdown")
	cmd.Flags().IntVar(&opts.maxLevel, "max-level", 0, "deepest numbered level (0 = unbounded)")
	cmd.Flags().BoolVar(&opts.numbering, "numbering", false, "start with numbering enabled")
	cmd.Flags().BoolVar(&opts.showLineNums, "line-numbers", false, "show a line-number gutter")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "outdent-demo %s\n", outdent.VersionTag())
			return err
		},
	}
}

func run(opts options) error {
	text := sampleText
	markdown := opts.markdown
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return err
		}
		text = string(data)
		if strings.HasSuffix(opts.file, ".md") || strings.HasSuffix(opts.file, ".markdown") {
			markdown = true
		}
	}

	v := viewer.New(viewer.Config{
		Text:     text,
		Markdown: markdown,
		Numbering: indent.Numbering{
			Enabled:  opts.numbering,
			MaxLevel: opts.maxLevel,
			Format:   func(c []int) string { return indent.DotFormat(c) + " " },
		},
		ShowLineNums: opts.showLineNums,
		Style:        viewer.DefaultStyle(),
	})

	p := tea.NewProgram(demoModel{viewer: v}, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type demoModel struct {
	viewer viewer.Model
}

func (m demoModel) Init() tea.Cmd { return nil }

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewer = m.viewer.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)
	return m, cmd
}

func (m demoModel) View() string {
	status := fmt.Sprintf(" indent:%s  numbering:%s  (i/n to toggle, q to quit)",
		onOff(m.viewer.IndentEnabled()), onOff(m.viewer.NumberingEnabled()))
	return m.viewer.View() + "\n" + status
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
