package cmd

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/nibble"
	"github.com/iw2rmb/nibble/buffer"
	"github.com/iw2rmb/nibble/editor"
	"github.com/iw2rmb/nibble/internal/decode"
)

var (
	encodingFlag string
	offsetFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "nibble FILE",
	Short: "A terminal hex editor",
	Long: `nibble opens FILE in a terminal hex editor.

Bytes are edited in place over a private memory map, so nothing touches
the file on disk until you save with ctrl+s. Large files open instantly;
insertions and deletions near the cursor stay responsive while the rest
of the file catches up in the background.`,
	Args:         cobra.ExactArgs(1),
	Version:      nibble.VersionTag(),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal")
	}

	enc, err := decode.ParseEncoding(encodingFlag)
	if err != nil {
		return err
	}
	offset, err := strconv.ParseUint(offsetFlag, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid offset %q (want decimal or 0x-prefixed hex)", offsetFlag)
	}

	f, err := os.OpenFile(args[0], os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	store, err := buffer.Open(f)
	if err != nil {
		return err
	}
	defer store.Close()

	if offset >= uint64(store.Len()) {
		return fmt.Errorf("offset 0x%X is beyond the end of the file (%d bytes)", offset, store.Len())
	}

	m := editor.New(editor.Config{
		Store:     store,
		Encoding:  enc,
		Offset:    int(offset),
		Style:     editor.DefaultStyle(),
		KeyMap:    editor.DefaultKeyMap(),
		Clipboard: editor.SystemClipboard{},
	})
	p := tea.NewProgram(app{editor: m}, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// app adapts editor.Model's concrete Update signature to tea.Model.
type app struct {
	editor editor.Model
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&encodingFlag, "encoding", "ascii", "text pane encoding (ascii or utf8)")
	rootCmd.Flags().StringVarP(&offsetFlag, "offset", "o", "0", "initial cursor offset, decimal or 0x-prefixed hex")
}
