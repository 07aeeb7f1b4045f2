// Package editor provides a terminal hex editor component for Bubble Tea.
//
// The component renders three panes side by side: a byte-offset address
// column, a hexadecimal pane, and a decoded-text pane, with a grid of
// interpretation labels underneath. Edits are applied in place through a
// buffer.Store and are reversible through a buffer.History.
package editor
