// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// synchronously draining returned Cmds, so tea.Model implementations can
// be tested deterministically without goroutines. Cursor blink Cmds,
// which block on timer channels, are executed with a short timeout and
// skipped if they don't return promptly.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth is the safety limit for command draining.
const maxDrainDepth = 100

// cmdTimeout separates legitimate Cmds (message factories, DB reads;
// they complete in microseconds) from cursor blink Cmds that block
// for ~530ms.
const cmdTimeout = 10 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain. The
	// bubbletea runtime normally intercepts that message, so the
	// driver detects it explicitly.
	Quitting bool
}

// New creates a Driver and processes the model's Init() command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.drainCmd(d.Model.Init(), 0)
	return d
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// PressKey sends a character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressUp sends the Up arrow key.
func (d *Driver) PressUp() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyUp})
}

// PressDown sends the Down arrow key.
func (d *Driver) PressDown() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// PressSpace sends the space key.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

// Type sends a string character by character as individual key events.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || depth >= maxDrainDepth {
		if depth >= maxDrainDepth {
			d.T.Logf("teatest.Driver: drain depth limit (%d) reached", maxDrainDepth)
		}
		return
	}

	msg := execCmdWithTimeout(cmd)
	if msg == nil {
		return
	}

	if isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, subCmd := range batch {
			if subCmd == nil {
				continue
			}
			d.drainCmd(subCmd, depth+1)
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, nextCmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(nextCmd, depth+1)
}

// execCmdWithTimeout runs a tea.Cmd in a goroutine with a timeout and
// returns nil if the Cmd doesn't complete within cmdTimeout.
func execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects cursor blink messages from the bubbles/cursor
// package. They are unexported types that chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
