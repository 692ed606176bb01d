// Package tui holds the interactive pieces of the export flow: a
// full-screen picker for locating the health export on disk.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerModel struct {
	picker   filepicker.Model
	selected string
	quitting bool
}

func (m pickerModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.selected = path
		return m, tea.Quit
	}
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}
	return styleTitle.Render("Open Apple Health data") + "\n\n" +
		m.picker.View() + "\n" +
		styleStatusBar.Render("enter: select  ·  esc: cancel")
}

// PickExportFile runs a full-screen picker over .xml files starting at
// dir. ok is false when the user backed out without choosing.
func PickExportFile(dir string) (path string, ok bool, err error) {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".xml"}
	fp.CurrentDirectory = dir
	fp.Styles.Selected = styleSelected
	fp.Styles.Cursor = styleSelected

	final, err := tea.NewProgram(pickerModel{picker: fp}, tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: %w", err)
	}

	fm := final.(pickerModel)
	if fm.selected == "" {
		return "", false, nil
	}
	return fm.selected, true, nil
}
