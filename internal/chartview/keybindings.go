package chartview

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding defines a key binding of the chart view.
type KeyBinding struct {
	Keys        []string
	Description string
	Handler     func(*Model, tea.KeyMsg) tea.Cmd
}

// BindingCategory groups related key bindings for the help line.
type BindingCategory struct {
	Name     string
	Bindings []KeyBinding
}

// KeyBindings returns the key bindings of the chart view.
func KeyBindings() []BindingCategory {
	return []BindingCategory{
		{
			Name: "General",
			Bindings: []KeyBinding{
				{
					Keys:        []string{"q", "ctrl+c"},
					Description: "Quit",
					Handler:     (*Model).handleQuit,
				},
				{
					Keys:        []string{"a"},
					Description: "Replay the intro animation",
					Handler:     (*Model).handleAnimate,
				},
				{
					Keys:        []string{"u"},
					Description: "Cycle the y label unit",
					Handler:     (*Model).handleCycleUnit,
				},
				{
					Keys:        []string{"esc"},
					Description: "Clear the selection",
					Handler:     (*Model).handleClearSelection,
				},
			},
		},
		{
			Name: "Viewport",
			Bindings: []KeyBinding{
				{
					Keys:        []string{"+", "="},
					Description: "Zoom in",
					Handler:     (*Model).handleZoomIn,
				},
				{
					Keys:        []string{"-"},
					Description: "Zoom out",
					Handler:     (*Model).handleZoomOut,
				},
				{
					Keys:        []string{"0"},
					Description: "Reset zoom",
					Handler:     (*Model).handleResetZoom,
				},
				{
					Keys:        []string{"left", "h"},
					Description: "Pan left",
					Handler:     (*Model).handlePanLeft,
				},
				{
					Keys:        []string{"right", "l"},
					Description: "Pan right",
					Handler:     (*Model).handlePanRight,
				},
				{
					Keys:        []string{"home"},
					Description: "Jump to the first value",
					Handler:     (*Model).handleHome,
				},
				{
					Keys:        []string{"end"},
					Description: "Jump to the last value",
					Handler:     (*Model).handleEnd,
				},
			},
		},
	}
}

// buildKeyMap flattens the bindings into a lookup by key.
func buildKeyMap(categories []BindingCategory) map[string]func(*Model, tea.KeyMsg) tea.Cmd {
	keyMap := make(map[string]func(*Model, tea.KeyMsg) tea.Cmd)
	for _, category := range categories {
		for _, binding := range category.Bindings {
			if binding.Handler == nil {
				continue
			}
			for _, key := range binding.Keys {
				keyMap[key] = binding.Handler
			}
		}
	}
	return keyMap
}
