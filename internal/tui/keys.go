package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play       key.Binding
	Hit        key.Binding
	Stand      key.Binding
	Skip       key.Binding
	Pause      key.Binding
	Menu       key.Binding
	NextTrack  key.Binding
	PrevTrack  key.Binding
	MusicPause key.Binding
	Mute       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Play:       key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "deal")),
		Hit:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hit")),
		Stand:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stand")),
		Skip:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "skip dealing")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Menu:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		NextTrack:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next song")),
		PrevTrack:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "previous song")),
		MusicPause: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "pause music")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "louder")),
		VolumeDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "quieter")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap. Disabled bindings are skipped by the help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Hit, k.Stand, k.Skip, k.Pause, k.Menu, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.NextTrack, k.PrevTrack, k.MusicPause, k.Mute, k.VolumeUp, k.VolumeDown},
	}
}
