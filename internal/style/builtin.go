// ABOUTME: Built-in halo styles shipped with the binary
// ABOUTME: Each style is a named frame sequence drawn over the sensor region

package style

// builtins returns the default style set, in stable index order.
// Index 0 is the normalization fallback and must always exist.
func builtins() []definition {
	return []definition{
		{
			Name:       "aura",
			IntervalMS: 120,
			Frames: []string{
				"  ·───·  \n ╱     ╲ \n│   ◉   │\n ╲     ╱ \n  ·───·  ",
				"  ╭───╮  \n ╱     ╲ \n│   ◉   │\n ╲     ╱ \n  ╰───╯  ",
				" ╭─────╮ \n│       │\n│   ◉   │\n│       │\n ╰─────╯ ",
				"  ╭───╮  \n ╱     ╲ \n│   ◉   │\n ╲     ╱ \n  ╰───╯  ",
			},
		},
		{
			Name:       "pulse",
			IntervalMS: 150,
			Frames: []string{
				"         \n         \n    ·    \n         \n         ",
				"         \n    ○    \n   ○◉○   \n    ○    \n         ",
				"    ○    \n   ○ ○   \n  ○  ◉  ○\n   ○ ○   \n    ○    ",
				"         \n    ○    \n   ○◉○   \n    ○    \n         ",
			},
		},
		{
			Name:       "dot",
			IntervalMS: 400,
			Frames: []string{
				"         \n         \n    ●    \n         \n         ",
				"         \n         \n    ◉    \n         \n         ",
			},
		},
	}
}
