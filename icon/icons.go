package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Link
	Export
	Video
	Key
	Info
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(^_^)b",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・)…",
		squares: "🟨",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(°ロ°)",
		squares: "🟦",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(っ˘ω˘)っ",
		squares: "🟪",
	},
	Export: {
		emoji:   "💾",
		nerd:    "",
		plain:   "=>",
		kaomoji: "( ´ ▽ ` )ﾉ",
		squares: "🟫",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "▶",
		kaomoji: "(▰˘◡˘▰)",
		squares: "🟥",
	},
	Key: {
		emoji:   "🔑",
		nerd:    "",
		plain:   "*",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "🟨",
	},
	Info: {
		emoji:   "ℹ️",
		nerd:    "",
		plain:   "i",
		kaomoji: "(・ω・)",
		squares: "⬜",
	},
}
