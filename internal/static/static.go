package static

import "embed"

// Files bundled into the binary. The screener export under main/ is the
// ticker reference list.
//
//go:embed main
var FS embed.FS

const TickerReferencePath = "main/nasdaq_screener.csv"
