package tui

import "github.com/atotto/clipboard"

// clipboardWrite is swappable so tests never touch the system clipboard.
var clipboardWrite = clipboard.WriteAll
