// Package stdimg: authoritative registry of the stdlib preprocessing
// engine's commands.
//
// This file mirrors the commands implemented in ApplyCommandStdlib in
// pkg/stdimg/engine.go. Keep this list up-to-date when you add or
// modify commands so callers (the CLI's preprocessing prompt) can read
// a single source of truth.

package stdimg

// ArgSpec describes a single argument for a command. Fields are textual
// and intended for help/validation UI rather than machine-enforced typing.
type ArgSpec struct {
	Name        string // human name
	Type        string // "int", "float", "bool", "string", "path", etc.
	Required    bool
	Default     string // textual default (for help only)
	Description string
}

// CommandSpec defines a single command and its expected arguments.
type CommandSpec struct {
	Name        string
	Args        []ArgSpec
	Usage       string // short usage string
	Description string // brief description
}

// Commands is the authoritative list of commands implemented by the
// stdlib preprocessing engine: the steps a source photograph goes
// through before it is handed to pbncore.Process. Keep this
// synchronized with ApplyCommandStdlib in pkg/stdimg/engine.go.
var Commands = []CommandSpec{
	{
		Name:        "resize",
		Args:        []ArgSpec{{"width", "int", false, "0", "target width (0 = preserve aspect)"}, {"height", "int", false, "0", "target height (0 = preserve aspect)"}},
		Usage:       "resize [width] [height]",
		Description: "Resize using Lanczos resampling (a=3), bounding the image before quantization.",
	},
	{
		Name:        "trim",
		Args:        []ArgSpec{{"fuzz", "float", true, "", "color distance tolerance (0..441, Euclidean over RGB)"}},
		Usage:       "trim <fuzz>",
		Description: "Crop a uniform border (scanner/matte background) within fuzz tolerance.",
	},
}
