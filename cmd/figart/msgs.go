package figart

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate ASCII art from text"
	MsgFontsShort      = "List available fonts"
	MsgPreviewShort    = "Preview text in different fonts"
	MsgPickShort       = "Choose a font and text interactively"
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgSaved        = "Art saved to: %s"
	MsgSaveError    = "Error saving file: %s"
	MsgExamplesHead = "Try these examples:"
	MsgPickBanner   = "ASCII Text Generator"
	MsgPickFont     = "Choose a font (number or name)"
	MsgPickText     = "Enter text to convert"
	MsgPickHeader   = "Font: %s\n"
	MsgConfigWrote  = "Wrote default configuration to %s\n"
	MsgVersionLine  = "figart version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrBuild        = "failed to initialize: %w"
	MsgErrConfigExists = "config file %s already exists"
	MsgErrFormat       = "invalid --format: %w"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat    = "Output format: auto, term or text"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/figart/config.toml)"
	MsgFlagFont      = "Font to use (default: standard)"
	MsgFlagSave      = "Save output to `FILE`"
	MsgFlagList      = "List available fonts (optionally specify number to show, or \"all\")"
	MsgFlagPreview   = "Preview `TEXT` in different fonts"
	MsgFlagWrite     = "Write the configuration to the user config file"
	MsgFlagEffective = "Print the effective configuration instead of the commented defaults"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/pick-long.txt
	msgPickLongRaw string
	MsgPickLong    = strings.TrimSpace(msgPickLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
