package style

import "github.com/pterm/pterm"

// Status classifies a one-line message to the user
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// StatusStyle returns the pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusWarning:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// StatusLine colors msg for status when color is on and returns it untouched otherwise
func StatusLine(status Status, msg string, color bool) string {
	if !color {
		return msg
	}
	return StatusStyle(status).Sprint(msg)
}
