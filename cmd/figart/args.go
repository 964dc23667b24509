package figart

import "strings"

// valueFlags are root flags whose value may follow as a separate token
var valueFlags = map[string]bool{
	"-f": true, "--font": true,
	"-s": true, "--save": true,
	"-p": true, "--preview": true,
	"--format": true, "--config": true,
}

// NormalizeArgs joins a separated --list-fonts value onto the flag, so
// "-l 3 Hello" parses as "--list-fonts=3 Hello". pflag cannot attach a
// separate token to a flag whose value is optional. A following token that
// starts with "-" is left alone and the flag stays bare.
func NormalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case valueFlags[arg] && i+1 < len(args):
			out = append(out, arg, args[i+1])
			i++
		case (arg == "-l" || arg == "--list-fonts") && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"):
			out = append(out, "--list-fonts="+args[i+1])
			i++
		default:
			out = append(out, arg)
		}
	}
	return out
}
