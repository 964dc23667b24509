package figart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/figart/internal/version"
	"github.com/arthur-debert/figart/pkg/config"
	"github.com/arthur-debert/figart/pkg/errors"
	"github.com/arthur-debert/figart/pkg/output"
	"github.com/arthur-debert/figart/pkg/paths"
	"github.com/arthur-debert/figart/pkg/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// loader returns the invocation's app, building it on first use
type loader func(cmd *cobra.Command) (*app, error)

func newFontsCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:     "fonts [N|all]",
		Short:   MsgFontsShort,
		Long:    MsgFontsShort + ". Without an argument the configured number of fonts is shown.",
		Example: "  figart fonts\n  figart fonts 10\n  figart fonts all",
		GroupID: "fonts",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			raw := ""
			if len(args) > 0 {
				raw = args[0]
			}
			return a.listFonts(raw)
		},
	}
}

func newPreviewCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:     "preview <text>",
		Short:   MsgPreviewShort,
		Example: `  figart preview "Sample"`,
		GroupID: "fonts",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			return a.preview(args[0])
		},
	}
}

func newPickCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:     "pick",
		Short:   MsgPickShort,
		Long:    MsgPickLong,
		GroupID: "fonts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			return a.pick()
		},
	}
}

// pick runs the interactive font chooser
func (a *app) pick() error {
	rule := strings.Repeat("=", 30)
	fmt.Fprintf(a.out, "%s\n %s\n%s\n", rule, MsgPickBanner, rule)

	if err := a.printer().List(a.generator.ListStyles(a.catalog.Len()), a.catalog.Len()); err != nil {
		return err
	}
	fmt.Fprintln(a.out)

	choice, err := a.prompter.Ask(MsgPickFont)
	if err != nil {
		return err
	}
	font, ok := a.catalog.Resolve(choice)
	if !ok {
		fmt.Fprintf(a.out, render.MsgFallback, choice, font)
	}
	log.Debug().Str("choice", choice).Str("font", font).Bool("matched", ok).Msg("Font picked")

	text, err := a.prompter.Ask(MsgPickText)
	if err != nil {
		return err
	}

	res := a.generator.Render(text, font)
	fmt.Fprintf(a.out, "\n"+MsgPickHeader, font)
	fmt.Fprintln(a.out, strings.Repeat("-", 30))
	art := res.String()
	if !strings.HasSuffix(art, "\n") {
		art += "\n"
	}
	fmt.Fprint(a.out, art)
	return nil
}

func newGenConfigCmd(load loader) *cobra.Command {
	var write, effective bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long: "Print the default configuration with every value commented out, or write\n" +
			"it to the user config file with -w.",
		Example: "  figart gen-config\n  figart gen-config -w\n  figart gen-config --effective",
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if effective {
				a, err := load(cmd)
				if err != nil {
					return err
				}
				dump, err := config.Dump(a.cfg)
				if err != nil {
					return err
				}
				fmt.Fprint(out, dump)
				return nil
			}

			content := config.GenerateConfigContent()
			if !write {
				fmt.Fprint(out, content)
				return nil
			}

			path := paths.New().ConfigFile()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf(MsgErrConfigExists, path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(path))
			}
			if err := output.Save(path, content); err != nil {
				return err
			}
			fmt.Fprintf(out, MsgConfigWrote, path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionLine, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(figart completion bash)

Zsh:
  $ figart completion zsh > "${fpath[1]}/_figart"

Fish:
  $ figart completion fish | source

PowerShell:
  PS> figart completion powershell | Out-String | Invoke-Expression
`,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
