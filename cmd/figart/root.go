package figart

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/figart/internal/version"
	"github.com/arthur-debert/figart/pkg/help"
	"github.com/arthur-debert/figart/pkg/logging"
	"github.com/arthur-debert/figart/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// listFontsBare is what --list-fonts holds when given without a value
const listFontsBare = "default"

// NewRootCmd creates and returns the root command
func NewRootCmd(opts ...Option) *cobra.Command {
	initTemplateFormatting()

	var d deps
	for _, opt := range opts {
		opt(&d)
	}

	var (
		verbosity  int
		formatFlag string
		configFile string

		font      string
		savePath  string
		listFonts string
		preview   string

		state *app
	)

	// load builds the app once per invocation, after flags are parsed
	load := func(cmd *cobra.Command) (*app, error) {
		if state != nil {
			return state, nil
		}
		format, err := ui.ParseFormat(formatFlag)
		if err != nil {
			return nil, fmt.Errorf(MsgErrFormat, err)
		}
		a, err := newApp(d, configFile, format, cmd.OutOrStdout())
		if err != nil {
			return nil, fmt.Errorf(MsgErrBuild, err)
		}
		state = a
		return a, nil
	}

	rootCmd := &cobra.Command{
		Use:     "figart [text]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("list-fonts") {
				// "-l 3" arrives as "--list-fonts=3" through NormalizeArgs
				raw := listFonts
				if raw == listFontsBare {
					raw = ""
				}
				return a.listFonts(raw)
			}

			if preview != "" {
				return a.preview(preview)
			}

			if len(args) == 0 || args[0] == "" {
				return showIntro(cmd, a)
			}

			if !cmd.Flags().Changed("font") {
				font = a.cfg.Font.Default
			}
			a.renderText(args[0], font, savePath)
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "auto", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	// Render flags
	rootCmd.Flags().StringVarP(&font, "font", "f", "standard", MsgFlagFont)
	rootCmd.Flags().StringVarP(&savePath, "save", "s", "", MsgFlagSave)
	rootCmd.Flags().StringVarP(&listFonts, "list-fonts", "l", "", MsgFlagList)
	rootCmd.Flags().Lookup("list-fonts").NoOptDefVal = listFontsBare
	rootCmd.Flags().StringVarP(&preview, "preview", "p", "", MsgFlagPreview)

	helpCmd := help.NewCommand(rootCmd, help.Builtin(), func(w io.Writer) bool {
		format, err := ui.ParseFormat(formatFlag)
		if err != nil {
			format = ui.FormatAuto
		}
		return ui.UseColor(format, w)
	})
	helpCmd.GroupID = "misc"
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.AddGroup(&cobra.Group{ID: "fonts", Title: "FONT COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newFontsCmd(load))
	rootCmd.AddCommand(newPreviewCmd(load))
	rootCmd.AddCommand(newPickCmd(load))
	rootCmd.AddCommand(newGenConfigCmd(load))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// showIntro prints the help followed by a few examples
func showIntro(cmd *cobra.Command, a *app) error {
	if err := cmd.Help(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s\n%s\n", strings.Repeat("=", 60), MsgExamplesHead)
	fmt.Fprint(out, help.Examples(a.color(), 80))
	return nil
}
