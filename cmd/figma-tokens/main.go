package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/figma"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const version = figma.Version

// defaultConfigFiles are looked up in the working directory when --config is not given.
var defaultConfigFiles = []string{"figma-tokens.yaml", "figma-tokens.yml", "figma-tokens.json", ".figmatokensrc"}

type cliOptions struct {
	configFile     string
	figmaURL       string
	accessToken    string
	input          string
	outputFolder   string
	format         string
	dataType       string
	colorFormat    string
	remSize        float64
	recompileLocal bool
	syncGraphics   bool
	graphicsFormat string
	saveRaw        bool
	refresh        bool
	logJSON        bool
	strict         bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&cliOptions{})
}

func buildRootCmd(opts *cliOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "figma-tokens",
		Short:         "Generate design tokens from Figma files",
		Long:          "A tool to generate design token files (TypeScript, JavaScript, JSON, CSS) and graphics from the \"Design Tokens\" page of a Figma file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, opts, opts.input)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Configuration file (YAML or JSON)")
	flags.StringVarP(&opts.figmaURL, "url", "u", "", "Figma file URL (or FIGMA_URL)")
	flags.StringVarP(&opts.accessToken, "token", "t", "", "Figma Personal Access Token (or FIGMA_TOKEN)")
	flags.StringVarP(&opts.input, "input", "i", "", "Local Figma JSON export to read instead of the API")
	flags.StringVarP(&opts.outputFolder, "output", "o", "", "Output folder for token files (default \"tokens\")")
	flags.StringVarP(&opts.format, "format", "f", "", "Token file format: ts, js, mjs, json, css (default \"ts\")")
	flags.StringVar(&opts.dataType, "data-type", "", "Token data type: empty or enum (TypeScript only)")
	flags.StringVar(&opts.colorFormat, "color-format", "", "Color format: rgba or hex (default \"rgba\")")
	flags.Float64Var(&opts.remSize, "rem-size", 0, "Pixels per rem (default 16)")
	flags.BoolVarP(&opts.recompileLocal, "recompile-local", "r", false, "Read the document saved by a previous --save-raw run")
	flags.BoolVar(&opts.syncGraphics, "sync-graphics", false, "Export the components of the \"Graphics\" page")
	flags.StringVar(&opts.graphicsFormat, "graphics-format", "", "Graphics format: svg, png, jpg, pdf (default \"svg\")")
	flags.BoolVar(&opts.saveRaw, "save-raw", false, "Save the fetched Figma document for --recompile-local")
	flags.BoolVar(&opts.refresh, "refresh", false, "Remove token files of previous runs before writing")
	flags.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON lines instead of colored text")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with an error when any token set fails")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "figma-tokens version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd, newWatchCmd(opts))
	return rootCmd
}

// loadConfig merges defaults, the configuration file, environment fallbacks and the flags that
// were explicitly set, in that order.
func (o *cliOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fsys := afero.NewOsFs()
	path := o.configFile
	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if ok, _ := afero.Exists(fsys, candidate); ok {
				path = candidate
				break
			}
		}
	}

	cfg, err := config.Load(fsys, path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = o.figmaURL
	}
	if flags.Changed("token") {
		cfg.Token = o.accessToken
	}
	if flags.Changed("output") {
		cfg.OutputFolderTokens = o.outputFolder
	}
	if flags.Changed("format") {
		cfg.OutputFormatTokens = o.format
	}
	if flags.Changed("data-type") {
		cfg.OutputDataTypeToken = o.dataType
	}
	if flags.Changed("color-format") {
		cfg.OutputFormatColors = config.ColorFormat(o.colorFormat)
	}
	if flags.Changed("rem-size") {
		cfg.RemSize = o.remSize
	}
	if flags.Changed("recompile-local") {
		cfg.RecompileLocal = o.recompileLocal
	}
	if flags.Changed("sync-graphics") {
		cfg.SyncGraphics = o.syncGraphics
	}
	if flags.Changed("graphics-format") {
		cfg.OutputFormatGraphics = o.graphicsFormat
	}
	cfg.ApplyEnv()

	return cfg, nil
}

func (o *cliOptions) logger(w io.Writer) figmatokens.Logger {
	if o.logJSON {
		return newJSONLogger(w)
	}
	return &cliLogger{out: w}
}

func generate(cmd *cobra.Command, opts *cliOptions, input string) error {
	out := cmd.OutOrStdout()
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	if !opts.logJSON {
		cyan.Fprintln(out, "\n🎨 Figma Design Tokens")
		cyan.Fprintln(out, "======================")
		cyan.Fprintln(out)
	}

	result, err := figmatokens.Run(cmd.Context(), figmatokens.Options{
		Config:  cfg,
		Input:   input,
		SaveRaw: opts.saveRaw,
		Refresh: opts.refresh,
		Fs:      afero.NewOsFs(),
		Logger:  opts.logger(out),
	})
	if result == nil {
		return err
	}

	if !opts.logJSON {
		printSummary(out, result)
		if err == nil {
			green.Fprintf(out, "\n✨ Successfully generated %d token file(s) in %s\n\n", len(result.Written), cfg.OutputFolderTokens)
		}
	}

	if err != nil && opts.strict {
		return err
	}
	return nil
}

func printSummary(out io.Writer, result *figmatokens.Result) {
	color.New(color.FgCyan).Fprintln(out, "\n📊 Generation Summary:")
	for _, set := range result.Primitives {
		fmt.Fprintf(out, "  • %s: %d\n", set.Name, set.File.Len())
	}
	for _, set := range result.Semantics {
		fmt.Fprintf(out, "  • %s: %d (semantic)\n", set.Name, set.File.Len())
	}
	if result.Graphics != nil {
		fmt.Fprintf(out, "  • Graphics: %d exported, %d kept\n", len(result.Graphics.Assets), len(result.Graphics.Skipped))
	}
}
