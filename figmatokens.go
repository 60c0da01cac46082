package figmatokens

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/imager"
	"github.com/kataras/figma-tokens/pkg/token"
	"github.com/kataras/figma-tokens/pkg/writer"
)

// Options configures a generation run.
type Options struct {
	Config  *config.Config // nil = defaults
	Input   string         // local Figma JSON export; empty = fetch Config.URL
	SaveRaw bool           // keep the fetched document at OutputFolderBase/OutputFileName
	Refresh bool           // remove token files of previous runs before writing
	Fs      afero.Fs       // nil = operating system filesystem
	Client  *figma.Client  // nil = figma.NewClient(Config.Token)
	Logger  Logger         // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the generation output.
type Result struct {
	FileName    string // Figma file name
	Primitives  []*token.NamedTokenSet
	Semantics   []*token.NamedTokenSet
	Operations  []token.WriteOperation
	Written     []string // token file paths
	Graphics    *imager.ExportResult
	Diagnostics []token.Diagnostic
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run executes the token generation pipeline.
//
// Problems that prevent any output (invalid configuration, unreadable document, no tokens
// page) return a nil Result. Failures limited to some token categories or files do not stop
// the run: everything else is written and the failures come back joined in the error next
// to a non-nil Result.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Config == nil {
		opts.Config = config.New()
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	cfg := opts.Config

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("invalid configuration: %w", err)
	}

	doc, fileKey, err := loadDocument(ctx, &opts)
	if err != nil {
		return nil, err
	}
	opts.logInfo("File: %s", doc.Name)

	page, err := figma.FindPage(&doc.Document, figma.PageDesignTokens)
	if err != nil {
		return nil, errors.Errorf("find tokens page: %w", err)
	}

	result := &Result{FileName: doc.Name}
	var errs error

	opts.logInfo("Building primitive tokens from %d frame(s)...", len(page))
	primitives, diags, err := token.BuildPrimitives(page, cfg)
	result.Primitives = primitives
	result.Diagnostics = append(result.Diagnostics, diags...)
	errs = multierr.Append(errs, err)

	opts.logInfo("Resolving semantic tokens...")
	semantics, diags, err := token.ResolveSemantics(page, primitives, cfg)
	result.Semantics = semantics
	result.Diagnostics = append(result.Diagnostics, diags...)
	errs = multierr.Append(errs, err)

	for _, d := range result.Diagnostics {
		if d.Severity == token.SeverityWarning {
			opts.logWarn("%s", d)
		} else {
			opts.logInfo("%s", d)
		}
	}

	sets := make([]*token.NamedTokenSet, 0, len(primitives)+len(semantics))
	sets = append(sets, primitives...)
	sets = append(sets, semantics...)
	result.Operations = token.WriteOperations(sets, cfg)

	w := writer.New(opts.Fs)
	if opts.Refresh {
		removed, err := w.Refresh(cfg.OutputFolderTokens)
		if err != nil {
			return nil, errors.Errorf("refresh %s: %w", cfg.OutputFolderTokens, err)
		}
		if len(removed) > 0 {
			opts.logInfo("Removed %d stale token file(s)", len(removed))
		}
	}

	written, err := w.WriteAll(result.Operations)
	result.Written = written
	errs = multierr.Append(errs, err)
	opts.logInfo("Wrote %d token file(s) to %s", len(written), cfg.OutputFolderTokens)

	if cfg.SyncGraphics {
		graphics, err := syncGraphics(ctx, &opts, doc, fileKey)
		result.Graphics = graphics
		errs = multierr.Append(errs, err)
	}

	for _, e := range multierr.Errors(errs) {
		opts.logError("%v", e)
	}

	return result, errs
}

// loadDocument reads the document from Options.Input, from the saved raw document when
// RecompileLocal is set, or from the Figma API. The file key is empty when no URL is configured.
func loadDocument(ctx context.Context, opts *Options) (*figma.FileResponse, string, error) {
	cfg := opts.Config
	rawPath := filepath.Join(cfg.OutputFolderBase, cfg.OutputFileName)

	var fileKey string
	if cfg.URL != "" {
		key, err := figma.ExtractFileKey(cfg.URL)
		if err != nil {
			return nil, "", errors.Errorf("extract file key: %w", err)
		}
		fileKey = key
	}

	input := opts.Input
	if input == "" && cfg.RecompileLocal {
		input = rawPath
	}
	if input != "" {
		opts.logInfo("Reading document from %s...", input)
		doc, err := figma.LoadFile(opts.Fs, input)
		if err != nil {
			return nil, "", err
		}
		return doc, fileKey, nil
	}

	if fileKey == "" {
		return nil, "", errors.New("no input: set a Figma URL or a local document")
	}
	if cfg.Token == "" && opts.Client == nil {
		return nil, "", errors.New("no Figma access token")
	}

	client := opts.Client
	if client == nil {
		client = figma.NewClient(cfg.Token)
	}

	opts.logInfo("Fetching file %s from Figma...", fileKey)
	doc, err := client.GetFile(ctx, fileKey)
	if err != nil {
		return nil, "", errors.Errorf("fetch file: %w", err)
	}

	if opts.SaveRaw {
		if err := figma.SaveFile(opts.Fs, rawPath, doc); err != nil {
			return nil, "", err
		}
		opts.logInfo("Saved document to %s", rawPath)
	}
	return doc, fileKey, nil
}

// syncGraphics exports the components of the graphics page. A missing page is only a warning.
func syncGraphics(ctx context.Context, opts *Options, doc *figma.FileResponse, fileKey string) (*imager.ExportResult, error) {
	cfg := opts.Config

	if fileKey == "" {
		opts.logWarn("Graphics sync needs a Figma URL, skipped")
		return nil, nil
	}

	page, err := figma.FindPage(&doc.Document, figma.PageGraphics)
	if err != nil {
		opts.logWarn("No %q page, graphics skipped", figma.PageGraphics)
		return nil, nil
	}

	graphics := imager.CollectGraphics(page)
	if len(graphics) == 0 {
		opts.logInfo("No graphics to export")
		return &imager.ExportResult{}, nil
	}

	client := opts.Client
	if client == nil {
		client = figma.NewClient(cfg.Token)
	}
	exporter := &imager.Exporter{Renderer: client, Fs: opts.Fs}

	opts.logInfo("Exporting %d graphic(s) as %s...", len(graphics), cfg.OutputFormatGraphics)
	result, err := exporter.Export(ctx, fileKey, graphics, imager.ExportConfig{
		Format:    cfg.OutputFormatGraphics,
		Scale:     cfg.OutputScaleGraphics,
		OutputDir: cfg.OutputFolderGraphics,
		Overwrite: cfg.Overwrite.Graphic,
		Camelize:  cfg.CamelizeTokenNames,
	})
	if err != nil {
		return nil, errors.Errorf("export graphics: %w", err)
	}

	for _, e := range result.Errors {
		opts.logWarn("%v", e)
	}
	if len(result.Skipped) > 0 {
		opts.logInfo("Kept %d existing graphic(s), overwrite.graphic is off", len(result.Skipped))
	}
	opts.logInfo("Exported %d graphic(s) to %s", len(result.Assets), cfg.OutputFolderGraphics)
	return result, nil
}
