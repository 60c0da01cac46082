// Package config holds the settings of a token generation run: unit and precision rules for the
// value parsers, output folders and formats for the writer, and the source document location.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// ColorFormat is the textual form of generated color tokens.
type ColorFormat string

const (
	ColorRGBA ColorFormat = "rgba"
	ColorHex  ColorFormat = "hex"
)

// Overwrite tells the writer which kinds of existing generated files may be replaced.
// Token files are always regenerated.
type Overwrite struct {
	CSS         bool `yaml:"css" json:"css"`
	Description bool `yaml:"description" json:"description"`
	Graphic     bool `yaml:"graphic" json:"graphic"`
	React       bool `yaml:"react" json:"react"`
	Storybook   bool `yaml:"storybook" json:"storybook"`
	Styled      bool `yaml:"styled" json:"styled"`
}

// Config represents the complete configuration of a run.
type Config struct {
	Token string `yaml:"token" json:"token"`
	URL   string `yaml:"url" json:"url"`

	RecompileLocal     bool   `yaml:"recompileLocal" json:"recompileLocal"`
	OutputFolderBase   string `yaml:"outputFolderBase" json:"outputFolderBase"`
	OutputFileName     string `yaml:"outputFileName" json:"outputFileName"`
	OutputFolderTokens string `yaml:"outputFolderTokens" json:"outputFolderTokens"`
	OutputFormatTokens string `yaml:"outputFormatTokens" json:"outputFormatTokens"`
	// OutputDataTypeToken is empty or "enum".
	OutputDataTypeToken string `yaml:"outputDataTypeToken" json:"outputDataTypeToken"`

	SyncGraphics         bool      `yaml:"syncGraphics" json:"syncGraphics"`
	OutputFolderGraphics string    `yaml:"outputFolderGraphics" json:"outputFolderGraphics"`
	OutputFormatGraphics string    `yaml:"outputFormatGraphics" json:"outputFormatGraphics"`
	OutputScaleGraphics  float64   `yaml:"outputScaleGraphics" json:"outputScaleGraphics"`
	Overwrite            Overwrite `yaml:"overwrite" json:"overwrite"`

	RemSize                float64     `yaml:"remSize" json:"remSize"`
	FontUnit               string      `yaml:"fontUnit" json:"fontUnit"`
	SpacingUnit            string      `yaml:"spacingUnit" json:"spacingUnit"`
	RadiusUnit             string      `yaml:"radiusUnit" json:"radiusUnit"`
	ShadowUnit             string      `yaml:"shadowUnit" json:"shadowUnit"`
	BorderWidthUnit        string      `yaml:"borderWidthUnit" json:"borderWidthUnit"`
	LetterSpacingUnit      string      `yaml:"letterSpacingUnit" json:"letterSpacingUnit"`
	LineHeightUnit         string      `yaml:"lineHeightUnit" json:"lineHeightUnit"`
	OpacitiesUnit          string      `yaml:"opacitiesUnit" json:"opacitiesUnit"`
	DurationUnit           string      `yaml:"durationUnit" json:"durationUnit"`
	DelayUnit              string      `yaml:"delayUnit" json:"delayUnit"`
	UnitlessPrecision      int         `yaml:"unitlessPrecision" json:"unitlessPrecision"`
	OutputFormatColors     ColorFormat `yaml:"outputFormatColors" json:"outputFormatColors"`
	CamelizeTokenNames     bool        `yaml:"camelizeTokenNames" json:"camelizeTokenNames"`
	UsePostscriptFontNames bool        `yaml:"usePostscriptFontNames" json:"usePostscriptFontNames"`
	IgnoreElements         []string    `yaml:"ignoreElements" json:"ignoreElements"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		OutputFolderBase:     ".figma-tokens",
		OutputFileName:       "figma.json",
		OutputFolderTokens:   "tokens",
		OutputFormatTokens:   "ts",
		OutputFolderGraphics: "graphics",
		OutputFormatGraphics: "svg",
		OutputScaleGraphics:  1,

		RemSize:            16,
		FontUnit:           "rem",
		SpacingUnit:        "rem",
		RadiusUnit:         "rem",
		ShadowUnit:         "rem",
		BorderWidthUnit:    "rem",
		LetterSpacingUnit:  "em",
		LineHeightUnit:     "unitless",
		OpacitiesUnit:      "float",
		UnitlessPrecision:  2,
		OutputFormatColors: ColorRGBA,
		CamelizeTokenNames: true,
		IgnoreElements:     []string{"ignore", "description"},
	}
}

// Load creates a Config from defaults merged with the file at path on fsys.
// An empty path returns the defaults. A nil fsys reads from the OS filesystem.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}
	if err := cfg.LoadFile(fsys, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile merges the YAML or JSON file at path over the current values.
// Keys absent from the file keep their current value.
func (c *Config) LoadFile(fsys afero.Fs, path string) error {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return errors.Errorf("reading config file: %w", err)
	}
	return c.Merge(data, filepath.Ext(path))
}

// Merge decodes data over the current values. ext selects the codec (".yaml", ".yml", ".json");
// anything else is tried as YAML then JSON.
func (c *Config) Merge(data []byte, ext string) error {
	// Decoding into the receiver keeps every key the document leaves out.
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return c.mergeYAML(data)
	case ".json":
		return c.mergeJSON(data)
	default:
		if err := c.mergeYAML(data); err != nil {
			if jsonErr := c.mergeJSON(data); jsonErr != nil {
				return errors.Errorf("unable to parse config as YAML or JSON: %w", err)
			}
		}
		return nil
	}
}

func (c *Config) mergeYAML(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return errors.Errorf("parsing YAML config: %w", err)
	}
	return nil
}

func (c *Config) mergeJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(c); err != nil {
		return errors.Errorf("parsing JSON config: %w", err)
	}
	return nil
}

// ApplyEnv fills the token and URL from FIGMA_TOKEN and FIGMA_URL when they are unset.
func (c *Config) ApplyEnv() {
	if c.Token == "" {
		c.Token = os.Getenv("FIGMA_TOKEN")
	}
	if c.URL == "" {
		c.URL = os.Getenv("FIGMA_URL")
	}
}

var (
	sizeUnits       = []string{"px", "rem", "em"}
	lineHeightUnits = []string{"unitless", "em", "%"}
	opacityUnits    = []string{"float", "percent"}
	tokenFormats    = []string{"ts", "js", "mjs", "json", "css"}
	graphicFormats  = []string{"svg", "png", "jpg", "pdf"}
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.RemSize <= 0 {
		result = multierror.Append(result, errors.Errorf("remSize must be positive, got %g", c.RemSize))
	}
	if c.UnitlessPrecision < 0 {
		result = multierror.Append(result, errors.Errorf("unitlessPrecision must not be negative, got %d", c.UnitlessPrecision))
	}

	for _, u := range []struct{ name, value string }{
		{"fontUnit", c.FontUnit},
		{"spacingUnit", c.SpacingUnit},
		{"radiusUnit", c.RadiusUnit},
		{"shadowUnit", c.ShadowUnit},
		{"borderWidthUnit", c.BorderWidthUnit},
	} {
		if !oneOf(u.value, sizeUnits) {
			result = multierror.Append(result, errors.Errorf("%s must be one of %v, got %q", u.name, sizeUnits, u.value))
		}
	}
	if c.LetterSpacingUnit != "px" && c.LetterSpacingUnit != "em" {
		result = multierror.Append(result, errors.Errorf("letterSpacingUnit must be px or em, got %q", c.LetterSpacingUnit))
	}
	if !oneOf(c.LineHeightUnit, lineHeightUnits) {
		result = multierror.Append(result, errors.Errorf("lineHeightUnit must be one of %v, got %q", lineHeightUnits, c.LineHeightUnit))
	}
	if !oneOf(c.OpacitiesUnit, opacityUnits) {
		result = multierror.Append(result, errors.Errorf("opacitiesUnit must be one of %v, got %q", opacityUnits, c.OpacitiesUnit))
	}
	if c.OutputFormatColors != ColorRGBA && c.OutputFormatColors != ColorHex {
		result = multierror.Append(result, errors.Errorf("outputFormatColors must be rgba or hex, got %q", c.OutputFormatColors))
	}
	if !oneOf(c.OutputFormatTokens, tokenFormats) {
		result = multierror.Append(result, errors.Errorf("outputFormatTokens must be one of %v, got %q", tokenFormats, c.OutputFormatTokens))
	}
	if c.OutputDataTypeToken != "" && c.OutputDataTypeToken != "enum" {
		result = multierror.Append(result, errors.Errorf("outputDataTypeToken must be empty or enum, got %q", c.OutputDataTypeToken))
	}
	if c.OutputFolderTokens == "" {
		result = multierror.Append(result, errors.New("outputFolderTokens must not be empty"))
	}
	if c.SyncGraphics {
		if !oneOf(c.OutputFormatGraphics, graphicFormats) {
			result = multierror.Append(result, errors.Errorf("outputFormatGraphics must be one of %v, got %q", graphicFormats, c.OutputFormatGraphics))
		}
		if c.OutputScaleGraphics <= 0 {
			result = multierror.Append(result, errors.Errorf("outputScaleGraphics must be positive, got %g", c.OutputScaleGraphics))
		}
	}

	return result.ErrorOrNil()
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
