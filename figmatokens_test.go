package figmatokens_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/config"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/token"
)

type recordingLogger struct {
	infos, warns, errs []string
}

func (l *recordingLogger) Infof(f string, a ...any)  { l.infos = append(l.infos, fmt.Sprintf(f, a...)) }
func (l *recordingLogger) Warnf(f string, a ...any)  { l.warns = append(l.warns, fmt.Sprintf(f, a...)) }
func (l *recordingLogger) Errorf(f string, a ...any) { l.errs = append(l.errs, fmt.Sprintf(f, a...)) }

func solid(name string, r, g, b float64) figma.Node {
	return figma.Node{
		ID:    name,
		Name:  name,
		Type:  figma.NodeRectangle,
		Fills: []figma.Paint{{Type: figma.PaintSolid, Color: &figma.Color{R: r, G: g, B: b, A: 1}}},
	}
}

func testDocument(extraFrames ...figma.Node) *figma.FileResponse {
	tokens := []figma.Node{
		{ID: "10:1", Name: "Colors", Type: figma.NodeFrame, Children: []figma.Node{
			solid("red", 1, 0, 0),
			solid("white", 1, 1, 1),
		}},
		{ID: "10:2", Name: "Spacing", Type: figma.NodeFrame, Children: []figma.Node{
			{ID: "10:3", Name: "small", Type: figma.NodeRectangle, AbsoluteBoundingBox: &figma.Rectangle{Width: 8}},
		}},
		{ID: "10:4", Name: "Semantic Colors", Type: figma.NodeFrame, Children: []figma.Node{
			solid("$alert", 1, 0, 0),
			solid("$alertContrastText", 1, 1, 1),
		}},
	}
	tokens = append(tokens, extraFrames...)

	return &figma.FileResponse{
		Name: "Design System",
		Document: figma.Node{ID: "0:0", Name: "Document", Type: figma.NodeDocument, Children: []figma.Node{
			{ID: "1:0", Name: "Cover", Type: figma.NodeCanvas},
			{ID: "2:0", Name: "Design Tokens", Type: figma.NodeCanvas, Children: tokens},
			{ID: "3:0", Name: "Graphics", Type: figma.NodeCanvas, Children: []figma.Node{
				{ID: "3:1", Name: "Icons", Type: figma.NodeFrame, Children: []figma.Node{
					{ID: "3:2", Name: "Arrow", Type: figma.NodeComponent},
				}},
			}},
		}},
	}
}

func TestRunLocalDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, figma.SaveFile(fs, "export/figma.json", testDocument()))
	require.NoError(t, afero.WriteFile(fs, "tokens/removed.ts", []byte("stale"), 0o644))

	logger := &recordingLogger{}
	result, err := figmatokens.Run(context.Background(), figmatokens.Options{
		Input:   "export/figma.json",
		Fs:      fs,
		Refresh: true,
		Logger:  logger,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "Design System", result.FileName)
	assert.Equal(t, []string{"tokens/colors.ts", "tokens/spacing.ts", "tokens/semanticColors.ts"}, result.Written)
	assert.Nil(t, result.Graphics)
	assert.Empty(t, logger.errs)

	exists, err := afero.Exists(fs, "tokens/removed.ts")
	require.NoError(t, err)
	assert.False(t, exists)

	semantic, err := afero.ReadFile(fs, "tokens/semanticColors.ts")
	require.NoError(t, err)
	assert.Contains(t, string(semantic), "import { colors } from './colors';")
	assert.Contains(t, string(semantic), "alert: {\n    contrastText: colors.white,\n    main: colors.red,\n  },")

	spacing, err := afero.ReadFile(fs, "tokens/spacing.ts")
	require.NoError(t, err)
	assert.Contains(t, string(spacing), "small: '0.5rem',")
}

func TestRunIsDeterministic(t *testing.T) {
	run := func() map[string]string {
		fs := afero.NewMemMapFs()
		require.NoError(t, figma.SaveFile(fs, "figma.json", testDocument()))
		result, err := figmatokens.Run(context.Background(), figmatokens.Options{Input: "figma.json", Fs: fs})
		require.NoError(t, err)

		files := make(map[string]string)
		for _, path := range result.Written {
			b, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			files[path] = string(b)
		}
		return files
	}

	assert.Equal(t, run(), run())
}

func TestRunPartialFailure(t *testing.T) {
	brokenShadows := figma.Node{ID: "10:9", Name: "Shadows", Type: figma.NodeFrame, Children: []figma.Node{
		{ID: "10:10", Name: "flat", Type: figma.NodeRectangle},
	}}

	fs := afero.NewMemMapFs()
	require.NoError(t, figma.SaveFile(fs, "figma.json", testDocument(brokenShadows)))

	logger := &recordingLogger{}
	result, err := figmatokens.Run(context.Background(), figmatokens.Options{Input: "figma.json", Fs: fs, Logger: logger})
	require.Error(t, err)
	assert.ErrorIs(t, err, token.ErrMissingRequiredField)
	require.NotNil(t, result)
	assert.Len(t, result.Written, 3)
	require.Len(t, logger.errs, 1)
	assert.Contains(t, logger.errs[0], "shadows")
}

func TestRunFatalErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, figma.SaveFile(fs, "empty.json", &figma.FileResponse{Name: "Empty"}))

	_, err := figmatokens.Run(context.Background(), figmatokens.Options{Input: "empty.json", Fs: fs})
	assert.ErrorIs(t, err, figma.ErrPageNotFound)

	_, err = figmatokens.Run(context.Background(), figmatokens.Options{Input: "missing.json", Fs: fs})
	assert.Error(t, err)

	_, err = figmatokens.Run(context.Background(), figmatokens.Options{Fs: fs})
	assert.ErrorContains(t, err, "no input")

	cfg := config.New()
	cfg.RemSize = 0
	_, err = figmatokens.Run(context.Background(), figmatokens.Options{Config: cfg, Input: "empty.json", Fs: fs})
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestRunRemoteWithGraphics(t *testing.T) {
	doc := testDocument()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/files/ABC123":
			assert.Equal(t, "secret", r.Header.Get("X-Figma-Token"))
			_ = json.NewEncoder(w).Encode(doc)
		case r.URL.Path == "/images/ABC123":
			assert.Equal(t, "secret", r.Header.Get("X-Figma-Token"))
			assert.Equal(t, "3:2", r.URL.Query().Get("ids"))
			_, _ = fmt.Fprintf(w, `{"images":{"3:2":%q}}`, srv.URL+"/render/arrow")
		case strings.HasPrefix(r.URL.Path, "/render/"):
			// rendered assets live on a CDN and must not receive the access token
			assert.Empty(t, r.Header.Get("X-Figma-Token"))
			_, _ = w.Write([]byte("<svg/>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := config.New()
	cfg.Token = "secret"
	cfg.URL = "https://www.figma.com/design/ABC123/Design-System"
	cfg.SyncGraphics = true
	cfg.OutputFormatTokens = "json"

	fs := afero.NewMemMapFs()
	result, err := figmatokens.Run(context.Background(), figmatokens.Options{
		Config:  cfg,
		SaveRaw: true,
		Fs:      fs,
		Client:  figma.NewClient(cfg.Token).WithBaseURL(srv.URL),
	})
	require.NoError(t, err)

	assert.Contains(t, result.Written, "tokens/colors.json")
	require.NotNil(t, result.Graphics)
	require.Len(t, result.Graphics.Assets, 1)
	assert.Equal(t, "arrow.svg", result.Graphics.Assets[0].FileName)

	svg, err := afero.ReadFile(fs, "graphics/arrow.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(svg))

	saved, err := figma.LoadFile(fs, ".figma-tokens/figma.json")
	require.NoError(t, err)
	assert.Equal(t, "Design System", saved.Name)

	colors, err := afero.ReadFile(fs, "tokens/colors.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"white":"rgba(255, 255, 255, 1)","red":"rgba(255, 0, 0, 1)"}`, string(colors))
}

func TestRunRecompileLocal(t *testing.T) {
	cfg := config.New()
	cfg.RecompileLocal = true

	fs := afero.NewMemMapFs()
	require.NoError(t, figma.SaveFile(fs, ".figma-tokens/figma.json", testDocument()))

	result, err := figmatokens.Run(context.Background(), figmatokens.Options{Config: cfg, Fs: fs})
	require.NoError(t, err)
	assert.Len(t, result.Primitives, 2)
	assert.Len(t, result.Semantics, 1)
}
