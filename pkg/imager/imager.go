package imager

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/token"
)

// Renderer asks Figma to render nodes and returns the download URL of each one.
// *figma.Client implements it.
type Renderer interface {
	GetImages(ctx context.Context, fileKey string, nodeIDs []string, format string, scale float64) (*figma.ImagesResponse, error)
}

// ExportConfig holds configuration for graphics export.
type ExportConfig struct {
	Format    string  // "svg", "png", "jpg", "pdf"
	Scale     float64 // ignored for svg/pdf
	OutputDir string
	Overwrite bool // replace graphics that already exist in OutputDir
	Camelize  bool // camel-case file names, as token names
}

// Graphic is a component of the graphics page to export.
type Graphic struct {
	NodeID   string
	NodeName string
}

// ExportedAsset represents a single exported graphic.
type ExportedAsset struct {
	NodeID   string
	NodeName string
	FileName string
	Format   string
	Scale    float64
}

// ExportResult holds the results of a graphics export.
type ExportResult struct {
	Assets  []ExportedAsset
	Skipped []string // file names left untouched because they exist and overwrite is off
	Errors  []error  // non-fatal per-graphic download failures
}

const maxNodesPerRequest = 100
const maxParallelDownloads = 5

// Exporter renders graphics through the Figma image API and downloads them to Fs.
type Exporter struct {
	Renderer   Renderer
	HTTPClient *http.Client // defaults to http.DefaultClient
	Fs         afero.Fs // defaults to the operating system filesystem
}

func (e *Exporter) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}

// CollectGraphics walks the graphics page and returns every visible COMPONENT node in
// document order. Nodes whose name starts with "_" are skipped with their subtree.
func CollectGraphics(page []figma.Node) []Graphic {
	var graphics []Graphic
	for i := range page {
		collectGraphics(&page[i], &graphics)
	}
	return graphics
}

func collectGraphics(node *figma.Node, graphics *[]Graphic) {
	if !node.IsVisible() || strings.HasPrefix(node.Name, "_") {
		return
	}
	if node.Type == figma.NodeComponent {
		*graphics = append(*graphics, Graphic{NodeID: node.ID, NodeName: node.Name})
		return
	}
	for i := range node.Children {
		collectGraphics(&node.Children[i], graphics)
	}
}

type pending struct {
	Graphic
	fileName string
}

// Export renders and downloads graphics concurrently. Only a failed render request is fatal;
// individual download failures are collected in the result.
func (e *Exporter) Export(ctx context.Context, fileKey string, graphics []Graphic, config ExportConfig) (*ExportResult, error) {
	if e.Renderer == nil {
		return nil, errors.New("imager: no renderer")
	}
	if err := e.fs().MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, errors.Errorf("failed to create output directory %q: %w", config.OutputDir, err)
	}

	scale := config.Scale
	if config.Format == "svg" || config.Format == "pdf" || scale <= 0 {
		scale = 1
	}

	result := &ExportResult{}

	// File names are assigned up front, in document order, so duplicates get stable suffixes.
	usedNames := make(map[string]int)
	var queue []pending
	for _, g := range graphics {
		fileName := buildFileName(g.NodeName, g.NodeID, config.Format, scale, config.Camelize)
		if count, exists := usedNames[fileName]; exists {
			ext := filepath.Ext(fileName)
			usedNames[fileName] = count + 1
			fileName = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(fileName, ext), count+1, ext)
		} else {
			usedNames[fileName] = 1
		}

		if !config.Overwrite {
			exists, err := afero.Exists(e.fs(), filepath.Join(config.OutputDir, fileName))
			if err != nil {
				return nil, errors.Errorf("failed to stat %q: %w", fileName, err)
			}
			if exists {
				result.Skipped = append(result.Skipped, fileName)
				continue
			}
		}
		queue = append(queue, pending{Graphic: g, fileName: fileName})
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		sem = make(chan struct{}, maxParallelDownloads)
	)
	for i := 0; i < len(queue); i += maxNodesPerRequest {
		batch := queue[i:min(i+maxNodesPerRequest, len(queue))]
		ids := make([]string, len(batch))
		for j, p := range batch {
			ids[j] = p.NodeID
		}

		imgResp, err := e.Renderer.GetImages(ctx, fileKey, ids, config.Format, scale)
		if err != nil {
			wg.Wait()
			return nil, errors.Errorf("failed to get images from Figma API: %w", err)
		}

		for _, p := range batch {
			imageURL := imgResp.Images[p.NodeID]
			if imageURL == "" {
				mu.Lock()
				result.Errors = append(result.Errors, errors.Errorf("no image URL returned for node %s", p.NodeID))
				mu.Unlock()
				continue
			}

			wg.Add(1)
			go func(p pending, url string) {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				destPath := filepath.Join(config.OutputDir, p.fileName)
				if err := e.download(ctx, url, destPath); err != nil {
					mu.Lock()
					result.Errors = append(result.Errors, errors.Errorf("failed to download %s: %w", p.NodeName, err))
					mu.Unlock()
					return
				}

				mu.Lock()
				result.Assets = append(result.Assets, ExportedAsset{
					NodeID:   p.NodeID,
					NodeName: p.NodeName,
					FileName: p.fileName,
					Format:   config.Format,
					Scale:    scale,
				})
				mu.Unlock()
			}(p, imageURL)
		}
	}
	wg.Wait()

	sort.Slice(result.Assets, func(i, j int) bool {
		return result.Assets[i].FileName < result.Assets[j].FileName
	})
	return result, nil
}

// download performs an HTTP GET and saves the response body to destPath.
// A partially written file is removed so the next run does not keep it as an existing graphic.
func (e *Exporter) download(ctx context.Context, url, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Errorf("failed to create request: %w", err)
	}

	httpClient := e.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d downloading image", resp.StatusCode)
	}

	fs := e.fs()
	f, err := fs.Create(destPath)
	if err != nil {
		return errors.Errorf("failed to create file %q: %w", destPath, err)
	}

	_, copyErr := io.Copy(f, resp.Body)
	if err := multierr.Combine(copyErr, f.Close()); err != nil {
		_ = fs.Remove(destPath)
		return errors.Errorf("failed to write file %q: %w", destPath, err)
	}

	return nil
}

// buildFileName creates a file name from a component name, sanitized the same way as token
// names. Adds an @2x/@3x suffix for raster scales > 1 and falls back to the node ID when the
// name has no usable characters.
func buildFileName(nodeName, nodeID, format string, scale float64, camelize bool) string {
	name := token.Sanitize(nodeName, camelize)
	if name == "" {
		name = token.Sanitize(nodeID, false)
	}
	if name == "" {
		name = "graphic"
	}

	// Add scale suffix for raster formats with scale > 1.
	scaleSuffix := ""
	if scale > 1 && format != "svg" && format != "pdf" {
		scaleSuffix = fmt.Sprintf("@%gx", scale)
	}

	return fmt.Sprintf("%s%s.%s", name, scaleSuffix, format)
}
