// Package figmatokens generates design token files from a Figma document.
//
// The document is fetched through the Figma API or read from a local JSON export. Every frame
// of its "Design Tokens" page that names a token category ("Colors", "Font Sizes", "Spacing",
// ...) becomes a primitive token set. Frames whose name starts with "Semantic" become
// semantic sets that reference the primitives ("colors.red") instead of repeating values.
// Each set is written as a TypeScript, JavaScript, JSON or CSS file. Components of the
// "Graphics" page can be exported alongside.
//
// The CLI lives in cmd/figma-tokens; this root package exposes the same
// pipeline as a Go API so that callers can embed generation in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmatokens:
//
//	import "github.com/kataras/figma-tokens" // package figmatokens
//
// # Quick start
//
//	cfg := config.New()
//	cfg.Token = os.Getenv("FIGMA_TOKEN")
//	cfg.URL = "https://www.figma.com/design/ABC123/My-Design-System"
//
//	result, err := figmatokens.Run(ctx, figmatokens.Options{Config: cfg})
//	if result == nil {
//	    log.Fatal(err)
//	}
//	if err != nil {
//	    log.Printf("some token sets failed: %v", err)
//	}
//	fmt.Println(result.Written)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages and extraction diagnostics. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Partial failures
//
// A token category that cannot be built, such as a shadow frame with a node that has no
// shadow, does not stop the run. The other sets are still written, and [Run] returns a
// non-nil [Result] together with the joined category errors.
package figmatokens
