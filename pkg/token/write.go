package token

import "github.com/kataras/figma-tokens/pkg/config"

// WriteTypeToken is the Type of every WriteOperation built from a token set.
const WriteTypeToken = "token"

// WriteOperation describes one token file for the writer: the map to serialize and where and
// how to write it. It is not modified after ToWriteOperation returns it.
type WriteOperation struct {
	Type      string
	File      *TokenMap
	Path      string // output folder
	Name      string // file name without extension
	Format    string // ts, js, mjs or json
	Overwrite config.Overwrite
	// DataType is empty or "enum".
	DataType string
	Semantic bool
}

// ToWriteOperation packages a primitive token map for writing. A nil cfg uses the defaults.
func ToWriteOperation(name string, file *TokenMap, cfg *config.Config) WriteOperation {
	if cfg == nil {
		cfg = config.New()
	}
	return WriteOperation{
		Type:      WriteTypeToken,
		File:      file,
		Path:      cfg.OutputFolderTokens,
		Name:      name,
		Format:    cfg.OutputFormatTokens,
		Overwrite: cfg.Overwrite,
		DataType:  cfg.OutputDataTypeToken,
	}
}

// WriteOperations packages every set in order, marking the semantic ones.
func WriteOperations(sets []*NamedTokenSet, cfg *config.Config) []WriteOperation {
	ops := make([]WriteOperation, 0, len(sets))
	for _, set := range sets {
		if set == nil {
			continue
		}
		op := ToWriteOperation(set.Name, set.File, cfg)
		op.Semantic = set.Semantic
		ops = append(ops, op)
	}
	return ops
}
