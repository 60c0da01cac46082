package token

import (
	"gitlab.com/tozd/go/errors"
)

// Error taxonomy of the extraction core. Callers match with errors.Is; the category and node
// involved are attached as error details.
var (
	ErrInvalidInput        = errors.Base("invalid input")
	ErrNoFrameProvided     = errors.BaseWrap(ErrInvalidInput, "no frame provided")
	ErrNoTokenNameProvided = errors.BaseWrap(ErrInvalidInput, "no token name provided")
	ErrNoConfig            = errors.BaseWrap(ErrInvalidInput, "no config provided")

	ErrMissingRequiredField = errors.Base("missing required field")
	ErrNoPrimitiveTokens    = errors.Base("no primitive tokens to reference")
)

func missingField(node, field string) error {
	return errors.WithDetails(
		errors.Errorf("%w: node %q has no %s", ErrMissingRequiredField, node, field),
		"node", node, "field", field,
	)
}

// categoryError prefixes err with the token set it happened in and records the set as a detail.
func categoryError(category string, err error, kv ...any) error {
	return errors.WithDetails(errors.Errorf("%s: %w", category, err), append([]any{"category", category}, kv...)...)
}
