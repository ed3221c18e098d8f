// Package nluerr defines the stable error codes produced across the
// interpretation engine. Every exported constructor wraps samber/oops so
// callers can attach structured context and still use errors.Is/As against
// the underlying cause.
package nluerr

import "github.com/samber/oops"

// Stable error codes, attached via oops.Code so they survive wrapping and
// show up in structured logs.
const (
	CodeInvalidLocale = "INVALID_LOCALE"
	CodeBackendError  = "BACKEND_ERROR"
	CodeRuleError     = "RULE_ERROR"
)

// InvalidLocale reports that s could not be parsed as a locale.
func InvalidLocale(s string) error {
	return oops.Code(CodeInvalidLocale).With("locale", s).Errorf("invalid locale %q", s)
}

// BackendError wraps a failure from a spell-check or dictionary backend.
func BackendError(operation, dictionary string, err error) error {
	return oops.Code(CodeBackendError).
		With("operation", operation).
		With("dictionary", dictionary).
		Wrap(err)
}

// RuleError wraps a failure raised while evaluating a rule during parsing.
func RuleError(ruleName string, err error) error {
	return oops.Code(CodeRuleError).
		With("rule", ruleName).
		Wrap(err)
}
