// Package nberr defines nbpm's closed error taxonomy. Every error that
// crosses a package boundary in the core carries one of these kinds so
// that the façade (and the CLI) can react on error class rather than on
// message text.
package nberr

import "fmt"

// Kind is a closed enumeration of the error classes the core can raise.
type Kind uint8

const (
	// Repo indicates configuration for a repository type is absent, or a
	// selected repository is not available.
	Repo Kind = iota + 1
	// HashCheck indicates the computed SHA-256 of a downloaded index
	// disagrees with the expected hash.
	HashCheck
	// Parsing indicates a depends string or index stanza is malformed.
	Parsing
	// PackageNotFound indicates a requested query yielded zero matches
	// across all repositories.
	PackageNotFound
	// VersionFmt indicates a version string does not parse.
	VersionFmt
	// VersionNotFound indicates a Debian paragraph completed without a
	// Version field.
	VersionNotFound
	// BadCompOp indicates an unknown version relation symbol.
	BadCompOp
	// DependencyNotFound indicates the resolver could not find any
	// repository or graph satisfier for a dependency.
	DependencyNotFound
	// DependencyCicle indicates the resolver's topological sort detected
	// a cycle. Spelling matches the original implementation's taxonomy.
	DependencyCicle
	// Cmd indicates an external process returned a non-zero exit status.
	Cmd
	// CannotRemoveBadLinks indicates symlink cleanup left dangling links
	// that must be removed manually.
	CannotRemoveBadLinks
)

func (k Kind) String() string {
	switch k {
	case Repo:
		return "repository error"
	case HashCheck:
		return "hash check error"
	case Parsing:
		return "error while parsing"
	case PackageNotFound:
		return "package not found"
	case VersionFmt:
		return "incompatible version format"
	case VersionNotFound:
		return "version not found"
	case BadCompOp:
		return "incorrect or bad comparison operator"
	case DependencyNotFound:
		return "dependency not found"
	case DependencyCicle:
		return "dependency cycle found"
	case Cmd:
		return "command error"
	case CannotRemoveBadLinks:
		return "cannot remove bad links, links have to be manually removed"
	default:
		return "unknown error"
	}
}

// Error is nbpm's core error type: a Kind plus an optional message and
// wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// New creates an Error of the given kind with no message.
func New(kind Kind) *Error {
	return &Error{Kind: kind}
}

// Newf creates an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind that wraps cause.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	ne, ok := err.(*Error)
	return ok && ne.Kind == kind
}
