package template

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
)

// Kind identifies which placement rule rejected a template.
type Kind int

// Rule kinds, in the order the validator evaluates them.
const (
	KindDuplicateUnique Kind = iota + 1
	KindNotAllowedAsSubpage
	KindParentForbidsChildren
	KindHasChildrenButMarkedLeafOnly
)

// String returns the kind's stable identifier, used in logs, metrics and
// problem responses.
func (k Kind) String() string {
	switch k {
	case KindDuplicateUnique:
		return "duplicate_unique"
	case KindNotAllowedAsSubpage:
		return "not_allowed_as_subpage"
	case KindParentForbidsChildren:
		return "parent_forbids_children"
	case KindHasChildrenButMarkedLeafOnly:
		return "has_children_but_marked_leaf_only"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k := KindDuplicateUnique; k <= KindHasChildrenButMarkedLeafOnly; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Message returns the user-facing text shown next to the form field.
func (k Kind) Message() string {
	switch k {
	case KindDuplicateUnique:
		return "Template already used somewhere else."
	case KindNotAllowedAsSubpage:
		return "This template cannot be used for a subpage."
	case KindParentForbidsChildren, KindHasChildrenButMarkedLeafOnly:
		return "This template does not allow subpages."
	default:
		return "This template cannot be used here."
	}
}

// RuleError reports a failed placement rule. It unwraps to
// domain.ErrValidation so transport adapters treat it as a client error.
type RuleError struct {
	Kind        Kind
	TemplateKey string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("template %q rejected: %s", e.TemplateKey, e.Kind)
}

func (e *RuleError) Unwrap() error {
	return domain.ErrValidation
}

// AsRuleError returns the RuleError in err's chain, if any.
func AsRuleError(err error) (*RuleError, bool) {
	var rerr *RuleError
	if errors.As(err, &rerr) {
		return rerr, true
	}
	return nil, false
}

// IsKind reports whether err is a RuleError of the given kind.
func IsKind(err error, kind Kind) bool {
	rerr, ok := AsRuleError(err)
	return ok && rerr.Kind == kind
}
