package dto

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jsamuelsen11/page-template-admin/internal/domain/template"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// ChoiceLabel renders the label of a template choice: the escaped title, or
// a preview image followed by the title when the template has one. Catalog
// values are untrusted, so the markup is passed through a policy that only
// admits the img element.
func ChoiceLabel(t template.Template) string {
	if !t.HasPreview() {
		return html.EscapeString(t.Title)
	}
	raw := fmt.Sprintf(`<img src="%s" alt="%s" /> %s`,
		html.EscapeString(strings.TrimSpace(t.PreviewImage)),
		html.EscapeString(t.Key),
		html.EscapeString(t.Title),
	)
	return labelSanitizer().Sanitize(raw)
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("img")
		policy.AllowAttrs("src", "alt").OnElements("img")
		policy.AllowURLSchemes("http", "https")
		policy.AllowRelativeURLs(true)
		labelPolicy = policy
	})
	return labelPolicy
}
