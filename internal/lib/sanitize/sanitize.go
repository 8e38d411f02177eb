// Package sanitize strips unsafe markup from user supplied rich text.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type Sanitizer interface {
	Sanitize(html string) string
}

type Policy struct {
	p *bluemonday.Policy
}

// New returns a policy for user generated content: formatting, links and
// images survive, scripts, styles and event handlers do not.
func New() *Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	return &Policy{p: p}
}

func (s *Policy) Sanitize(html string) string {
	return strings.TrimSpace(s.p.Sanitize(html))
}
