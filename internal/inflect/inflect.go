// Package inflect provides English singular/plural inflection behind a
// small interface so the algorithm is swappable without touching the
// matching engine.
package inflect

import "github.com/gertd/go-pluralize"

// Inflector converts between singular and plural English word forms.
type Inflector interface {
	Singular(word string) string
	Plural(word string) string
}

// client wraps go-pluralize, which handles irregular forms such as
// "leaf" → "leaves" and uncountables such as "rice".
type client struct {
	p *pluralize.Client
}

// New returns the default Inflector.
func New() Inflector {
	return &client{p: pluralize.NewClient()}
}

func (c *client) Singular(word string) string {
	return c.p.Singular(word)
}

func (c *client) Plural(word string) string {
	return c.p.Plural(word)
}
