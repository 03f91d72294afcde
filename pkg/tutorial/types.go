package tutorial

// Section is one titled block of guide content. The body is
// pre-formatted text (tree marks, shell and Python snippets) and is
// rendered verbatim: never parsed, reflowed, or executed.
type Section struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Catalog holds the ordered guide content. It is built once at startup
// and never mutated; output order equals declaration order.
type Catalog struct {
	Title    string
	Tagline  string
	Sections []Section
	Summary  Section
}

// Topics returns every browsable section: the registered sections in
// order, then the summary.
func (c Catalog) Topics() []Section {
	out := make([]Section, 0, len(c.Sections)+1)
	out = append(out, c.Sections...)
	out = append(out, c.Summary)
	return out
}

// Find looks a topic up by slug.
func (c Catalog) Find(slug string) (Section, bool) {
	for _, s := range c.Topics() {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}

// Slugs returns topic slugs in catalog order.
func (c Catalog) Slugs() []string {
	topics := c.Topics()
	out := make([]string, len(topics))
	for i, s := range topics {
		out[i] = s.Slug
	}
	return out
}
