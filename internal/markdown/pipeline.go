// Package markdown turns the small markdown subset used by the assistant
// into HTML fragments. Rendering is an ordered list of regex passes; each
// pass sees the output of the one before it.
package markdown

import "regexp"

// Renderer converts markdown text into an HTML fragment.
type Renderer interface {
	Render(text string) string
}

// Pass is a single substitution step. Replacement uses regexp expansion
// syntax (${1}).
type Pass struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

func (p Pass) Apply(text string) string {
	return p.Pattern.ReplaceAllString(text, p.Replacement)
}

type Pipeline struct {
	passes []Pass
}

func New(passes ...Pass) *Pipeline {
	return &Pipeline{passes: append([]Pass(nil), passes...)}
}

// Default returns the pipeline built from DefaultPasses.
func Default() *Pipeline {
	return New(DefaultPasses()...)
}

// Render never fails: a pass without a match leaves the text unchanged.
func (p *Pipeline) Render(text string) string {
	for _, pass := range p.passes {
		text = pass.Apply(text)
	}
	return text
}

func (p *Pipeline) Passes() []Pass {
	return append([]Pass(nil), p.passes...)
}

// Without returns a copy of the pipeline with the named passes dropped.
func (p *Pipeline) Without(names ...string) *Pipeline {
	skip := make(map[string]bool, len(names))
	for _, name := range names {
		skip[name] = true
	}
	kept := make([]Pass, 0, len(p.passes))
	for _, pass := range p.passes {
		if !skip[pass.Name] {
			kept = append(kept, pass)
		}
	}
	return &Pipeline{passes: kept}
}
