package catalog

import "sort"

// ModuleSummary is the metadata returned by the module list endpoint.
type ModuleSummary struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Difficulty       string `json:"difficulty"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	Order            int    `json:"order"`
}

// Lesson is one narrative section of a module.
type Lesson struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Code    string `json:"code,omitempty"`
}

// Exercise is a practice task. The starter code is rendered in a
// non-executing preview on the client; nothing here is ever evaluated.
type Exercise struct {
	Prompt      string `json:"prompt"`
	StarterCode string `json:"starter_code,omitempty"`
	Hint        string `json:"hint,omitempty"`
	Solution    string `json:"solution,omitempty"`
}

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Module is the full content payload for one learning module.
type Module struct {
	ModuleSummary
	Lessons   []Lesson       `json:"lessons"`
	Exercises []Exercise     `json:"exercises"`
	Quiz      []QuizQuestion `json:"quiz"`
}

// Catalog is the fixed, ordered collection of modules. It is defined at
// process start and read-only afterwards, so it needs no locking.
type Catalog struct {
	ordered []*Module
	byID    map[int]*Module
}

func New(modules []*Module) *Catalog {
	c := &Catalog{byID: make(map[int]*Module, len(modules))}
	for _, m := range modules {
		c.byID[m.ID] = m
		c.ordered = append(c.ordered, m)
	}
	sort.SliceStable(c.ordered, func(i, j int) bool { return c.ordered[i].Order < c.ordered[j].Order })
	return c
}

// Builtin returns the catalog shipped with the server.
func Builtin() *Catalog {
	return New(builtinModules())
}

// List returns module summaries in display order.
func (c *Catalog) List() []ModuleSummary {
	out := make([]ModuleSummary, 0, len(c.ordered))
	for _, m := range c.ordered {
		out = append(out, m.ModuleSummary)
	}
	return out
}

// Get returns the full module for id, or nil when unknown.
func (c *Catalog) Get(id int) *Module {
	return c.byID[id]
}

// Title returns the module title for id, or "" when unknown.
func (c *Catalog) Title(id int) string {
	if m := c.byID[id]; m != nil {
		return m.Title
	}
	return ""
}

func (c *Catalog) Len() int { return len(c.ordered) }
