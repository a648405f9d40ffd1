package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDuplicateID = errors.New("catalog: duplicate id")

// Purpose is the kind of application the user wants to design.
type Purpose struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"desc"`
}

// Style is a visual design language. AccentColor becomes the default
// primary color when the style is selected.
type Style struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
	AccentColor string `json:"color"`
}

// Component is a selectable UI building block.
type Component struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
}

// Category groups components for display.
type Category struct {
	Name       string      `json:"name"`
	Icon       string      `json:"icon"`
	Color      string      `json:"color"`
	Components []Component `json:"components"`
}

// Stats summarises the component catalog.
type Stats struct {
	TotalCategories int      `json:"totalCategories"`
	TotalComponents int      `json:"totalComponents"`
	CategoryNames   []string `json:"categoryList"`
}

type componentRef struct {
	component Component
	category  int
}

// Catalog is the immutable set of purposes, styles and components.
// Lookups go through indexes built once in NewCatalog.
type Catalog struct {
	purposes   []Purpose
	styles     []Style
	categories []Category

	purposeIdx   map[string]int
	styleIdx     map[string]int
	componentIdx map[string]componentRef
}

// NewCatalog indexes the given data. Ids must be non-empty and unique within
// their kind; component ids must be unique across all categories.
func NewCatalog(purposes []Purpose, styles []Style, categories []Category) (*Catalog, error) {
	c := &Catalog{
		purposes:     append([]Purpose(nil), purposes...),
		styles:       append([]Style(nil), styles...),
		categories:   make([]Category, len(categories)),
		purposeIdx:   make(map[string]int, len(purposes)),
		styleIdx:     make(map[string]int, len(styles)),
		componentIdx: make(map[string]componentRef),
	}

	for i, p := range c.purposes {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: purpose %d has empty id", i)
		}
		if _, dup := c.purposeIdx[p.ID]; dup {
			return nil, fmt.Errorf("%w: purpose %q", ErrDuplicateID, p.ID)
		}
		c.purposeIdx[p.ID] = i
	}
	for i, s := range c.styles {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog: style %d has empty id", i)
		}
		if _, dup := c.styleIdx[s.ID]; dup {
			return nil, fmt.Errorf("%w: style %q", ErrDuplicateID, s.ID)
		}
		c.styleIdx[s.ID] = i
	}
	for ci, cat := range categories {
		cat.Components = append([]Component(nil), cat.Components...)
		c.categories[ci] = cat
		for _, comp := range cat.Components {
			if comp.ID == "" {
				return nil, fmt.Errorf("catalog: component in %q has empty id", cat.Name)
			}
			if prev, dup := c.componentIdx[comp.ID]; dup {
				return nil, fmt.Errorf("%w: component %q in %q and %q",
					ErrDuplicateID, comp.ID, categories[prev.category].Name, cat.Name)
			}
			c.componentIdx[comp.ID] = componentRef{component: comp, category: ci}
		}
	}
	return c, nil
}

func (c *Catalog) Purpose(id string) (Purpose, bool) {
	i, ok := c.purposeIdx[id]
	if !ok {
		return Purpose{}, false
	}
	return c.purposes[i], true
}

func (c *Catalog) Style(id string) (Style, bool) {
	i, ok := c.styleIdx[id]
	if !ok {
		return Style{}, false
	}
	return c.styles[i], true
}

func (c *Catalog) Component(id string) (Component, bool) {
	ref, ok := c.componentIdx[id]
	return ref.component, ok
}

// CategoryOf returns the name of the category that owns component id.
func (c *Catalog) CategoryOf(id string) (string, bool) {
	ref, ok := c.componentIdx[id]
	if !ok {
		return "", false
	}
	return c.categories[ref.category].Name, true
}

func (c *Catalog) Purposes() []Purpose { return append([]Purpose(nil), c.purposes...) }
func (c *Catalog) Styles() []Style     { return append([]Style(nil), c.styles...) }

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		cat.Components = append([]Component(nil), cat.Components...)
		out[i] = cat
	}
	return out
}

func (c *Catalog) Stats() Stats {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return Stats{
		TotalCategories: len(c.categories),
		TotalComponents: len(c.componentIdx),
		CategoryNames:   names,
	}
}

// Search returns the categories whose components match keyword in name,
// description or id (case-insensitive). Empty categories are dropped and an
// empty keyword returns everything.
func (c *Catalog) Search(keyword string) []Category {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return c.Categories()
	}
	var out []Category
	for _, cat := range c.categories {
		var matched []Component
		for _, comp := range cat.Components {
			if strings.Contains(strings.ToLower(comp.Name), kw) ||
				strings.Contains(strings.ToLower(comp.Description), kw) ||
				strings.Contains(strings.ToLower(comp.ID), kw) {
				matched = append(matched, comp)
			}
		}
		if len(matched) > 0 {
			cat.Components = matched
			out = append(out, cat)
		}
	}
	return out
}
