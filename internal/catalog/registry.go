// Package catalog holds the vendor categories offered by the directory.
package catalog

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"gopkg.in/yaml.v3"
)

type categoriesFile struct {
	Categories []dto.Category `yaml:"categories"`
}

var defaultCategories = []dto.Category{
	{ID: "photography", Name: "Photography"},
	{ID: "catering", Name: "Catering"},
	{ID: "venue", Name: "Venue"},
	{ID: "music", Name: "Music"},
	{ID: "florist", Name: "Florist"},
	{ID: "cake", Name: "Cake"},
	{ID: "transportation", Name: "Transportation"},
	{ID: "officiant", Name: "Officiant"},
	{ID: "flowers", Name: "Flowers & Decoration"},
	{ID: "planning", Name: "Wedding Planning"},
	{ID: "other", Name: "Other"},
}

// Registry resolves categories by id or display name, case-insensitively.
type Registry struct {
	mu     sync.RWMutex
	order  []dto.Category
	lookup map[string]dto.Category
}

func NewRegistry() *Registry {
	return &Registry{lookup: make(map[string]dto.Category)}
}

// Default returns a registry with the built-in categories.
func Default() *Registry {
	r := NewRegistry()
	for _, c := range defaultCategories {
		r.Register(c)
	}
	return r
}

// Load reads a YAML category file, or returns Default when path is empty.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Registry, error) {
	var file categoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse categories config: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("categories config lists no categories")
	}

	r := NewRegistry()
	for _, c := range file.Categories {
		c.Name = strings.TrimSpace(c.Name)
		c.ID = strings.TrimSpace(c.ID)
		if c.Name == "" {
			return nil, fmt.Errorf("category %q has no name", c.ID)
		}
		if c.ID == "" {
			c.ID = slug(c.Name)
		}
		if _, dup := r.Lookup(c.ID); dup {
			return nil, fmt.Errorf("duplicate category %q", c.ID)
		}
		r.Register(c)
	}
	return r, nil
}

func (r *Registry) Register(c dto.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, c)
	r.lookup[strings.ToLower(c.ID)] = c
	r.lookup[strings.ToLower(c.Name)] = c
}

func (r *Registry) Lookup(name string) (dto.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.lookup[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// All returns the categories in registration order.
func (r *Registry) All() []dto.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dto.Category, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
