// File: loanguard/services/faq/faq.go
package faq

import (
	_ "embed"
	"fmt"
	"html/template"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed faq.yaml
var faqYAML []byte

// Item is one question. Answer is a trusted HTML fragment shipped with the
// binary.
type Item struct {
	Question string `yaml:"q" json:"question"`
	Answer   string `yaml:"a" json:"answer"`
}

// HTML marks the answer safe for html/template.
func (i Item) HTML() template.HTML {
	return template.HTML(i.Answer)
}

type Category struct {
	Category string `yaml:"category" json:"category"`
	Items    []Item `yaml:"items" json:"items"`
}

// Parse decodes FAQ categories from YAML.
func Parse(data []byte) ([]Category, error) {
	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decode faq: %w", err)
	}
	for _, c := range categories {
		if c.Category == "" || len(c.Items) == 0 {
			return nil, fmt.Errorf("faq category %q has no items", c.Category)
		}
	}
	return categories, nil
}

var (
	loadOnce   sync.Once
	categories []Category
	loadErr    error
)

// Categories returns the embedded FAQ, parsed once.
func Categories() ([]Category, error) {
	loadOnce.Do(func() {
		categories, loadErr = Parse(faqYAML)
	})
	return categories, loadErr
}

// MustCategories panics if the embedded FAQ is malformed. Used at start-up.
func MustCategories() []Category {
	c, err := Categories()
	if err != nil {
		panic(err)
	}
	return c
}
