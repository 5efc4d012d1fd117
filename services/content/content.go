package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_content.yaml
var defaultCatalog []byte

// SubjectText is one reference passage tied to a subject.
type SubjectText struct {
	Subject string `yaml:"subject"`
	Title   string `yaml:"title"`
	Text    string `yaml:"text"`
}

type catalogFile struct {
	Texts []SubjectText `yaml:"texts"`
}

// Catalog holds the subject-content corpus backing the subjects endpoint and
// the resource suggester's scoring.
type Catalog struct {
	texts    []SubjectText
	subjects []string
	bySubj   map[string][]SubjectText
}

// Load reads the corpus from path, or from the embedded default catalog when
// path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read content catalog %s: %w", path, err)
		}
		data = b
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse content catalog: %w", err)
	}
	if len(file.Texts) == 0 {
		return nil, fmt.Errorf("content catalog has no texts")
	}

	c := &Catalog{
		texts:  file.Texts,
		bySubj: make(map[string][]SubjectText),
	}
	for _, t := range file.Texts {
		if _, seen := c.bySubj[t.Subject]; !seen {
			c.subjects = append(c.subjects, t.Subject)
		}
		c.bySubj[t.Subject] = append(c.bySubj[t.Subject], t)
	}
	return c, nil
}

// Subjects returns the distinct subjects in catalog order.
func (c *Catalog) Subjects() []string {
	return c.subjects
}

// TextsFor returns every passage recorded for a subject.
func (c *Catalog) TextsFor(subject string) []SubjectText {
	return c.bySubj[subject]
}

// All returns every passage in the corpus.
func (c *Catalog) All() []SubjectText {
	return c.texts
}
