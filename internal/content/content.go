// Package content loads the portfolio's static page content: site identity,
// profile copy, and the project entries the filter engine indexes.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/Maze77-AH/portfolio/internal/portfolio"
)

//go:embed content.yaml
var defaultDocument []byte

// Site identifies the portfolio owner.
type Site struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	About   string `yaml:"about"`
	Email   string `yaml:"email"`
	GitHub  string `yaml:"github"`
}

// Project is one project card. Tags is a whitespace-separated token list;
// Body is trusted HTML authored alongside the site.
type Project struct {
	Slug    string `yaml:"slug"`
	Title   string `yaml:"title"`
	Tags    string `yaml:"tags"`
	Summary string `yaml:"summary"`
	Body    string `yaml:"body"`
	Repo    string `yaml:"repo"`
	Demo    string `yaml:"demo"`
}

// Document is the complete content file.
type Document struct {
	Site     Site      `yaml:"site"`
	Projects []Project `yaml:"projects"`
}

// Parse decodes and validates a content document.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode content: %w", err)
	}

	seen := map[string]struct{}{}
	for i := range doc.Projects {
		project := &doc.Projects[i]
		project.Slug = strings.TrimSpace(strings.ToLower(project.Slug))
		if project.Slug == "" {
			return Document{}, fmt.Errorf("project %d: slug is required", i)
		}
		if _, duplicate := seen[project.Slug]; duplicate {
			return Document{}, fmt.Errorf("project %d: duplicate slug %q", i, project.Slug)
		}
		seen[project.Slug] = struct{}{}
	}
	return doc, nil
}

// Load reads and parses the content file at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// LoadDefault parses the content document embedded in the binary.
func LoadDefault() (Document, error) {
	return Parse(defaultDocument)
}

// Sources converts projects to index sources in document order, with body
// markup stripped down to its text for the search blob.
func (d Document) Sources() []portfolio.Source {
	sources := make([]portfolio.Source, 0, len(d.Projects))
	for _, project := range d.Projects {
		sources = append(sources, portfolio.Source{
			Slug:  project.Slug,
			Title: project.Title,
			Tags:  project.Tags,
			Body:  BodyText(project.Body) + " " + project.Summary,
		})
	}
	return sources
}

// Project looks up a project card by slug.
func (d Document) Project(slug string) (Project, bool) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	for _, project := range d.Projects {
		if project.Slug == slug {
			return project, true
		}
	}
	return Project{}, false
}

// TagList returns the distinct lowercase tag tokens across all projects in
// first-seen order, for rendering the filter chips.
func (d Document) TagList() []string {
	var tags []string
	seen := map[string]struct{}{}
	for _, project := range d.Projects {
		for _, token := range strings.Fields(strings.ToLower(project.Tags)) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tags = append(tags, token)
		}
	}
	return tags
}

// BodyText extracts the text content of an HTML fragment. Malformed markup is
// tolerated; on a parse failure the raw input is returned so search still has
// something to match against.
func BodyText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			buf.WriteString(node.Data)
			buf.WriteByte(' ')
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return strings.Join(strings.Fields(buf.String()), " ")
}
