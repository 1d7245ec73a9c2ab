package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/domainmarket-backend/internal/domain"
)

const dateLayout = "2006-01-02"

// File is the seed document: listings and blog posts.
type File struct {
	Domains []DomainRecord `yaml:"domains"`
	Posts   []PostRecord   `yaml:"posts"`
}

// DomainRecord is one listing in the seed file. Extension falls back to the
// part of Name after the first dot; Active defaults to true.
type DomainRecord struct {
	Name                  string  `yaml:"name"`
	Price                 int64   `yaml:"price"`
	Category              string  `yaml:"category"`
	Extension             string  `yaml:"extension"`
	Description           *string `yaml:"description"`
	RegisteredYear        *int    `yaml:"registeredYear"`
	Traffic               *int    `yaml:"traffic"`
	RegistrationDate      *Date   `yaml:"registrationDate"`
	FirstRegistrationDate *Date   `yaml:"firstRegistrationDate"`
	ListedDate            *Date   `yaml:"listedDate"`
	Active                *bool   `yaml:"active"`
}

// PostRecord is one blog post in the seed file. Published defaults to true.
type PostRecord struct {
	Slug          string `yaml:"slug"`
	Title         string `yaml:"title"`
	Excerpt       string `yaml:"excerpt"`
	Content       string `yaml:"content"`
	Category      string `yaml:"category"`
	ReadTime      string `yaml:"readTime"`
	PublishedDate Date   `yaml:"publishedDate"`
	Published     *bool  `yaml:"published"`
}

// Date is a calendar date written as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	t, err := time.Parse(dateLayout, strings.TrimSpace(n.Value))
	if err != nil {
		return fmt.Errorf("line %d: date %q: want YYYY-MM-DD", n.Line, n.Value)
	}
	d.Time = t
	return nil
}

// LoadFile reads and decodes a seed file.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	return DecodeFile(f)
}

// DecodeFile decodes a seed document. Unknown keys are rejected.
func DecodeFile(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &file, nil
}

// Listings converts domain records, collecting every invalid record.
func (f *File) Listings(now time.Time) ([]domain.Listing, error) {
	var errs []error
	seen := make(map[string]int, len(f.Domains))
	out := make([]domain.Listing, 0, len(f.Domains))

	for i, rec := range f.Domains {
		name := domain.NormalizeName(rec.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Errorf("domains[%d]: name is required", i))
			continue
		case !strings.Contains(name, "."):
			errs = append(errs, fmt.Errorf("domains[%d]: name %q has no extension", i, name))
			continue
		case rec.Price < 0:
			errs = append(errs, fmt.Errorf("domains[%d]: price must be non-negative", i))
			continue
		}
		if prev, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("domains[%d]: %q duplicates domains[%d]", i, name, prev))
			continue
		}
		seen[name] = i

		ext := strings.ToLower(strings.TrimSpace(rec.Extension))
		if ext == "" {
			ext = domain.ExtensionOf(name)
		}

		out = append(out, domain.Listing{
			ID:                    uuid.New(),
			Name:                  name,
			Price:                 rec.Price,
			Category:              strings.TrimSpace(rec.Category),
			Extension:             ext,
			Description:           rec.Description,
			RegisteredYear:        rec.RegisteredYear,
			Traffic:               rec.Traffic,
			RegistrationDate:      rec.RegistrationDate.ptr(),
			FirstRegistrationDate: rec.FirstRegistrationDate.ptr(),
			ListedDate:            rec.ListedDate.ptr(),
			IsActive:              boolOr(rec.Active, true),
			CreatedAt:             now,
			UpdatedAt:             now,
		})
	}

	return out, errors.Join(errs...)
}

// Posts converts post records, collecting every invalid record.
func (f *File) Posts(now time.Time) ([]domain.BlogPost, error) {
	var errs []error
	seen := make(map[string]int, len(f.Posts))
	out := make([]domain.BlogPost, 0, len(f.Posts))

	for i, rec := range f.Posts {
		slug := strings.TrimSpace(rec.Slug)
		switch {
		case slug == "":
			errs = append(errs, fmt.Errorf("posts[%d]: slug is required", i))
			continue
		case strings.TrimSpace(rec.Title) == "":
			errs = append(errs, fmt.Errorf("posts[%d]: title is required", i))
			continue
		case rec.PublishedDate.IsZero():
			errs = append(errs, fmt.Errorf("posts[%d]: publishedDate is required", i))
			continue
		}
		if prev, dup := seen[slug]; dup {
			errs = append(errs, fmt.Errorf("posts[%d]: %q duplicates posts[%d]", i, slug, prev))
			continue
		}
		seen[slug] = i

		out = append(out, domain.BlogPost{
			ID:            uuid.New(),
			Slug:          slug,
			Title:         strings.TrimSpace(rec.Title),
			Excerpt:       strings.TrimSpace(rec.Excerpt),
			Content:       rec.Content,
			Category:      strings.TrimSpace(rec.Category),
			ReadTime:      strings.TrimSpace(rec.ReadTime),
			PublishedDate: rec.PublishedDate.Time,
			IsPublished:   boolOr(rec.Published, true),
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	return out, errors.Join(errs...)
}

func (d *Date) ptr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
