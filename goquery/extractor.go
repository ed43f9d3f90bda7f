package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/niklas-joh/plantScraper"
)

// Default page structure the extractor is tuned to. This is one fixed site
// layout, not a generic scraping surface.
const (
	DefaultBaseURL        = "https://www.almanac.com"
	DefaultContainer      = "#block-almanaco-content"
	DefaultLinkPathFilter = "/recipe/"

	labelClass = "field__label"
	itemClass  = "field__item"
)

// Ensure Extractor implements plantscraper.Extractor at compile time.
var _ plantscraper.Extractor = (*Extractor)(nil)

// Extractor is the public entry point of the extraction engine: it groups a
// page's labeled field items, segments each under its label's policy,
// cleans every produced string, and assembles the final record.
type Extractor struct {
	policies       plantscraper.Policies
	cleaner        *plantscraper.Cleaner
	baseURL        string
	container      string
	linkPathFilter string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPolicies overrides the label-to-policy table.
func WithPolicies(p plantscraper.Policies) Option {
	return func(e *Extractor) { e.policies = p }
}

// WithCleaner overrides the boilerplate cleaner.
func WithCleaner(c *plantscraper.Cleaner) Option {
	return func(e *Extractor) { e.cleaner = c }
}

// WithBaseURL sets the base used to absolutize root-relative link hrefs.
func WithBaseURL(u string) Option {
	return func(e *Extractor) { e.baseURL = u }
}

// WithContainer sets the CSS selector of the labeled-content container.
func WithContainer(sel string) Option {
	return func(e *Extractor) { e.container = sel }
}

// WithLinkPathFilter sets the href substring that identifies list links.
func WithLinkPathFilter(filter string) Option {
	return func(e *Extractor) { e.linkPathFilter = filter }
}

// NewExtractor creates an Extractor with the default page structure,
// policies, and cleaning rules.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		policies:       plantscraper.DefaultPolicies(),
		cleaner:        plantscraper.NewCleaner(plantscraper.DefaultCleanerConfig()),
		baseURL:        DefaultBaseURL,
		container:      DefaultContainer,
		linkPathFilter: DefaultLinkPathFilter,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractEntity implements plantscraper.Extractor.
func (e *Extractor) ExtractEntity(html string, id plantscraper.Identity) (*plantscraper.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, plantscraper.Errorf(plantscraper.EINVALID, "failed to parse HTML: %v", err)
	}

	blocks := doc.Find(e.container)
	if blocks.Length() == 0 {
		return nil, plantscraper.Errorf(plantscraper.ENOTFOUND, "content container %q not found", e.container)
	}

	record := plantscraper.NewRecord(id)
	grouped := groupFieldItems(blocks)

	for _, label := range grouped.Keys() {
		items, _ := grouped.Get(label)
		// A label with no following items carries no content.
		if len(items) == 0 {
			continue
		}
		policy := e.policies.For(label)

		values := make([]plantscraper.FieldValue, 0, len(items))
		for _, item := range items {
			values = append(values, SegmentField(item, policy, e.baseURL, e.linkPathFilter))
		}

		merged := plantscraper.MergeFieldItems(values)
		cleaned := e.cleanValue(merged, policy, id.Name)
		record.Fields.Set(label, plantscraper.FinalizeField(cleaned))
	}

	return record, nil
}

// groupFieldItems walks the container's descendants in document order,
// tracking the most recent field label and attributing every following
// field item to it. Identity labels never group items.
func groupFieldItems(blocks *goquery.Selection) *plantscraper.OrderedMap[[]*goquery.Selection] {
	grouped := plantscraper.NewOrderedMap[[]*goquery.Selection]()
	currentLabel := ""

	blocks.Find("."+labelClass+", ."+itemClass).Each(func(_ int, sel *goquery.Selection) {
		if sel.HasClass(labelClass) {
			label := strings.TrimSpace(sel.Text())
			if label == "" || plantscraper.IsIdentityLabel(label) {
				currentLabel = ""
				return
			}
			currentLabel = label
			if _, ok := grouped.Get(label); !ok {
				grouped.Set(label, nil)
			}
			return
		}
		if currentLabel == "" {
			return
		}
		items, _ := grouped.Get(currentLabel)
		grouped.Set(currentLabel, append(items, sel))
	})

	return grouped
}

// cleanValue post-processes every string the segmenter produced. The shape
// of the value never changes here; only its text content is rewritten.
func (e *Extractor) cleanValue(v plantscraper.FieldValue, policy plantscraper.FieldPolicy, entityName string) plantscraper.FieldValue {
	clean := func(s string) string {
		if policy == plantscraper.PolicyAdStop {
			return e.cleaner.CleanStrict(s, entityName)
		}
		return e.cleaner.Clean(s)
	}

	switch fv := v.(type) {
	case plantscraper.Text:
		return plantscraper.Text(clean(string(fv)))
	case *plantscraper.Structured:
		if fv.Content != nil {
			cleaned := clean(*fv.Content)
			if cleaned == "" {
				fv.Content = nil
			} else {
				fv.Content = &cleaned
			}
		}
		if fv.Sections != nil {
			for _, k := range fv.Sections.Keys() {
				if text, ok := sectionText(fv.Sections, k); ok {
					fv.Sections.Set(k, plantscraper.Text(clean(text)))
				}
			}
		}
		return fv
	default:
		// link maps and tables carry no free text to clean
		return v
	}
}

func sectionText(sections *plantscraper.Sections, key string) (string, bool) {
	v, ok := sections.Get(key)
	if !ok {
		return "", false
	}
	text, ok := v.(plantscraper.Text)
	return string(text), ok
}
