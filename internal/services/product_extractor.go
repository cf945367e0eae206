package services

import (
	"regexp"
	"strconv"
	"strings"

	"dukaan/internal/models"

	"github.com/google/uuid"
)

// ProductExtractor infers product data from a markup snapshot. Storefront
// markup is arbitrary, so extraction is best-effort: an extractor returns
// ErrNoProduct when the snapshot gives it nothing to work with.
type ProductExtractor interface {
	Extract(m models.Markup) (*models.CartItem, error)
}

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	numberRe     = regexp.MustCompile(`(\d+(\.\d+)?)`)
	digitRe      = regexp.MustCompile(`\d`)
)

// slugID derives a stable product id from a display name.
func slugID(name string) string {
	return strings.ToLower(whitespaceRe.ReplaceAllString(strings.TrimSpace(name), "_"))
}

// parsePrice extracts the first number from a currency-decorated text run,
// e.g. "₹1,299" or "Rs. 49.50". Returns false when no number is present.
func parsePrice(text string) (float64, bool) {
	cleaned := strings.NewReplacer(" ", "", ",", "").Replace(text)
	match := numberRe.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

// ExplicitAttributesExtractor trusts data-* attributes placed on the
// add-to-cart control by well-behaved markup.
type ExplicitAttributesExtractor struct{}

// NewExplicitAttributesExtractor creates a new ExplicitAttributesExtractor.
func NewExplicitAttributesExtractor() *ExplicitAttributesExtractor {
	return &ExplicitAttributesExtractor{}
}

// Extract reads data-id, data-name, data-price and data-img. It only claims
// the snapshot when at least one of name, price or img is present; a bare id
// is not enough to build a line item from.
func (e *ExplicitAttributesExtractor) Extract(m models.Markup) (*models.CartItem, error) {
	id := m.Attrs["data-id"]
	name := m.Attrs["data-name"]
	priceAttr := m.Attrs["data-price"]
	img := m.Attrs["data-img"]

	if name == "" && priceAttr == "" && img == "" {
		return nil, ErrNoProduct
	}

	var price float64
	if priceAttr != "" {
		if p, ok := parsePrice(priceAttr); ok {
			price = p
		}
	}
	if name == "" {
		name = "Product"
	}
	if id == "" {
		if name != "Product" {
			id = slugID(name)
		} else {
			id = "p_" + uuid.New().String()
		}
	}

	return &models.CartItem{
		ID:    id,
		Name:  name,
		Price: price,
		Img:   img,
	}, nil
}

// MarkupHeuristicExtractor scrapes product data out of the text runs around
// an add-to-cart control. Inherently fragile; it exists for storefront pages
// that carry no data attributes at all.
type MarkupHeuristicExtractor struct{}

// NewMarkupHeuristicExtractor creates a new MarkupHeuristicExtractor.
func NewMarkupHeuristicExtractor() *MarkupHeuristicExtractor {
	return &MarkupHeuristicExtractor{}
}

// looksLikePrice reports whether a text run is a price: it carries a currency
// marker or contains digits.
func looksLikePrice(text string) bool {
	if strings.Contains(text, "₹") || strings.Contains(text, "Rs") {
		return true
	}
	return digitRe.MatchString(text)
}

// Extract picks the name from the first text run that does not look like a
// price, and the price from the first run that does. The id is a slug of the
// name, so the same card always maps to the same cart entry.
func (e *MarkupHeuristicExtractor) Extract(m models.Markup) (*models.CartItem, error) {
	if len(m.Text) == 0 && m.Img == "" {
		return nil, ErrNoProduct
	}

	var name string
	var price float64
	var havePrice bool

	for _, text := range m.Text {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if !havePrice && looksLikePrice(text) {
			if p, ok := parsePrice(text); ok {
				price = p
				havePrice = true
				continue
			}
		}
		if name == "" {
			name = text
		}
	}

	if name == "" {
		name = "Product"
	}

	id := m.Attrs["data-product-id"]
	if id == "" {
		id = slugID(name)
	}

	return &models.CartItem{
		ID:    id,
		Name:  name,
		Price: price,
		Img:   m.Img,
	}, nil
}

// ChainExtractor tries extractors in order and returns the first hit.
type ChainExtractor struct {
	extractors []ProductExtractor
}

// NewChainExtractor creates a ChainExtractor over the given extractors.
func NewChainExtractor(extractors ...ProductExtractor) *ChainExtractor {
	return &ChainExtractor{extractors: extractors}
}

// NewDefaultExtractor returns the standard chain: explicit attributes win,
// the markup heuristic is the fallback.
func NewDefaultExtractor() *ChainExtractor {
	return NewChainExtractor(
		NewExplicitAttributesExtractor(),
		NewMarkupHeuristicExtractor(),
	)
}

// Extract runs the chain. ErrNoProduct moves on to the next extractor.
func (e *ChainExtractor) Extract(m models.Markup) (*models.CartItem, error) {
	for _, extractor := range e.extractors {
		product, err := extractor.Extract(m)
		if err == nil {
			return product, nil
		}
	}
	return nil, ErrNoProduct
}
