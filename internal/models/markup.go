package models

// Markup is a snapshot of the product card surrounding an add-to-cart
// control: its data-* attributes, the visible text runs inside the card (in
// document order), and the first image URL found. Storefront pages vary
// wildly, so this is deliberately loose; the extractor decides what to trust.
type Markup struct {
	Attrs map[string]string `json:"attrs"`
	Text  []string          `json:"text"`
	Img   string            `json:"img"`
}
