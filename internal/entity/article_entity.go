package entity

// Article is a read-only training/help article. The content index loads
// these from disk at startup; there is no mutation contract.
type Article struct {
	Slug     string   `json:"slug" yaml:"slug"`
	Title    string   `json:"title" yaml:"title"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags" yaml:"tags"`
	Summary  string   `json:"summary" yaml:"summary"`
	Body     string   `json:"body,omitempty" yaml:"body"`
}
