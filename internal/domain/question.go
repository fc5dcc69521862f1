package domain

// Question is a single yes/no interest question from the pool.
// Loaded once at startup and immutable thereafter.
type Question struct {
	Text     string
	Category Category
}

// PageQuestion is a question as served to the client, including the
// fixed page-1 prompts which carry a type instead of a category.
type PageQuestion struct {
	Type     string   `json:"type,omitempty"`
	Question string   `json:"question"`
	Category Category `json:"category,omitempty"`
}
