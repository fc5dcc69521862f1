package domain

// Category is one of the six fixed personality-type letters.
type Category string

const (
	CategoryRealistic     Category = "R"
	CategoryInvestigative Category = "I"
	CategoryArtistic      Category = "A"
	CategorySocial        Category = "S"
	CategoryEnterprising  Category = "E"
	CategoryConventional  Category = "C"
)

// Categories lists all six categories in alphabetical order.
var Categories = []Category{
	CategoryArtistic,
	CategoryConventional,
	CategoryEnterprising,
	CategoryInvestigative,
	CategoryRealistic,
	CategorySocial,
}

// ValidCategories is the canonical set of accepted category letters.
var ValidCategories = map[Category]bool{
	CategoryRealistic: true, CategoryInvestigative: true,
	CategoryArtistic: true, CategorySocial: true,
	CategoryEnterprising: true, CategoryConventional: true,
}
