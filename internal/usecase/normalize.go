package usecase

import (
	"regexp"
	"sort"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	punctuationRegex    = regexp.MustCompile(`[^\w\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// Token weight categories for scoring
const (
	weightFood        = 3.0 // Core food terms (milk, carrots, bread)
	weightDescriptive = 2.0 // Descriptive terms (whole, organic, frozen)
	weightDefault     = 1.0 // Everything else
	fuzzyWeightFactor = 0.8 // Near-miss tokens get 80% of normal weight
)

// foodTerms contains high-importance grocery keywords (weight 3.0)
var foodTerms = map[string]bool{
	// Proteins
	"chicken": true, "beef": true, "pork": true, "salmon": true, "turkey": true,
	"shrimp": true, "tuna": true, "bacon": true, "sausage": true, "ham": true,
	"tofu": true, "eggs": true, "egg": true,
	// Dairy
	"milk": true, "cheese": true, "yogurt": true, "butter": true, "cream": true,
	"cheddar": true, "mozzarella": true, "parmesan": true,
	// Grains & bakery
	"bread": true, "rice": true, "pasta": true, "cereal": true, "oats": true,
	"flour": true, "tortilla": true, "bagel": true, "granola": true,
	// Produce
	"apple": true, "apples": true, "banana": true, "bananas": true,
	"carrot": true, "carrots": true, "lettuce": true, "tomato": true,
	"tomatoes": true, "potato": true, "potatoes": true, "onion": true,
	"onions": true, "broccoli": true, "spinach": true, "kale": true,
	"avocado": true, "cucumber": true, "pepper": true, "peppers": true,
	"corn": true, "beans": true, "grapes": true, "lemon": true, "lime": true,
	"strawberries": true, "blueberries": true,
	// Beverages
	"juice": true, "coffee": true, "tea": true, "soda": true, "kombucha": true,
	// Pantry & condiments
	"ketchup": true, "mustard": true, "mayonnaise": true, "salsa": true,
	"honey": true, "syrup": true, "jam": true, "hummus": true,
	"olive": true, "oil": true, "vinegar": true, "salt": true,
	// Snacks & prepared
	"chips": true, "crackers": true, "cookies": true, "chocolate": true,
	"pizza": true, "soup": true, "salad": true, "popcorn": true,
}

// descriptiveTerms contains medium-importance descriptive keywords (weight 2.0)
var descriptiveTerms = map[string]bool{
	"whole": true, "skim": true, "nonfat": true, "lowfat": true,
	"organic": true, "natural": true, "fresh": true, "frozen": true,
	"canned": true, "dried": true, "raw": true, "cooked": true,
	"grilled": true, "baked": true, "roasted": true, "smoked": true,
	"peeled": true, "shredded": true, "sliced": true, "diced": true,
	"cut": true, "ground": true, "boneless": true, "skinless": true,
	"unsweetened": true, "sweetened": true, "salted": true, "unsalted": true,
	"vanilla": true, "plain": true, "original": true, "classic": true,
	"white": true, "brown": true, "wild": true, "baby": true, "lean": true,
	"gluten": true, "free": true, "lite": true, "light": true,
}

// stopWords are tokens that never help distinguish one product from another:
// basic English stop words, size/quantity units, and packaging noise.
var stopWords = map[string]bool{
	// Basic English stop words
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "by": true, "from": true, "per": true,
	// Size/quantity units
	"oz": true, "fl": true, "lb": true, "lbs": true, "ml": true,
	"gallon": true, "quart": true, "pint": true, "liter": true,
	"gram": true, "grams": true, "kg": true, "ounce": true, "ounces": true,
	"pound": true, "pounds": true, "ct": true, "count": true,
	// Packaging terms
	"pack": true, "pk": true, "box": true, "bag": true, "bottle": true,
	"can": true, "carton": true, "jar": true, "tub": true, "pouch": true,
	"each": true, "bunch": true,
	// Marketing noise
	"value": true, "family": true, "size": true, "new": true,
	"select": true, "premium": true,
}

// normalizeName lowercases a name, strips punctuation, and collapses
// whitespace. It is the shared first step for both scoring and display-safe
// comparison.
func normalizeName(s string) string {
	cleaned := punctuationRegex.ReplaceAllString(strings.ToLower(s), " ")
	cleaned = multipleSpacesRegex.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// TokenWeight pairs a normalized token with its scoring weight.
type TokenWeight struct {
	Token  string
	Weight float64
}

// tokenize splits a string into normalized lowercase tokens.
// Removes punctuation, stop words, and pure numeric tokens.
func tokenize(s string) []string {
	words := strings.Fields(normalizeName(s))

	var tokens []string
	for _, word := range words {
		if len(word) <= 1 {
			continue
		}
		if stopWords[word] {
			continue
		}
		if isNumeric(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// tokenizeWithWeights tokenizes and tags each token with its weight category.
func tokenizeWithWeights(s string) []TokenWeight {
	tokens := tokenize(s)
	out := make([]TokenWeight, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, TokenWeight{Token: t, Weight: getTokenWeight(t)})
	}
	return out
}

// getTokenWeight returns the scoring weight for a single token.
func getTokenWeight(token string) float64 {
	switch {
	case foodTerms[token]:
		return weightFood
	case descriptiveTerms[token]:
		return weightDescriptive
	default:
		return weightDefault
	}
}

// tokenSort returns the tokens of a normalized string in lexicographic order,
// rejoined with single spaces. Two names with the same tokens in a different
// order normalize to the same sorted form.
func tokenSort(s string) string {
	f := strings.Fields(normalizeName(s))
	sort.Strings(f)
	return strings.Join(f, " ")
}

// tokenSortFiltered returns the filtered tokens (stop words, units, and
// numeric tokens removed) in lexicographic order, rejoined with single
// spaces. Two names that differ only in token order and packaging noise
// share the same filtered form. Empty when nothing survives filtering.
func tokenSortFiltered(s string) string {
	f := tokenize(s)
	sort.Strings(f)
	return strings.Join(f, " ")
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
