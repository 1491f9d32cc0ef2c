package usecase

import "testing"

func TestTokenize(t *testing.T) {
	t.Run("converts to lowercase", func(t *testing.T) {
		tokens := tokenize("WHOLE MILK")
		for _, token := range tokens {
			if token != "whole" && token != "milk" {
				t.Errorf("unexpected token: %v", token)
			}
		}
	})

	t.Run("removes punctuation", func(t *testing.T) {
		tokens := tokenize("carrots, organic (5-pound)")
		for _, token := range tokens {
			if token == "," || token == "(" || token == ")" || token == "-" {
				t.Errorf("punctuation should be removed: %v", token)
			}
		}
	})

	t.Run("filters stop words and units", func(t *testing.T) {
		tokens := tokenize("milk with vitamin d 128 fl oz 12 pack")
		found := make(map[string]bool)
		for _, token := range tokens {
			found[token] = true
		}
		if found["with"] || found["fl"] || found["oz"] || found["pack"] {
			t.Errorf("stop words should be filtered, got tokens: %v", tokens)
		}
		if !found["milk"] {
			t.Errorf("'milk' should be kept, got tokens: %v", tokens)
		}
	})

	t.Run("filters pure numeric tokens", func(t *testing.T) {
		tokens := tokenize("carrots 128 5")
		for _, token := range tokens {
			if isNumeric(token) {
				t.Errorf("numeric token should be filtered: %v", token)
			}
		}
	})

	t.Run("returns empty slice for empty string", func(t *testing.T) {
		if tokens := tokenize(""); len(tokens) != 0 {
			t.Errorf("expected empty slice, got %v", tokens)
		}
	})
}

func TestTokenSort(t *testing.T) {
	t.Run("same tokens in different order normalize identically", func(t *testing.T) {
		if tokenSort("Carrots Organic") != tokenSort("Organic Carrots") {
			t.Error("token order should not affect the sorted form")
		}
	})

	t.Run("punctuation and case are ignored", func(t *testing.T) {
		if tokenSort("organic, CARROTS!") != tokenSort("Carrots Organic") {
			t.Error("punctuation/case should not affect the sorted form")
		}
	})

	t.Run("different tokens stay different", func(t *testing.T) {
		if tokenSort("organic carrots") == tokenSort("organic celery") {
			t.Error("distinct token sets must not collide")
		}
	})
}

func TestTokenSortFiltered(t *testing.T) {
	t.Run("noise tokens do not affect the filtered form", func(t *testing.T) {
		if tokenSortFiltered("whole milk") != tokenSortFiltered("Milk Whole 64 oz") {
			t.Error("size/unit noise should not affect the filtered form")
		}
	})

	t.Run("all-noise names filter to empty", func(t *testing.T) {
		if got := tokenSortFiltered("64 oz 12 pack"); got != "" {
			t.Errorf("filtered form = %q, want empty", got)
		}
	})

	t.Run("distinct token sets stay distinct", func(t *testing.T) {
		if tokenSortFiltered("whole milk") == tokenSortFiltered("skim milk") {
			t.Error("distinct filtered token sets must not collide")
		}
	})
}

func TestGetTokenWeight(t *testing.T) {
	testCases := []struct {
		token string
		want  float64
	}{
		{"milk", weightFood},
		{"carrots", weightFood},
		{"bread", weightFood},
		{"whole", weightDescriptive},
		{"organic", weightDescriptive},
		{"peeled", weightDescriptive},
		{"xyz", weightDefault},
		{"cheerios", weightDefault},
	}

	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			if got := getTokenWeight(tc.token); got != tc.want {
				t.Errorf("getTokenWeight(%q) = %v, want %v", tc.token, got, tc.want)
			}
		})
	}
}

func TestTokenizeWithWeights(t *testing.T) {
	tokens := tokenizeWithWeights("organic carrots cheerios")
	if len(tokens) != 3 {
		t.Fatalf("token count = %d, want 3 (%v)", len(tokens), tokens)
	}
	for _, tw := range tokens {
		switch tw.Token {
		case "carrots":
			if tw.Weight != weightFood {
				t.Errorf("carrots weight = %v, want %v", tw.Weight, weightFood)
			}
		case "organic":
			if tw.Weight != weightDescriptive {
				t.Errorf("organic weight = %v, want %v", tw.Weight, weightDescriptive)
			}
		default:
			if tw.Weight != weightDefault {
				t.Errorf("%q weight = %v, want %v", tw.Token, tw.Weight, weightDefault)
			}
		}
	}
}

func TestIsNumeric(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"123", true},
		{"0", true},
		{"", false},
		{"12a", false},
		{"12.5", false},
		{"abc", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := isNumeric(tc.input); got != tc.want {
				t.Errorf("isNumeric(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
