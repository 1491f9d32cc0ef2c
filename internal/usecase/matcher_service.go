package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/antzucaro/matchr"

	"github.com/lukeaslanian/PricePal/internal/domain"
)

// Score blend weights. Token coverage carries most of the signal; the
// Jaro-Winkler component over the token-sorted strings rewards close
// spellings that token equality misses.
const (
	coverageBlendWeight = 0.80
	jaroBlendWeight     = 0.20

	queryCoverageWeight = 0.60
	nameCoverageWeight  = 0.20
	jaccardWeight       = 0.20

	// Tokens shorter than this never fuzzy-match, to avoid false positives
	// like "can" ~ "cat".
	minFuzzyTokenLen = 4
)

// MatcherConfig holds configuration for the matcher service
type MatcherConfig struct {
	DefaultLimit       int
	DefaultMinScore    float64
	FuzzyEditDistance  int
	EnableDebugLogging bool
}

// MatcherService ranks catalog products against a free-text query.
// Scoring is pure and deterministic: identical inputs always produce the
// same ordered candidate list.
type MatcherService struct {
	defaultLimit       int
	defaultMinScore    float64
	fuzzyEditDistance  int
	enableDebugLogging bool
}

// NewMatcherService creates a new matcher service with the given configuration
func NewMatcherService(config MatcherConfig) *MatcherService {
	limit := config.DefaultLimit
	if limit <= 0 {
		limit = 10
	}

	minScore := config.DefaultMinScore
	if minScore < 0 {
		minScore = 0
	}

	fuzzyDist := config.FuzzyEditDistance
	if fuzzyDist <= 0 {
		fuzzyDist = 1
	}

	return &MatcherService{
		defaultLimit:       limit,
		defaultMinScore:    minScore,
		fuzzyEditDistance:  fuzzyDist,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// DefaultLimit returns the candidate cap used when a caller passes limit <= 0.
func (s *MatcherService) DefaultLimit() int { return s.defaultLimit }

// DefaultMinScore returns the threshold used when a caller passes minScore < 0.
func (s *MatcherService) DefaultMinScore() float64 { return s.defaultMinScore }

// rankedCandidate carries the exactness flag the sort uses to break ties;
// it never leaves Search.
type rankedCandidate struct {
	domain.Candidate
	exact bool
}

// Search returns the catalog products scoring at least minScore against the
// query, ordered descending by score. At equal score, exact name matches
// (up to normalization, token order, and filtered noise) rank ahead of
// containment hits, and catalog load order breaks remaining ties
// (first-loaded wins). limit <= 0 falls back to the configured default;
// minScore < 0 falls back to the configured default threshold.
// An empty or whitespace-only query fails with domain.ErrInvalidQuery.
func (s *MatcherService) Search(catalog *domain.Catalog, query string, limit int, minScore float64) ([]domain.Candidate, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidQuery
	}

	if limit <= 0 {
		limit = s.defaultLimit
	}
	if minScore < 0 {
		minScore = s.defaultMinScore
	}

	if s.enableDebugLogging {
		log.Printf("[MATCH] Searching %s for %q (limit=%d, minScore=%.1f)",
			catalog.Store(), query, limit, minScore)
	}

	var ranked []rankedCandidate
	for _, p := range catalog.Products() {
		score, exact := s.scoreName(query, p.Name)
		if score < minScore {
			continue
		}
		ranked = append(ranked, rankedCandidate{
			Candidate: domain.Candidate{Product: p, Score: score},
			exact:     exact,
		})
	}

	// Insertion order is load order, so a stable sort keeps first-loaded
	// products ahead once score and exactness tie.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].exact && !ranked[j].exact
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	candidates := make([]domain.Candidate, 0, len(ranked))
	for _, r := range ranked {
		candidates = append(candidates, r.Candidate)
	}

	if s.enableDebugLogging {
		for i, c := range candidates {
			log.Printf("[MATCH]   #%d %q score=%.1f", i+1, c.Product.Name, c.Score)
		}
	}

	return candidates, nil
}

// ScoreName computes the similarity between a query and a product name.
// Total and pure: any pair of strings yields a score in [0, 100], identical
// names score 100, and token order never matters.
func (s *MatcherService) ScoreName(query, name string) float64 {
	score, _ := s.scoreName(query, name)
	return score
}

// scoreName additionally reports whether the name matched the query exactly,
// up to normalization, token order, and filtered noise. Containment hits
// score 100 too but are not exact, so the literal product name wins the
// ranking tie.
func (s *MatcherService) scoreName(query, name string) (float64, bool) {
	nq := normalizeName(query)
	nn := normalizeName(name)
	if nq == "" || nn == "" {
		return 0, false
	}
	if nq == nn {
		return 100, true
	}

	sq := tokenSort(query)
	sn := tokenSort(name)
	if sq == sn {
		return 100, true
	}
	// Same tokens once packaging noise is filtered out ("whole milk" vs
	// "Milk Whole 64 oz"). All-noise names never match this way.
	fq := tokenSortFiltered(query)
	if fq != "" && fq == tokenSortFiltered(name) {
		return 100, true
	}

	// A query contained in the name (or vice versa) is as good as exact for
	// threshold purposes.
	if strings.Contains(nn, nq) || strings.Contains(nq, nn) {
		return 100, false
	}

	base := s.weightedCoverage(tokenizeWithWeights(query), tokenizeWithWeights(name))
	jw := matchr.JaroWinkler(sq, sn, true)

	score := (base*coverageBlendWeight + jw*jaroBlendWeight) * 100
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, false
}

// weightedCoverage blends weighted query-token coverage, name-token coverage,
// and plain Jaccard overlap into a [0, 1] similarity. A query token counts at
// full weight on an exact hit and at fuzzyWeightFactor when it is within the
// configured edit distance of some name token.
func (s *MatcherService) weightedCoverage(queryTokens, nameTokens []TokenWeight) float64 {
	if len(queryTokens) == 0 || len(nameTokens) == 0 {
		return 0
	}

	queryCov := s.coverage(queryTokens, nameTokens)
	nameCov := s.coverage(nameTokens, queryTokens)
	jaccard := tokenJaccard(queryTokens, nameTokens)

	return queryCov*queryCoverageWeight + nameCov*nameCoverageWeight + jaccard*jaccardWeight
}

// coverage returns the weight fraction of tokens in a that have an exact or
// fuzzy counterpart in b.
func (s *MatcherService) coverage(a, b []TokenWeight) float64 {
	exact := make(map[string]bool, len(b))
	for _, t := range b {
		exact[t.Token] = true
	}

	var total, matched float64
	for _, t := range a {
		total += t.Weight
		if exact[t.Token] {
			matched += t.Weight
			continue
		}
		if s.fuzzyMatchAny(t.Token, b) {
			matched += t.Weight * fuzzyWeightFactor
		}
	}
	if total == 0 {
		return 0
	}
	return matched / total
}

// fuzzyMatchAny reports whether token is within the edit-distance threshold
// of any token in candidates.
func (s *MatcherService) fuzzyMatchAny(token string, candidates []TokenWeight) bool {
	if len(token) < minFuzzyTokenLen {
		return false
	}
	for _, c := range candidates {
		if len(c.Token) < minFuzzyTokenLen {
			continue
		}
		lenDiff := len(token) - len(c.Token)
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > s.fuzzyEditDistance {
			continue
		}
		if levenshtein.ComputeDistance(token, c.Token) <= s.fuzzyEditDistance {
			return true
		}
	}
	return false
}

// tokenJaccard computes |intersection| / |union| over the unique token sets.
func tokenJaccard(a, b []TokenWeight) float64 {
	union := make(map[string]bool, len(a)+len(b))
	inA := make(map[string]bool, len(a))
	for _, t := range a {
		union[t.Token] = true
		inA[t.Token] = true
	}
	shared := make(map[string]bool)
	for _, t := range b {
		union[t.Token] = true
		if inA[t.Token] {
			shared[t.Token] = true
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(len(shared)) / float64(len(union))
}
