package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lukeaslanian/PricePal/internal/domain"
)

// Phase identifies where the selection session is in its loop.
type Phase int

const (
	// PhaseQuery means the session is waiting for the next search term or
	// the done sentinel.
	PhaseQuery Phase = iota
	// PhaseSelectA means candidates from catalog A are pending a choice.
	PhaseSelectA
	// PhaseSelectB means candidates from catalog B are pending a choice.
	PhaseSelectB
	// PhaseDone is terminal; no further input is accepted.
	PhaseDone
)

// String returns the phase name for logs and test failure messages.
func (p Phase) String() string {
	switch p {
	case PhaseQuery:
		return "query"
	case PhaseSelectA:
		return "select-a"
	case PhaseSelectB:
		return "select-b"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Step describes what the session needs from the user next. The console
// delivery renders a Step; the session itself never touches a terminal.
type Step struct {
	Phase      Phase
	Store      string // store whose candidates are pending, for select phases
	Term       string
	Candidates []domain.Candidate
	Notices    []string // "no matches" and discard notifications
	Recorded   *domain.ConfirmedPair
	Discarded  bool // the term was dropped because both sides were skipped
}

// SessionConfig holds configuration for the selection session
type SessionConfig struct {
	SkipToken string // defaults to "s"
	DoneToken string // defaults to "done"
	Limit     int
	MinScore  float64
}

// SessionService runs the interactive comparison loop as an explicit state
// machine: Submit is the only transition function, and every recoverable
// input error leaves the state (and any pending candidate list) unchanged.
// Single-threaded by design; the session is the sole mutator of its pairs.
type SessionService struct {
	matcher  *MatcherService
	catalogA *domain.Catalog
	catalogB *domain.Catalog

	skipToken string
	doneToken string
	limit     int
	minScore  float64

	phase   Phase
	term    string
	pending []domain.Candidate
	chosenA *domain.Product
	pairs   []domain.ConfirmedPair
}

// NewSessionService creates a session over two loaded catalogs.
func NewSessionService(matcher *MatcherService, catalogA, catalogB *domain.Catalog, config SessionConfig) *SessionService {
	skip := config.SkipToken
	if skip == "" {
		skip = "s"
	}
	done := config.DoneToken
	if done == "" {
		done = "done"
	}

	return &SessionService{
		matcher:   matcher,
		catalogA:  catalogA,
		catalogB:  catalogB,
		skipToken: skip,
		doneToken: done,
		limit:     config.Limit,
		minScore:  config.MinScore,
		phase:     PhaseQuery,
	}
}

// Start returns the initial step: prompt for the first query.
func (s *SessionService) Start() Step {
	return s.currentStep()
}

// Done reports whether the session reached its terminal phase.
func (s *SessionService) Done() bool { return s.phase == PhaseDone }

// SkipToken returns the token that skips the pending candidate list.
func (s *SessionService) SkipToken() string { return s.skipToken }

// DoneToken returns the sentinel that ends the session.
func (s *SessionService) DoneToken() string { return s.doneToken }

// Pairs returns the confirmed pairs in entry order. The slice is owned by
// the session and must be treated as read-only.
func (s *SessionService) Pairs() []domain.ConfirmedPair { return s.pairs }

// Submit feeds one line of user input into the state machine and returns the
// next step. Recoverable input errors (empty query, malformed or out-of-range
// selection) are returned alongside the unchanged current step so the caller
// can re-prompt.
func (s *SessionService) Submit(input string) (Step, error) {
	switch s.phase {
	case PhaseQuery:
		return s.submitQuery(input)
	case PhaseSelectA, PhaseSelectB:
		return s.submitSelection(input)
	case PhaseDone:
		return s.currentStep(), domain.ErrSessionDone
	default:
		return s.currentStep(), fmt.Errorf("unexpected session phase %v", s.phase)
	}
}

func (s *SessionService) submitQuery(input string) (Step, error) {
	term := strings.TrimSpace(input)
	if term == "" {
		return s.currentStep(), domain.ErrInvalidQuery
	}
	if strings.EqualFold(term, s.doneToken) {
		s.phase = PhaseDone
		return s.currentStep(), nil
	}

	s.term = term
	s.chosenA = nil

	candidates, err := s.matcher.Search(s.catalogA, term, s.limit, s.minScore)
	if err != nil {
		return s.currentStep(), err
	}
	if len(candidates) == 0 {
		// Forced skip on side A; move straight on to side B.
		return s.advanceToB(noMatchNotice(s.catalogA.Store(), term))
	}

	s.phase = PhaseSelectA
	s.pending = candidates
	return s.currentStep(), nil
}

func (s *SessionService) submitSelection(input string) (Step, error) {
	choice, err := s.parseSelection(input)
	if err != nil {
		// State and candidate list stay as they were; the caller re-prompts.
		return s.currentStep(), err
	}

	if s.phase == PhaseSelectA {
		s.chosenA = choice
		return s.advanceToB()
	}
	return s.finalize(choice)
}

// parseSelection interprets a selection input as the skip token or a 1-based
// candidate index. Anything else fails with domain.ErrInvalidSelection.
func (s *SessionService) parseSelection(input string) (*domain.Product, error) {
	trimmed := strings.TrimSpace(input)
	if strings.EqualFold(trimmed, s.skipToken) || strings.EqualFold(trimmed, "skip") {
		return nil, nil
	}

	idx, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a candidate number or %q",
			domain.ErrInvalidSelection, trimmed, s.skipToken)
	}
	if idx < 1 || idx > len(s.pending) {
		return nil, fmt.Errorf("%w: %d is outside 1-%d",
			domain.ErrInvalidSelection, idx, len(s.pending))
	}

	product := s.pending[idx-1].Product
	return &product, nil
}

// advanceToB searches catalog B for the current term. When B has no
// candidates either, the side is force-skipped and the pair finalized.
func (s *SessionService) advanceToB(notices ...string) (Step, error) {
	candidates, err := s.matcher.Search(s.catalogB, s.term, s.limit, s.minScore)
	if err != nil {
		return s.currentStep(), err
	}
	if len(candidates) == 0 {
		notices = append(notices, noMatchNotice(s.catalogB.Store(), s.term))
		step, err := s.finalize(nil)
		step.Notices = append(notices, step.Notices...)
		return step, err
	}

	s.phase = PhaseSelectB
	s.pending = candidates
	step := s.currentStep()
	step.Notices = notices
	return step, nil
}

// finalize records or discards the pair for the current term and returns the
// session to the query phase.
func (s *SessionService) finalize(chosenB *domain.Product) (Step, error) {
	term := s.term
	chosenA := s.chosenA

	s.phase = PhaseQuery
	s.pending = nil
	s.term = ""
	s.chosenA = nil

	step := s.currentStep()
	if chosenA == nil && chosenB == nil {
		step.Discarded = true
		step.Notices = []string{fmt.Sprintf("%q skipped on both sides; nothing recorded", term)}
		return step, nil
	}

	pair := domain.ConfirmedPair{Term: term, A: chosenA, B: chosenB}
	s.pairs = append(s.pairs, pair)
	step.Recorded = &pair
	return step, nil
}

// currentStep rebuilds the presentation of the current state, used both for
// normal transitions and for re-prompting after recoverable errors.
func (s *SessionService) currentStep() Step {
	switch s.phase {
	case PhaseSelectA:
		return Step{Phase: PhaseSelectA, Store: s.catalogA.Store(), Term: s.term, Candidates: s.pending}
	case PhaseSelectB:
		return Step{Phase: PhaseSelectB, Store: s.catalogB.Store(), Term: s.term, Candidates: s.pending}
	case PhaseDone:
		return Step{Phase: PhaseDone}
	default:
		return Step{Phase: PhaseQuery}
	}
}

func noMatchNotice(store, term string) string {
	return fmt.Sprintf("no %s matches for %q; skipping this side", store, term)
}
