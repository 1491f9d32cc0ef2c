// Package console is the interactive delivery layer: it feeds user input
// into the selection session and renders its steps, keeping all terminal
// concerns out of the core.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/lukeaslanian/PricePal/internal/domain"
	"github.com/lukeaslanian/PricePal/internal/usecase"
)

// Console drives a selection session over a reader/writer pair, so tests can
// run the full loop without a terminal.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	storeA string
	storeB string

	headingA *color.Color
	headingB *color.Color
	notice   *color.Color
	success  *color.Color
	failure  *color.Color
}

// New creates a console bound to the given streams. When enableColor is
// false all styling is disabled, including for any package-level color use.
func New(in io.Reader, out io.Writer, storeA, storeB string, enableColor bool) *Console {
	c := &Console{
		in:       bufio.NewScanner(in),
		out:      out,
		storeA:   storeA,
		storeB:   storeB,
		headingA: color.New(color.FgBlue, color.Bold),
		headingB: color.New(color.FgGreen, color.Bold),
		notice:   color.New(color.FgYellow),
		success:  color.New(color.FgGreen),
		failure:  color.New(color.FgRed),
	}
	if !enableColor {
		for _, c := range []*color.Color{c.headingA, c.headingB, c.notice, c.success, c.failure} {
			c.DisableColor()
		}
	}
	return c
}

// Run drives the session until the user enters the done sentinel or input
// ends. Recoverable input errors are reported and re-prompted; they never
// escape the loop.
func (c *Console) Run(session *usecase.SessionService) error {
	c.renderStep(session.Start(), session)

	for !session.Done() {
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			// EOF behaves like the done sentinel.
			break
		}

		step, err := session.Submit(c.in.Text())
		if err != nil {
			if errors.Is(err, domain.ErrSessionDone) {
				break
			}
			c.failure.Fprintf(c.out, "%v\n", err)
		}
		c.renderStep(step, session)
	}

	return nil
}

// renderStep prints notices, confirmations, and the prompt for one step.
func (c *Console) renderStep(step usecase.Step, session *usecase.SessionService) {
	for _, notice := range step.Notices {
		c.notice.Fprintln(c.out, notice)
	}
	if step.Recorded != nil {
		c.success.Fprintf(c.out, "Recorded %q (%s)\n", step.Recorded.Term, describePair(step.Recorded))
	}
	if step.Discarded {
		c.notice.Fprintln(c.out, "Nothing recorded for that item.")
	}

	switch step.Phase {
	case usecase.PhaseQuery:
		fmt.Fprintf(c.out, "\nEnter item to compare (or %q to finish): ", session.DoneToken())
	case usecase.PhaseSelectA, usecase.PhaseSelectB:
		c.heading(step).Fprintf(c.out, "\n%s matches for %q:\n", step.Store, step.Term)
		renderCandidates(c.out, step.Candidates)
		fmt.Fprintf(c.out, "Select %s product (1-%d, or %q to skip): ",
			step.Store, len(step.Candidates), session.SkipToken())
	case usecase.PhaseDone:
		fmt.Fprintln(c.out, "\nComparison finished.")
	}
}

func (c *Console) heading(step usecase.Step) *color.Color {
	if step.Phase == usecase.PhaseSelectA {
		return c.headingA
	}
	return c.headingB
}

func describePair(pair *domain.ConfirmedPair) string {
	switch {
	case pair.A != nil && pair.B != nil:
		return fmt.Sprintf("%s vs %s", pair.A.DisplayPrice(), pair.B.DisplayPrice())
	case pair.A != nil:
		return fmt.Sprintf("%s only", pair.A.DisplayPrice())
	default:
		return fmt.Sprintf("%s only", pair.B.DisplayPrice())
	}
}
