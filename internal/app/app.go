// Package app runs the line-based console interface: banner, prompt loop,
// styled output, and best-effort turn logging.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"sokratik/internal/session"
	"sokratik/internal/store"
)

var helpLines = []string{
	"Type 'exit' or 'quit' to end the session.",
	"Type 'hint' for a clue.",
	"Type 'easier' or 'harder' to adjust difficulty.",
	"Just paste your Python code directly for review anytime.",
	"Type 'I understand' or 'challenge me' for a fill-in-the-blanks challenge.",
	"Type 'quiz me' for a multiple-choice question.",
}

// Options configures a console run.
type Options struct {
	In  io.Reader
	Out io.Writer

	// Repo receives one turn event per completed exchange. Nil disables
	// logging; append failures are reported on Out but never stop the loop.
	Repo store.EventRepo
}

// Console reads user lines, hands them to the session, and prints the
// replies. Strictly synchronous: one exchange at a time.
type Console struct {
	sess *session.Session
	in   *bufio.Scanner
	out  io.Writer
	repo store.EventRepo
}

// New creates a Console around a session.
func New(sess *session.Session, opts Options) *Console {
	return &Console{
		sess: sess,
		in:   bufio.NewScanner(opts.In),
		out:  opts.Out,
		repo: opts.Repo,
	}
}

// Run prints the banner and welcome, then loops until the user exits or
// input is exhausted.
func (c *Console) Run(ctx context.Context) error {
	c.printBanner()
	c.printReply(c.sess.Welcome())

	for {
		fmt.Fprint(c.out, userLabelStyle.Render("You:")+" ")
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}
		input := c.in.Text()

		reply := c.sess.HandleInput(ctx, input)
		c.printReply(reply)
		c.logTurn(ctx, input, reply)

		if reply.Quit {
			return nil
		}
	}
}

func (c *Console) printBanner() {
	rule := ruleStyle.Render(strings.Repeat("=", 30))
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, titleStyle.Render("Socratic Python Tutor"))
	for _, line := range helpLines {
		fmt.Fprintln(c.out, helpStyle.Render(line))
	}
	fmt.Fprintln(c.out, rule)
}

func (c *Console) printReply(reply session.Reply) {
	for _, line := range reply.Lines {
		fmt.Fprintf(c.out, "%s %s\n", botLabelStyle.Render("Bot:"), line)
	}
}

// logTurn appends the exchange to the event log. Best effort only.
func (c *Console) logTurn(ctx context.Context, input string, reply session.Reply) {
	if c.repo == nil {
		return
	}
	err := c.repo.AppendTurn(ctx, store.TurnEventData{
		SessionID:   c.sess.ID,
		Mode:        reply.Mode,
		UserMessage: strings.TrimSpace(input),
		BotResponse: strings.Join(reply.Lines, "\n"),
		Difficulty:  c.sess.Level(),
	})
	if err != nil {
		fmt.Fprintln(c.out, helpStyle.Render("(failed to record turn: "+err.Error()+")"))
	}
}
