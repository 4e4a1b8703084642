package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/coinfolio/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const assistModel = "gemini-2.5-flash"

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about the portfolio" }
func (*assistCmd) Usage() string {
	return `cfo assist [<question>]

  Sends the extended summary to Gemini together with your question and
  prints the answer. Requires Gemini API credentials in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := "Give a short, factual review of this portfolio."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	p, err := openPortfolio()
	if err != nil {
		return fail(err)
	}
	summary, err := p.GetExtendedSummary()
	if err != nil {
		return fail(err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail(fmt.Errorf("initializing Gemini client: %w", err))
	}

	prompt := fmt.Sprintf(
		"You are a bookkeeping assistant for a personal cryptocurrency record book. "+
			"Answer based only on the data below; do not give investment advice.\n\n%s\n\nQuestion: %s",
		renderer.ExtendedSummary(summary), question)

	resp, err := client.Models.GenerateContent(ctx, assistModel, genai.Text(prompt), nil)
	if err != nil {
		return fail(fmt.Errorf("generating answer: %w", err))
	}
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
