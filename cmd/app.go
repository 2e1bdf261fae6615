// Package cmd implements the CLI application for trade cost analysis.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/khliang/tradecost"
	"github.com/khliang/tradecost/ftx"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables for the shared flags.

const (
	apiKeyEnv     = "FTX_API_KEY"
	apiSecretEnv  = "FTX_API_SECRET"
	subaccountEnv = "FTX_SUBACCOUNT"
)

var apiKeyFlag = flag.String("api-key", "", "Exchange API key. If missing it is read from the environment variable "+apiKeyEnv+".")
var apiSecretFlag = flag.String("api-secret", "", "Exchange API secret. If missing it is read from the environment variable "+apiSecretEnv+".")
var subaccountFlag = flag.String("subaccount", "", "Exchange subaccount name. If missing it is read from the environment variable "+subaccountEnv+".")

func stringOrEnv(flagValue *string, env string) string {
	// If the flag is not set, we try to read it from the environment variable.
	if *flagValue == "" {
		*flagValue = os.Getenv(env)
	}
	return *flagValue
}

// apiClient builds the exchange client from the shared credential flags.
func apiClient() *ftx.Client {
	return ftx.New(
		stringOrEnv(apiKeyFlag, apiKeyEnv),
		stringOrEnv(apiSecretFlag, apiSecretEnv),
		stringOrEnv(subaccountFlag, subaccountEnv),
	)
}

// publicClient builds a client good enough for unauthenticated endpoints.
func publicClient() *ftx.Client { return ftx.New("", "", "") }

// splitAssets parses the comma-separated -a flag value.
func splitAssets(list string) []string {
	var assets []string
	for _, a := range strings.Split(list, ",") {
		if a = strings.TrimSpace(a); a != "" {
			assets = append(assets, a)
		}
	}
	return assets
}

// printMarkdown renders markdown for the terminal and prints it.
// If rendering fails the raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// stdinPrompter asks the user for a rate on the terminal. It is the
// conversion resolver's fallback of last resort.
type stdinPrompter struct {
	in *bufio.Reader
}

func newStdinPrompter() *stdinPrompter {
	return &stdinPrompter{in: bufio.NewReader(os.Stdin)}
}

func (p *stdinPrompter) PromptRate(c tradecost.Conversion) (tradecost.Quantity, error) {
	fmt.Printf("Convert %s to %s > ", c.From, c.To)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return tradecost.Quantity{}, err
	}
	return tradecost.ParseQuantity(strings.TrimSpace(line))
}
