// Command tilmash asks the assistant for a travel phrase from the terminal.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/qazaqlabs/tilmash"
	"github.com/qazaqlabs/tilmash/provider"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tilmash", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	lang := fs.String("lang", tilmash.LangKazakh, "Target language code (kk, ru, zh)")
	style := fs.String("style", string(tilmash.StyleNormal), "Reply style (concise, normal, polite)")
	groqKey := fs.String("groq-key", "", "Groq API key (default: GROQ_API_KEY env)")
	deepseekKey := fs.String("deepseek-key", "", "DeepSeek API key (default: DEEPSEEK_API_KEY env)")
	groqModel := fs.String("groq-model", "", "Groq model override")
	deepseekModel := fs.String("deepseek-model", "", "DeepSeek model override")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", tilmash.Name, tilmash.FullVersion())
		if tilmash.BuildDate != "unknown" && tilmash.BuildDate != "" {
			fmt.Fprintf(stdout, "  built: %s\n", tilmash.BuildDate)
		}
		return nil
	}

	// Get the phrase from args or stdin
	var phrase string
	if fs.NArg() > 0 {
		phrase = strings.Join(fs.Args(), " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		phrase = strings.TrimSpace(string(data))
	}
	if phrase == "" {
		return fmt.Errorf("nothing to ask: pass a phrase as arguments or on stdin")
	}

	primaryKey := *groqKey
	if primaryKey == "" {
		primaryKey = os.Getenv("GROQ_API_KEY")
	}
	secondaryKey := *deepseekKey
	if secondaryKey == "" {
		secondaryKey = os.Getenv("DEEPSEEK_API_KEY")
	}
	if primaryKey == "" && secondaryKey == "" {
		return fmt.Errorf("at least one API key required (GROQ_API_KEY or DEEPSEEK_API_KEY)")
	}

	assistant := tilmash.NewAssistant(
		provider.NewGroq(primaryKey, *groqModel, 0),
		provider.NewDeepSeek(secondaryKey, *deepseekModel, 0),
	)

	if !*quiet {
		fmt.Fprintf(stderr, "Asking in %s...\n", tilmash.GetLanguageName(*lang))
	}

	start := time.Now()
	result, err := assistant.Complete(context.Background(), tilmash.CompletionRequest{
		Messages:   []tilmash.Message{{Role: tilmash.RoleUser, Content: phrase}},
		TargetLang: *lang,
		Style:      tilmash.ReplyStyle(*style),
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *jsonOutput {
		out := struct {
			Text      string `json:"text"`
			Engine    string `json:"engine"`
			ElapsedMs int64  `json:"elapsed_ms"`
		}{result.Text, result.Engine, elapsed.Milliseconds()}

		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(stdout, result.Text)

	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v via %s\n", elapsed.Round(time.Millisecond), result.Engine)
	}

	return nil
}
