// Package tilmash provides an AI-powered travel phrase assistant.
//
// Tilmash forwards chat-style prompts to OpenAI-compatible LLM providers
// (Groq, DeepSeek) with ordered fallback, enforcing the reply language and
// tone through a synthesized system prompt.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/qazaqlabs/tilmash"
//	    "github.com/qazaqlabs/tilmash/provider"
//	)
//
//	func main() {
//	    primary := provider.NewGroq(os.Getenv("GROQ_API_KEY"), "", 0)
//	    secondary := provider.NewDeepSeek(os.Getenv("DEEPSEEK_API_KEY"), "", 0)
//
//	    assistant := tilmash.NewAssistant(primary, secondary)
//
//	    result, err := assistant.Complete(context.Background(), tilmash.CompletionRequest{
//	        Messages:   []tilmash.Message{{Role: tilmash.RoleUser, Content: "How do I ask for directions to the bazaar?"}},
//	        TargetLang: tilmash.LangKazakh,
//	        Style:      tilmash.StyleConcise,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result.Text, result.Engine)
//	}
package tilmash
