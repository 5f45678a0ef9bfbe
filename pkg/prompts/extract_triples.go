package prompts

import "strings"

// ExtractionSystem instructs the model to emit triples and nothing else.
const ExtractionSystem = `You are an information-extraction assistant.
Your only job is to pull out valid subject | predicate | object triples from the text that follows.
**Only** use facts explicitly stated in that text. Do **not** use any external or world knowledge.
Output one triple per line in the format:
  subject | predicate | object
No other text or commentary.
When you see a verb phrase followed by a prepositional phrase starting with "during", "in", "on", or "at",
treat that prepositional phrase as the object and do not include it in the predicate.`

// ExtractionExamples are the worked examples shown before every passage.
var ExtractionExamples = []ExtractionExample{
	{
		Passage: "Alice and Bob co-authored a research paper on natural language processing, which was published in 2021.",
		Triples: []string{
			"Alice | co-authored | a research paper on natural language processing",
			"Bob | co-authored | a research paper on natural language processing",
			"a research paper on natural language processing | was published in | 2021",
		},
	},
	{
		Passage: "John works at Acme Corp and lives in Paris.",
		Triples: []string{
			"John | works at | Acme Corp",
			"John | lives in | Paris",
		},
	},
	{
		Passage: "Sarah, the founder of TechStart, delivered the keynote in Berlin. She also launched a new product.",
		Triples: []string{
			"Sarah | is the founder of | TechStart",
			"Sarah | delivered | the keynote in Berlin",
			"Sarah | launched | a new product",
		},
	},
	{
		Passage: "The conference rose to prominence during the Industrial Revolution.",
		Triples: []string{
			"The conference | rose to prominence | the Industrial Revolution",
		},
	},
}

// ExtractionExample pairs a passage with the triples expected from it.
type ExtractionExample struct {
	Passage string
	Triples []string
}

func (e ExtractionExample) render() string {
	return "User: " + e.Passage + "\nAssistant:\n" + strings.Join(e.Triples, "\n")
}

// ExtractionPrompt builds the extraction prompt for one passage.
func ExtractionPrompt(passage string) string {
	examples := make([]string, len(ExtractionExamples))
	for i, e := range ExtractionExamples {
		examples[i] = e.render()
	}
	userBlock := "User: " + strings.TrimSpace(passage) + "\nAssistant:\n"
	return strings.Join([]string{ExtractionSystem, strings.Join(examples, "\n\n"), userBlock}, "\n\n")
}
