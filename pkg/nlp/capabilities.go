package nlp

// TaskCapability represents a specific NLP task that a model can perform.
type TaskCapability string

const (
	// TaskEmbedding represents text embedding generation.
	TaskEmbedding TaskCapability = "embedding"
	// TaskRelationExtraction represents relation extraction between entities.
	TaskRelationExtraction TaskCapability = "relation_extraction"
	// TaskQuestionAnswering represents grounded question answering.
	TaskQuestionAnswering TaskCapability = "question_answering"
	// TaskTextGeneration represents open-ended text generation (chat/completion).
	TaskTextGeneration TaskCapability = "text_generation"
)

// ProviderID represents a unique identifier for a generation provider.
type ProviderID string

const (
	// ProviderOpenAI is the ID for OpenAI and OpenAI-compatible services.
	ProviderOpenAI ProviderID = "openai"
	// ProviderRustBert is the ID for the RustBert local provider.
	ProviderRustBert ProviderID = "rustbert"
	// ProviderEmbedEverything is the ID for the EmbedEverything local provider.
	ProviderEmbedEverything ProviderID = "embedeverything"
)

// HasCapability reports whether client supports capability.
func HasCapability(client Client, capability TaskCapability) bool {
	for _, c := range client.GetCapabilities() {
		if c == capability {
			return true
		}
	}
	return false
}
