// Package prompts renders the prompts sent to the generation model.
//
// Two prompts are used:
//   - QAPrompt grounds an answer in a bullet list of retrieved facts
//   - ExtractionPrompt asks the model for subject | predicate | object lines
//     from a passage of text, using a fixed set of worked examples
//
// Both are plain completion prompts ending in an "Assistant:" cue, and are
// paired with stop sequences that cut generation at the next "User:" turn or
// blank line.
package prompts
