package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/graph"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Replace the stored facts",
	Long: `Replace the facts of the configured group with one of:

  --demo         the built-in demo set
  --file PATH    a YAML or JSON list of {subject, predicate, object}
  --text PATH    text files whose contents are run through triple extraction;
                 repeat the flag for several files, each file is one passage`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

var (
	ingestDemo  bool
	ingestFile  string
	ingestTexts []string
)

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().BoolVar(&ingestDemo, "demo", false, "load the built-in demo facts")
	ingestCmd.Flags().StringVar(&ingestFile, "file", "", "triples file (yaml or json)")
	ingestCmd.Flags().StringSliceVar(&ingestTexts, "text", nil, "text file to extract facts from (repeatable)")
	ingestCmd.Flags().Int("concurrency", 1, "parallel extraction calls")
	ingestCmd.MarkFlagsMutuallyExclusive("demo", "file", "text")
	ingestCmd.MarkFlagsOneRequired("demo", "file", "text")

	viper.BindPFlag("ingest.concurrency", ingestCmd.Flags().Lookup("concurrency"))
}

// readPassages reads each path as one passage.
func readPassages(paths []string) ([]string, error) {
	passages := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		passages = append(passages, string(data))
	}
	return passages, nil
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	// Read inputs before opening backends so bad paths fail fast.
	var (
		triples  []types.Triple
		passages []string
		err      error
	)
	switch {
	case ingestDemo:
		triples = graph.DemoTriples()
	case ingestFile != "":
		triples, err = graph.LoadTriplesFile(ingestFile)
	case len(ingestTexts) > 0:
		passages, err = readPassages(ingestTexts)
	default:
		err = errors.New("one of --demo, --file or --text is required")
	}
	if err != nil {
		return err
	}

	client, err := openClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	var elements []types.Element
	if passages != nil {
		elements, err = client.Ingest(ctx, passages)
	} else {
		elements, err = client.BuildGraph(ctx, triples)
	}
	if err != nil {
		return err
	}

	nodes, edges := 0, 0
	for _, el := range elements {
		if el.IsEdge() {
			edges++
		} else {
			nodes++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d facts for group %q: %d entities, %d edges\n",
		len(client.Triples()), client.GroupID(), nodes, edges)
	return nil
}
