package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "List the stored facts",
	Args:  cobra.NoArgs,
	RunE:  runFacts,
}

var neighborsCmd = &cobra.Command{
	Use:   "neighbors [entity]",
	Short: "Show the entities linked to an entity",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNeighbors,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fact store statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored facts of the configured group",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var factsJSON bool

func init() {
	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(neighborsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)

	factsCmd.Flags().BoolVar(&factsJSON, "json", false, "print facts as JSON")
}

func runFacts(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := openClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	triples := client.Triples()
	out := cmd.OutOrStdout()
	if factsJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(triples)
	}

	if len(triples) == 0 {
		fmt.Fprintf(out, "No facts stored for group %q\n", client.GroupID())
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBJECT\tPREDICATE\tOBJECT")
	for _, t := range triples {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Subject, t.Predicate, t.Object)
	}
	return tw.Flush()
}

func runNeighbors(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := openClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	entity := strings.Join(args, " ")
	n := client.Neighbors(entity)
	out := cmd.OutOrStdout()
	if len(n.Edges) == 0 {
		fmt.Fprintf(out, "%s has no neighbors\n", entity)
		return nil
	}
	for _, e := range n.Edges {
		fmt.Fprintf(out, "%s --%s--> %s\n", e.Source, e.Label, e.Target)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := openClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	stats, err := client.Stats(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Store:    %s\n", cfg.Store.Driver)
	fmt.Fprintf(out, "Groups:   %d\n", stats.GroupCount)
	fmt.Fprintf(out, "Triples:  %d\n", stats.TripleCount)
	fmt.Fprintf(out, "Loaded:   %d facts in group %q\n", len(client.Triples()), client.GroupID())
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client, err := openClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted facts of group %q\n", client.GroupID())
	return nil
}
