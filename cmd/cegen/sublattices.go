// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/celattice/element"
	"github.com/katalvlaran/celattice/internal/config"
	"github.com/katalvlaran/celattice/internal/job"
	"github.com/katalvlaran/celattice/supercell"
)

// sublatticesCmd prints the sublattice table of a job's supercell.
var sublatticesCmd = &cobra.Command{
	Use:   "sublattices <job.yaml>",
	Short: "List the sublattices of a job's supercell",
	Long: `Print one row per sublattice: its id (the key used in decoration
counts), its candidate species with their codes, and its site count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		j, err := config.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to load job: %w", err)
		}
		sc, err := job.BuildSuperCell(j, slog.Default())
		if err != nil {
			return err
		}
		return printSublattices(os.Stdout, sc)
	},
}

func init() {
	rootCmd.AddCommand(sublatticesCmd)
}

func printSublattices(w io.Writer, sc *supercell.SuperCell) error {
	fmt.Fprintf(w, "supercell %s: %d sites\n", sc.Transformation(), sc.NumSites())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSPECIES\tCODES\tSITES")
	for _, t := range sc.SublatticeTypes() {
		codes := make([]string, len(t.Codes))
		for i, c := range t.Codes {
			codes[i] = fmt.Sprint(c)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", t.ID,
			strings.Join(element.Strings(t.Species), ","), strings.Join(codes, ","), t.Size)
	}
	return tw.Flush()
}
