// Command line wrapper around the conservation pipeline.

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nadzhou/motVIZ3/pkg/motviz"
	"github.com/nadzhou/motVIZ3/pkg/seq"
	. "github.com/nadzhou/motVIZ3/pkg/seq/common"
)

var flags motviz.CmdFlag

var rootCmd = &cobra.Command{
	Use:   "motviz alignment-file",
	Short: "Score msa conservation and extract low-conservation motifs",
	Long: `Motviz scores each column of a multiple sequence alignment,
smooths the scores and writes a table plus, optionally, a pymol script
highlighting stretches of low conservation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fillEnvDefaults()
		if flags.Script != "" && flags.PdbID == "" {
			return fmt.Errorf("a pymol script (-y) needs a structure id (-p)")
		}
		_, err := motviz.Mymain(&flags, args[0])
		return err
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats alignment-file",
	Short: "Print sequence count and alignment width",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		fillEnvDefaults()
		seqgrp, err := seq.Readfile(args[0], flags.Format)
		if err != nil {
			return err
		}
		fmt.Println("sequences:", seqgrp.NSeq())
		fmt.Println("columns:  ", seqgrp.GetLen())
		return nil
	},
}

// fillEnvDefaults lets the environment (or a .env file next to the
// working directory) supply the format and structure id when the flags
// were left empty. Flags always win.
func fillEnvDefaults() {
	if flags.Format == "" {
		if v := os.Getenv("MOTVIZ_FORMAT"); v != "" {
			flags.Format = v
		} else {
			flags.Format = "clustal"
		}
	}
	if flags.PdbID == "" {
		flags.PdbID = os.Getenv("MOTVIZ_PDB")
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.Format, "format", "e", "", "alignment format: fasta, clustal or stockholm")
	f := rootCmd.Flags()
	f.StringVarP(&flags.PdbID, "pdb", "p", "", "structure id written into the pymol script")
	f.Float32VarP(&flags.Threshold, "threshold", "t", 4.0, "motif windows must lie strictly below this")
	f.IntVarP(&flags.Window, "window", "n", 3, "moving average window")
	f.IntVarP(&flags.MotifWidth, "width", "w", 2, "motif window width")
	f.BoolVarP(&flags.Shannon, "shannon", "s", false, "use standard Shannon entropy")
	f.BoolVarP(&flags.FlatOK, "flat-ok", "F", false, "treat an all-equal score sequence as fully conserved")
	f.StringVarP(&flags.Csv, "out", "o", "", "score table output, stdout by default")
	f.StringVarP(&flags.Script, "pymol", "y", "", "pymol script output")
	f.StringVarP(&flags.Plot, "plot", "g", "", "plot the smoothed scores to this png")
	f.IntVarP(&flags.Offset, "offset", "f", 0, "offset for residue numbering on output")
	f.BoolVar(&flags.Time, "time", false, "print timing information")
	rootCmd.AddCommand(statsCmd)
}

func main() {
	godotenv.Load() // missing .env is fine
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
