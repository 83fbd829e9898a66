/*
Motviz reads a multiple sequence alignment, scores each column for
conservation and pulls out short stretches of unusually low
conservation. It writes a csv table of the smoothed scores and,
given a structure, a pymol command script that highlights the motif
windows on it. Run the script inside pymol with

	@pymol_script.txt

Usage:

	motviz [flags] alignment-file
	motviz stats alignment-file

The alignment format is guessed from nothing: you say what it is with
-e. The tags "sth" and "stk" mean stockholm, "aln" means clustal.
Reading from standard input works by giving "-" as the file.

The flags are:

	-e format
		Alignment format: fasta, clustal or stockholm (default clustal)
	-p pdb
		Four letter structure code written into the pymol script
	-t threshold
		Motif windows must lie strictly below this value
	-n window
		Moving average window (default 3)
	-w width
		Motif window width (default 2)
	-s
		Use standard Shannon entropy instead of the product score
	-F
		Treat an alignment whose columns all score the same as fully
		conserved instead of refusing to normalize
	-o file
		Score table output, standard output by default
	-y file
		Pymol script output. Needs -p.
	-g file
		Plot the smoothed scores to a png
	-f offset
		Add this to the residue numbering on output

MOTVIZ_FORMAT and MOTVIZ_PDB in the environment or a .env file supply
defaults for -e and -p.
*/
package main
