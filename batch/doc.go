// Package batch processes every matrix pair found in an input directory.
//
// A pair is <stem>_1.txt with its partner <stem>_2.txt. For each pair the
// three operations (add, subtract, multiply) run as independent units and
// write <stem>_<op>_results.txt into the output directory. A failing unit is
// reported and never stops the others.
//
// Configuration comes from SPARSEMAT_* environment variables, overridden by
// command-line flags (see ParseConfig).
package batch
