// 18 Oct 2026

/*
Linkertrim cuts the linker (adapter) off the 3' end of reads.

Usage:

	linkertrim [options] -l LINKER in.fq[.gz] [out.fq]

Each read is aligned against the linker. The alignment score is a log
likelihood ratio. One model says the read has the linker and the only
differences come from miscalls (the qualities) and PCR errors. The other
says the read bases are random. If the posterior probability of the
linker is at least as big as that of no linker, the read is cut where
the linker starts.

The input may be gzipped. "-" means standard input or output.

Flags:

	-l
		linker sequence, upper case. Required.
	-p
		prior probability that a read has the linker (default 0.5)
	-c
		number of PCR cycles, used for the PCR error rate (default 30)
	-m
		drop reads shorter than this after trimming (default 1)
	-w
		number of workers, 0 for one per CPU
	-a
		write fasta, not fastq
	-s
		write per linker position statistics to this csv file
	-g
		draw pictures of the first few linker alignments in this directory
	-v
		verbose, a summary goes to standard error
*/
package main
