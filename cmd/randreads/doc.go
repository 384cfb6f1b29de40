// 31 July 2020

/*
Randreads makes random reads in fastq format for testing the trimmer.
Usage:

	randreads [options] fname nseq length

will generate nseq reads of length length and write them to fname.

Flags:

	-l
		linker to put in some of the reads
	-f
		fraction of reads with a linker
	-u
		chance of mutating each linker base
	-m
		shortest piece of linker to put in
	-r
		random number seed

Each read's ID line says where the linker was put, as cut=n. If there
is no linker, n is the read length.
*/
package main
