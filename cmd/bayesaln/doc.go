// 18 Oct 2026

/*
Bayesaln aligns one linker against one read and prints what happened.
It is for checking odd cases by hand.

Usage:

	bayesaln [options] linker read quality

The quality string is PHRED+33. If it is "-", every base gets quality I.

Flags:

	-p
		prior probability of linker
	-c
		number of PCR cycles
	-d
		dump the matrices
	-g
		also write the alignment as a png to this file
*/
package main
