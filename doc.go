// ipp-parse translates IPPcode24 source into its XML representation.
//
// ipp-parse reads from stdin and prints to stdout.
//
// Example:
//
//	printf '.IPPcode24\nDEFVAR GF@a\nWRITE string@hello\\032world\n' | ipp-parse
//
// Output:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<program language="IPPcode24">
//	  <instruction order="1" opcode="DEFVAR">
//	    <arg1 type="var">GF@a</arg1>
//	  </instruction>
//	  <instruction order="2" opcode="WRITE">
//	    <arg1 type="string">hello\032world</arg1>
//	  </instruction>
//	</program>
//
// Exit codes: 0 on success, 10 for invalid arguments, 21 for a missing or
// invalid header, 22 for an unknown opcode and 23 for any other error.
// Nothing is written to stdout unless the whole input is valid.
package main
