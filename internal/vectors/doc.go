// Package vectors provides embedded arithmetic test vectors for the
// duration packages.
//
// Vectors are YAML suites under testdata/. Each case names an operation,
// its operands as [seconds, nanoseconds] pairs (or the names min, max and
// zero), and either the expected pair or fails: true for operations that
// report overflow.
//
//	- name: carry into seconds
//	  op: new
//	  a: [1, 2000000000]
//	  want: [3, 0]
package vectors
