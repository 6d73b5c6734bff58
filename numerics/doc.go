// Package numerics provides fixed-size vector, matrix, quaternion and plane
// value types generic over float32 and float64.
//
// Matrices use the row-vector convention: a point p is transformed as
// p * M, so translation lives in the fourth row and a.Mul(b) applies a
// before b. All operations are pure functions of their inputs.
//
// Degenerate numerical input is reported three ways: Invert and Decompose
// return a success flag; builders given invalid arguments panic with an
// *ArgumentOutOfRangeError; everything else lets IEEE NaN and Inf
// propagate.
package numerics
