/*
Package zernike is a pure Go library for the evaluation of Zernike radial polynomials R_n^m(rho)
and of the full Zernike terms built on top of them.
The radial evaluator lives in the radial package, wavefront expansions in the wavefront package,
and the arbitrary precision and encoding helpers under utils.
*/
package zernike
