// Package dual implements forward-mode automatic differentiation with dual
// numbers over float64.
//
// A Dual carries a value V and a derivative D. Every operation applies the
// corresponding differentiation rule, so evaluating a core.Graph[Dual]
// with one input seeded as Variable (D=1) and the others as Constant (D=0)
// yields the partial derivative of the root with respect to that input.
//
// Rules:
//
//	(u ± v)'  = u' ± v'
//	(u·v)'    = u'v + uv'
//	(u/v)'    = (u'v − uv') / v²
//	sin(u)'   = cos(u)·u'        cos(u)' = −sin(u)·u'
//	exp(u)'   = exp(u)·u'        log(u)' = u'/u
//	sqrt(u)'  = u' / (2·sqrt(u))
//	(u^v)'    = u^v·(v'·ln u + v·u'/u), or v·u^(v−1)·u' when v' = 0
//
// Gradient evaluates one pass per input concurrently and collects the
// partial derivatives.
package dual
