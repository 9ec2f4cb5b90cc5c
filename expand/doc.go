// Package expand turns a symbolic model and a design matrix into the numeric
// model matrix that alias analysis consumes.
//
// Each model term becomes one column: the term's coefficient times the
// product of its factor columns raised to their powers. The intercept becomes
// a column of ones named "Intercept".
//
// Factors are bound to design columns by name (variable id 0 is the design
// column "A", 25 is "A'", and so on) unless WithPositionalFactors is given,
// in which case id k is design column k.
package expand
