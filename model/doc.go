// Package model parses and renders symbolic polynomial regression models.
//
// A model is a flat sum of terms:
//
//	model  := term ('+' term)*
//	term   := [coefficient] factor*
//	factor := letter mark* ['^' integer]
//	mark   := "'" | '"'
//
// Letters are case-insensitive and drawn from an Alphabet. The default
// alphabet is A–Z without I, so it has 25 letters: variable id 0 is "A", 24 is
// "Z", 25 is "A'" and 50 is "A\"". Past the double prime the marks keep
// stacking (75 is "A\"'"), which keeps the naming scheme a bijection.
//
// A Term holds a coefficient and a map from variable id to a positive power.
// Terms and Models are immutable once built.
//
//	m, err := model.Parse("A + B + A*B + A^2")
//	if err != nil {
//		// handle *model.InvalidVariableError
//	}
//	fmt.Println(m)               // A + B + AB + A^2
//	fmt.Println(m.MainEffects()) // A + B
//
// Parsing is lenient by default, matching the historical behavior: a segment
// with no coefficient and no factor quietly becomes the intercept. WithStrict
// turns that into a *ParseError unless the segment is blank.
package model
