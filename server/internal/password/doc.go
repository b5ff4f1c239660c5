// Package password holds the domain logic of securipass: the four character
// classes, the password generator and the strength evaluator.
//
// charset.go defines the classes (lowercase, uppercase, digit, symbol) as
// fixed ASCII sets shared by generation and evaluation.
//
// generator.go provides Generator.Generate(length), which always emits at
// least one character of each class. Randomness comes from a Rand; the
// default is backed by crypto/rand, tests inject a seeded math/rand/v2.
//
// strength.go provides the pure Evaluate(password) function that scores a
// string on 1–7 points (length tier 1–3 + one point per class present) and
// maps the score to a label:
//
//	≥7 Très Fort, ≥5 Fort, ≥3 Moyen, otherwise Faible.
package password
