package password

import (
	"fmt"
	"unicode/utf8"
)

// Labels returned by Evaluate, weakest first.
const (
	LabelWeak       = "Faible"
	LabelMedium     = "Moyen"
	LabelStrong     = "Fort"
	LabelVeryStrong = "Très Fort"
)

// Labels lists every label in ascending strength.
var Labels = [...]string{LabelWeak, LabelMedium, LabelStrong, LabelVeryStrong}

// Length tiers. A password of at least lengthExcellent characters earns
// 3 points, at least lengthGood earns 2, anything else earns 1.
const (
	lengthExcellent = 16
	lengthGood      = 12
)

// Score thresholds that map a score to a label.
const (
	ThresholdVeryStrong = 7
	ThresholdStrong     = 5
	ThresholdMedium     = 3
)

// MaxScore is the best achievable score: top length tier plus all classes.
const MaxScore = 3 + len(Classes)

// Feedback messages.
const (
	feedbackLengthExcellent = "Longueur excellente (>= 16 caractères)."
	feedbackLengthGood      = "Longueur bonne (>= 12 caractères), visez plus long."
	feedbackLengthShort     = "Longueur trop courte. Visez au moins 16 caractères."
	feedbackDiversityMax    = "Diversité maximale (Min, Maj, Chiffre, Symbole)."
	feedbackDiversityFmt    = "Manque de diversité. Types de caractères présents : %d/4."
)

// Result is the outcome of a strength evaluation.
type Result struct {
	// Score is in the range 1–7.
	Score int

	// Label is one of Faible, Moyen, Fort, Très Fort.
	Label string

	// Feedback always holds two messages: the length verdict, then the
	// diversity verdict.
	Feedback []string

	// Length is the number of characters (code points) in the input.
	Length int

	// Classes is the number of distinct character classes present (0–4).
	Classes int
}

// Evaluate scores pw. It never fails: the empty string scores 1 (Faible).
//
// Score formula:
//
//	length tier:  ≥16 → 3, ≥12 → 2, else 1
//	diversity:    +1 for each of lowercase, uppercase, digit, symbol present
func Evaluate(pw string) Result {
	n := utf8.RuneCountInString(pw)
	res := Result{Length: n, Feedback: make([]string, 0, 2)}

	switch {
	case n >= lengthExcellent:
		res.Score += 3
		res.Feedback = append(res.Feedback, feedbackLengthExcellent)
	case n >= lengthGood:
		res.Score += 2
		res.Feedback = append(res.Feedback, feedbackLengthGood)
	default:
		res.Score++
		res.Feedback = append(res.Feedback, feedbackLengthShort)
	}

	res.Classes = countClasses(pw)
	res.Score += res.Classes

	if res.Classes == len(Classes) {
		res.Feedback = append(res.Feedback, feedbackDiversityMax)
	} else {
		res.Feedback = append(res.Feedback, fmt.Sprintf(feedbackDiversityFmt, res.Classes))
	}

	res.Label = labelFromScore(res.Score)
	return res
}

// countClasses returns how many distinct classes occur in s.
func countClasses(s string) int {
	var seen [len(Classes)]bool
	count := 0
	for _, r := range s {
		c, ok := ClassOf(r)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		count++
		if count == len(Classes) {
			break
		}
	}
	return count
}

// labelFromScore maps a numeric score to its label.
func labelFromScore(score int) string {
	switch {
	case score >= ThresholdVeryStrong:
		return LabelVeryStrong
	case score >= ThresholdStrong:
		return LabelStrong
	case score >= ThresholdMedium:
		return LabelMedium
	default:
		return LabelWeak
	}
}
