// file: internals/features/school/grading/grades/service/letter.go
package service

/* =========================================
   Derivasi huruf nilai dari skor (0–100).
   Batas bawah inklusif: 90→A, 80→B, 70→C, 60→D, sisanya E.
========================================= */

type LetterGrade struct {
	Letter      string
	Description string
	Passed      bool
}

func DeriveLetter(score int) LetterGrade {
	switch {
	case score >= 90:
		return LetterGrade{Letter: "A", Description: "Sangat Baik", Passed: true}
	case score >= 80:
		return LetterGrade{Letter: "B", Description: "Baik", Passed: true}
	case score >= 70:
		return LetterGrade{Letter: "C", Description: "Cukup", Passed: true}
	case score >= 60:
		return LetterGrade{Letter: "D", Description: "Kurang", Passed: true}
	default:
		return LetterGrade{Letter: "E", Description: "Sangat Kurang", Passed: false}
	}
}
