package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSolution(t *testing.T) {
	p := &Puzzle{Plaintext: "Code never lies, comments sometimes do."}

	cases := []struct {
		name      string
		submitted string
		correct   bool
	}{
		{"exact", "Code never lies, comments sometimes do.", true},
		{"uppercased", "CODE NEVER LIES, COMMENTS SOMETIMES DO.", true},
		{"mixed case", "cOdE nEvEr LiEs, CoMmEnTs SoMeTiMeS dO.", true},
		{"one letter off", "CODE NEVER LIES, COMMENTS SOMETIMES DA.", false},
		{"missing punctuation", "CODE NEVER LIES COMMENTS SOMETIMES DO", false},
		{"collapsed whitespace", "CODE NEVER LIES,COMMENTS SOMETIMES DO.", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CheckSolution(p, tc.submitted)
			require.NoError(t, err)
			assert.Equal(t, tc.correct, got)
		})
	}
}

func TestCheckSolutionSingleLetterPerturbations(t *testing.T) {
	p := &Puzzle{Plaintext: "HELLO"}

	for i := range p.Plaintext {
		for _, r := range "XYZQ" {
			perturbed := p.Plaintext[:i] + string(r) + p.Plaintext[i+1:]
			if perturbed == p.Plaintext {
				continue
			}
			got, err := CheckSolution(p, perturbed)
			require.NoError(t, err)
			assert.False(t, got, "perturbation %q should not pass", perturbed)
		}
	}
}

func TestCheckSolutionRejectsInvalidCharacters(t *testing.T) {
	p := &Puzzle{Plaintext: "HELLO"}
	_, err := CheckSolution(p, "HEL\x00O")
	assert.ErrorIs(t, err, ErrBadSubmission)

	_, err = CheckSolution(p, "HEL\x1bO")
	assert.ErrorIs(t, err, ErrBadSubmission)
}
