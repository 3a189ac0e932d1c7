package parse

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const goodRow = "A 30-year-old presents with RLQ pain. Which lab finding supports appendicitis? | Leukopenia | Leukocytosis | Thrombocytosis | Anemia | Hyperkalemia | Leukocytosis"

func TestMCQRows_AcceptsWellFormedRow(t *testing.T) {
	records, rejected := MCQRows(goodRow, discardLogger())

	require.Len(t, records, 1)
	assert.Equal(t, 0, rejected)
	assert.Equal(t, 1, records[0].ID)
	assert.Len(t, records[0].Options, 5)
	assert.Equal(t, "Leukocytosis", records[0].Answer)
	assert.Equal(t, "b", records[0].AnswerLetter())
}

func TestMCQRows_SkipsHeaderAndSeparator(t *testing.T) {
	raw := "| Question | A | B | C | D | E | Correct Answer |\n" +
		"|---|---|---|---|---|---|---|\n" +
		goodRow

	records, rejected := MCQRows(raw, discardLogger())

	assert.Len(t, records, 1)
	assert.Equal(t, 0, rejected)
}

func TestMCQRows_RejectsWrongFieldCount(t *testing.T) {
	// Four options only: six fields, not seven.
	raw := "What is the capital? | Paris | London | Berlin | Rome | Paris"

	records, rejected := MCQRows(raw, discardLogger())

	assert.Empty(t, records)
	assert.Equal(t, 1, rejected)
}

func TestMCQRows_RejectsAnswerNotAmongOptions(t *testing.T) {
	raw := "Which vessel supplies the SA node? | RCA | LAD | LCx | PDA | OM1 | Circumflex"

	records, rejected := MCQRows(raw, discardLogger())

	assert.Empty(t, records)
	assert.Equal(t, 1, rejected)
}

func TestMCQRows_RejectsDuplicateOptions(t *testing.T) {
	raw := "Pick one | Alpha | Beta | alpha | Gamma | Delta | Beta"

	records, rejected := MCQRows(raw, discardLogger())

	assert.Empty(t, records)
	assert.Equal(t, 1, rejected)
}

func TestMCQRows_BadRowDoesNotAffectSiblings(t *testing.T) {
	raw := goodRow + "\n" +
		"Broken row | only | three\n" +
		"Second question stem | One | Two | Three | Four | Five | Three"

	records, rejected := MCQRows(raw, discardLogger())

	require.Len(t, records, 2)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 2, records[1].ID)
	assert.Equal(t, "Three", records[1].Answer)
}

func TestMCQRows_EscapedPipeSurvives(t *testing.T) {
	raw := `Interpret A \| B notation | union | intersection | conditional | complement | none of these | conditional`

	records, _ := MCQRows(raw, discardLogger())

	require.Len(t, records, 1)
	assert.Equal(t, "Interpret A | B notation", records[0].Question)
}

func TestMCQRows_FreeTextProducesNothing(t *testing.T) {
	records, rejected := MCQRows("The model apologized and produced prose instead.", discardLogger())
	assert.Empty(t, records)
	assert.Equal(t, 0, rejected)
}
