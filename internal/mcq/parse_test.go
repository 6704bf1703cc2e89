package mcq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WellFormed(t *testing.T) {
	text := "Question: What is Python primarily known for?\n" +
		"A. Mobile App Development\n" +
		"B. Web Scraping\n" +
		"C. Data Analysis\n" +
		"D. All of the above\n" +
		"Correct Answer: D"

	rec, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "What is Python primarily known for?", rec.Question)
	require.Len(t, rec.Options, 4)
	assert.Equal(t, "Web Scraping", rec.Options[1].Text)
	assert.Equal(t, "D", rec.Correct)
	assert.Equal(t, 3, rec.CorrectIndex())
}

func TestParse_TerseFixture(t *testing.T) {
	text := "Q: What is a variable?\nA) x\nB) y\nC) z\nAnswer: B"

	rec, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, rec.Options, 3)
	assert.Equal(t, "What is a variable?", rec.Question)
	assert.Equal(t, "B", rec.Correct)
	assert.Equal(t, 1, rec.CorrectIndex())
}

func TestParse_ToleratesFormattingVariance(t *testing.T) {
	text := "  Question:   Which keyword defines a function?  \n" +
		"\n" +
		"a)  print\n" +
		"B .  def\n" +
		"C)   lambda\n" +
		"  correct answer:  b  "

	rec, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "Which keyword defines a function?", rec.Question)
	require.Len(t, rec.Options, 3)
	assert.Equal(t, "A", rec.Options[0].Label)
	assert.Equal(t, "def", rec.Options[1].Text)
	assert.Equal(t, "B", rec.Correct)
}

func TestParse_MalformedNeverPartial(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain prose", "I don't know"},
		{"empty", ""},
		{"question only", "Question: What is a tuple?"},
		{"missing answer line", "Question: q\nA. one\nB. two"},
		{"single option", "Question: q\nA. one\nCorrect Answer: A"},
		{"answer label not among options", "Question: q\nA. one\nB. two\nCorrect Answer: D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.text)
			assert.ErrorIs(t, err, ErrUnparseable)
			assert.Nil(t, rec, "a failed parse must never return partial data")
		})
	}
}

func TestParse_DuplicateLabelsIgnored(t *testing.T) {
	text := "Question: q\nA. first\nA. shadowed\nB. second\nCorrect Answer: A"

	rec, err := Parse(text)
	require.NoError(t, err)
	require.Len(t, rec.Options, 2)
	assert.Equal(t, "first", rec.Options[0].Text)
}

func TestGrade(t *testing.T) {
	rec := &Record{
		Question: "q",
		Options: []Option{
			{Label: "A", Text: "a tuple"},
			{Label: "B", Text: "a list"},
			{Label: "C", Text: "a dict"},
		},
		Correct: "B",
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"B", true},
		{"b", true},
		{" b. ", true},
		{"B)", true},
		{"a list", true},
		{"A LIST", true},
		{"A", false},
		{"a tuple", false},
		{"", false},
		{"no idea", false},
	}

	for _, tt := range tests {
		if got := rec.Grade(tt.answer); got != tt.want {
			t.Errorf("Grade(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestRender_CanonicalFormat(t *testing.T) {
	rec := &Record{
		Question: "What is a variable?",
		Options:  []Option{{Label: "A", Text: "a box"}, {Label: "B", Text: "a loop"}},
		Correct:  "A",
	}

	assert.Equal(t, "Question: What is a variable?\nA. a box\nB. a loop", rec.Render())
}

func TestRender_RoundTrips(t *testing.T) {
	text := "Question: What is a variable?\nA. a box\nB. a loop\nCorrect Answer: A"
	rec, err := Parse(text)
	require.NoError(t, err)

	again, err := Parse(rec.Render() + "\nCorrect Answer: " + rec.Correct)
	require.NoError(t, err)
	assert.Equal(t, rec.Question, again.Question)
	assert.Equal(t, rec.Options, again.Options)
	assert.Equal(t, rec.Correct, again.Correct)
}

func TestFromJSON(t *testing.T) {
	rec, err := FromJSON([]byte(`{"question":"q","options":["one","two","three"],"correct":"C"}`))
	require.NoError(t, err)
	assert.Equal(t, 2, rec.CorrectIndex())
	assert.Equal(t, "three", rec.CorrectText())

	_, err = FromJSON([]byte(`{"question":"q","options":["one"],"correct":"A"}`))
	assert.ErrorIs(t, err, ErrUnparseable)

	_, err = FromJSON([]byte(`not json`))
	assert.Error(t, err)
}
