package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr bool
	}{
		{name: "last second of day", input: "23:59:59", expected: "23:59:59"},
		{name: "midnight", input: "00:00:00", expected: "00:00:00"},
		{name: "surrounding spaces", input: " 08:00:00 ", expected: "08:00:00"},
		{name: "single digit minute is range checked only", input: "12:5:00", expected: "12:05:00"},
		{name: "hour out of range", input: "24:00:00", expectedErr: true},
		{name: "minute out of range", input: "12:60:00", expectedErr: true},
		{name: "second out of range", input: "12:00:60", expectedErr: true},
		{name: "missing seconds", input: "12:00", expectedErr: true},
		{name: "too many fields", input: "12:00:00:00", expectedErr: true},
		{name: "letters", input: "ab:cd:ef", expectedErr: true},
		{name: "negative field", input: "-1:00:00", expectedErr: true},
		{name: "signed field", input: "+1:00:00", expectedErr: true},
		{name: "empty field", input: "12::00", expectedErr: true},
		{name: "empty", input: "", expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimeOfDay(tt.input)

			if tt.expectedErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestTimeOfDayOf(t *testing.T) {
	moment := time.Date(2024, 6, 15, 7, 59, 30, 0, time.UTC)

	assert.Equal(t, "07:59:30", TimeOfDayOf(moment).String())
	assert.True(t, TimeOfDayOf(moment) < MustTimeOfDay("08:00:00"))
}

func TestTimeOfDay_Scan(t *testing.T) {
	tests := []struct {
		name        string
		src         interface{}
		expected    string
		expectedErr bool
	}{
		{name: "string", src: "12:31:24", expected: "12:31:24"},
		{name: "bytes", src: []byte("00:01:00"), expected: "00:01:00"},
		{name: "time value", src: time.Date(0, 1, 1, 13, 22, 0, 0, time.UTC), expected: "13:22:00"},
		{name: "invalid text", src: "99:99:99", expectedErr: true},
		{name: "unsupported type", src: 42, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tod TimeOfDay
			err := tod.Scan(tt.src)

			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, tod.String())
		})
	}
}

func TestTimeOfDay_Value(t *testing.T) {
	v, err := MustTimeOfDay("9:0:0").Value()
	assert.NoError(t, err)
	assert.Equal(t, "09:00:00", v)

	_, err = TimeOfDay(secondsPerDay).Value()
	assert.Error(t, err)
}

func TestQuizFor(t *testing.T) {
	quiz := QuizFor(WordPair{Source: "to shiver", Target: "трястись"})

	assert.Equal(t, PendingQuiz{Prompt: "to shiver", Answer: "трястись"}, quiz)
}
