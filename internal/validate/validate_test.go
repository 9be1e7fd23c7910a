package validate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		name    string
		nameRaw string
		ageRaw  string
		want    Input
	}{
		{"plain", "Alice", "30", Input{Name: "Alice", Age: 30}},
		{"trims name", "  Bob\t", "25", Input{Name: "Bob", Age: 25}},
		{"trims age", "Carol", " 7 ", Input{Name: "Carol", Age: 7}},
		{"age one", "Dan", "1", Input{Name: "Dan", Age: 1}},
		{"inner spaces kept", "Mary Ann", "40", Input{Name: "Mary Ann", Age: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.nameRaw, tt.ageRaw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_AcceptsAnyPositiveAge(t *testing.T) {
	for age := 1; age <= 150; age++ {
		got, err := Validate("x", fmt.Sprint(age))
		require.NoError(t, err)
		assert.Equal(t, age, got.Age)
	}
}

func TestValidate_EmptyField(t *testing.T) {
	tests := []struct {
		name    string
		nameRaw string
		ageRaw  string
		field   string
	}{
		{"empty name", "", "30", FieldName},
		{"blank name", "   ", "30", FieldName},
		{"empty age", "Alice", "", FieldAge},
		{"blank age", "Alice", " \t", FieldAge},
		{"both empty reports name", "", "", FieldName},
		{"empty name wins over bad age", "", "abc", FieldName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.nameRaw, tt.ageRaw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrEmptyField))

			verr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, "Invalid input", verr.Title)
		})
	}
}

func TestValidate_NonPositiveAge(t *testing.T) {
	for _, raw := range []string{"0", "-1", "-30", " -5 "} {
		t.Run(raw, func(t *testing.T) {
			_, err := Validate("Bob", raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNonPositiveAge)

			verr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, "Please enter a valid age (> 0).", verr.Message)
		})
	}
}

func TestValidate_InvalidNumber(t *testing.T) {
	for _, raw := range []string{"abc", "2.5", "1e3", "30 years", "99999999999999999999999"} {
		t.Run(raw, func(t *testing.T) {
			_, err := Validate("Bob", raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidNumber)
			assert.NotErrorIs(t, err, ErrNonPositiveAge)
		})
	}
}

func TestParseAge(t *testing.T) {
	age, err := ParseAge("42")
	require.NoError(t, err)
	assert.Equal(t, 42, age)

	_, err = ParseAge("")
	assert.ErrorIs(t, err, ErrEmptyField)
}

func TestError_Message(t *testing.T) {
	_, err := Validate("", "1")
	assert.Equal(t, "name: empty field", err.Error())
}
