package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfutils/internal/domain/entities"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		count   int
		want    int
		wantErr bool
	}{
		{name: "first", raw: "1", count: 3, want: 0},
		{name: "last with spaces", raw: " 3 ", count: 3, want: 2},
		{name: "zero", raw: "0", count: 3, wantErr: true},
		{name: "too large", raw: "4", count: 3, wantErr: true},
		{name: "not a number", raw: "two", count: 3, wantErr: true},
		{name: "empty", raw: "", count: 3, wantErr: true},
		{name: "empty listing", raw: "1", count: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := entities.ParseSelection(tt.raw, tt.count)
			if tt.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMultiSelection(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		count int
		want  []int
	}{
		{name: "ordered", raw: "1,2,3", count: 3, want: []int{0, 1, 2}},
		{name: "user order kept", raw: "3, 1", count: 3, want: []int{2, 0}},
		{name: "duplicates kept", raw: "2,2", count: 3, want: []int{1, 1}},
		{name: "invalid tokens dropped", raw: "1,x,9,,0,2", count: 3, want: []int{0, 1}},
		{name: "nothing valid", raw: "a,b", count: 3, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entities.ParseMultiSelection(tt.raw, tt.count))
		})
	}
}

func TestParsePageRanges(t *testing.T) {
	ranges, err := entities.ParsePageRanges("1-2, 3-5")
	require.NoError(t, err)
	assert.Equal(t, []entities.PageRange{{Start: 1, End: 2}, {Start: 3, End: 5}}, ranges)

	// Границы не проверяются на этапе разбора
	ranges, err = entities.ParsePageRanges("5-2")
	require.NoError(t, err)
	assert.Equal(t, []entities.PageRange{{Start: 5, End: 2}}, ranges)

	for _, raw := range []string{"", "   ", "3", "a-2", "1-b", "1-2,", "-1-3"} {
		t.Run(raw, func(t *testing.T) {
			_, err := entities.ParsePageRanges(raw)
			assert.ErrorIs(t, err, entities.ErrInvalidPageRange)
		})
	}
}

func TestParseAction(t *testing.T) {
	action, err := entities.ParseAction("1")
	require.NoError(t, err)
	assert.Equal(t, entities.ActionMerge, action)

	action, err = entities.ParseAction("7")
	require.NoError(t, err)
	assert.Equal(t, entities.ActionExit, action)
	assert.Equal(t, "Exit", action.String())

	_, err = entities.ParseAction("8")
	assert.ErrorIs(t, err, entities.ErrInvalidChoice)
}
