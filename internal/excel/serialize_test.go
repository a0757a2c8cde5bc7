package excel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeSheet(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]string
		want  []string
	}{
		{
			name:  "full grid",
			cells: [][]string{{"Name", "Qty"}, {"Bolt", "12"}},
			want:  []string{"Name Qty ", "Bolt 12 "},
		},
		{
			name:  "ragged rows are padded with None",
			cells: [][]string{{"a", "b", "c"}, {"d"}, {"", "", "f"}},
			want:  []string{"a b c ", "d None None ", "None None f "},
		},
		{
			name:  "blank row inside data",
			cells: [][]string{{"a"}, nil, {"b"}},
			want:  []string{"a ", "None ", "b "},
		},
		{
			name:  "single row with data is kept",
			cells: [][]string{{"only"}},
			want:  []string{"only "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SerializeSheet(&Sheet{Name: "S", Cells: tt.cells})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeSheetRowCountMatchesMaxRow(t *testing.T) {
	s := &Sheet{Name: "S", Cells: [][]string{{"1"}, {"2"}, {"3"}, {"4", "5"}}}

	got, err := SerializeSheet(s)
	require.NoError(t, err)
	require.Len(t, got, s.MaxRow())
}

func TestSerializeSheetEmpty(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]string
	}{
		{"no rows", nil},
		{"one blank row", [][]string{{"", ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SerializeSheet(&Sheet{Name: "Blank", Cells: tt.cells})
			require.ErrorIs(t, err, ErrEmptySheet)
		})
	}
}
