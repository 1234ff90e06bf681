package matchup_test

import (
	"testing"

	"github.com/notjagan/typechart/pkg/matchup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelection(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary string
		want      matchup.Selection
		wantLen   int
		wantErr   bool
	}{
		{name: "empty", wantLen: 0},
		{name: "none sentinel", primary: "None", secondary: "none", wantLen: 0},
		{name: "single", primary: "Fire", want: matchup.Selection{Primary: "Fire"}, wantLen: 1},
		{name: "single with none", primary: "Fire", secondary: "None", want: matchup.Selection{Primary: "Fire"}, wantLen: 1},
		{name: "dual", primary: "Fire", secondary: "Water", want: matchup.Selection{Primary: "Fire", Secondary: "Water"}, wantLen: 2},
		{name: "trimmed", primary: " Fire ", secondary: "Water\n", want: matchup.Selection{Primary: "Fire", Secondary: "Water"}, wantLen: 2},
		{name: "same type twice", primary: "Fire", secondary: "Fire", wantErr: true},
		{name: "secondary without primary", secondary: "Water", wantErr: true},
		{name: "secondary with none primary", primary: "None", secondary: "Water", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := matchup.NewSelection(tt.primary, tt.secondary)
			if tt.wantErr {
				assert.ErrorIs(t, err, matchup.ErrInvalidSelection)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, sel)
			assert.Equal(t, tt.wantLen, sel.Len())
			assert.Len(t, sel.Names(), tt.wantLen)
		})
	}
}

func TestSelection_Key(t *testing.T) {
	a := matchup.Selection{Primary: "Fire", Secondary: "Water"}
	b := matchup.Selection{Primary: "Water", Secondary: "Fire"}

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "Fire", matchup.Selection{Primary: "Fire"}.Key())
	assert.Equal(t, "", matchup.Selection{}.Key())
	assert.Equal(t, "Water/Fire", b.String())
	assert.Equal(t, "None", matchup.Selection{}.String())
}

func TestApplyTap(t *testing.T) {
	tests := []struct {
		name string
		sel  matchup.Selection
		tap  string
		want matchup.Selection
	}{
		{
			name: "first tap fills primary",
			sel:  matchup.Selection{},
			tap:  "Fire",
			want: matchup.Selection{Primary: "Fire"},
		},
		{
			name: "second tap fills secondary",
			sel:  matchup.Selection{Primary: "Fire"},
			tap:  "Water",
			want: matchup.Selection{Primary: "Fire", Secondary: "Water"},
		},
		{
			name: "tap primary again clears it",
			sel:  matchup.Selection{Primary: "Fire"},
			tap:  "Fire",
			want: matchup.Selection{},
		},
		{
			name: "tap primary of pair promotes secondary",
			sel:  matchup.Selection{Primary: "Fire", Secondary: "Water"},
			tap:  "Fire",
			want: matchup.Selection{Primary: "Water"},
		},
		{
			name: "tap secondary of pair clears it",
			sel:  matchup.Selection{Primary: "Fire", Secondary: "Water"},
			tap:  "Water",
			want: matchup.Selection{Primary: "Fire"},
		},
		{
			name: "tap third type replaces secondary",
			sel:  matchup.Selection{Primary: "Fire", Secondary: "Water"},
			tap:  "Grass",
			want: matchup.Selection{Primary: "Fire", Secondary: "Grass"},
		},
		{
			name: "tap none clears everything",
			sel:  matchup.Selection{Primary: "Fire", Secondary: "Water"},
			tap:  "None",
			want: matchup.Selection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchup.ApplyTap(tt.sel, tt.tap)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}
