package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	space = Key{Label: LabelSpace, IsLeader: true}
	ctrl  = Key{Label: LabelCtrl, IsModifier: true}
	shift = Key{Label: LabelShift, IsModifier: true}
	alt   = Key{Label: LabelAlt, IsModifier: true}
)

func k(label string) Key {
	return Key{Label: label}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     Sequence
	}{
		{
			name:     "leader sequence",
			notation: "<leader>ff",
			want:     Sequence{{space}, {k("f")}, {k("f")}},
		},
		{
			name:     "ctrl chord then key",
			notation: "<C-w>v",
			want:     Sequence{{ctrl, k("w")}, {k("v")}},
		},
		{
			name:     "uppercase letter implies shift",
			notation: "gD",
			want:     Sequence{{k("g")}, {shift, k("d")}},
		},
		{
			name:     "shift chord",
			notation: "<S-h>",
			want:     Sequence{{shift, k("h")}},
		},
		{
			name:     "space token is a leader",
			notation: "<space>",
			want:     Sequence{{space}},
		},
		{
			name:     "simple specials are case insensitive",
			notation: "<CR><Esc><BS><Tab><Return><Escape><Backspace><Enter>",
			want: Sequence{
				{k(LabelEnter)}, {k(LabelEsc)}, {k(LabelBacksp)}, {k(LabelTab)},
				{k(LabelEnter)}, {k(LabelEsc)}, {k(LabelBacksp)}, {k(LabelEnter)},
			},
		},
		{
			name:     "unknown simple token keeps its casing",
			notation: "<F5>",
			want:     Sequence{{k("F5")}},
		},
		{
			name:     "modifier aliases",
			notation: "<Control-a><M-j><meta-k><A-x><shift-Tab>",
			want: Sequence{
				{ctrl, k("a")},
				{alt, k("j")},
				{alt, k("k")},
				{alt, k("x")},
				{shift, k(LabelTab)},
			},
		},
		{
			name:     "multiple modifiers",
			notation: "<C-S-p>",
			want:     Sequence{{ctrl, shift, k("p")}},
		},
		{
			name:     "unknown modifier is dropped",
			notation: "<D-s>",
			want:     Sequence{{k("s")}},
		},
		{
			name:     "target is lowercased",
			notation: "<C-W>",
			want:     Sequence{{ctrl, k("w")}},
		},
		{
			name:     "directional targets",
			notation: "<C-up><C-Down><c-LEFT><C-right>",
			want: Sequence{
				{ctrl, k("Up")},
				{ctrl, k("Down")},
				{ctrl, k("Left")},
				{ctrl, k("Right")},
			},
		},
		{
			name:     "chord with space target keeps leader flag",
			notation: "<C-Space>",
			want:     Sequence{{ctrl, space}},
		},
		{
			name:     "separators are skipped",
			notation: "a-b+c",
			want:     Sequence{{k("a")}, {k("b")}, {k("c")}},
		},
		{
			name:     "digits and punctuation verbatim",
			notation: "]d2%",
			want:     Sequence{{k("]")}, {k("d")}, {k("2")}, {k("%")}},
		},
		{
			name:     "unterminated token consumes to end",
			notation: "g<leader",
			want:     Sequence{{k("g")}, {space}},
		},
		{
			name:     "unterminated unknown token passes through",
			notation: "<foo",
			want:     Sequence{{k("foo")}},
		},
		{
			name:     "ctrl minus",
			notation: "<C-->",
			want:     Sequence{{ctrl, k("-")}},
		},
		{
			name:     "empty token",
			notation: "<>",
			want:     Sequence{{k("<>")}},
		},
		{
			name:     "lone open bracket",
			notation: "<",
			want:     Sequence{{k("<>")}},
		},
		{
			name:     "unknown modifier before minus is dropped",
			notation: "<x->",
			want:     Sequence{{k("-")}},
		},
		{
			name:     "unterminated chord ends on minus",
			notation: "<C-",
			want:     Sequence{{ctrl, k("-")}},
		},
		{
			name:     "leader with tab",
			notation: "<leader><tab>d",
			want:     Sequence{{space}, {k(LabelTab)}, {k("d")}},
		},
		{
			name:     "empty notation",
			notation: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.notation))
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	inputs := []string{"<leader>ff", "<C-w>v", "gD", "<S-h>", "<C-x><C-o>", ":w<CR>", "<unterminated"}
	for _, in := range inputs {
		assert.Equal(t, Parse(in), Parse(in), in)
	}
}

func TestParse_FramesAreNeverEmpty(t *testing.T) {
	inputs := []string{"<leader>ff", "<C-D-x>", "<>", "<-->", "+-+", "<C-->", "<x-y-z>"}
	for _, in := range inputs {
		for i, f := range Parse(in) {
			assert.NotEmpty(t, f, "%q frame %d", in, i)
		}
	}
}

func TestSequenceHelpers(t *testing.T) {
	seq := Parse("<C-w>V")

	assert.Equal(t, [][]string{{"Ctrl", "w"}, {"Shift", "v"}}, seq.Labels())
	assert.True(t, seq.HasLabel("shift"))
	assert.True(t, seq[0].HasLabel("CTRL"))
	assert.False(t, seq[0].HasLabel("shift"))
	assert.Equal(t, "Ctrl+w, Shift+v", seq.String())
	assert.Equal(t, "", Sequence(nil).String())
}
