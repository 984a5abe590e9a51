package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle_KnownTitles(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"INNODB STATUS PARSER", " ------- INNODB STATUS PARSER ------- \n\n"},
		{"ROW DATA", " ------------- ROW DATA ------------- \n\n"},
		{"TOTAL MEMORY", " ----------- TOTAL MEMORY ----------- \n\n"},
		{"COLLECTION TIME PERIOD", " ------ COLLECTION TIME PERIOD ------ \n\n"},
		{"", " ----------------  ---------------- \n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.text))
		})
	}
}

func TestTitlePadding_Invariant(t *testing.T) {
	for n := 0; n <= 40; n++ {
		text := strings.Repeat("X", n)
		pad := TitlePadding(text)

		assert.GreaterOrEqual(t, pad, 0, "len %d", n)
		assert.LessOrEqual(t, pad, TitleMaxPadding, "len %d", n)
		if pad > 0 {
			assert.LessOrEqual(t, n+2*pad, TitleMaxWidth, "len %d exceeds width", n)
		}
		// Maximal: one more dash would either exceed the cap or the width.
		if pad < TitleMaxPadding {
			assert.Greater(t, n+2*(pad+1), TitleMaxWidth, "len %d padding not maximal", n)
		}
	}
}

func TestTitlePadding_ShrinksAsTextGrows(t *testing.T) {
	prev := TitlePadding("")
	for n := 1; n <= 40; n++ {
		cur := TitlePadding(strings.Repeat("X", n))
		assert.LessOrEqual(t, cur, prev, "len %d", n)
		prev = cur
	}
	assert.Equal(t, 0, TitlePadding(strings.Repeat("X", 36)))
}

func TestTitlePadding_UsesDisplayWidth(t *testing.T) {
	// Four wide runes occupy eight columns.
	assert.Equal(t, TitlePadding("XXXXXXXX"), TitlePadding("缓冲池大"))
}

func TestRules(t *testing.T) {
	assert.Equal(t, strings.Repeat("*", 50)+"\n", Header())
	assert.Equal(t, "\n"+strings.Repeat("_", 50)+"\n\n", Separator())
	assert.Equal(t, "\n\n", Spacer())
}
