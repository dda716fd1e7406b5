package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPBar(t *testing.T) {
	tests := []struct {
		name  string
		xp    int
		level int
		want  string
	}{
		{"fresh player", 0, 1, "0/150 XP"},
		{"mid level", 75, 1, "75/150 XP"},
		{"level boundary", 150, 2, "0/150 XP"},
		{"into second level", 200, 2, "50/150 XP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := XPBar(tt.xp, tt.level)
			assert.Contains(t, bar, tt.want)
		})
	}
}
