package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "package key",
			parts: []string{"pkg", "1x4"},
			want:  "pkg-1x4",
		},
		{
			name:  "sub identifier",
			parts: []string{"footprint", "1x4", "default"},
			want:  "footprint-1x4-default",
		},
		{
			name:  "lowercased and spaces replaced",
			parts: []string{"dev", "LED ⌀3.0x4.5/2.54mm Clear", "dev"},
			want:  "dev-led~⌀3.0x4.5/2.54mm~clear-dev",
		},
		{
			name:  "empty parts skipped",
			parts: []string{"pkg", "", "pad-a"},
			want:  "pkg-pad-a",
		},
		{
			name:  "no parts",
			parts: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.parts...))
		})
	}
}
