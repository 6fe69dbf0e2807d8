// Copyright (c) 2026 Newswire. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmlane/newswire/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already_clean", "cats", "cats"},
		{"spaces", "Paper Crafts", "paper-crafts"},
		{"accents", "Café Culture", "cafe-culture"},
		{"punctuation", "Mitch!!", "mitch"},
		{"mixed_noise", "  --Weird__Topic--  ", "weird-topic"},
		{"only_symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
