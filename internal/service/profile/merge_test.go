package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"centrodrinks/internal/domain"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing domain.Profile
		edits    domain.Profile
		want     domain.Profile
	}{
		{
			name:     "edit fills empty field",
			existing: domain.Profile{Name: "", Phone: "555"},
			edits:    domain.Profile{Name: "Ana"},
			want:     domain.Profile{Name: "Ana", Phone: "555"},
		},
		{
			name:     "edit wins over existing",
			existing: domain.Profile{Name: "Ana", Street: "Old St"},
			edits:    domain.Profile{Street: "New St"},
			want:     domain.Profile{Name: "Ana", Street: "New St"},
		},
		{
			name:     "empty edits keep everything",
			existing: domain.Profile{Name: "Ana", Age: "25", Nickname: "Anita"},
			edits:    domain.Profile{},
			want:     domain.Profile{Name: "Ana", Age: "25", Nickname: "Anita"},
		},
		{
			name:     "photo url survives unrelated edit",
			existing: domain.Profile{Name: "Ana", PhotoURL: "http://x/p.jpg"},
			edits:    domain.Profile{Phone: "33-1234"},
			want:     domain.Profile{Name: "Ana", Phone: "33-1234", PhotoURL: "http://x/p.jpg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.existing, tt.edits))
		})
	}
}
