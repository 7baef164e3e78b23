package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "postgres://db", "-x", "1"},
			allowed: []string{"-d"},
			want:    []string{"-d", "postgres://db"},
		},
		{
			name:    "equals form",
			args:    []string{"-s=secret", "-a", ":50051"},
			allowed: []string{"-s"},
			want:    []string{"-s=secret"},
		},
		{
			name:    "order preserved across several flags",
			args:    []string{"-a", ":50051", "-o", "http://localhost:3000", "--other", "x"},
			allowed: []string{"-o", "-a"},
			want:    []string{"-a", ":50051", "-o", "http://localhost:3000"},
		},
		{
			name:    "next flag is not a value",
			args:    []string{"-c", "-a", ":1"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "unknown only",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "server.json", ConfigFile([]string{"-a", ":1", "-c", "server.json"}))
	assert.Equal(t, "alt.json", ConfigFile([]string{"-config=alt.json"}))
	assert.Equal(t, "", ConfigFile([]string{"-a", ":1"}))
}
