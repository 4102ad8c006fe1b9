package flagx

import (
	"os"
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
			name:    "keeps allowed flag with value",
			args:    []string{"-d", "vault.db", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "vault.db"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"--database=vault.db", "--other=1"},
			allowed: []string{"--database"},
			want:    []string{"--database=vault.db"},
		},
		{
			name:    "flag without value",
			args:    []string{"-d", "-k", "24"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJSONConfigFlag(t *testing.T) {
	orig := os.Args
	defer func() { os.Args = orig }()

	os.Args = []string{"cli", "-c", "conf.json", "-d", "vault.db"}
	assert.Equal(t, "conf.json", JSONConfigFlag())

	os.Args = []string{"cli", "--config=other.json"}
	assert.Equal(t, "other.json", JSONConfigFlag())

	os.Args = []string{"cli", "-d", "vault.db"}
	assert.Equal(t, "", JSONConfigFlag())
}
