package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepositories(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want []string
	}{
		{name: "single", arg: "acme/server", want: []string{"acme/server"}},
		{name: "comma separated", arg: "acme/server,acme/web-client", want: []string{"acme/server", "acme/web-client"}},
		{name: "whitespace trimmed", arg: " acme/server , acme/app ", want: []string{"acme/server", "acme/app"}},
		{name: "empty entries dropped", arg: "acme/server,,  ,acme/app,", want: []string{"acme/server", "acme/app"}},
		{name: "duplicates kept", arg: "acme/server,acme/server", want: []string{"acme/server", "acme/server"}},
		{name: "empty", arg: "", want: nil},
		{name: "only separators", arg: " , ,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRepositories(tt.arg))
		})
	}
}

func TestRepositoriesFromArgs(t *testing.T) {
	fallback := []string{"acme/batch"}

	assert.Equal(t, fallback, RepositoriesFromArgs(nil, fallback))
	assert.Equal(t, []string{"acme/server", "acme/app"}, RepositoriesFromArgs([]string{"acme/server,acme/app"}, fallback))
	assert.Nil(t, RepositoriesFromArgs([]string{","}, fallback))
	assert.Equal(t, []string{"acme/server", "acme/batch"}, RepositoriesFromArgs(nil, []string{"acme/server", " acme/batch", " "}))
}
