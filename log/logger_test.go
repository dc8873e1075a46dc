package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"titlebot/constants/envvar"
)

func TestVerboseLogsEnabled(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"unset", "", false},
		{"true", "true", true},
		{"one", "1", true},
		{"false", "false", false},
		{"garbage", "loud", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envvar.VerboseLogsEnabled, tt.value)
			assert.Equal(t, tt.want, VerboseLogsEnabled(context.Background()))
		})
	}
}

func TestNamed(t *testing.T) {
	assert.NotNil(t, Named("test"))
	assert.NotNil(t, Logger)
}
