package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/nearby/internal/domain"
	"github.com/runoshun/nearby/internal/usecase"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	custom := domain.NewDefaultConfig()
	custom.Store.Backend = domain.BackendSQLite
	custom.Log.Level = "debug"

	tests := []struct {
		input        usecase.ShowConfigTemplateInput
		name         string
		wantContains []string
	}{
		{
			name:         "defaults",
			input:        usecase.ShowConfigTemplateInput{},
			wantContains: []string{"[store]", `backend = "json"`, "[location]", `level = "info"`},
		},
		{
			name:         "current values",
			input:        usecase.ShowConfigTemplateInput{Config: custom},
			wantContains: []string{`backend = "sqlite"`, `level = "debug"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := usecase.NewShowConfigTemplate().Execute(context.Background(), tt.input)

			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, out.Template, want, "template should contain %q", want)
			}
		})
	}
}
