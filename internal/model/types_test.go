package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFramework verifies that framework strings parse case-insensitively
// and that unknown values are rejected.
func TestParseFramework(t *testing.T) {
	tests := []struct {
		input   string
		want    Framework
		wantErr bool
	}{
		{"django", FrameworkDjango, false},
		{"fastapi", FrameworkFastAPI, false},
		{"Django", FrameworkDjango, false},
		{"FASTAPI", FrameworkFastAPI, false},
		{"flask", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFramework(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

// TestValidateProjectName covers the path-safety boundary: names that would
// escape the target directory or break shell quoting must be rejected before
// any filesystem or subprocess step runs.
func TestValidateProjectName(t *testing.T) {
	valid := []string{"demo", "my-api", "my_api", "Project2", "a"}
	for _, name := range valid {
		assert.NoError(t, ValidateProjectName(name), "expected %q to be valid", name)
	}

	invalid := []string{
		"",
		"-leading-hyphen",
		"_leading_underscore",
		"has space",
		"has/slash",
		"has\\backslash",
		"../escape",
		".hidden",
	}
	for _, name := range invalid {
		assert.Error(t, ValidateProjectName(name), "expected %q to be invalid", name)
	}
}

// TestValidateUseCaseName verifies that use case names are restricted to
// importable lowercase Python identifiers, since they become generated
// package names.
func TestValidateUseCaseName(t *testing.T) {
	valid := []string{"usecase1", "orders", "order_items"}
	for _, name := range valid {
		assert.NoError(t, ValidateUseCaseName(name))
	}

	invalid := []string{"", "1orders", "Orders", "order-items", "order items"}
	for _, name := range invalid {
		assert.Error(t, ValidateUseCaseName(name), "expected %q to be invalid", name)
	}
}

// TestCLIError verifies message formatting and error unwrapping.
func TestCLIError(t *testing.T) {
	underlying := fmt.Errorf("disk full")
	err := WrapCLIError(ExitGeneralError, "failed to write file", underlying)

	assert.Equal(t, "failed to write file: disk full", err.Error())
	assert.Equal(t, ExitGeneralError, err.Code)
	assert.True(t, errors.Is(err, underlying))

	plain := NewCLIError(ExitGeneralError, "usage: apiseed django <project-name>")
	assert.Equal(t, "usage: apiseed django <project-name>", plain.Error())
	assert.Nil(t, plain.Unwrap())
}
