package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusActive, true},
		{StatusAbsent, true},
		{StatusQuit, true},
		{Status("fired"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
		})
	}
}

func TestEmployee_FullName(t *testing.T) {
	employee := &Employee{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", employee.FullName())
}
