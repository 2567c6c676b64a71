package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"validation", fmt.Errorf("%w: email is required", ErrorValidation), ErrorValidation},
		{"conflict", fmt.Errorf("%w: email", ErrorAlreadyExists), ErrorAlreadyExists},
		{"expired", fmt.Errorf("parse: %w", ErrTokenExpired), ErrTokenExpired},
		{"double wrap", fmt.Errorf("svc: %w", fmt.Errorf("repo: %w", ErrorNotFound)), ErrorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.target))
		})
	}
}

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrorAlreadyExists, ErrorInternal, ErrorUnauthorized, ErrorValidation,
		ErrTooManyAttempts, ErrMissingToken, ErrInvalidToken, ErrTokenExpired, ErrRefreshTokenExpired,
	}
	for i := range all {
		for j := range all {
			if i != j {
				assert.False(t, errors.Is(all[i], all[j]), "%v must not match %v", all[i], all[j])
			}
		}
	}
}
