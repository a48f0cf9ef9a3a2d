package main

import (
	"errors"
	"strings"
	"testing"
)

func TestEvalNegatedExpression(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantArgs []string
		wantHint bool
	}{
		{"after double dash", []string{"--", "-(1, 2)"}, []string{"-(1, 2)"}, false},
		{"flag then double dash", []string{"--save=false", "--", "-(1, 2) * 3"}, []string{"-(1, 2) * 3"}, false},
		{"bare negation", []string{"-(1, 2)"}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := evalCmd.ParseFlags(tc.args)
			if err != nil {
				err = evalCmd.FlagErrorFunc()(evalCmd, err)
			}
			if tc.wantHint {
				if err == nil || !strings.Contains(err.Error(), `vecgeom eval -- "-(1, 2)"`) {
					t.Errorf("ParseFlags(%q) error = %v, expected a hint about --", tc.args, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFlags(%q) failed: %v", tc.args, err)
			}
			got := evalCmd.Flags().Args()
			if strings.Join(got, "|") != strings.Join(tc.wantArgs, "|") {
				t.Errorf("ParseFlags(%q) args = %q, expected %q", tc.args, got, tc.wantArgs)
			}
		})
	}
}

func TestEvalFlagErrorPassesThrough(t *testing.T) {
	base := errors.New(`invalid argument "abc" for "--fps"`)
	if got := evalFlagError(evalCmd, base); got != base {
		t.Errorf("evalFlagError() = %v, expected the error unchanged", got)
	}
}
