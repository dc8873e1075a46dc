package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCLI(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Args(t *testing.T) {
	code, out, _ := runCLI([]string{"for", "step-by-step", "directions"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "For Step-by-Step Directions\n", out)
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCLI(nil, "PLEASE STOP SHOUTING!\n\nthis v. that\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Please Stop Shouting!\n\nThis v. That\n", out)
}

func TestRun_Explain(t *testing.T) {
	code, out, _ := runCLI([]string{"--explain", "war", "and", "peace"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "war\tcapitalize\tWar\nand\tdo_not_upcase\tand\npeace\tcapitalize\tPeace\n\n", out)

	code, short, _ := runCLI([]string{"-e", "war", "and", "peace"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, out, short)
}

func TestRun_Help(t *testing.T) {
	code, out, errOut := runCLI([]string{"-h"}, "")
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage: titlecase")
}

func TestRun_BadFlag(t *testing.T) {
	code, _, errOut := runCLI([]string{"--shout"}, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "Usage: titlecase")
}
