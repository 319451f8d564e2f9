package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "probetable 0.1.0 (git:unknown, built unknown)", Version())

	defer func(sha, dirty string) { gitSHA1, gitDirty = sha, dirty }(gitSHA1, gitDirty)
	gitSHA1, gitDirty = "abc123", "1"
	assert.Equal(t, "probetable 0.1.0 (git:abc123-dirty, built unknown)", Version())
}
