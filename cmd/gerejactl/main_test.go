package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{{"migrate", "up"}, {"migrate", "down"}, {"seed"}, {"create-user"}, {"delete-users"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.NotEmpty(t, cmd.Short, path)
	}
}

func TestDeleteUsersRequiresConfirmation(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"delete-users"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"create-user", "--name", "Admin", "--email", "admin@gereja.id", "--password", "short"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimal 8")
}
