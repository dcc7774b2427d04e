package colvalue

import (
	"testing"

	"github.com/csimplestring/colvalue-go/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePartitionName(t *testing.T) {
	keys, values, err := ParsePartitionName("ds=2024-01-01/hr=3")
	require.NoError(t, err)
	assert.Equal(t, []string{"ds", "hr"}, keys)
	assert.Equal(t, []string{"2024-01-01", "3"}, values)

	keys, values, err = ParsePartitionName("path=a%2Fb%3Dc/ts=2024-01-01 10%3A00%3A00/")
	require.NoError(t, err)
	assert.Equal(t, []string{"path", "ts"}, keys)
	assert.Equal(t, []string{"a/b=c", "2024-01-01 10:00:00"}, values)

	keys, values, err = ParsePartitionName("empty=")
	require.NoError(t, err)
	assert.Equal(t, []string{"empty"}, keys)
	assert.Equal(t, []string{""}, values)
}

func TestParsePartitionName_Invalid(t *testing.T) {
	for _, name := range []string{"", "ds", "=1", "ds=1//hr=2", "ds=1/hr"} {
		_, _, err := ParsePartitionName(name)
		assert.ErrorIs(t, err, errno.ErrIllegalArgument, name)
	}
}

func TestMakePartitionName(t *testing.T) {
	name, err := MakePartitionName([]string{"ds", "path"}, []string{"2024-01-01", "a/b"})
	require.NoError(t, err)
	assert.Equal(t, "ds=2024-01-01/path=a%2Fb", name)

	keys, values, err := ParsePartitionName(name)
	require.NoError(t, err)
	assert.Equal(t, []string{"ds", "path"}, keys)
	assert.Equal(t, []string{"2024-01-01", "a/b"}, values)

	_, err = MakePartitionName([]string{"a"}, nil)
	assert.ErrorIs(t, err, errno.ErrIllegalArgument)
}
