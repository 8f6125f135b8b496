package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	l, err := Parse(nil)
	require.NoError(t, err)
	require.False(t, l.Done("update_the_system"))
	require.False(t, l.Completed())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("not json"))
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	l := NewLedger()
	l.SetDone("remove_redhat_packages")
	l.SetDone(StageCompleted)

	data, err := l.Marshal()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.True(t, parsed.Done("remove_redhat_packages"))
	require.False(t, parsed.Done("install_centos_packages"))
	require.True(t, parsed.Completed())
}

func TestNilLedgerDone(t *testing.T) {
	var l *Ledger
	require.False(t, l.Done("anything"))
}

func TestMarshalFormat(t *testing.T) {
	l := NewLedger()
	l.SetDone("check_supported_os")
	data, err := l.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(data), "\"check_supported_os\": true")
}
