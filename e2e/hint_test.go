//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const moderationConfig = `version = 1

[hint]
visible_rows = 3
row_height = 1
width = 60

[[commands]]
command = "ban"
description = "Ban a user"

[[commands]]
command = "mute"
description = "Mute a user"

[[commands]]
command = "kick"
description = "Kick a user"

[[commands]]
command = "warn"
description = "Warn a user"
`

func startWithModeration(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)
	require.NoError(t, tf.WriteConfig(moderationConfig))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should render the first frame")
	return tf
}

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err)

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "--config")
	require.Contains(t, output, "--write-default")
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	out, err := exec.Command(binPath, "--config", path, "--write-default").CombinedOutput()
	require.NoError(t, err, string(out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "visible_rows = 3")
	require.Contains(t, string(data), "command = 'ban'")
}

func TestSlashOpensListAndEnterInserts(t *testing.T) {
	t.Parallel()
	tf := startWithModeration(t)

	mark := tf.Mark()
	require.NoError(t, tf.Type("/"))
	require.True(t, tf.SeePlainSince(mark, "/kick"), "Should show the first window of commands")

	// walk past the window so /warn scrolls in
	for i := 0; i < 3; i++ {
		require.NoError(t, tf.SendKeys(KeyDown))
	}
	require.True(t, tf.SeePlainSince(mark, "/warn"), "Should scroll the highlighted row into view")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyEnter))
	require.NoError(t, tf.Type("bob"))
	require.True(t, tf.SeePlainSince(mark, "/warn bob"), "Should insert the highlighted command")

	mark = tf.Mark()
	require.NoError(t, tf.SendKeys(KeyEnter))
	if !tf.SeePlainSince(mark, "/warn executed (args: bob)") {
		tf.DumpTailOnFail(t, "submit-failure", 4096)
		t.Fatal("Should show the bot reply")
	}
}

func TestEscapeClosesList(t *testing.T) {
	t.Parallel()
	tf := startWithModeration(t)

	require.NoError(t, tf.Type("/m"))
	require.True(t, tf.SeePlain("/mute"))
	require.True(t, tf.LogContains("command hint opened"))

	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.LogContains("command hint closed"), "List should close on escape")
	require.True(t, tf.LogContains("command hint dismissed"))
}

func TestConfigReload(t *testing.T) {
	t.Parallel()
	tf := startWithModeration(t)

	require.NoError(t, tf.WriteConfig("[[commands]]\ncommand = \"ping\"\ndescription = \"Check the bot\"\n"))
	require.True(t, tf.SeePlain("Loaded 1 bot commands"), "Should pick up the new config")

	mark := tf.Mark()
	require.NoError(t, tf.Type("/"))
	require.True(t, tf.SeePlainSince(mark, "/ping"))
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startWithModeration(t)

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.SendKeys(KeyCtrlC))

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "Process should exit cleanly")
	case <-time.After(2 * time.Second):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("Application did not exit after ctrl+c")
	}
}
