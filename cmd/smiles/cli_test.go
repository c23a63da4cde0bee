package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xqrs/smiles/internal/config"
	"github.com/xqrs/smiles/internal/i18n"
)

// setup points the global configuration at a temporary directory.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.Messages.DatabasePath = filepath.Join(dir, "smiles.db")
	cfg.Campaign.File = filepath.Join(dir, "campaign.yaml")
	cfg.Logging.File = ""
	configPath = filepath.Join(dir, "smiles.yaml")
	t.Cleanup(func() {
		cfg = nil
		configPath = ""
	})
	return dir
}

func newCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	cmd.Flags().String("status", "all", "")
	cmd.Flags().Int("limit", 0, "")
	cmd.Flags().Bool("force", false, "")
	return cmd, &out
}

func TestMessagesAddListApprove(t *testing.T) {
	setup(t)

	cmd, out := newCmd()
	require.NoError(t, addMessage(cmd, []string{"Dara", "Keep smiling"}))
	id := strings.TrimSpace(out.String())
	require.NotEmpty(t, id)

	cmd, out = newCmd()
	require.NoError(t, cmd.Flags().Set("status", "approved"))
	require.NoError(t, listMessages(cmd, nil))
	assert.Equal(t, "No messages.\n", out.String())

	cmd, _ = newCmd()
	require.NoError(t, setMessageStatus("approved")(cmd, []string{id}))

	cmd, out = newCmd()
	require.NoError(t, cmd.Flags().Set("status", "approved"))
	require.NoError(t, listMessages(cmd, nil))
	assert.Contains(t, out.String(), id)
	assert.Contains(t, out.String(), "Dara")
	assert.Contains(t, out.String(), "    Keep smiling")
}

func TestMessagesApproveUnknown(t *testing.T) {
	setup(t)
	cmd, _ := newCmd()
	assert.Error(t, setMessageStatus("approved")(cmd, []string{"missing"}))
}

func TestCampaignShow(t *testing.T) {
	dir := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "campaign.yaml"),
		[]byte("title: Test\ncurrent_bags: 250\ngoal: 1000\n"), 0644))

	cmd, out := newCmd()
	require.NoError(t, showCampaign(cmd, nil))
	assert.Contains(t, out.String(), "current_bags: 250")
	assert.Contains(t, out.String(), "# progress: 25%")
}

func TestConfigInit(t *testing.T) {
	setup(t)

	cmd, _ := newCmd()
	require.NoError(t, initConfig(cmd, nil))
	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Messages.DatabasePath, loaded.Messages.DatabasePath)

	cmd, _ = newCmd()
	assert.Error(t, initConfig(cmd, nil), "existing file kept")

	cmd, _ = newCmd()
	require.NoError(t, cmd.Flags().Set("force", "true"))
	assert.NoError(t, initConfig(cmd, nil))
}

func TestSaveLanguage(t *testing.T) {
	setup(t)

	saveLanguage(i18n.Khmer)
	loaded, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "km", loaded.Language)
	assert.Equal(t, cfg.Messages.DatabasePath, loaded.Messages.DatabasePath)

	saveLanguage(i18n.English)
	loaded, err = config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "en", loaded.Language)
}

func TestOrderedQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan int, 100)
	queue := orderedQueue(ctx, func(f func()) { f() })
	for i := range 100 {
		queue(func() { ran <- i })
	}
	for want := range 100 {
		assert.Equal(t, want, <-ran)
	}
}
