// Command smiles runs the donation campaign board in the terminal and manages
// its data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xqrs/smiles/internal/config"
	"github.com/xqrs/smiles/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd runs the board.
var rootCmd = &cobra.Command{
	Use:   "smiles",
	Short: "Terminal board for the Bags of Smiles donation campaign",
	Long: `smiles shows the campaign progress, the activity pictures and the
messages donors leave for the kids, and lets visitors write a new message.

Run without arguments to open the board.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.File, cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("path", configPath), zap.String("language", cfg.Language))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBoard,
}

var overlayCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Show only the progress bar, for capturing into a live stream",
	RunE:  runOverlay,
}

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List and moderate donor messages",
}

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List messages, newest first",
	Args:  cobra.NoArgs,
	RunE:  listMessages,
}

var messagesAddCmd = &cobra.Command{
	Use:   "add [name] [message]",
	Short: "Add a message",
	Args:  cobra.ExactArgs(2),
	RunE:  addMessage,
}

var messagesApproveCmd = &cobra.Command{
	Use:   "approve [id]",
	Short: "Approve a message",
	Args:  cobra.ExactArgs(1),
	RunE:  setMessageStatus("approved"),
}

var messagesHideCmd = &cobra.Command{
	Use:   "hide [id]",
	Short: "Hide a message from the board",
	Args:  cobra.ExactArgs(1),
	RunE:  setMessageStatus("hidden"),
}

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Inspect the campaign file",
}

var campaignShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the campaign as the board reads it",
	Args:  cobra.NoArgs,
	RunE:  showCampaign,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to --config",
	Args:  cobra.NoArgs,
	RunE:  initConfig,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "smiles.yaml", "Configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	messagesListCmd.Flags().String("status", "all", "Only list messages with this status (pending, approved, hidden, all)")
	messagesListCmd.Flags().Int("limit", 0, "Maximum number of messages (default from config)")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")

	messagesCmd.AddCommand(messagesListCmd)
	messagesCmd.AddCommand(messagesAddCmd)
	messagesCmd.AddCommand(messagesApproveCmd)
	messagesCmd.AddCommand(messagesHideCmd)
	campaignCmd.AddCommand(campaignShowCmd)
	configCmd.AddCommand(configInitCmd)

	// Add commands to root
	rootCmd.AddCommand(overlayCmd)
	rootCmd.AddCommand(messagesCmd)
	rootCmd.AddCommand(campaignCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
