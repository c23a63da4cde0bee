package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xqrs/smiles/internal/messages"
)

func openStore() (*messages.Store, error) {
	store, err := messages.Open(cfg.Messages.DatabasePath)
	if err != nil {
		return nil, err
	}
	logger.Debug("message store opened", zap.String("path", cfg.Messages.DatabasePath))
	return store, nil
}

func listMessages(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = cfg.Messages.Limit
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.List(cmd.Context(), status, limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No messages.")
		return nil
	}
	for _, m := range list {
		fmt.Fprintf(out, "%s  %-8s  %s  %s\n", m.ID, m.Status, m.CreatedAt.Local().Format(time.DateTime), m.Name)
		for _, line := range strings.Split(m.Message, "\n") {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}
	return nil
}

func addMessage(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	m, err := store.Create(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	logger.Info("message added", zap.String("id", m.ID))
	fmt.Fprintln(cmd.OutOrStdout(), m.ID)
	return nil
}

func setMessageStatus(status string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SetStatus(cmd.Context(), args[0], status); err != nil {
			return err
		}
		logger.Info("message status changed", zap.String("id", args[0]), zap.String("status", status))
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], status)
		return nil
	}
}
