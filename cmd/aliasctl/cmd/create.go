/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suparena/aliasstore/handler"
	"github.com/suparena/aliasstore/storagemodels"
)

var (
	caller    string
	avatarURL string
)

var createCmd = &cobra.Command{
	Use:   "create <alias>",
	Short: "Claim an alias for an address",
	Long: `Claims <alias> for the address given with --as.

Examples:
  aliasctl create bob --as wasm1bob
  aliasctl create bob --as wasm1bob --avatar https://example.com/bob.png`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

var destroyCmd = &cobra.Command{
	Use:   "destroy <alias>",
	Short: "Release an alias owned by an address",
	Args:  cobra.ExactArgs(1),
	RunE:  runDestroy,
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(destroyCmd)

	for _, c := range []*cobra.Command{createCmd, destroyCmd} {
		c.Flags().StringVar(&caller, "as", "", "address performing the command")
		c.MarkFlagRequired("as")
	}
	createCmd.Flags().StringVar(&avatarURL, "avatar", "", "avatar reference stored with the alias")
}

func runCreate(cmd *cobra.Command, args []string) error {
	msg := handler.ExecuteMsg{Create: &handler.CreateMsg{Alias: args[0]}}
	if cmd.Flags().Changed("avatar") {
		avatar := avatarURL
		msg.Create.AvatarURL = &avatar
	}
	return execute(cmd, msg)
}

func runDestroy(cmd *cobra.Command, args []string) error {
	return execute(cmd, handler.ExecuteMsg{Destroy: &handler.DestroyMsg{Alias: args[0]}})
}

func execute(cmd *cobra.Command, msg handler.ExecuteMsg) error {
	ctx := cmd.Context()
	h, closeFn, err := openHandler(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	answer, err := h.Execute(ctx, storagemodels.Address(caller), marshalMsg(msg))
	if err != nil {
		return err
	}
	printAnswer(cmd.OutOrStdout(), answer)
	return nil
}
