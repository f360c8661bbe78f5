/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/suparena/aliasstore/handler"
	"github.com/suparena/aliasstore/storagemodels"
)

var searchCmd = &cobra.Command{
	Use:   "search <alias|address> <value>",
	Short: "Look up an alias or the alias owned by an address",
	Long: `Looks up a binding by alias or by owning address.

Examples:
  aliasctl search alias bob
  aliasctl search address wasm1bob`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{storagemodels.SearchTypeAlias, storagemodels.SearchTypeAddress},
	RunE:      runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	h, closeFn, err := openHandler(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	msg := handler.QueryMsg{Search: &handler.SearchMsg{SearchType: args[0], SearchValue: args[1]}}
	answer, err := h.Query(ctx, marshalMsg(msg))
	if err != nil {
		return err
	}
	printAnswer(cmd.OutOrStdout(), answer)
	return nil
}
