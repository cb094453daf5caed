package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Render every stored range as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := loadStore(storePath())
			if err != nil {
				return err
			}

			hex := viper.GetString("format") == "hex"
			render := func(v uint64) string { return fmt.Sprintf("%d", v) }
			if hex {
				render = func(v uint64) string { return fmt.Sprintf("0x%x", v) }
			}

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"start", "end", "size", "attr"})

			tree.Iterate(func(start, end uint64, attr string) bool {
				tbl.AppendRow(table.Row{render(start), render(end), end - start, attr})
				return true
			})

			tbl.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d ranges", tree.Len())})
			fmt.Println(tbl.Render())
			return nil
		},
	}
}
