package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <start> <end> <attr>",
		Short: "Add [start,end) with the given attribute, overwriting any overlap",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}

			tree, err := loadStore(storePath())
			if err != nil {
				return err
			}
			if err := tree.Add(start, end, args[2]); err != nil {
				return fmt.Errorf("add: %w", err)
			}
			if err := saveStore(storePath(), tree); err != nil {
				return err
			}

			logger.Info("added range", zap.Uint64("start", start), zap.Uint64("end", end), zap.String("attr", args[2]))
			fmt.Printf("added [%d,%d) = %s\n", start, end, args[2])
			return nil
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <start> <end>",
		Short: "Remove any attribute from [start,end)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}

			tree, err := loadStore(storePath())
			if err != nil {
				return err
			}
			if err := tree.Delete(start, end); err != nil {
				return fmt.Errorf("delete: %w", err)
			}
			if err := saveStore(storePath(), tree); err != nil {
				return err
			}

			logger.Info("deleted range", zap.Uint64("start", start), zap.Uint64("end", end))
			fmt.Printf("deleted [%d,%d)\n", start, end)
			return nil
		},
	}
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <addr>",
		Short: "Print the attribute covering a single address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parsing address %q: %w", args[0], err)
			}

			tree, err := loadStore(storePath())
			if err != nil {
				return err
			}
			attr, err := tree.LookupPoint(addr)
			if err != nil {
				return err
			}
			fmt.Println(attr)
			return nil
		},
	}
}

func parseRange(startArg, endArg string) (start, end uint64, err error) {
	start, err = strconv.ParseUint(startArg, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing start %q: %w", startArg, err)
	}
	end, err = strconv.ParseUint(endArg, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing end %q: %w", endArg, err)
	}
	return start, end, nil
}
