package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geoyee/HuBeiMap/pkg/sheetjson/output"
	"github.com/geoyee/HuBeiMap/pkg/sheetjson/stats"
)

func (a *app) newStatsCmd() *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "stats <json_path>",
		Short: "Count converted landmarks per region",
		Long: `Stats reads a JSON document produced by sheetjson and counts the records
of all sheets per value of a field (region by default), largest first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := stats.Load(args[0])
			if err != nil {
				return err
			}
			counts := stats.CountBy(result, field)

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "各市建筑数量统计：")
			for _, c := range counts {
				fmt.Fprintf(w, "%s: %d个建筑\n", c.Value, c.N)
			}

			data, err := output.ToJSON(stats.ToObject(counts))
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "\nJSON 格式：")
			fmt.Fprintln(w, string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&field, "field", stats.DefaultField, "record field to group by")
	return cmd
}
