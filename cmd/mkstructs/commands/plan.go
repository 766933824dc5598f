package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/alexhholmes/bitlayout/internal/compiler"
	"github.com/alexhholmes/bitlayout/internal/planner"
)

func newPlanCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [schema...]",
		Short: "Print the layout groups, codecs and emission units of each structure",
		Long: `plan validates the schemas and prints, per structure, every codec with its
bit range and the emission unit it belongs to. Nothing is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// output is not needed to plan
			if !cmd.Flags().Changed("output") {
				_ = cmd.Flags().Set("output", "plan.go")
			}
			cfg, err := loadConfig(cmd, *cfgFile, args)
			if err != nil {
				return err
			}

			plans, err := compiler.Plan(cfg.Schemas)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for i, p := range plans {
				if i > 0 {
					fmt.Fprintln(w)
				}
				printPlan(w, p)
			}
			return nil
		},
	}
}

// printPlan renders one structure's plan as a table
func printPlan(w io.Writer, p *planner.Plan) {
	s := p.Struct
	fmt.Fprintf(w, "%s (%d bytes, %d bits declared)\n", s.Name, s.ByteSize, s.BitLen())

	unitOf := make(map[planner.Codec]int)
	for i, u := range p.Units {
		for _, c := range u.Codecs {
			unitOf[c] = i
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Bits", "Width", "Codec", "Fields", "Unit"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, c := range p.Codecs {
		u := p.Units[unitOf[c]]
		unit := fmt.Sprintf("#%d [%d,%d)", unitOf[c], u.StartByte(), u.EndByte())
		if u.Batched() {
			unit += " batch"
		}
		table.Append([]string{
			fmt.Sprintf("[%d,%d)", c.BitOffset(), c.BitOffset()+c.Bits()),
			strconv.Itoa(c.Bits()),
			c.Kind(),
			planner.Describe(c),
			unit,
		})
	}

	table.Render()
}
