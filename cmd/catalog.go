package cmd

import (
	"fmt"
	"strings"

	"github.com/fieldhq/brevet/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the skill catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by branch or family)",
	RunE: func(cmd *cobra.Command, args []string) error {
		branchName, _ := cmd.Flags().GetString("branch")
		familyName, _ := cmd.Flags().GetString("family")

		cat := catalog.Default()
		classifier := catalog.DefaultClassifier()

		var defs []catalog.Definition

		switch {
		case branchName != "" && familyName != "":
			return fmt.Errorf("use --branch or --family, not both")
		case branchName != "":
			b, ok := catalog.BranchByName(branchName)
			if !ok {
				return fmt.Errorf("unknown branch %q", branchName)
			}
			defs = cat.Branch(b)
		case familyName != "":
			f, ok := catalog.FamilyByName(familyName)
			if !ok {
				return fmt.Errorf("unknown family %q (foundation, doctrine, specialization)", familyName)
			}
			for _, b := range classifier.BranchesOf(f) {
				defs = append(defs, cat.Branch(b)...)
			}
		default:
			defs = cat.All()
		}

		// Header.
		fmt.Printf("%-24s  %-26s  %4s  %5s  %-24s  %s\n",
			"TAG", "NAME", "TIER", "COST", "BRANCH", "GRADE")
		fmt.Println(strings.Repeat("─", 96))

		for _, d := range defs {
			fmt.Printf("%-24s  %-26s  %4d  %5d  %-24s  %s\n",
				d.Tag, d.Name, d.Tier, d.Cost,
				catalog.BranchDisplayName(d.Branch), d.Grade)
		}

		fmt.Printf("\n%d skills\n", len(defs))
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <skill>",
	Short: "Show one skill's cost, gating and effects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, ok := catalog.TagByName(args[0])
		if !ok {
			return fmt.Errorf("unknown skill %q", args[0])
		}
		desc := catalog.Default().Describe(tag)
		lines := strings.SplitN(desc, "\n", 2)
		fmt.Println(titleStyle.Render(lines[0]))
		if len(lines) > 1 {
			fmt.Print(lines[1])
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the seed catalog for structural issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := catalog.Validate(); err != nil {
			return err
		}
		fmt.Println(okStyle.Render("catalog ok"),
			dimStyle.Render(fmt.Sprintf("(%d skills)", catalog.Default().Len())))
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("branch", "", "Filter by branch (e.g. armored-doctrine)")
	catalogListCmd.Flags().String("family", "", "Filter by family (foundation, doctrine, specialization)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}
