package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fieldhq/brevet/internal/career"
	"github.com/fieldhq/brevet/internal/catalog"
	"github.com/fieldhq/brevet/internal/roster"
	"github.com/spf13/cobra"
)

var commanderCmd = &cobra.Command{
	Use:   "commander",
	Short: "Manage commander careers",
}

// newService opens the store and wires the roster service over it.
// The returned closer shuts the store down.
func newService(cmd *cobra.Command) (*roster.Service, func(), error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	svc := roster.NewService(catalog.Default(), catalog.DefaultClassifier(),
		st.CareerRepo(), st.EventRepo(), log)
	return svc, func() { st.Close() }, nil
}

var commanderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new commander",
	RunE: func(cmd *cobra.Command, args []string) error {
		reputation, _ := cmd.Flags().GetInt("reputation")

		svc, done, err := newService(cmd)
		if err != nil {
			return err
		}
		defer done()

		c, err := svc.Create(cmd.Context(), reputation)
		if err != nil {
			return err
		}
		fmt.Println(c.CommanderID)
		return nil
	},
}

var commanderShowCmd = &cobra.Command{
	Use:   "show <commander-id>",
	Short: "Show a commander's career",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := newService(cmd)
		if err != nil {
			return err
		}
		defer done()

		c, err := svc.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		t := c.Tree
		cat := catalog.Default()

		fmt.Println(titleStyle.Render("Commander " + c.CommanderID))
		fmt.Printf("Grade: %s    Reputation: %d\n", t.Grade(), t.Reputation())

		for _, b := range t.StartedBranches() {
			fmt.Println()
			fmt.Println(titleStyle.Render(catalog.BranchDisplayName(b)))
			for _, d := range cat.Branch(b) {
				if !t.IsUnlocked(d.Tag) {
					continue
				}
				fmt.Printf("  %-26s %s\n", d.Name, dimStyle.Render(fmt.Sprintf("tier %d", d.Tier)))
			}
		}

		printBonuses(t)
		return nil
	},
}

// printBonuses lists every non-default aggregate and capability.
func printBonuses(t *career.Tree) {
	var lines []string
	for bt := catalog.BonusHardAttack; bt <= catalog.BonusTopPromotion; bt++ {
		switch bt.Kind() {
		case catalog.KindAdditive:
			if v := t.Bonus(bt); v != 0 {
				lines = append(lines, fmt.Sprintf("  %-20s %+g", bt, v))
			}
		case catalog.KindMultiplicative:
			if v := t.Bonus(bt); v != 1 {
				lines = append(lines, fmt.Sprintf("  %-20s ×%.2f", bt, v))
			}
		case catalog.KindCapability:
			if t.HasCapability(bt) {
				lines = append(lines, fmt.Sprintf("  %-20s granted", bt))
			}
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(titleStyle.Render("Bonuses"))
	fmt.Println(strings.Join(lines, "\n"))
}

var commanderUnlockCmd = &cobra.Command{
	Use:   "unlock <commander-id> <skill>",
	Short: "Unlock a skill for a commander",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, ok := catalog.TagByName(args[1])
		if !ok {
			return fmt.Errorf("unknown skill %q", args[1])
		}

		svc, done, err := newService(cmd)
		if err != nil {
			return err
		}
		defer done()

		c, err := svc.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		ch, ok, err := svc.Unlock(cmd.Context(), c, tag)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(warnStyle.Render("not eligible:"), args[1])
			return nil
		}

		fmt.Println(okStyle.Render("unlocked"), ch.Name,
			dimStyle.Render(fmt.Sprintf("(%d reputation left)", ch.Reputation)))
		if ch.Promoted {
			fmt.Println(okStyle.Render("promoted to " + ch.Grade.String() + " grade"))
		}
		for _, capability := range ch.Capabilities {
			fmt.Println(okStyle.Render("capability gained:"), capability.String())
		}
		return nil
	},
}

var commanderResetCmd = &cobra.Command{
	Use:   "reset <commander-id>",
	Short: "Respec a commander (refund non-promotion skills)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		branchName, _ := cmd.Flags().GetString("branch")
		keepFoundation, _ := cmd.Flags().GetBool("keep-foundation")
		if branchName != "" && keepFoundation {
			return fmt.Errorf("use --branch or --keep-foundation, not both")
		}

		svc, done, err := newService(cmd)
		if err != nil {
			return err
		}
		defer done()

		c, err := svc.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var res career.ResetResult
		switch {
		case branchName != "":
			b, ok := catalog.BranchByName(branchName)
			if !ok {
				return fmt.Errorf("unknown branch %q", branchName)
			}
			res, err = svc.ResetBranch(cmd.Context(), c, b)
		case keepFoundation:
			res, err = svc.ResetAllExceptFoundation(cmd.Context(), c)
		default:
			res, err = svc.ResetAll(cmd.Context(), c)
		}
		if err != nil {
			return err
		}
		if !res.Changed() {
			fmt.Println(dimStyle.Render("nothing to reset"))
			return nil
		}

		names := make([]string, 0, len(res.Cleared))
		for _, tag := range res.Cleared {
			names = append(names, tag.String())
		}
		fmt.Printf("refunded %d reputation (%s)\n", res.Refund, strings.Join(names, ", "))
		fmt.Printf("balance: %d\n", c.Tree.Reputation())
		return nil
	},
}

func init() {
	commanderCreateCmd.Flags().Int("reputation", 200, "Starting reputation balance")
	commanderResetCmd.Flags().String("branch", "", "Reset a single branch")
	commanderResetCmd.Flags().Bool("keep-foundation", false, "Reset everything except foundation branches")

	commanderCmd.AddCommand(commanderCreateCmd)
	commanderCmd.AddCommand(commanderShowCmd)
	commanderCmd.AddCommand(commanderUnlockCmd)
	commanderCmd.AddCommand(commanderResetCmd)
}
