package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppiankov/entitlement/internal/condition"
	"github.com/ppiankov/entitlement/internal/model"
	"github.com/ppiankov/entitlement/internal/registry"
)

var showQuestions bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the condition catalogs and activity tables",
}

var catalogListCmd = &cobra.Command{
	Use:   "list [UC|ESA]",
	Short: "List the conditions of one or both benefits",
	Long: `List prints the validation and outcome conditions in the order they are
tried, with the points band and award each one carries.

Example:
  entitlement catalog list
  entitlement catalog list esa --questions`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		benefits := []model.Benefit{model.BenefitUC, model.BenefitESA}
		if len(args) == 1 {
			b, err := model.ParseBenefit(args[0])
			if err != nil {
				return err
			}
			benefits = []model.Benefit{b}
		}

		for _, b := range benefits {
			if err := printCatalogs(os.Stdout, b, showQuestions); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)

	catalogListCmd.Flags().BoolVar(&showQuestions, "questions", false, "also list the activity questions and descriptors")
}

func printCatalogs(w io.Writer, b model.Benefit, questions bool) error {
	validation, outcome, err := condition.ForBenefit(b)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(w, "  %s conditions (rule set %s)\n", b, registry.RuleSetVersion)
	fmt.Fprintf(w, "═══════════════════════════════════════════════════════════\n")

	for _, c := range []*condition.Catalog{validation, outcome} {
		fmt.Fprintf(w, "\n%s (%d)\n\n", c.Name(), c.Len())
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tPOINTS\tAWARD")
		for _, cond := range c.Conditions() {
			award := string(cond.Award)
			if award == "" {
				award = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", cond.ID, cond.Points, award)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if questions {
		if err := printQuestions(w, b); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)
	return nil
}

func printQuestions(w io.Writer, b model.Benefit) error {
	reg, err := registry.ForBenefit(b)
	if err != nil {
		return err
	}

	for _, cat := range []string{registry.CategoryPhysical, registry.CategoryMental, registry.CategoryHighTier} {
		qs, err := reg.Category(cat)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s\n\n", reg.DisplayName(cat))
		for _, q := range qs {
			fmt.Fprintf(w, "  %s. %s [%s]\n", q.Number, q.Text, q.Key)
			if q.IsSelection() {
				fmt.Fprintf(w, "       %s\n", strings.TrimSpace(q.Detail))
				continue
			}
			for _, a := range q.Answers {
				fmt.Fprintf(w, "       %s) %2d  %s\n", a.Letter, a.Points, a.Text)
			}
		}
	}
	return nil
}
