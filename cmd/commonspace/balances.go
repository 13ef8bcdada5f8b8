package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/mmynk/commonspace/internal/service"
	"github.com/mmynk/commonspace/internal/storage/sqlite"
	"github.com/mmynk/commonspace/internal/validation"
	pb "github.com/mmynk/commonspace/pkg/proto"
)

func balancesCmd(a *app) *cobra.Command {
	var (
		flatCode string
		asJSON   bool
	)
	cmd := &cobra.Command{
		Use:   "balances",
		Short: "Print a household's balances and suggested payments",
		Long: `Read a household's expenses and settlements straight from the database and
print each person's net balance followed by the payments that would settle them.`,
		Example: "  commonspace balances --flat-code ABC-DEF-GHI --db ./data/commonspace.db",
		RunE: func(cmd *cobra.Command, _ []string) error {
			code := validation.NormalizeFlatCode(flatCode)
			if err := validation.ValidateFlatCode(code); err != nil {
				return err
			}

			store, err := sqlite.New(a.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer store.Close()

			// Fail with a clear error for codes that do not exist
			household, err := store.GetHousehold(cmd.Context(), code)
			if err != nil {
				return err
			}

			report, err := service.HouseholdBalances(cmd.Context(), store, code)
			if err != nil {
				return err
			}
			a.logger.Debug("Computed balances", "flat_code", code, "debts", len(report.Debts))

			if asJSON {
				data, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}.Marshal(report)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return printBalances(cmd.OutOrStdout(), household.Name, report)
		},
	}

	cmd.Flags().StringVar(&flatCode, "flat-code", "", "household flat code (ABC-DEF-GHI)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	_ = cmd.MarkFlagRequired("flat-code")
	return cmd
}

func printBalances(out io.Writer, name string, report *pb.GetBalancesResponse) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "%s\n\n", name)
	fmt.Fprintln(w, "PERSON\tBALANCE\t")
	for _, b := range report.Balances {
		person := b.Person
		if b.Unknown {
			person += " (former member)"
		}
		fmt.Fprintf(w, "%s\t%s\t\n", person, b.NetBalance)
	}

	fmt.Fprintln(w)
	if report.Settled {
		fmt.Fprintln(w, "All settled up.")
		return w.Flush()
	}

	fmt.Fprintln(w, "FROM\tTO\tAMOUNT\t")
	for _, d := range report.Debts {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", d.From, d.To, d.Amount)
	}
	return w.Flush()
}
