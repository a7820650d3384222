package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bursary-portal/internal/adapter/repository/gormrepo"
	"bursary-portal/internal/domain/reference"
	accountuc "bursary-portal/internal/usecase/account"
	refuc "bursary-portal/internal/usecase/reference"
)

type opener func(ctx context.Context) (*gorm.DB, *zap.Logger, error)

func newRootCmd(open opener, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "bursaryctl",
		Short:         "Operate the bursary portal database",
		SilenceUsage:  true,
	}
	root.SetOut(out)
	root.SetErr(out)
	root.AddCommand(
		newMigrateCmd(open),
		newSeedCmd(open),
		newCreateStaffCmd(open, true),
		newCreateStaffCmd(open, false),
		newCountiesCmd(open),
		newConstituenciesCmd(open),
	)
	return root
}

func newMigrateCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gdb, _, err := open(cmd.Context())
			if err != nil {
				return err
			}
			if err := gormrepo.Migrate(gdb); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			cmd.Println("schema up to date")
			return nil
		},
	}
}

func newSeedCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load counties, constituencies and levels of study",
		Long:  "Load counties, constituencies and levels of study. Existing rows are kept, so seeding can be repeated.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			gdb, _, err := open(ctx)
			if err != nil {
				return err
			}
			if err := gormrepo.Migrate(gdb); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if err := gormrepo.SeedCounties(ctx, gdb, reference.DefaultCounties); err != nil {
				return fmt.Errorf("seed counties: %w", err)
			}
			if err := gormrepo.SeedLevels(ctx, gdb); err != nil {
				return fmt.Errorf("seed levels: %w", err)
			}
			var counties, constituencies int64
			gdb.WithContext(ctx).Model(&reference.County{}).Count(&counties)
			gdb.WithContext(ctx).Model(&reference.Constituency{}).Count(&constituencies)
			cmd.Printf("seeded %d counties, %d constituencies, %d levels of study\n",
				counties, constituencies, len(reference.DefaultLevels))
			return nil
		},
	}
}

// newCreateStaffCmd builds create-admin or create-officer. Officers must name the
// constituency they review.
func newCreateStaffCmd(open opener, super bool) *cobra.Command {
	var (
		username, password string
		constituencyID     uint64
	)
	cmd := &cobra.Command{
		Use:   "create-officer",
		Short: "Create a constituency officer bound to one constituency",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			gdb, log, err := open(ctx)
			if err != nil {
				return err
			}
			uc := accountuc.NewUsecase(gormrepo.NewAccountRepository(gdb), gormrepo.NewGormUoW(gdb), nil, log)
			dto, err := uc.CreateStaff(ctx, accountuc.StaffInput{
				Username:       username,
				Password:       password,
				SuperAdmin:     super,
				ConstituencyID: constituencyID,
			})
			if errors.Is(err, reference.ErrNotFound) {
				return fmt.Errorf("constituency %d does not exist", constituencyID)
			}
			if err != nil {
				return err
			}
			cmd.Printf("created %s (user id %s)\n", dto.Username, dto.UserID)
			return nil
		},
	}
	if super {
		cmd.Use = "create-admin"
		cmd.Short = "Create a super admin who can review every constituency"
	} else {
		cmd.Flags().Uint64Var(&constituencyID, "constituency", 0, "constituency id the officer reviews")
		_ = cmd.MarkFlagRequired("constituency")
	}
	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newCountiesCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "counties",
		Short: "List counties",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			gdb, _, err := open(ctx)
			if err != nil {
				return err
			}
			opts, err := refuc.NewUsecase(gormrepo.NewReferenceRepository(gdb)).ListCounties(ctx)
			if err != nil {
				return err
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "County"})
			for _, o := range opts {
				table.Append([]string{strconv.FormatUint(o.ID, 10), o.Name})
			}
			table.Render()
			return nil
		},
	}
}

func newConstituenciesCmd(open opener) *cobra.Command {
	var county string
	cmd := &cobra.Command{
		Use:   "constituencies",
		Short: "List the constituencies of a county",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			gdb, _, err := open(ctx)
			if err != nil {
				return err
			}
			opts, err := refuc.NewUsecase(gormrepo.NewReferenceRepository(gdb)).ListConstituencies(ctx, county)
			if err != nil {
				return err
			}
			if len(opts) == 0 {
				cmd.Printf("no constituencies for county %q\n", county)
				return nil
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Constituency", "County ID"})
			for _, o := range opts {
				table.Append([]string{strconv.FormatUint(o.ID, 10), o.Name, strconv.FormatUint(o.CountyID, 10)})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&county, "county", "", "county id")
	_ = cmd.MarkFlagRequired("county")
	return cmd
}
