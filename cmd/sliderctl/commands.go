package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"product_slider_app_go/models"
	"product_slider_app_go/services"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newActivateCmd(current func() *app) *cobra.Command {
	var noDefaults bool
	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Create missing options and record the current version",
		Long: `Create the category and settings options when they do not exist yet.

Default categories are seeded only the first time the category option is created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			seed := a.cfg.SeedDefaults && !noDefaults
			if err := a.activator.Activate(cmd.Context(), seed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Activated version %s\n", services.PluginVersion)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noDefaults, "no-defaults", false, "Do not seed the default categories")
	return cmd
}

func newResetCmd(current func() *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every custom category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all categories without --yes")
			}
			if err := current().activator.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All custom categories removed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

func newSeedCmd(current func() *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert custom categories from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open seed file: %w", err)
			}
			defer f.Close()

			categories, err := services.LoadCategorySeed(f)
			if err != nil {
				return err
			}
			result, err := services.SeedCategories(cmd.Context(), a.categories, categories)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seeded %d of %d categories\n", result.SuccessCount, result.TotalProcessed)
			for _, problem := range result.Errors {
				fmt.Fprintf(out, "  skipped %s\n", problem)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "categories.yaml", "YAML file with a categories list")
	return cmd
}

func newListCmd(current func() *app) *cobra.Command {
	var visibleOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List custom categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := current().categories.List(cmd.Context(), visibleOnly)
			if err != nil {
				return err
			}
			return printCategories(cmd.OutOrStdout(), categories)
		},
	}
	cmd.Flags().BoolVar(&visibleOnly, "visible", false, "Only list visible categories")
	return cmd
}

func printCategories(w io.Writer, categories []models.CustomCategory) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tID\tNAME\tSCHEME\tPRODUCTS\tVISIBLE")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%t\n", c.Order, c.ID, c.Name, c.ColorScheme, len(c.Products), c.Visibility)
	}
	return tw.Flush()
}

func newExportCmd(current func() *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every custom category to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := current().categories.List(cmd.Context(), false)
			if err != nil {
				return err
			}
			buf, err := services.ExportCategoriesXLSX(categories)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d categories to %s\n", len(categories), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "custom_categories.xlsx", "Output file")
	return cmd
}

func newImportProductsCmd(current func() *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import-products",
		Short: "Load catalog products from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open product file: %w", err)
			}
			defer f.Close()

			products, err := services.LoadProductSeed(f, time.Now())
			if err != nil {
				return err
			}
			if err := current().catalog.Upsert(cmd.Context(), products); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d products\n", len(products))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "products.yaml", "YAML file with a products list")
	return cmd
}

func newCreateAdminCmd(current func() *app) *cobra.Command {
	var name, email, role string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a user who can manage the store",
		Long: `Create an administrator or shop manager.

Missing name and email are prompted for. The password is read without echo
when stdin is a terminal, otherwise from the next line of stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if name == "" {
				name = prompt(in, out, "Name: ")
			}
			if email == "" {
				email = prompt(in, out, "Email: ")
			}
			password, err := readPassword(in, out)
			if err != nil {
				return err
			}

			user, err := current().auth.CreateUser(cmd.Context(), name, email, password, role)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s %s (%s)\n", user.Role, user.Email, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&role, "role", models.RoleAdministrator, "administrator or shop_manager")
	return cmd
}

func prompt(in *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func readPassword(in *bufio.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Password: ")
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
