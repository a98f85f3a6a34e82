// Package main provides the greet binary entry point, a small CLI over the
// account service layer.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"userAccountManagement/internal/config"
	"userAccountManagement/internal/validate"
	"userAccountManagement/models"
	"userAccountManagement/service"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	root := &cobra.Command{
		Use:          "greet",
		Short:        "Create users and admins and print their greetings",
		SilenceUsage: true,
	}
	root.AddCommand(userCmd(cfg), adminCmd(cfg), greetCmd(cfg), checkEmailCmd())
	return root
}

func greetCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME",
		Short: "Print the greeting for a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := validate.TruncateName(args[0], cfg.Naming.MaxNameLength)
			return printGreeting(cmd, service.CreateUser(name, ""))
		},
	}
}

func userCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "user NAME EMAIL",
		Short: "Create a user and print its greeting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := validate.TruncateName(args[0], cfg.Naming.MaxNameLength)
			return printGreeting(cmd, service.CreateUser(name, args[1]))
		},
	}
}

func adminCmd(cfg *config.Config) *cobra.Command {
	var level int
	var promotions int
	cmd := &cobra.Command{
		Use:   "admin NAME EMAIL",
		Short: "Create an admin and print its greeting, role and level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := validate.TruncateName(args[0], cfg.Naming.MaxNameLength)
			a := service.CreateAdminWithLevel(name, args[1], level)
			for i := 0; i < promotions; i++ {
				a.Promote()
			}
			if err := printGreeting(cmd, a); err != nil {
				return err
			}
			cmd.Printf("role=%s level=%d\n", a.Role(), a.Level)
			return nil
		},
	}
	cmd.Flags().IntVar(&level, "level", cfg.Admin.DefaultLevel, "starting admin level")
	cmd.Flags().IntVar(&promotions, "promote", 0, "number of promotions to apply")
	return cmd
}

func checkEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-email EMAIL",
		Short: "Report whether an email passes the substring check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validate.ValidateEmail(args[0]) {
				return fmt.Errorf("%q does not look like an email", args[0])
			}
			cmd.Printf("%s: ok\n", args[0])
			return nil
		},
	}
}

func printGreeting(cmd *cobra.Command, g models.Greeter) error {
	greeting, err := service.GetGreeting(g)
	if err != nil {
		return err
	}
	cmd.Println(greeting)
	return nil
}
