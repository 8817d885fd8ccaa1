package commands

import (
	"fmt"

	"gbsorgapi/config"
	"gbsorgapi/models"
	"gbsorgapi/services"
	"gbsorgapi/utils"

	"github.com/spf13/cobra"
)

// newUserCmd registers users directly, which is how the first ADMIN is created.
func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var (
		name         string
		role         string
		departmentID uint
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := connect(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer closeDB()

			user := models.User{Name: name, Role: role}
			if departmentID != 0 {
				user.DepartmentID = &departmentID
			}
			if err := utils.ValidateStruct(&user); err != nil {
				return err
			}
			created, err := services.NewCatalogService(db).CreateUser(cmd.Context(), user)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user id=%d name=%s role=%s\n", created.ID, created.Name, created.Role)
			return nil
		},
	}
	create.Flags().StringVar(&name, "name", "", "User name (required)")
	create.Flags().StringVar(&role, "role", models.RoleMember, "Role: MEMBER, LEADER, VILLAGE_LEADER, MINISTER or ADMIN")
	create.Flags().UintVar(&departmentID, "department", 0, "Department id")
	_ = create.MarkFlagRequired("name")

	cmd.AddCommand(create)
	return cmd
}

func newTokenCmd() *cobra.Command {
	var userID uint
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user, signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}
			token, err := utils.IssueToken(userID, config.Cfg.JWTSecret)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().UintVar(&userID, "user", 0, "User id (required)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
