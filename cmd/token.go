package main

import (
	"fmt"

	"hotel-booking/cmd/bootstrap"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// tokenCmd issues staff tokens for local use. Production tokens come from the dashboard's login service.
func tokenCmd() *cobra.Command {
	var (
		userID   string
		role     string
		branchID string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a staff access token",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			actor, err := parseActor(userID, role, branchID)
			if err != nil {
				return err
			}

			svc, err := bootstrap.NewJWTService(cfg)
			if err != nil {
				return err
			}
			token, err := svc.GenerateToken(actor)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "staff user id (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(user.RoleEmployee), "admin or employee")
	cmd.Flags().StringVar(&branchID, "branch-id", "", "branch id, required for employees")
	return cmd
}

func parseActor(userID, role, branchID string) (user.Actor, error) {
	uid := uuid.New()
	if userID != "" {
		parsed, err := uuid.Parse(userID)
		if err != nil {
			return user.Actor{}, fmt.Errorf("invalid --user-id: %w", err)
		}
		uid = parsed
	}

	r, err := user.NewRole(role)
	if err != nil {
		return user.Actor{}, fmt.Errorf("invalid --role: %w", err)
	}

	var branch *uuid.UUID
	if branchID != "" {
		parsed, err := uuid.Parse(branchID)
		if err != nil {
			return user.Actor{}, fmt.Errorf("invalid --branch-id: %w", err)
		}
		branch = &parsed
	}

	return user.NewActor(uid, r, branch)
}
