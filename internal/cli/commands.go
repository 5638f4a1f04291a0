package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ning0612/ecorp/internal/domain"
)

func (a *App) newGetEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-email <sciper>",
		Short: "Retrieve your instruction emails.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			if _, err := parseSciper(args[0]); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseSciper(args[0])

			svc, err := a.service()
			if err != nil {
				return err
			}
			if err := svc.Retrieve(cmd.Context(), id); err != nil {
				return &handlerError{err: err}
			}
			return nil
		},
	}
}

func (a *App) newShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share",
		Short: "Check your solution.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			if err := svc.Share(cmd.Context()); err != nil {
				return &handlerError{err: err}
			}
			return nil
		},
	}
}

func parseSciper(arg string) (domain.Sciper, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sciper %q: must be an integer", arg)
	}
	return domain.Sciper(n), nil
}
