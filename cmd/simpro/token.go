package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/simpro-reconcile/pkg/jwt"
)

func newTokenCmd(e *env) *cobra.Command {
	var subject, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emite un JWT para la API de revisión firmado con JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != jwt.RoleAdmin && role != jwt.RoleReviewer {
				return fmt.Errorf("rol inválido %q (admin, reviewer)", role)
			}
			tok, err := jwt.Generate(e.cfg.JWT.Secret, subject, role, e.cfg.JWT.Issuer, e.cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "identificador de quien usará el token (requerido)")
	cmd.Flags().StringVar(&role, "role", jwt.RoleReviewer, "rol: admin o reviewer")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
