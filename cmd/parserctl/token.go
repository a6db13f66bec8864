package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/parser-config-api/pkg/config"
	"github.com/jhoicas/parser-config-api/pkg/jwt"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Tokens JWT de acceso a la API",
	}
	cmd.AddCommand(tokenIssueCmd())
	return cmd
}

func tokenIssueCmd() *cobra.Command {
	var (
		subject string
		orgID   string
		role    string
		minutes int
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Emite un token firmado con JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := issueToken(cfg.JWT, subject, orgID, role, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Usuario o servicio dueño del token")
	cmd.Flags().StringVarP(&orgID, "org", "o", "", "Organización (vacío usa ORG_ID)")
	cmd.Flags().StringVarP(&role, "role", "r", jwt.RoleViewer, "admin | editor | viewer")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Vigencia en minutos (0 usa JWT_EXPIRATION_MINUTES)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}

func issueToken(c config.JWTConfig, subject, orgID, role string, minutes int) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("JWT_SECRET no está configurado")
	}
	if subject == "" {
		return "", fmt.Errorf("subject requerido")
	}
	if !jwt.ValidRole(role) {
		return "", fmt.Errorf("rol desconocido %q", role)
	}
	if minutes <= 0 {
		minutes = c.Expiration
	}
	return jwt.Generate(c.Secret, subject, orgID, role, c.Issuer, minutes)
}
