package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/Muhamedyehya/aqar-admin/internal/service"
)

// confirmer returns the delete gate: --yes approves up front, otherwise the
// operator is asked on the command's input.
func confirmer(cmdCtx *commandContext, yes bool) service.ConfirmFunc {
	return func(_ context.Context, prompt string) (bool, error) {
		if yes {
			return true, nil
		}
		if err := writef(cmdCtx.Out, "%s Continue? [y/N]: ", prompt); err != nil {
			return false, fmt.Errorf("print confirmation prompt: %w", err)
		}
		reader := bufio.NewReader(cmdCtx.In)
		resp, err := reader.ReadString('\n')
		if err != nil && resp == "" {
			if writeErr := writef(cmdCtx.Out, "\nFailed to read confirmation input: %v\n", err); writeErr != nil {
				return false, writeErr
			}
			return false, nil
		}
		resp = strings.ToLower(strings.TrimSpace(resp))
		return resp == "y" || resp == "yes", nil
	}
}
