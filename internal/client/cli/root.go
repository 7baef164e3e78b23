package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

// Root restores a saved session, if any, and runs the REPL until the user
// exits or input ends.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to DomUnity CLI (type 'help' for commands)")

	s, err := a.authService.Restore(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not read saved session:", err)
	} else if s != nil {
		a.email = s.Email
		a.signedIn = true
		fmt.Fprintln(a.out, "Restored session for", s.Email)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
