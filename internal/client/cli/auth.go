package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/domunity/backend/internal/client/client"
	"github.com/domunity/backend/internal/client/models"
	"github.com/domunity/backend/internal/client/services"
	"github.com/domunity/backend/internal/common"
)

// Input indirections, swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
)

func (a *App) fail(err error) error {
	fmt.Fprintln(a.out, "Error:", err)
	if services.IsSignedOut(err) {
		a.signedIn = false
	}
	return err
}

// Signup prompts for email, password, full name and phone and creates the
// account. The new session is kept.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	fullName, err := getOptionalText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	phone, err := getOptionalText(a.reader, "Enter phone", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.authService.Signup(ctx, models.SignupParams{
		Email:    email,
		Password: string(password),
		FullName: fullName,
		Phone:    phone,
	})
	if err != nil {
		return a.fail(err)
	}

	a.email, a.signedIn = u.Email, true
	fmt.Fprintln(a.out, "Account created, signed in as", u.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return a.fail(err)
	}

	a.email, a.signedIn = u.Email, true
	fmt.Fprintln(a.out, "Signed in as", u.Email)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.authService.WhoAmI(ctx)
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintf(a.out, "ID:      %s\nEmail:   %s\n", u.ID, u.Email)
	if u.FullName != "" {
		fmt.Fprintf(a.out, "Name:    %s\n", u.FullName)
	}
	if u.Phone != "" {
		fmt.Fprintf(a.out, "Phone:   %s\n", u.Phone)
	}
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, "Since:   %s\n", u.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.authService.Refresh(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Access token refreshed")
	return nil
}

// Logout forgets the session locally and on the server. Tokens already
// handed out stay valid until they expire.
func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.authService.Logout(ctx); err != nil {
		return a.fail(err)
	}
	a.email, a.signedIn = "", false
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	err := a.authService.Ping(ctx)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Server is up")
	case errors.Is(err, client.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	return err
}
