package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username (3-20 characters)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome aboard, %s! Your rank: %s\n", user.Username, user.Rank)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	user, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Login successful. Welcome back, %s (%s, %d XP)\n", user.Username, user.Rank, user.TotalXP)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
