package cli

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/galacticquest/internal/client/client"
	"github.com/dmitrijs2005/galacticquest/internal/rpc"
	"github.com/google/uuid"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) Profile(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}
	a.user = u

	fmt.Fprintf(a.out, "%s %s <%s>\n", u.Avatar, u.Username, u.Email)
	fmt.Fprintf(a.out, "Rank:  %s\n", u.Rank)
	fmt.Fprintf(a.out, "XP:    %d\n", u.TotalXP)
	fmt.Fprintf(a.out, "Time:  %d min\n", u.TotalTimeMinutes)
	if u.NextRankXP > 0 {
		fmt.Fprintf(a.out, "Next rank in %d XP\n", u.NextRankXP-u.TotalXP)
	}
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.api.ListCategories(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No categories")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, c := range list {
		fmt.Fprintf(tw, "%s\t%s %s\n", c.ID, c.Icon, c.Name)
	}
	return tw.Flush()
}

func (a *App) Skills(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.api.ListSkills(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No skills yet, add one with 'addskill'")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSKILL\tDIFFICULTY\tXP\tMINUTES\tSTREAK")
	for _, s := range list {
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%d\t%d\t%d\n", s.ID, s.Icon, s.Name, s.Difficulty, s.TotalXP, s.TotalTimeMinutes, s.Streak)
	}
	return tw.Flush()
}

func (a *App) AddSkill(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Skill name", a.out)
	if err != nil {
		return err
	}
	categoryID, err := GetSimpleText(a.reader, "Category ID (see 'categories')", a.out)
	if err != nil {
		return err
	}
	difficulty, err := GetSimpleText(a.reader, "Difficulty (trivial, easy, medium, hard, extreme, legendary)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	s, err := a.api.CreateSkill(ctx, &rpc.CreateSkillRequest{Name: name, CategoryID: categoryID, Difficulty: difficulty})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Skill created: %s %s [%s]\n", s.Icon, s.Name, s.ID)
	return nil
}

// Log records minutes against a skill. The record ID is chosen here so a
// call that times out can be repeated once without double counting.
func (a *App) Log(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: log <skill-id> <minutes> [note]")
	}
	minutes, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("minutes must be a number: %w", err)
	}
	req := &rpc.LogTimeRequest{ID: uuid.NewString(), SkillID: args[0], Minutes: minutes}
	if len(args) > 2 {
		note := strings.Join(args[2:], " ")
		req.Note = &note
	}

	var rec *rpc.TimeLog
	for attempt := 0; attempt < 2; attempt++ {
		actx, cancel := a.withTimeout(ctx)
		rec, err = a.api.LogTime(actx, req)
		cancel()
		if !errors.Is(err, client.ErrUnavailable) && !errors.Is(err, client.ErrRetryLater) {
			break
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "+%d XP for %d min\n", rec.XPEarned, rec.Minutes)

	before := ""
	if a.user != nil {
		before = a.user.Rank
	}
	pctx, cancel := a.withTimeout(ctx)
	defer cancel()
	if u, err := a.api.Profile(pctx); err == nil {
		a.user = u
		if before != "" && u.Rank != before {
			fmt.Fprintf(a.out, "Rank up! %s -> %s\n", before, u.Rank)
		}
	}
	return nil
}

func (a *App) Logs(ctx context.Context, args []string) error {
	skillID := ""
	if len(args) > 0 {
		skillID = args[0]
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.api.ListTimeLogs(ctx, skillID, 0)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No time logged yet")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSKILL\tMINUTES\tXP\tNOTE")
	for _, l := range list {
		note := ""
		if l.Note != nil {
			note = *l.Note
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", l.LoggedAt.Local().Format(timeLayout), l.SkillID, l.Minutes, l.XPEarned, note)
	}
	return tw.Flush()
}

func (a *App) Leaderboard(ctx context.Context, args []string) error {
	limit := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("limit must be a number: %w", err)
		}
		limit = n
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	board, err := a.api.Leaderboard(ctx, limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPLAYER\tRANK\tXP")
	for _, e := range board.Entries {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%d\n", e.Position, e.Avatar, e.Username, e.Rank, e.TotalXP)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Your position: %d of %d\n", board.UserPosition, board.TotalPlayers)
	return nil
}

// Export asks the server for a ledger export and downloads it into the
// configured export directory.
func (a *App) Export(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	res, err := a.api.Export(ctx)
	if err != nil {
		return err
	}

	data, err := downloadFn(ctx, res.URL)
	if err != nil {
		return fmt.Errorf("download export: %w", err)
	}

	p, err := saveFn(a.config.ExportDir, path.Base(res.Key), data)
	if err != nil {
		return fmt.Errorf("save export: %w", err)
	}

	fmt.Fprintf(a.out, "Exported %d time logs to %s\n", res.Count, p)
	return nil
}
