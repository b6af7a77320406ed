package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type userRepo struct {
	base
}

func (r *userRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	err := r.read(func(st *state) error {
		if _, ok := st.users[u.ID]; ok {
			return common.ErrAlreadyExists
		}
		for _, existing := range st.users {
			if existing.Email == u.Email || existing.Username == u.Username {
				return common.ErrAlreadyExists
			}
		}
		st.users[u.ID] = *u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepo) find(match func(models.User) bool) (*models.User, error) {
	var found *models.User
	err := r.read(func(st *state) error {
		for _, u := range st.users {
			if match(u) {
				found = &u
				return nil
			}
		}
		return common.ErrorNotFound
	})
	return found, err
}

func (r *userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	var found *models.User
	err := r.read(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &u
		return nil
	})
	return found, err
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *userRepo) update(id string, fn func(u *models.User) error) error {
	return r.read(func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return common.ErrorNotFound
		}
		if err := fn(&u); err != nil {
			return err
		}
		st.users[id] = u
		return nil
	})
}

func (r *userRepo) TouchLastActive(_ context.Context, id string, at time.Time) error {
	return r.update(id, func(u *models.User) error {
		u.LastActive = at
		return nil
	})
}

func (r *userRepo) UpdateSettings(_ context.Context, id string, s models.Settings) error {
	return r.update(id, func(u *models.User) error {
		u.Settings = s
		return nil
	})
}

func (r *userRepo) ApplyProgress(_ context.Context, p models.ProgressUpdate) error {
	return r.read(func(st *state) error {
		u, ok := st.users[p.UserID]
		if !ok || u.Version != p.ExpectedVersion {
			return common.ErrVersionConflict
		}
		u.TotalXP = p.TotalXP
		u.TotalTimeMinutes = p.TotalTimeMinutes
		u.CurrentRank = p.CurrentRank
		u.LastActive = p.LastActive
		u.Version++
		st.users[p.UserID] = u
		return nil
	})
}

func leaderboardOrder(a, b models.User) int {
	if c := cmp.Compare(b.TotalXP, a.TotalXP); c != 0 {
		return c
	}
	if c := a.JoinedAt.Compare(b.JoinedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func (r *userRepo) Top(_ context.Context, limit int) ([]models.LeaderboardRow, error) {
	var all []models.User
	_ = r.read(func(st *state) error {
		all = slices.Collect(maps.Values(st.users))
		return nil
	})
	slices.SortFunc(all, leaderboardOrder)
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}

	result := make([]models.LeaderboardRow, 0, len(all))
	for _, u := range all {
		result = append(result, models.LeaderboardRow{
			UserID: u.ID, Username: u.Username, Avatar: u.Avatar, TotalXP: u.TotalXP, CurrentRank: u.CurrentRank,
		})
	}
	return result, nil
}

func (r *userRepo) CountWithXPAbove(_ context.Context, xp int64) (int64, error) {
	var n int64
	err := r.read(func(st *state) error {
		for _, u := range st.users {
			if u.TotalXP > xp {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *userRepo) Count(_ context.Context) (int64, error) {
	var n int64
	err := r.read(func(st *state) error {
		n = int64(len(st.users))
		return nil
	})
	return n, err
}
