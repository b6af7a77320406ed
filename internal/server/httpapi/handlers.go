package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/services"
	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader carries the client-chosen ID of a new time log.
const IdempotencyKeyHeader = "Idempotency-Key"

type handler struct {
	svc Services
	now func() time.Time
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, errors.New("malformed JSON body: "+err.Error()))
		return false
	}
	return true
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, errors.New(name+" must be an integer"))
		return 0, false
	}
	return v, true
}

func (h *handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Galactic Quest API is running!", "timestamp": h.now().UTC()})
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": h.now().UTC()})
}

func (h *handler) register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}
	user, pair, err := h.svc.Users.Register(c.Request.Context(), services.RegisterRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{toUser(user), toTokens(pair)})
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	user, pair, err := h.svc.Users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{toUser(user), toTokens(pair)})
}

func (h *handler) refresh(c *gin.Context) {
	var req refreshRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.svc.Users.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTokens(pair))
}

func (h *handler) me(c *gin.Context) {
	p, err := h.svc.Users.Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := toUser(&p.User)
	out.CurrentRank = toRank(p.Rank)
	c.JSON(http.StatusOK, out)
}

func (h *handler) getSettings(c *gin.Context) {
	s, err := h.svc.Users.Settings(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettings(s))
}

func (h *handler) patchSettings(c *gin.Context) {
	var req settingsPatchJSON
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.svc.Users.UpdateSettings(c.Request.Context(), currentUserID(c), models.SettingsPatch(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettings(s))
}

func (h *handler) listCategories(c *gin.Context) {
	list, err := h.svc.Categories.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]categoryJSON, 0, len(list))
	for _, cat := range list {
		out = append(out, toCategory(cat))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) predefinedCategories(c *gin.Context) {
	list := h.svc.Categories.Predefined()
	out := make([]categoryJSON, 0, len(list))
	for _, p := range list {
		cat := p.ToCategory("")
		cat.ID = p.ID
		cat.CreatedAt = h.now().UTC()
		out = append(out, toCategory(cat))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) createCategory(c *gin.Context) {
	var req createCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	cat, err := h.svc.Categories.Create(c.Request.Context(), currentUserID(c), services.CreateCategoryRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategory(*cat))
}

func (h *handler) deleteCategory(c *gin.Context) {
	if err := h.svc.Categories.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageJSON{Message: "Category deleted successfully", Success: true})
}

func (h *handler) listSkills(c *gin.Context) {
	list, err := h.svc.Skills.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]skillJSON, 0, len(list))
	for i := range list {
		out = append(out, toSkill(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) createSkill(c *gin.Context) {
	var req createSkillRequest
	if !bindJSON(c, &req) {
		return
	}
	sk, err := h.svc.Skills.Create(c.Request.Context(), currentUserID(c), services.CreateSkillRequest(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSkill(sk))
}

func (h *handler) updateSkill(c *gin.Context) {
	var req updateSkillRequest
	if !bindJSON(c, &req) {
		return
	}
	sk, err := h.svc.Skills.Update(c.Request.Context(), currentUserID(c), c.Param("id"), models.SkillPatch(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSkill(sk))
}

func (h *handler) deleteSkill(c *gin.Context) {
	if err := h.svc.Skills.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageJSON{Message: "Skill deleted successfully", Success: true})
}

func (h *handler) logTime(c *gin.Context) {
	var req logTimeRequest
	if !bindJSON(c, &req) {
		return
	}
	rec, err := h.svc.Progression.LogTime(c.Request.Context(), services.LogTimeRequest{
		ID:      c.GetHeader(IdempotencyKeyHeader),
		UserID:  currentUserID(c),
		SkillID: req.SkillID,
		Minutes: req.Minutes,
		Note:    req.Note,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTimeLog(rec))
}

func (h *handler) listTimeLogs(c *gin.Context) {
	limit, ok := queryInt(c, "limit", services.DefaultTimeLogLimit)
	if !ok {
		return
	}
	list, err := h.svc.TimeLogs.List(c.Request.Context(), currentUserID(c), c.Query("skill_id"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]timeLogJSON, 0, len(list))
	for i := range list {
		out = append(out, toTimeLog(&list[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) leaderboard(c *gin.Context) {
	limit, ok := queryInt(c, "limit", services.DefaultLeaderboardLimit)
	if !ok {
		return
	}
	board, err := h.svc.Leaderboard.Get(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLeaderboard(board))
}

func (h *handler) achievements(c *gin.Context) {
	list, err := h.svc.Achievements.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	out := make([]achievementJSON, 0, len(list))
	for _, a := range list {
		out = append(out, toAchievement(a))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) userStats(c *gin.Context) {
	st, err := h.svc.Stats.UserStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statsJSON(*st))
}

func (h *handler) export(c *gin.Context) {
	res, err := h.svc.Export.ExportTimeLogs(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exportJSON(*res))
}
