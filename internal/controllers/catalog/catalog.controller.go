package catalog

import (
	"context"
	"time"

	"stillpoint/internal/apperror"
	"stillpoint/internal/database"
	. "stillpoint/internal/models"
	"stillpoint/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

const (
	DAILY_CACHE_PREFIX = "home:daily:"
	DAILY_CACHE_EXPIRY = 25 * time.Hour
)

type CatalogControllerInterface interface {
	ListSessions(ctx context.Context, filters SessionFilters) ([]Session, error)
	GetSession(ctx context.Context, id int) (*Session, error)
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
	UpdateSession(ctx context.Context, id int, req SessionUpdateRequest) (*Session, error)
	DeleteSession(ctx context.Context, id int) error
	// PlaySession bumps the session's play counter and returns the fresh row.
	PlaySession(ctx context.Context, id int) (*Session, error)
	// GetDailySession returns the deterministic pick for the given day.
	GetDailySession(ctx context.Context, now time.Time) (*Session, error)
	GetFeaturedSessions(ctx context.Context) ([]Session, error)
	GetPopularSessions(ctx context.Context) ([]Session, error)

	ListTeachers(ctx context.Context) ([]Teacher, error)
	GetTeacher(ctx context.Context, id int) (*Teacher, error)
	CreateTeacher(ctx context.Context, req TeacherRequest) (*Teacher, error)
	UpdateTeacher(ctx context.Context, id int, req TeacherUpdateRequest) (*Teacher, error)
	DeleteTeacher(ctx context.Context, id int) error
}

type CatalogController struct {
	db          database.DB
	sessionRepo repositories.SessionRepository
	teacherRepo repositories.TeacherRepository
	log         logger.Logger
}

func New(
	db database.DB,
	sessionRepo repositories.SessionRepository,
	teacherRepo repositories.TeacherRepository,
) CatalogControllerInterface {
	return &CatalogController{
		db:          db,
		sessionRepo: sessionRepo,
		teacherRepo: teacherRepo,
		log:         logger.New("catalogController"),
	}
}

func (c *CatalogController) ListSessions(
	ctx context.Context,
	filters SessionFilters,
) ([]Session, error) {
	return c.sessionRepo.GetAll(ctx, filters)
}

func (c *CatalogController) GetSession(ctx context.Context, id int) (*Session, error) {
	session, err := c.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("Session")
	}

	return session, nil
}

func (c *CatalogController) CreateSession(
	ctx context.Context,
	req SessionRequest,
) (*Session, error) {
	session := req.ToModel()
	if err := c.sessionRepo.Create(ctx, &session); err != nil {
		return nil, err
	}

	return c.sessionRepo.GetByID(ctx, session.ID)
}

func (c *CatalogController) UpdateSession(
	ctx context.Context,
	id int,
	req SessionUpdateRequest,
) (*Session, error) {
	session, err := c.sessionRepo.Update(ctx, id, req.Updates())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("Session")
	}

	return session, nil
}

func (c *CatalogController) DeleteSession(ctx context.Context, id int) error {
	removed, err := c.sessionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NotFound("Session")
	}

	return nil
}

func (c *CatalogController) PlaySession(ctx context.Context, id int) (*Session, error) {
	session, err := c.sessionRepo.IncrementPlayCount(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("Session")
	}

	return session, nil
}

func (c *CatalogController) GetDailySession(
	ctx context.Context,
	now time.Time,
) (*Session, error) {
	cacheKey := DAILY_CACHE_PREFIX + now.UTC().Format("2006-01-02")

	var cached Session
	if found := c.getDailyFromCache(ctx, cacheKey, &cached); found {
		return &cached, nil
	}

	session, err := c.sessionRepo.GetDaily(ctx, now.UTC().YearDay())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("Session")
	}

	c.addDailyToCache(ctx, cacheKey, session)

	return session, nil
}

func (c *CatalogController) GetFeaturedSessions(ctx context.Context) ([]Session, error) {
	return c.sessionRepo.GetFeatured(ctx)
}

func (c *CatalogController) GetPopularSessions(ctx context.Context) ([]Session, error) {
	return c.sessionRepo.GetPopular(ctx)
}

func (c *CatalogController) ListTeachers(ctx context.Context) ([]Teacher, error) {
	return c.teacherRepo.GetAll(ctx)
}

func (c *CatalogController) GetTeacher(ctx context.Context, id int) (*Teacher, error) {
	teacher, err := c.teacherRepo.GetWithSessions(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperror.NotFound("Teacher")
	}

	return teacher, nil
}

func (c *CatalogController) CreateTeacher(
	ctx context.Context,
	req TeacherRequest,
) (*Teacher, error) {
	teacher := req.ToModel()
	if err := c.teacherRepo.Create(ctx, &teacher); err != nil {
		return nil, err
	}

	return &teacher, nil
}

func (c *CatalogController) UpdateTeacher(
	ctx context.Context,
	id int,
	req TeacherUpdateRequest,
) (*Teacher, error) {
	teacher, err := c.teacherRepo.Update(ctx, id, req.Updates())
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperror.NotFound("Teacher")
	}

	return teacher, nil
}

func (c *CatalogController) DeleteTeacher(ctx context.Context, id int) error {
	removed, err := c.teacherRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperror.NotFound("Teacher")
	}

	return nil
}

func (c *CatalogController) getDailyFromCache(
	ctx context.Context,
	cacheKey string,
	session *Session,
) bool {
	if c.db.Cache.General == nil {
		return false
	}

	found, err := database.NewCacheBuilder(c.db.Cache.General, cacheKey).
		WithContext(ctx).
		Get(session)
	if err != nil {
		c.log.Function("getDailyFromCache").
			Warn("failed to read daily pick from cache", "key", cacheKey, "error", err)
		return false
	}

	return found
}

func (c *CatalogController) addDailyToCache(
	ctx context.Context,
	cacheKey string,
	session *Session,
) {
	if c.db.Cache.General == nil {
		return
	}

	if err := database.NewCacheBuilder(c.db.Cache.General, cacheKey).
		WithStruct(session).
		WithTTL(DAILY_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		c.log.Function("addDailyToCache").
			Warn("failed to cache daily pick", "key", cacheKey, "error", err)
	}
}
