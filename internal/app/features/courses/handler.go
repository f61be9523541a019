// internal/app/features/courses/handler.go
package courses

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/uyghurconnect/uyghurlearn/internal/app/features/errors"
	coursestore "github.com/uyghurconnect/uyghurlearn/internal/app/store/courses"
	lessonstore "github.com/uyghurconnect/uyghurlearn/internal/app/store/lessons"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/auth"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/backendapi"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/inputval"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/timeouts"
	"github.com/uyghurconnect/uyghurlearn/internal/app/system/viewdata"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
	"go.uber.org/zap"
)

// Catalog is the part of the lesson backend the course pages read and delete through.
type Catalog interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
	ListLessonsByCourse(ctx context.Context, courseID string) ([]models.Lesson, error)
	DeleteLesson(ctx context.Context, token, id string) error
}

// Handler serves the course list and course pages.
type Handler struct {
	catalog    Catalog
	sessionMgr *auth.SessionManager
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a course Handler.
func NewHandler(catalog Catalog, sessionMgr *auth.SessionManager, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		catalog:    catalog,
		sessionMgr: sessionMgr,
		errLog:     errLog,
		logger:     logger,
	}
}

// ListVM is the view model for /courses.
type ListVM struct {
	viewdata.BaseVM
	Courses []models.Course
}

// CourseVM is the view model for a course page.
type CourseVM struct {
	viewdata.BaseVM
	Course  models.Course
	Lessons []LessonRowVM
	Message string
}

// LessonRowVM is one lesson in the course page list.
type LessonRowVM struct {
	ID    string
	Title string
	Order int
}

// MountRoutes adds the course routes to r.
func MountRoutes(r chi.Router, h *Handler, sm *auth.SessionManager) {
	r.Get("/courses", h.ServeList)
	r.Get("/course/{courseID}", h.ServeCourse)
	r.With(sm.RequireEditor).Post("/course/{courseID}/lessons/{lessonID}/delete", h.HandleDeleteLesson)
}

func (h *Handler) baseVM(w http.ResponseWriter, r *http.Request) viewdata.BaseVM {
	vm := viewdata.New(r)
	vm.AddFlashes(h.sessionMgr.Flashes(w, r))
	return vm
}

// ServeList handles GET /courses.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	vm := ListVM{BaseVM: h.baseVM(w, r)}
	vm.Title = vm.T("course.listTitle")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.logger, "list courses")
	defer cancel()

	list, err := h.catalog.ListCourses(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to list courses", err)
		vm.AddError("course.loadError")
		w.WriteHeader(http.StatusBadGateway)
		templates.Render(w, r, "courses/list", vm)
		return
	}
	vm.Courses = list
	templates.Render(w, r, "courses/list", vm)
}

// ServeCourse handles GET /course/{courseID}.
func (h *Handler) ServeCourse(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	vm := CourseVM{BaseVM: h.baseVM(w, r)}
	vm.BackURL = "/courses"

	if !inputval.IsValidObjectID(courseID) {
		h.renderMissing(w, r, vm)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), h.logger, "load course")
	defer cancel()

	course, err := h.catalog.GetCourse(ctx, courseID)
	if err != nil {
		if isNotFound(err) {
			h.renderMissing(w, r, vm)
			return
		}
		h.errLog.Log(r, "failed to load course", err)
		h.renderLoadError(w, r, vm)
		return
	}
	vm.Course = course
	vm.Title = course.Name

	lessons, err := h.catalog.ListLessonsByCourse(ctx, courseID)
	if err != nil {
		h.errLog.Log(r, "failed to list lessons", err)
		h.renderLoadError(w, r, vm)
		return
	}
	sort.SliceStable(lessons, func(i, j int) bool { return lessons[i].Order < lessons[j].Order })
	vm.Lessons = make([]LessonRowVM, 0, len(lessons))
	for _, l := range lessons {
		vm.Lessons = append(vm.Lessons, LessonRowVM{ID: l.ID, Title: l.Title, Order: l.Order})
	}

	templates.Render(w, r, "courses/course", vm)
}

// HandleDeleteLesson handles POST /course/{courseID}/lessons/{lessonID}/delete.
func (h *Handler) HandleDeleteLesson(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseID")
	lessonID := chi.URLParam(r, "lessonID")
	back := "/course/" + courseID

	u, ok := auth.CurrentUser(r)
	if !ok || u.BackendToken == "" {
		h.sessionMgr.AddFlash(w, r, "common.authError")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Save(), h.logger, "delete lesson")
	defer cancel()

	if err := h.catalog.DeleteLesson(ctx, u.BackendToken, lessonID); err != nil {
		switch {
		case backendapi.IsUnauthorized(err):
			h.sessionMgr.AddFlash(w, r, "common.authError")
		default:
			h.errLog.LogWithFields(r, "failed to delete lesson", err, zap.String("lesson_id", lessonID))
			h.sessionMgr.AddFlash(w, r, "lesson.deleteError")
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.logger.Info("lesson deleted",
		zap.String("lesson_id", lessonID),
		zap.String("course_id", courseID),
		zap.String("user_id", u.ID))
	h.sessionMgr.AddFlash(w, r, "lesson.deleteSuccess")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (h *Handler) renderMissing(w http.ResponseWriter, r *http.Request, vm CourseVM) {
	vm.Title = vm.T("error.notFound")
	vm.Message = vm.T("course.notFound")
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "courses/course", vm)
}

func (h *Handler) renderLoadError(w http.ResponseWriter, r *http.Request, vm CourseVM) {
	if vm.Title == "" {
		vm.Title = vm.T("course.loadError")
	}
	vm.Message = vm.T("course.loadError")
	vm.Lessons = nil
	w.WriteHeader(http.StatusBadGateway)
	templates.Render(w, r, "courses/course", vm)
}

func isNotFound(err error) bool {
	return backendapi.IsNotFound(err) ||
		errors.Is(err, coursestore.ErrNotFound) ||
		errors.Is(err, lessonstore.ErrNotFound)
}
