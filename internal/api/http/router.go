package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"tutoring-center-backend/internal/config"
	"tutoring-center-backend/internal/security"
)

// Handlers groups the route handlers wired into the router
type Handlers struct {
	ClassroomStudent *ClassroomStudentHandler
	Profile          *ProfileHandler
	QuizAnswer       *QuizAnswerHandler
}

// NewRouter builds the HTTP route table. Every route except /health requires
// a valid bearer token and passes its role policy before reaching the handler.
func NewRouter(h Handlers, tm security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestLogger)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": StatusOK})
	}).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(Authenticate(tm))

	// Classroom-student lifecycle
	api.HandleFunc("/classroom-student", requirePolicy(config.RouteClassroomStudentGet, h.ClassroomStudent.Get)).Methods(http.MethodGet)
	api.HandleFunc("/classroom-student/admit", requirePolicy(config.RouteClassroomStudentAdmit, h.ClassroomStudent.Admit)).Methods(http.MethodPost)
	api.HandleFunc("/classroom-student/activate", requirePolicy(config.RouteClassroomStudentActivate, h.ClassroomStudent.Activate)).Methods(http.MethodPut)
	api.HandleFunc("/classroom-student/deactivate", requirePolicy(config.RouteClassroomStudentDeactivate, h.ClassroomStudent.Deactivate)).Methods(http.MethodPut)
	api.HandleFunc("/classroom-student/delete-student", requirePolicy(config.RouteClassroomStudentDelete, h.ClassroomStudent.DeleteStudent)).Methods(http.MethodDelete)

	// Profile
	api.HandleFunc("/profile", requirePolicy(config.RouteProfileGet, h.Profile.Get)).Methods(http.MethodGet)
	api.HandleFunc("/profile", requirePolicy(config.RouteProfileUpdate, h.Profile.Update)).Methods(http.MethodPut)
	api.HandleFunc("/profile/update", requirePolicy(config.RouteProfileUpdate, h.Profile.Update)).Methods(http.MethodPut)
	api.HandleFunc("/profile/change-password", requirePolicy(config.RouteProfileChangePassword, h.Profile.ChangePassword)).Methods(http.MethodPut)

	// Quiz answers
	api.HandleFunc("/quiz-answer/{id:[0-9]+}", requirePolicy(config.RouteQuizAnswerUpdate, h.QuizAnswer.Update)).Methods(http.MethodPut)

	return router
}
