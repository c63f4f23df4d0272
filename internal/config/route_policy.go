package config

import "tutoring-center-backend/internal/domain"

// Route names used by the HTTP router and the policy table
const (
	RouteClassroomStudentGet        = "classroom-student.get"
	RouteClassroomStudentAdmit      = "classroom-student.admit"
	RouteClassroomStudentActivate   = "classroom-student.activate"
	RouteClassroomStudentDeactivate = "classroom-student.deactivate"
	RouteClassroomStudentDelete     = "classroom-student.delete-student"

	RouteProfileGet            = "profile.get"
	RouteProfileUpdate         = "profile.update"
	RouteProfileChangePassword = "profile.change-password"

	RouteQuizAnswerUpdate = "quiz-answer.update"
)

var anyRole = []domain.Role{domain.RoleAdmin, domain.RoleTeacher, domain.RoleStudent}

// RoutePolicies maps each protected route to the roles allowed to call it
var RoutePolicies = map[string][]domain.Role{
	// Classroom-student lifecycle is admin only
	RouteClassroomStudentGet:        {domain.RoleAdmin},
	RouteClassroomStudentAdmit:      {domain.RoleAdmin},
	RouteClassroomStudentActivate:   {domain.RoleAdmin},
	RouteClassroomStudentDeactivate: {domain.RoleAdmin},
	RouteClassroomStudentDelete:     {domain.RoleAdmin},

	RouteProfileGet:            anyRole,
	RouteProfileUpdate:         anyRole,
	RouteProfileChangePassword: anyRole,

	RouteQuizAnswerUpdate: {domain.RoleAdmin, domain.RoleTeacher},
}

// RequiredRoles returns the roles for a route. Unknown routes are admin only.
func RequiredRoles(route string) []domain.Role {
	if roles, exists := RoutePolicies[route]; exists {
		return roles
	}
	return []domain.Role{domain.RoleAdmin}
}
