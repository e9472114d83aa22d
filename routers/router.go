package routers

import (
	"github.com/yeongbeomSong/CourseEnroll/controllers/errorhandler"
	internalcontrollers "github.com/yeongbeomSong/CourseEnroll/internal/controllers"

	beego "github.com/beego/beego/v2/server/web"
)

func init() {
	// Error handler
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	beego.Router("/v1/auth/login", &internalcontrollers.AuthController{}, "post:PostLogin")
	beego.Router("/v1/auth/signup", &internalcontrollers.AuthController{}, "post:PostSignup")
	beego.Router("/v1/users/me", &internalcontrollers.AuthController{}, "get:GetMe")

	beego.Router("/v1/departments", &internalcontrollers.DepartmentsController{}, "get:GetList")

	beego.Router("/v1/courses", &internalcontrollers.CoursesController{}, "get:GetList")
	beego.Router("/v1/courses/:id", &internalcontrollers.CoursesController{}, "get:GetById")

	beego.Router("/v1/enrollments", &internalcontrollers.EnrollmentsController{}, "post:PostApply")
	beego.Router("/v1/enrollments/me", &internalcontrollers.EnrollmentsController{}, "get:GetMine")
	beego.Router("/v1/enrollments/waiting", &internalcontrollers.EnrollmentsController{}, "get:GetWaiting")
	beego.Router("/v1/enrollments/waiting/:courseId", &internalcontrollers.EnrollmentsController{}, "delete:DeleteWaiting")
	beego.Router("/v1/enrollments/:courseId", &internalcontrollers.EnrollmentsController{}, "delete:DeleteOne")

	beego.Router("/v1/schedule", &internalcontrollers.ScheduleController{}, "get:GetWeekly")

	beego.Router("/v1/professors/courses", &internalcontrollers.ProfessorController{}, "get:GetCourses;post:PostCourse")
	beego.Router("/v1/professors/courses/:id", &internalcontrollers.ProfessorController{}, "get:GetCourse;put:PutCourse")
	beego.Router("/v1/professors/courses/:id/students", &internalcontrollers.ProfessorController{}, "get:GetStudents")

	beego.Router("/v1/admin/departments", &internalcontrollers.AdminController{}, "get:GetDepartments;post:PostDepartment")
	beego.Router("/v1/admin/departments/:id", &internalcontrollers.AdminController{}, "put:PutDepartment;delete:DeleteDepartment")
	beego.Router("/v1/admin/users", &internalcontrollers.AdminController{}, "get:GetUsers")
	beego.Router("/v1/admin/users/:id", &internalcontrollers.AdminController{}, "delete:DeleteUser")
	beego.Router("/v1/admin/courses", &internalcontrollers.AdminController{}, "get:GetCourses")
}
