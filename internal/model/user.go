package model

// UserRole 由上游平台签发的 token 携带，本服务不存储用户
type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// CanViewCohort 教师与管理员可以查看任意学员的诊断
func (r UserRole) CanViewCohort() bool {
	return r == Teacher || r == Admin
}
